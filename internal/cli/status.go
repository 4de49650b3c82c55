package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vercel-labs/web-interface-guidelines/internal/ui"
)

// newStatusCmd creates the status command.
func newStatusCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show install state per tool",
		Long: `Show, for each supported tool, whether it is present on this machine
and whether the guidelines command is installed for it.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			inst := a.newInstaller(nil)
			for _, r := range inst.Status() {
				if r.Error != nil {
					fmt.Printf("%s %-12s %v\n", ui.Error("✗"), r.Target.DisplayName, r.Error)
					continue
				}
				switch {
				case r.Installed:
					fmt.Printf("%s %-12s installed %s\n", ui.Success("✓"), r.Target.DisplayName, ui.Dim(r.Path))
				case r.Detected:
					fmt.Printf("  %-12s detected, not installed\n", r.Target.DisplayName)
				default:
					fmt.Printf("  %-12s %s\n", r.Target.DisplayName, ui.Dim("not detected"))
				}
			}
			return nil
		},
	}
}
