package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vercel-labs/web-interface-guidelines/internal/ui"
)

// newListCmd creates the list command.
func newListCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:     "list",
		Short:   "List supported tools",
		Long:    `List every supported coding-agent tool, whether it was detected on this machine, and where to install it.`,
		Aliases: []string{"ls"},
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, t := range a.registry.All() {
				mark := " "
				if t.Detected(a.fs) {
					mark = ui.Success("✓")
				}
				fmt.Printf("%s %-12s %s\n", mark, t.DisplayName, ui.Dim(t.InstallURL))
			}
			return nil
		},
	}
}
