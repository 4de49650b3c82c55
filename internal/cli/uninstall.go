package cli

import (
	"fmt"

	"github.com/AlecAivazis/survey/v2"
	"github.com/spf13/cobra"

	"github.com/vercel-labs/web-interface-guidelines/internal/ui"
)

// newUninstallCmd creates the uninstall command.
func newUninstallCmd(a *app) *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "uninstall",
		Short: "Remove the guidelines from every tool",
		Long: `Remove the installed guidelines command from every tool it was
installed for. The shared Codex rules file keeps its unrelated content;
only the guidelines block is removed from it.`,
		Aliases: []string{"rm"},
		RunE: func(cmd *cobra.Command, args []string) error {
			if !yes {
				confirmed := false
				prompt := &survey.Confirm{
					Message: "Remove the guidelines from every tool?",
				}
				if err := survey.AskOne(prompt, &confirmed); err != nil {
					return err
				}
				if !confirmed {
					fmt.Println("Aborted.")
					return nil
				}
			}

			inst := a.newInstaller(nil)
			removed := 0
			for _, r := range inst.Uninstall() {
				if r.Error != nil {
					fmt.Printf("%s %s: %v\n", ui.Error("✗"), r.Target.DisplayName, r.Error)
					continue
				}
				if r.Removed {
					fmt.Printf("%s %s: removed %s\n", ui.Success("✓"), r.Target.DisplayName, ui.Dim(r.Path))
					removed++
				}
			}
			if removed == 0 {
				fmt.Println("Nothing to remove.")
			}
			return nil
		},
	}

	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "Skip confirmation prompt")

	return cmd
}
