package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/mod/semver"

	"github.com/vercel-labs/web-interface-guidelines/internal/content"
	"github.com/vercel-labs/web-interface-guidelines/internal/fs"
	"github.com/vercel-labs/web-interface-guidelines/internal/installer"
	"github.com/vercel-labs/web-interface-guidelines/internal/logging"
	"github.com/vercel-labs/web-interface-guidelines/internal/target"
	"github.com/vercel-labs/web-interface-guidelines/internal/ui"
)

var (
	// version is set via ldflags during build:
	// -ldflags "-X github.com/vercel-labs/web-interface-guidelines/internal/cli.version=v1.0.0"
	version   = "v0.0.0"
	verbosity int
)

func init() {
	if !semver.IsValid(version) {
		panic(fmt.Sprintf("invalid version set via ldflags: %q (must be valid semver)", version))
	}
}

// app represents the CLI application with its dependencies.
type app struct {
	fs       fs.System
	registry *target.Registry
}

// newApp creates a new app instance.
func newApp() *app {
	return &app{
		fs:       fs.New(),
		registry: target.NewRegistry(),
	}
}

// newInstaller creates an Installer over all supported targets.
func (a *app) newInstaller(source installer.Source) *installer.Installer {
	return installer.New(a.fs, source, a.registry.All())
}

// newRootCmd creates the root command. Running it with no subcommand
// installs the guidelines into every detected tool.
func newRootCmd(a *app) *cobra.Command {
	var (
		dryRun    bool
		sourceURL string
	)

	rootCmd := &cobra.Command{
		Use:   "web-interface-guidelines",
		Short: "Install the Web Interface Guidelines into your coding agents",
		Long: `Installs the Web Interface Guidelines command into every supported
coding-agent tool detected on this machine (Claude Code, Cursor, Amp,
Codex, Gemini CLI), converting the shared document to each tool's
expected format.`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logging.Setup(verbosity)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			fetcher := content.NewFetcher(sourceURL)
			return runInstall(cmd, a, fetcher, installer.Options{DryRun: dryRun})
		},
	}

	rootCmd.PersistentFlags().CountVarP(&verbosity, "verbose", "v", "Increase log verbosity (repeatable)")
	rootCmd.Flags().BoolVar(&dryRun, "dry-run", false, "Show what would be installed without making changes")
	rootCmd.Flags().StringVar(&sourceURL, "url", content.DefaultURL, "Guidelines document URL")

	rootCmd.AddCommand(newListCmd(a))
	rootCmd.AddCommand(newStatusCmd(a))
	rootCmd.AddCommand(newUninstallCmd(a))

	return rootCmd
}

// errNothingInstalled is the exit-code-1 outcome for a run that left no
// target installed.
var errNothingInstalled = errors.New("no targets installed")

// runInstall drives the installer and reports per-target outcomes.
func runInstall(cmd *cobra.Command, a *app, source installer.Source, opts installer.Options) error {
	inst := a.newInstaller(source)
	results := inst.Run(cmd.Context(), opts)

	detected := 0
	for _, r := range results {
		switch r.Action {
		case installer.ActionInstalled:
			detected++
			if opts.DryRun {
				fmt.Printf("%s %s: would install %s\n", ui.Success("✓"), r.Target.DisplayName, ui.Dim(r.Path))
			} else {
				fmt.Printf("%s %s: installed %s\n", ui.Success("✓"), r.Target.DisplayName, ui.Dim(r.Path))
			}
		case installer.ActionAlreadyInstalled:
			detected++
			fmt.Printf("%s %s: already installed\n", ui.Success("✓"), r.Target.DisplayName)
		case installer.ActionError:
			detected++
			fmt.Printf("%s %s: %v\n", ui.Error("✗"), r.Target.DisplayName, r.Error)
		case installer.ActionSkipped:
			// Not detected; no output per target.
		}
	}

	if detected == 0 {
		printSupportedTools(a)
		return errors.New("no supported tools detected")
	}

	if installer.Installed(results) == 0 {
		return errNothingInstalled
	}

	fmt.Println()
	fmt.Printf("Run /%s from your agent to review a UI.\n", target.CommandName)
	return nil
}

// printSupportedTools prints every supported tool and where to get it.
func printSupportedTools(a *app) {
	fmt.Println(ui.Heading("No supported tools detected."))
	fmt.Println()
	fmt.Println("Install one of:")
	for _, t := range a.registry.All() {
		fmt.Printf("  %-12s %s\n", t.DisplayName, ui.Dim(t.InstallURL))
	}
}

// Execute runs the CLI application.
func Execute() {
	a := newApp()
	rootCmd := newRootCmd(a)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
