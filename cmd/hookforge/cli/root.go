// Package cli assembles the hookforge command tree. Commands only do
// argument plumbing; discovery, dispatch and settings sync live in
// their own packages.
package cli

import (
	"github.com/spf13/cobra"

	"github.com/hookforge/cli/cmd/hookforge/cli/logging"
)

// Version is the build version, overridden at link time.
var Version = "dev"

// NewRootCmd creates the hookforge root command with all subcommands
// attached.
func NewRootCmd() *cobra.Command {
	var debug, quiet bool

	cmd := &cobra.Command{
		Use:   "hookforge",
		Short: "Host and manage Claude Code hooks from one binary",
		Long: `hookforge bundles a set of Claude Code hooks into one binary,
dispatches hook events delivered on stdin, and keeps the project's
.claude/settings.json in sync with the registered hooks without
touching entries you wrote by hand.`,
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(*cobra.Command, []string) {
			logging.Init(debug, quiet)
		},
	}

	cmd.PersistentFlags().BoolVar(&debug, "debug", false, "Enable debug logging on stderr")
	cmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "Suppress progress output")

	cmd.AddCommand(
		newScanCmd(),
		newListCmd(),
		newUpdateConfigCmd(),
		newTestCmd(),
		newExecuteCmd(),
		newUpgradeCmd(),
	)

	return cmd
}

// quietMode reads the inherited --quiet flag from any subcommand.
func quietMode(cmd *cobra.Command) bool {
	quiet, err := cmd.Flags().GetBool("quiet")
	return err == nil && quiet
}
