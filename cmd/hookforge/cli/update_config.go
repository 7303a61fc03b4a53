package cli

import (
	"github.com/spf13/cobra"

	"github.com/hookforge/cli/cmd/hookforge/cli/hook"
	"github.com/hookforge/cli/cmd/hookforge/cli/hooks"
	"github.com/hookforge/cli/cmd/hookforge/cli/paths"
	"github.com/hookforge/cli/cmd/hookforge/cli/settings"
)

func newUpdateConfigCmd() *cobra.Command {
	var noBackup bool

	cmd := &cobra.Command{
		Use:   "update-config",
		Short: "Sync .claude/settings.json with the registered hooks",
		Long: `Discover the bundled hooks and rewrite the hooks section of the
project's .claude/settings.json to match. Entries previously generated
by hookforge are replaced; everything you wrote by hand survives in
place. The existing file is backed up beside itself first unless
--no-backup is set.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			root, err := paths.ProjectRoot()
			if err != nil {
				return err
			}
			reg := hook.Discover(hooks.Units(), hook.Options{
				Quiet: true,
				Diag:  cmd.ErrOrStderr(),
			})
			return settings.Update(paths.SettingsFile(root), reg, !noBackup, cmd.OutOrStdout())
		},
	}

	cmd.Flags().BoolVar(&noBackup, "no-backup", false, "Skip the timestamped settings backup")

	return cmd
}
