package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/hookforge/cli/cmd/hookforge/cli/hook"
	"github.com/hookforge/cli/cmd/hookforge/cli/hooks"
)

func newScanCmd() *cobra.Command {
	var includeSelfTests bool

	cmd := &cobra.Command{
		Use:   "scan",
		Short: "Discover bundled hooks and report the count",
		Long: `Run a discovery pass over the bundled extension units and report
how many hooks were registered. Each registration prints a
confirmation line unless --quiet is set.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			reg := hook.Discover(hooks.Units(), hook.Options{
				IncludeSelfTests: includeSelfTests,
				Quiet:            quietMode(cmd),
				Out:              cmd.OutOrStdout(),
				Diag:             cmd.ErrOrStderr(),
			})
			fmt.Fprintf(cmd.OutOrStdout(), "✅ Scan complete, registered %d hooks\n", reg.Len())
			return nil
		},
	}

	cmd.Flags().BoolVar(&includeSelfTests, "include-self-tests", false, "Also register the example self-test hooks")

	return cmd
}
