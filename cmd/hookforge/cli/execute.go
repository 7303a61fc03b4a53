package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/hookforge/cli/cmd/hookforge/cli/dispatch"
	"github.com/hookforge/cli/cmd/hookforge/cli/hook"
	"github.com/hookforge/cli/cmd/hookforge/cli/hooks"
)

func newExecuteCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "execute <hook>",
		Short: "Run one hook against a JSON event from stdin",
		Long: `Read one JSON event object from stdin, dispatch it to the named
hook, and print the encoded response on stdout. This is the entry
point the host invokes through the generated settings commands.

The host is never left hanging: on any failure a fallback response
({"continue": true, "suppressOutput": false}) is printed instead and
the process exits 1 with the reason on stderr.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name := args[0]
			out := cmd.OutOrStdout()

			payload, err := io.ReadAll(cmd.InOrStdin())
			if err == nil {
				var encoded []byte
				encoded, err = dispatch.Run(cmd.Context(), discoverQuiet(cmd), name, payload)
				if err == nil {
					fmt.Fprintf(out, "%s\n", encoded)
					return nil
				}
			}

			// stdout must always carry a valid response object.
			fmt.Fprintf(out, "%s\n", dispatch.Fallback())
			fmt.Fprintf(cmd.ErrOrStderr(), "⚠️  %v\n", err)
			return NewSilentError(err)
		},
	}

	return cmd
}

func discoverQuiet(cmd *cobra.Command) *hook.Registry {
	return hook.Discover(hooks.Units(), hook.Options{
		Quiet: true,
		Diag:  cmd.ErrOrStderr(),
	})
}
