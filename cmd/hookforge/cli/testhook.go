package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/hookforge/cli/cmd/hookforge/cli/dispatch"
	"github.com/hookforge/cli/cmd/hookforge/cli/hook"
	"github.com/hookforge/cli/cmd/hookforge/cli/hooks"
	"github.com/hookforge/cli/cmd/hookforge/cli/jsonutil"
)

func newTestCmd() *cobra.Command {
	var inputPath string

	cmd := &cobra.Command{
		Use:   "test <hook>",
		Short: "Run one hook against a JSON event file",
		Long: `Dispatch the event in --input to the named hook and pretty-print
both the payload and the encoded response. Self-test hooks are
included, so the example units can be exercised without touching
settings.json.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name := args[0]
			out := cmd.OutOrStdout()
			diag := cmd.ErrOrStderr()

			payload, err := os.ReadFile(inputPath) //nolint:gosec // user-supplied test fixture path
			if err != nil {
				fmt.Fprintf(diag, "❌ Failed to read input: %v\n", err)
				return NewSilentError(err)
			}

			reg := hook.Discover(hooks.Units(), hook.Options{
				Quiet:            true,
				IncludeSelfTests: true,
				Diag:             diag,
			})

			fmt.Fprintf(out, "🧪 Testing hook: %s\n", name)

			pretty, err := jsonutil.IndentWithNewline(payload, "  ", "  ")
			if err != nil {
				fmt.Fprintf(diag, "❌ Input is not valid JSON: %v\n", err)
				return NewSilentError(err)
			}
			fmt.Fprintf(out, "📥 Input:\n  %s", pretty)

			encoded, err := dispatch.Run(cmd.Context(), reg, name, payload)
			if err != nil {
				fmt.Fprintf(diag, "❌ Hook failed: %v\n", err)
				return NewSilentError(err)
			}

			pretty, err = jsonutil.IndentWithNewline(encoded, "  ", "  ")
			if err != nil {
				return err
			}
			fmt.Fprintf(out, "📤 Output:\n  %s", pretty)
			fmt.Fprintln(out, "✅ Hook executed successfully")
			return nil
		},
	}

	cmd.Flags().StringVarP(&inputPath, "input", "i", "", "Path to a JSON file holding the event payload")
	_ = cmd.MarkFlagRequired("input")

	return cmd
}
