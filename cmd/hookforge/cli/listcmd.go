package cli

import (
	"fmt"
	"os"
	"text/tabwriter"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/hookforge/cli/cmd/hookforge/cli/event"
	"github.com/hookforge/cli/cmd/hookforge/cli/hook"
	"github.com/hookforge/cli/cmd/hookforge/cli/hooks"
	"github.com/hookforge/cli/cmd/hookforge/cli/jsonutil"
	"github.com/hookforge/cli/cmd/hookforge/cli/list"
)

func newListCmd() *cobra.Command {
	var jsonOutput, includeSelfTests bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List registered hooks grouped by event kind",
		Long: `Discover the bundled hooks and show them grouped by event kind in
registration order.

On a terminal this opens an interactive tree browser:
  up/k, down/j   Move cursor
  left/h         Collapse / go to parent
  right/l        Expand
  enter          Toggle expand / inspect
  i              Inspect hook details
  r              Run the hook against a sample event
  q              Quit

With --json, or when stdout is not a terminal, a plain listing is
printed instead.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			reg := hook.Discover(hooks.Units(), hook.Options{
				Quiet:            true,
				IncludeSelfTests: includeSelfTests,
				Diag:             cmd.ErrOrStderr(),
			})

			if jsonOutput {
				return runListJSON(cmd, reg)
			}
			if term.IsTerminal(int(os.Stdout.Fd())) {
				return runListInteractive(cmd, reg)
			}
			return runListPlain(cmd, reg)
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output as JSON instead of a browsable view")
	cmd.Flags().BoolVar(&includeSelfTests, "include-self-tests", false, "Also list the example self-test hooks")

	return cmd
}

func runListPlain(cmd *cobra.Command, reg *hook.Registry) error {
	out := cmd.OutOrStdout()
	groups := reg.List()
	if len(groups) == 0 {
		fmt.Fprintln(out, "No hooks registered.")
		return nil
	}

	w := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	for _, group := range groups {
		contract, err := event.Lookup(string(group.Kind))
		if err != nil {
			continue
		}
		fmt.Fprintf(w, "%s\t%s\n", group.Kind, contract.Description)
		for _, d := range group.Hooks {
			matcher := "-"
			if contract.Matcher {
				matcher = d.Matcher
			}
			fmt.Fprintf(w, "  %s\t%s\tmatcher=%s\ttimeout=%s\tunit=%s\n",
				d.Name, d.Description, matcher, d.Timeout, d.Unit)
		}
	}
	if err := w.Flush(); err != nil {
		return err
	}
	fmt.Fprintf(out, "\n%d hooks registered\n", reg.Len())
	return nil
}

func runListJSON(cmd *cobra.Command, reg *hook.Registry) error {
	type hookJSON struct {
		Name           string `json:"name"`
		Description    string `json:"description,omitempty"`
		Matcher        string `json:"matcher,omitempty"`
		TimeoutSeconds int    `json:"timeout_seconds"`
		Unit           string `json:"unit"`
	}
	type kindJSON struct {
		Kind        string     `json:"kind"`
		Description string     `json:"description"`
		Hooks       []hookJSON `json:"hooks"`
	}
	type outputJSON struct {
		Kinds []kindJSON `json:"kinds"`
		Total int        `json:"total"`
	}

	output := outputJSON{Kinds: []kindJSON{}, Total: reg.Len()}
	for _, group := range reg.List() {
		contract, err := event.Lookup(string(group.Kind))
		if err != nil {
			continue
		}
		kj := kindJSON{
			Kind:        string(group.Kind),
			Description: contract.Description,
			Hooks:       make([]hookJSON, 0, len(group.Hooks)),
		}
		for _, d := range group.Hooks {
			hj := hookJSON{
				Name:           d.Name,
				Description:    d.Description,
				TimeoutSeconds: int(d.Timeout.Seconds()),
				Unit:           d.Unit,
			}
			if contract.Matcher {
				hj.Matcher = d.Matcher
			}
			kj.Hooks = append(kj.Hooks, hj)
		}
		output.Kinds = append(output.Kinds, kj)
	}

	data, err := jsonutil.MarshalIndentWithNewline(output, "", "  ")
	if err != nil {
		return err
	}
	_, err = cmd.OutOrStdout().Write(data)
	return err
}

func runListInteractive(cmd *cobra.Command, reg *hook.Registry) error {
	tree := list.BuildTree(reg)
	if len(tree) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "No hooks registered.")
		return nil
	}

	model := list.NewModel(cmd.Context(), reg, tree)
	p := tea.NewProgram(model, tea.WithAltScreen())

	finalModel, err := p.Run()
	if err != nil {
		return fmt.Errorf("failed to run TUI: %w", err)
	}

	// Print the last action's outcome so it survives the alt screen.
	if m, ok := finalModel.(list.Model); ok {
		if result := m.Result(); result != nil {
			if result.Err != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", result.Err)
			} else if result.Output != "" {
				fmt.Fprintln(os.Stderr, result.Output)
			}
		}
	}
	return nil
}
