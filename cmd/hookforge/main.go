package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/hookforge/cli/cmd/hookforge/cli"
)

func main() {
	ctx, cancel := context.WithCancel(context.Background())

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigChan
		cancel()
	}()

	rootCmd := cli.NewRootCmd()
	err := rootCmd.ExecuteContext(ctx)

	if err != nil {
		var silent *cli.SilentError
		var exitErr *cli.ExitCodeError

		switch {
		case errors.As(err, &silent):
			// Command already printed the error.
		case errors.As(err, &exitErr):
			fmt.Fprintf(rootCmd.OutOrStderr(), "Error: %v\n", exitErr)
			cancel()
			os.Exit(exitErr.ExitCode)
		case strings.Contains(err.Error(), "unknown command"):
			showSuggestion(rootCmd)
		default:
			fmt.Fprintf(rootCmd.OutOrStderr(), "Error: %v\n", err)
		}

		cancel()
		os.Exit(1)
	}
	cancel()
}

func showSuggestion(cmd *cobra.Command) {
	fmt.Fprint(cmd.OutOrStderr(), cmd.UsageString())

	errMsg := fmt.Sprintf("Unknown command: %s %s", cmd.CommandPath(), os.Args[1])
	suggestions := cmd.SuggestionsFor(os.Args[1])
	if len(suggestions) > 0 {
		errMsg += fmt.Sprintf(". Did you mean %q?", suggestions[0])
	}

	fmt.Fprintf(cmd.OutOrStderr(), "\nError: Invalid usage: %s\n", errMsg)
}
