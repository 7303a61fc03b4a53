// Package bashguard vets Bash tool calls before they run and blocks
// the ones that would wreck the machine.
package bashguard

import (
	"context"
	"fmt"
	"regexp"

	"github.com/hookforge/cli/cmd/hookforge/cli/event"
	"github.com/hookforge/cli/cmd/hookforge/cli/hook"
)

// Guard denies destructive shell commands and downgrades privileged
// ones to an interactive confirmation.
type Guard struct{}

var (
	// rootWipe matches rm invocations that would delete the
	// filesystem root, with flags in either order or combined.
	rootWipe = regexp.MustCompile(`\brm\s+(?:-[a-zA-Z]*[rR][a-zA-Z]*f[a-zA-Z]*|-[a-zA-Z]*f[a-zA-Z]*[rR][a-zA-Z]*)\s+/(?:\s|$|\*)`)

	// systemWipe matches recursive force-removal aimed at system
	// directories.
	systemWipe = regexp.MustCompile(`\brm\s+(?:-[a-zA-Z]*[rR][a-zA-Z]*f[a-zA-Z]*|-[a-zA-Z]*f[a-zA-Z]*[rR][a-zA-Z]*)\s+/(?:bin|boot|dev|etc|lib|proc|sbin|sys|usr)\b`)

	// sudoUse matches any command elevating via sudo.
	sudoUse = regexp.MustCompile(`(?:^|[;&|]\s*)sudo\b`)
)

func (Guard) PreToolUse(_ context.Context, in *event.PreToolUseInput) (*event.PreToolUseOutput, error) {
	command, _ := in.ToolInput["command"].(string)
	if command == "" {
		return &event.PreToolUseOutput{}, nil
	}

	switch {
	case rootWipe.MatchString(command):
		return &event.PreToolUseOutput{
			Decision: event.Deny,
			Reason:   "refusing to delete the filesystem root",
		}, nil
	case systemWipe.MatchString(command):
		return &event.PreToolUseOutput{
			Decision: event.Deny,
			Reason:   fmt.Sprintf("refusing recursive removal of a system directory: %s", command),
		}, nil
	case sudoUse.MatchString(command):
		return &event.PreToolUseOutput{
			Decision: event.Ask,
			Reason:   "command elevates privileges with sudo",
		}, nil
	}
	return &event.PreToolUseOutput{}, nil
}

// Unit exposes the guard as an extension unit.
func Unit() hook.Unit {
	return hook.Unit{
		Name: "builtin/bashguard",
		Hooks: func() ([]hook.Candidate, error) {
			return []hook.Candidate{{
				Name:        "BashGuard",
				Description: "Blocks destructive shell commands and asks before sudo",
				Impl:        Guard{},
				Matcher:     string(event.ToolBash),
			}}, nil
		},
	}
}
