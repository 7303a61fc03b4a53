// Package secrets blocks prompts that carry credential material, so
// keys pasted by accident never reach the model or the transcript.
package secrets

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/hookforge/cli/cmd/hookforge/cli/event"
	"github.com/hookforge/cli/cmd/hookforge/cli/hook"
	"github.com/hookforge/cli/redact"
)

// Gate scans submitted prompts with the redact engine and blocks on
// any finding.
type Gate struct{}

func (Gate) UserPromptSubmit(_ context.Context, in *event.UserPromptSubmitInput) (*event.UserPromptSubmitOutput, error) {
	findings := redact.Findings(in.Prompt)
	if len(findings) == 0 {
		return &event.UserPromptSubmitOutput{}, nil
	}

	rules := make(map[string]bool, len(findings))
	for _, f := range findings {
		rules[f.RuleID] = true
	}
	names := make([]string, 0, len(rules))
	for rule := range rules {
		names = append(names, rule)
	}
	sort.Strings(names)

	return &event.UserPromptSubmitOutput{
		Block:  true,
		Reason: fmt.Sprintf("prompt appears to contain secrets (%s); remove them and resubmit", strings.Join(names, ", ")),
	}, nil
}

// Unit exposes the gate as an extension unit.
func Unit() hook.Unit {
	return hook.Unit{
		Name: "builtin/secrets",
		Hooks: func() ([]hook.Candidate, error) {
			return []hook.Candidate{{
				Name:        "SecretGate",
				Description: "Blocks prompts containing detected credentials",
				Impl:        Gate{},
			}}, nil
		},
	}
}
