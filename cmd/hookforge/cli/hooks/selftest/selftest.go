// Package selftest bundles example hooks for exercising the dispatch
// pipeline end to end. The unit is skipped by default; scan and list
// take --include-self-tests to pull it in.
package selftest

import (
	"context"
	"errors"
	"fmt"

	"github.com/hookforge/cli/cmd/hookforge/cli/event"
	"github.com/hookforge/cli/cmd/hookforge/cli/hook"
)

// Echo answers every notification with a system message repeating it.
type Echo struct{}

func (Echo) Notification(_ context.Context, in *event.NotificationInput) (*event.NotificationOutput, error) {
	out := &event.NotificationOutput{}
	out.SystemMessage = fmt.Sprintf("echo: %s", in.Message)
	return out, nil
}

// Failer always errors, which exercises the fallback response path.
type Failer struct{}

func (Failer) Notification(context.Context, *event.NotificationInput) (*event.NotificationOutput, error) {
	return nil, errors.New("this hook fails on purpose")
}

// Unit exposes the examples as a self-test extension unit.
func Unit() hook.Unit {
	return hook.Unit{
		Name:     "builtin/selftest",
		SelfTest: true,
		Hooks: func() ([]hook.Candidate, error) {
			return []hook.Candidate{
				{
					Name:        "EchoNotification",
					Description: "Echoes the notification back as a system message",
					Impl:        Echo{},
				},
				{
					Name:        "AlwaysFail",
					Description: "Fails unconditionally to exercise the fallback path",
					Impl:        Failer{},
				},
			}, nil
		},
	}
}
