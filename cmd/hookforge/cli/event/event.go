// Package event defines the fixed contract catalog for Claude Code
// hook events: the event kinds, their input and output shapes, the
// wire encoding of responses, and the capability interface a hook
// must satisfy per kind.
package event

import (
	"context"
	"encoding/json"
	"errors"
)

// Kind identifies one hook event category. The set is closed; the
// catalog below is the authority.
type Kind string

const (
	PreToolUse        Kind = "PreToolUse"
	PermissionRequest Kind = "PermissionRequest"
	PostToolUse       Kind = "PostToolUse"
	UserPromptSubmit  Kind = "UserPromptSubmit"
	Notification      Kind = "Notification"
	Stop              Kind = "Stop"
	SubagentStop      Kind = "SubagentStop"
	PreCompact        Kind = "PreCompact"
	SessionStart      Kind = "SessionStart"
	SessionEnd        Kind = "SessionEnd"
)

// ErrUnknownKind is returned by Lookup for a name outside the catalog.
var ErrUnknownKind = errors.New("unknown event kind")

// ErrNotHandled is returned when an implementation does not satisfy
// the capability interface of the kind it was dispatched for.
var ErrNotHandled = errors.New("event kind not handled by this hook")

// Capability interfaces, one per kind. An implementation may satisfy
// several; KindsOf reports which.

type PreToolUseHandler interface {
	PreToolUse(ctx context.Context, in *PreToolUseInput) (*PreToolUseOutput, error)
}

type PermissionRequestHandler interface {
	PermissionRequest(ctx context.Context, in *PermissionRequestInput) (*PermissionRequestOutput, error)
}

type PostToolUseHandler interface {
	PostToolUse(ctx context.Context, in *PostToolUseInput) (*PostToolUseOutput, error)
}

type UserPromptSubmitHandler interface {
	UserPromptSubmit(ctx context.Context, in *UserPromptSubmitInput) (*UserPromptSubmitOutput, error)
}

type NotificationHandler interface {
	Notification(ctx context.Context, in *NotificationInput) (*NotificationOutput, error)
}

type StopHandler interface {
	Stop(ctx context.Context, in *StopInput) (*StopOutput, error)
}

type SubagentStopHandler interface {
	SubagentStop(ctx context.Context, in *SubagentStopInput) (*SubagentStopOutput, error)
}

type PreCompactHandler interface {
	PreCompact(ctx context.Context, in *PreCompactInput) (*PreCompactOutput, error)
}

type SessionStartHandler interface {
	SessionStart(ctx context.Context, in *SessionStartInput) (*SessionStartOutput, error)
}

type SessionEndHandler interface {
	SessionEnd(ctx context.Context, in *SessionEndInput) (*SessionEndOutput, error)
}

// Contract binds a kind to its shapes and capability. Matcher marks
// the tool-scoped kinds whose generated config entries carry a
// matcher string.
type Contract struct {
	Kind        Kind
	Description string
	Matcher     bool

	handles func(impl any) bool
	run     func(ctx context.Context, impl any, raw []byte) (json.Marshaler, error)
}

// Run decodes raw into the kind's input shape (ignoring unknown
// fields), invokes impl through the kind's capability interface and
// returns the encodable output. ErrNotHandled if impl lacks the
// capability.
func (c Contract) Run(ctx context.Context, impl any, raw []byte) (json.Marshaler, error) {
	return c.run(ctx, impl, raw)
}

// Handles reports whether impl satisfies this kind's capability.
func (c Contract) Handles(impl any) bool {
	return c.handles(impl)
}

func is[H any](impl any) bool {
	_, ok := impl.(H)
	return ok
}

// runAs adapts one typed capability invocation into the uniform
// Contract.run shape. A nil output with a nil error encodes as the
// kind's zero output.
func runAs[I any, H any](call func(h H, ctx context.Context, in *I) (json.Marshaler, error)) func(context.Context, any, []byte) (json.Marshaler, error) {
	return func(ctx context.Context, impl any, raw []byte) (json.Marshaler, error) {
		h, ok := impl.(H)
		if !ok {
			return nil, ErrNotHandled
		}
		var in I
		if err := json.Unmarshal(raw, &in); err != nil {
			return nil, err
		}
		return call(h, ctx, &in)
	}
}

// catalog is ordered; that order is the canonical kind order used for
// listing, discovery and config generation.
var catalog = []Contract{
	{
		Kind:        PreToolUse,
		Description: "Before a tool call is processed",
		Matcher:     true,
		handles:     is[PreToolUseHandler],
		run: runAs(func(h PreToolUseHandler, ctx context.Context, in *PreToolUseInput) (json.Marshaler, error) {
			out, err := h.PreToolUse(ctx, in)
			if err != nil {
				return nil, err
			}
			if out == nil {
				out = &PreToolUseOutput{}
			}
			return out, nil
		}),
	},
	{
		Kind:        PermissionRequest,
		Description: "When the user is asked to approve a tool call",
		Matcher:     true,
		handles:     is[PermissionRequestHandler],
		run: runAs(func(h PermissionRequestHandler, ctx context.Context, in *PermissionRequestInput) (json.Marshaler, error) {
			out, err := h.PermissionRequest(ctx, in)
			if err != nil {
				return nil, err
			}
			if out == nil {
				out = &PermissionRequestOutput{}
			}
			return out, nil
		}),
	},
	{
		Kind:        PostToolUse,
		Description: "After a tool call completed",
		Matcher:     true,
		handles:     is[PostToolUseHandler],
		run: runAs(func(h PostToolUseHandler, ctx context.Context, in *PostToolUseInput) (json.Marshaler, error) {
			out, err := h.PostToolUse(ctx, in)
			if err != nil {
				return nil, err
			}
			if out == nil {
				out = &PostToolUseOutput{}
			}
			return out, nil
		}),
	},
	{
		Kind:        UserPromptSubmit,
		Description: "When the user submits a prompt",
		handles:     is[UserPromptSubmitHandler],
		run: runAs(func(h UserPromptSubmitHandler, ctx context.Context, in *UserPromptSubmitInput) (json.Marshaler, error) {
			out, err := h.UserPromptSubmit(ctx, in)
			if err != nil {
				return nil, err
			}
			if out == nil {
				out = &UserPromptSubmitOutput{}
			}
			return out, nil
		}),
	},
	{
		Kind:        Notification,
		Description: "When the host emits a notification",
		Matcher:     true,
		handles:     is[NotificationHandler],
		run: runAs(func(h NotificationHandler, ctx context.Context, in *NotificationInput) (json.Marshaler, error) {
			out, err := h.Notification(ctx, in)
			if err != nil {
				return nil, err
			}
			if out == nil {
				out = &NotificationOutput{}
			}
			return out, nil
		}),
	},
	{
		Kind:        Stop,
		Description: "When the main agent finishes responding",
		handles:     is[StopHandler],
		run: runAs(func(h StopHandler, ctx context.Context, in *StopInput) (json.Marshaler, error) {
			out, err := h.Stop(ctx, in)
			if err != nil {
				return nil, err
			}
			if out == nil {
				out = &StopOutput{}
			}
			return out, nil
		}),
	},
	{
		Kind:        SubagentStop,
		Description: "When a subagent finishes",
		handles:     is[SubagentStopHandler],
		run: runAs(func(h SubagentStopHandler, ctx context.Context, in *SubagentStopInput) (json.Marshaler, error) {
			out, err := h.SubagentStop(ctx, in)
			if err != nil {
				return nil, err
			}
			if out == nil {
				out = &SubagentStopOutput{}
			}
			return out, nil
		}),
	},
	{
		Kind:        PreCompact,
		Description: "Before the host compacts its context",
		Matcher:     true,
		handles:     is[PreCompactHandler],
		run: runAs(func(h PreCompactHandler, ctx context.Context, in *PreCompactInput) (json.Marshaler, error) {
			out, err := h.PreCompact(ctx, in)
			if err != nil {
				return nil, err
			}
			if out == nil {
				out = &PreCompactOutput{}
			}
			return out, nil
		}),
	},
	{
		Kind:        SessionStart,
		Description: "When a session starts or resumes",
		handles:     is[SessionStartHandler],
		run: runAs(func(h SessionStartHandler, ctx context.Context, in *SessionStartInput) (json.Marshaler, error) {
			out, err := h.SessionStart(ctx, in)
			if err != nil {
				return nil, err
			}
			if out == nil {
				out = &SessionStartOutput{}
			}
			return out, nil
		}),
	},
	{
		Kind:        SessionEnd,
		Description: "When a session terminates",
		handles:     is[SessionEndHandler],
		run: runAs(func(h SessionEndHandler, ctx context.Context, in *SessionEndInput) (json.Marshaler, error) {
			out, err := h.SessionEnd(ctx, in)
			if err != nil {
				return nil, err
			}
			if out == nil {
				out = &SessionEndOutput{}
			}
			return out, nil
		}),
	},
}

// Kinds returns every kind in catalog order.
func Kinds() []Kind {
	kinds := make([]Kind, len(catalog))
	for i, c := range catalog {
		kinds[i] = c.Kind
	}
	return kinds
}

// Lookup resolves a kind name to its contract. The name must match
// exactly; anything else is ErrUnknownKind, never a silent default.
func Lookup(name string) (Contract, error) {
	for _, c := range catalog {
		if c.Kind == Kind(name) {
			return c, nil
		}
	}
	return Contract{}, ErrUnknownKind
}

// KindsOf probes impl against every capability in catalog order and
// returns the kinds it can handle.
func KindsOf(impl any) []Kind {
	var kinds []Kind
	for _, c := range catalog {
		if c.handles(impl) {
			kinds = append(kinds, c.Kind)
		}
	}
	return kinds
}
