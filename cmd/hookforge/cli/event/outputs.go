package event

import "encoding/json"

// Decision is a hook's verdict on a pending tool call.
type Decision string

const (
	Allow Decision = "allow"
	Deny  Decision = "deny"
	Ask   Decision = "ask"
)

// Base carries the response fields shared by every hook output. The
// host applies defaults for everything that is omitted, so the wire
// encoding only carries deviations: "continue" appears only when
// explicitly false, "suppressOutput" only when true, "systemMessage"
// only when set.
type Base struct {
	// Continue, when pointing at false, tells the host to stop
	// processing after this hook. Nil (or true) is omitted.
	Continue       *bool
	SuppressOutput bool
	SystemMessage  string
}

func (b Base) payload() map[string]any {
	m := map[string]any{}
	if b.Continue != nil && !*b.Continue {
		m["continue"] = false
	}
	if b.SuppressOutput {
		m["suppressOutput"] = true
	}
	if b.SystemMessage != "" {
		m["systemMessage"] = b.SystemMessage
	}
	return m
}

// MarshalJSON encodes the shared fields. Output types with
// kind-specific fields shadow this with their own encoder.
func (b Base) MarshalJSON() ([]byte, error) {
	return json.Marshal(b.payload())
}

// PreToolUseOutput decides whether a tool call may proceed.
type PreToolUseOutput struct {
	Base
	// Decision defaults to Allow when left empty.
	Decision Decision
	Reason   string
	// UpdatedInput optionally rewrites the tool parameters.
	UpdatedInput map[string]any
}

func (o *PreToolUseOutput) MarshalJSON() ([]byte, error) {
	decision := o.Decision
	if decision == "" {
		decision = Allow
	}
	specific := map[string]any{
		"hookEventName":            string(PreToolUse),
		"permissionDecision":       string(decision),
		"permissionDecisionReason": o.Reason,
	}
	if o.UpdatedInput != nil {
		specific["updatedInput"] = o.UpdatedInput
	}
	m := o.payload()
	m["hookSpecificOutput"] = specific
	return json.Marshal(m)
}

// PermissionRequestOutput answers an interactive permission prompt on
// the user's behalf.
type PermissionRequestOutput struct {
	Base
	// Behavior is Allow or Deny; empty means Allow.
	Behavior  Decision
	Message   string
	Interrupt bool
	// UpdatedInput optionally rewrites the tool parameters.
	UpdatedInput map[string]any
}

func (o *PermissionRequestOutput) MarshalJSON() ([]byte, error) {
	behavior := o.Behavior
	if behavior == "" {
		behavior = Allow
	}
	decision := map[string]any{"behavior": string(behavior)}
	if o.Message != "" {
		decision["message"] = o.Message
	}
	if o.Interrupt {
		decision["interrupt"] = true
	}
	if o.UpdatedInput != nil {
		decision["updatedInput"] = o.UpdatedInput
	}
	m := o.payload()
	m["hookSpecificOutput"] = map[string]any{
		"hookEventName": string(PermissionRequest),
		"decision":      decision,
	}
	return json.Marshal(m)
}

// PostToolUseOutput reacts to a completed tool call. Block asks the
// host to discard the result and show Reason to the model.
type PostToolUseOutput struct {
	Base
	Block             bool
	Reason            string
	AdditionalContext string
}

func (o *PostToolUseOutput) MarshalJSON() ([]byte, error) {
	return json.Marshal(blockingPayload(o.Base, PostToolUse, o.Block, o.Reason, o.AdditionalContext))
}

// UserPromptSubmitOutput reacts to a submitted prompt. Block prevents
// the prompt from reaching the model; AdditionalContext is injected
// alongside it.
type UserPromptSubmitOutput struct {
	Base
	Block             bool
	Reason            string
	AdditionalContext string
}

func (o *UserPromptSubmitOutput) MarshalJSON() ([]byte, error) {
	return json.Marshal(blockingPayload(o.Base, UserPromptSubmit, o.Block, o.Reason, o.AdditionalContext))
}

// NotificationOutput carries no kind-specific fields.
type NotificationOutput struct {
	Base
}

// StopOutput can force the agent to keep going: Block with a Reason
// telling it what is left to do.
type StopOutput struct {
	Base
	Block  bool
	Reason string
}

func (o *StopOutput) MarshalJSON() ([]byte, error) {
	return json.Marshal(blockingPayload(o.Base, Stop, o.Block, o.Reason, ""))
}

// SubagentStopOutput mirrors StopOutput for subagents.
type SubagentStopOutput struct {
	Base
	Block  bool
	Reason string
}

func (o *SubagentStopOutput) MarshalJSON() ([]byte, error) {
	return json.Marshal(blockingPayload(o.Base, SubagentStop, o.Block, o.Reason, ""))
}

// PreCompactOutput carries no kind-specific fields.
type PreCompactOutput struct {
	Base
}

// SessionStartOutput injects AdditionalContext into the fresh session.
type SessionStartOutput struct {
	Base
	AdditionalContext string
}

func (o *SessionStartOutput) MarshalJSON() ([]byte, error) {
	m := o.payload()
	if o.AdditionalContext != "" {
		m["hookSpecificOutput"] = map[string]any{
			"hookEventName":     string(SessionStart),
			"additionalContext": o.AdditionalContext,
		}
	}
	return json.Marshal(m)
}

// SessionEndOutput carries no kind-specific fields.
type SessionEndOutput struct {
	Base
}

// blockingPayload builds the shared encoding for kinds that signal a
// top-level block decision and, for the tool and prompt kinds, an
// additionalContext wrapper.
func blockingPayload(base Base, kind Kind, block bool, reason, additionalContext string) map[string]any {
	m := base.payload()
	if block {
		m["decision"] = "block"
		if reason != "" {
			m["reason"] = reason
		}
	}
	if additionalContext != "" {
		m["hookSpecificOutput"] = map[string]any{
			"hookEventName":     string(kind),
			"additionalContext": additionalContext,
		}
	}
	return m
}
