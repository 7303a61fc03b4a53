package event

// Common holds the fields the host sends with every hook event,
// regardless of kind.
type Common struct {
	SessionID      string `json:"session_id"`
	TranscriptPath string `json:"transcript_path"`
	CWD            string `json:"cwd"`
	PermissionMode string `json:"permission_mode"`
	HookEventName  string `json:"hook_event_name"`
}

// PreToolUseInput is delivered before a tool call is processed.
type PreToolUseInput struct {
	Common
	ToolName  string         `json:"tool_name"`
	ToolInput map[string]any `json:"tool_input"`
	ToolUseID string         `json:"tool_use_id"`
}

// PermissionRequestInput is delivered when the host asks the user to
// approve a tool call.
type PermissionRequestInput struct {
	Common
	ToolName  string         `json:"tool_name"`
	ToolInput map[string]any `json:"tool_input"`
}

// PostToolUseInput is delivered after a tool call completed.
type PostToolUseInput struct {
	Common
	ToolName     string         `json:"tool_name"`
	ToolInput    map[string]any `json:"tool_input"`
	ToolResponse map[string]any `json:"tool_response"`
	ToolUseID    string         `json:"tool_use_id"`
}

// UserPromptSubmitInput is delivered when the user submits a prompt,
// before the model sees it.
type UserPromptSubmitInput struct {
	Common
	Prompt string `json:"prompt"`
}

// NotificationInput is delivered when the host emits a notification.
type NotificationInput struct {
	Common
	Message          string `json:"message"`
	NotificationType string `json:"notification_type"`
}

// StopInput is delivered when the main agent finishes responding.
// StopHookActive is true when the response was already continued by a
// previous stop hook, which guards against blocking loops.
type StopInput struct {
	Common
	StopHookActive bool `json:"stop_hook_active"`
}

// SubagentStopInput is delivered when a subagent finishes.
type SubagentStopInput struct {
	Common
	StopHookActive bool `json:"stop_hook_active"`
}

// PreCompactInput is delivered before the host compacts its context.
// Trigger is "manual" or "auto".
type PreCompactInput struct {
	Common
	Trigger            string `json:"trigger"`
	CustomInstructions string `json:"custom_instructions"`
}

// SessionStartInput is delivered when a session starts or resumes.
// Source is one of "startup", "resume", "clear" or "compact".
type SessionStartInput struct {
	Common
	Source string `json:"source"`
}

// SessionEndInput is delivered when a session terminates.
// Reason is one of "clear", "logout", "prompt_input_exit" or "other".
type SessionEndInput struct {
	Common
	Reason string `json:"reason"`
}
