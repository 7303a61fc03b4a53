package list

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/hookforge/cli/cmd/hookforge/cli/dispatch"
	"github.com/hookforge/cli/cmd/hookforge/cli/event"
	"github.com/hookforge/cli/cmd/hookforge/cli/hook"
	"github.com/hookforge/cli/cmd/hookforge/cli/settings"
)

// Inspect renders the detail block for a hook node.
func Inspect(node *Node) string {
	d := node.Hook
	if d == nil {
		return ""
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Name:        %s\n", d.Name)
	fmt.Fprintf(&b, "Event kind:  %s\n", d.Kind)
	if d.Description != "" {
		fmt.Fprintf(&b, "Description: %s\n", d.Description)
	}
	if contract, err := event.Lookup(string(d.Kind)); err == nil && contract.Matcher {
		fmt.Fprintf(&b, "Matcher:     %s\n", d.Matcher)
	}
	fmt.Fprintf(&b, "Timeout:     %s\n", d.Timeout)
	fmt.Fprintf(&b, "Unit:        %s\n", d.Unit)
	fmt.Fprintf(&b, "Command:     %s\n", settings.ManagedCommand(d.Name))
	return b.String()
}

// SampleRun dispatches a synthetic event of the hook's kind and
// returns the encoded response, so a hook can be exercised without
// leaving the browser.
func SampleRun(ctx context.Context, reg *hook.Registry, node *Node) *Result {
	d := node.Hook
	if d == nil {
		return nil
	}

	payload, err := json.Marshal(samplePayload(d.Kind))
	if err != nil {
		return &Result{HookName: d.Name, Err: err}
	}

	encoded, err := dispatch.Run(ctx, reg, d.Name, payload)
	if err != nil {
		return &Result{HookName: d.Name, Err: err}
	}

	return &Result{
		HookName: d.Name,
		Output:   fmt.Sprintf("%s responded: %s", d.Name, encoded),
	}
}

// samplePayload builds a minimal, harmless event of the given kind.
func samplePayload(kind event.Kind) map[string]any {
	cwd, err := os.Getwd()
	if err != nil {
		cwd = "."
	}
	payload := map[string]any{
		"session_id":      "sample-session",
		"transcript_path": "",
		"cwd":             cwd,
		"permission_mode": "default",
		"hook_event_name": string(kind),
	}

	switch kind {
	case event.PreToolUse, event.PermissionRequest:
		payload["tool_name"] = string(event.ToolBash)
		payload["tool_input"] = map[string]any{"command": "echo sample"}
	case event.PostToolUse:
		payload["tool_name"] = string(event.ToolBash)
		payload["tool_input"] = map[string]any{"command": "echo sample"}
		payload["tool_response"] = map[string]any{"output": "sample"}
	case event.UserPromptSubmit:
		payload["prompt"] = "sample prompt"
	case event.Notification:
		payload["message"] = "sample notification"
		payload["notification_type"] = "info"
	case event.Stop, event.SubagentStop:
		payload["stop_hook_active"] = false
	case event.PreCompact:
		payload["trigger"] = "manual"
		payload["custom_instructions"] = ""
	case event.SessionStart:
		payload["source"] = "startup"
	case event.SessionEnd:
		payload["reason"] = "other"
	}

	return payload
}
