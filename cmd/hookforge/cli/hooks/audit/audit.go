// Package audit keeps a JSONL trail of every tool call the host
// announces. It observes only: the hook never blocks a call, and a
// log that cannot be written is reported, not fatal.
package audit

import (
	"context"
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"github.com/hookforge/cli/cmd/hookforge/cli/event"
	"github.com/hookforge/cli/cmd/hookforge/cli/hook"
	"github.com/hookforge/cli/cmd/hookforge/cli/logging"
	"github.com/hookforge/cli/cmd/hookforge/cli/paths"
	"github.com/hookforge/cli/redact"
)

// Record is one audit log line.
type Record struct {
	ID        string         `json:"id"`
	Timestamp time.Time      `json:"timestamp"`
	SessionID string         `json:"session_id"`
	Tool      string         `json:"tool_name"`
	ToolInput map[string]any `json:"tool_input,omitempty"`
}

// Logger appends one record per PreToolUse event to the project's
// audit log.
type Logger struct{}

func (Logger) PreToolUse(ctx context.Context, in *event.PreToolUseInput) (*event.PreToolUseOutput, error) {
	record := Record{
		ID:        uuid.NewString(),
		Timestamp: time.Now().UTC(),
		SessionID: in.SessionID,
		Tool:      in.ToolName,
		ToolInput: in.ToolInput,
	}
	if err := appendRecord(paths.ProjectRootFrom(in.CWD), record); err != nil {
		// An unwritable log must not stall the host's tool call.
		logging.Warn(logging.WithComponent(ctx, "audit"), "failed to append audit record",
			slog.String("error", err.Error()),
		)
	}
	return &event.PreToolUseOutput{}, nil
}

// appendRecord encodes the record, masks any secrets the tool input
// carries, and appends the line to the audit log, creating the hooks
// directory on first use.
func appendRecord(root string, record Record) error {
	line, err := json.Marshal(record)
	if err != nil {
		return err
	}
	line, err = redact.JSONLBytes(line)
	if err != nil {
		return err
	}

	path := paths.AuditLog(root)
	if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
		return err
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600) //nolint:gosec // path derives from the project root
	if err != nil {
		return err
	}
	defer f.Close() //nolint:errcheck // append already flushed or failed below

	_, err = f.Write(append(line, '\n'))
	return err
}

// Unit exposes the audit logger as an extension unit.
func Unit() hook.Unit {
	return hook.Unit{
		Name: "builtin/audit",
		Hooks: func() ([]hook.Candidate, error) {
			return []hook.Candidate{{
				Name:        "ToolAudit",
				Description: "Appends a JSONL record per tool call to .claude/hooks/audit.log",
				Impl:        Logger{},
				Matcher:     string(event.ToolAll),
			}}, nil
		},
	}
}
