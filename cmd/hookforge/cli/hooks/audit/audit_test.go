package audit

import (
	"bufio"
	"context"
	"encoding/json"
	"os"
	"strings"
	"testing"

	"github.com/hookforge/cli/cmd/hookforge/cli/event"
	"github.com/hookforge/cli/cmd/hookforge/cli/paths"
)

func TestLogger_AppendsRecords(t *testing.T) {
	root := t.TempDir()
	t.Setenv(paths.ProjectDirEnv, root)

	logger := Logger{}
	inputs := []*event.PreToolUseInput{
		{
			Common:    event.Common{SessionID: "sess-1", CWD: root},
			ToolName:  "Bash",
			ToolInput: map[string]any{"command": "go test ./..."},
		},
		{
			Common:    event.Common{SessionID: "sess-1", CWD: root},
			ToolName:  "Read",
			ToolInput: map[string]any{"file_path": "main.go"},
		},
	}

	for _, in := range inputs {
		out, err := logger.PreToolUse(context.Background(), in)
		if err != nil {
			t.Fatalf("PreToolUse() error = %v", err)
		}
		if out.Decision != "" {
			t.Errorf("audit must never decide, got %q", out.Decision)
		}
	}

	f, err := os.Open(paths.AuditLog(root))
	if err != nil {
		t.Fatalf("audit log missing: %v", err)
	}
	defer f.Close()

	var records []Record
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		var r Record
		if err := json.Unmarshal(scanner.Bytes(), &r); err != nil {
			t.Fatalf("invalid JSONL line %q: %v", scanner.Text(), err)
		}
		records = append(records, r)
	}
	if len(records) != 2 {
		t.Fatalf("got %d records, want 2", len(records))
	}

	first := records[0]
	if first.ID == "" {
		t.Error("record id is empty")
	}
	if first.ID == records[1].ID {
		t.Error("record ids must be unique")
	}
	if first.SessionID != "sess-1" || first.Tool != "Bash" {
		t.Errorf("record = %+v, want session sess-1 tool Bash", first)
	}
	if first.Timestamp.IsZero() {
		t.Error("record timestamp is zero")
	}
	if got := first.ToolInput["command"]; got != "go test ./..." {
		t.Errorf("tool_input.command = %v, want original command", got)
	}
}

func TestLogger_MasksSecretsInInput(t *testing.T) {
	root := t.TempDir()
	t.Setenv(paths.ProjectDirEnv, root)

	secret := "x9KfQ2mWv8LpR4tZ7jNc3bYhG6dSaE1u"
	_, err := Logger{}.PreToolUse(context.Background(), &event.PreToolUseInput{
		Common:    event.Common{SessionID: "sess-2", CWD: root},
		ToolName:  "Bash",
		ToolInput: map[string]any{"command": "export TOKEN=" + secret},
	})
	if err != nil {
		t.Fatalf("PreToolUse() error = %v", err)
	}

	data, err := os.ReadFile(paths.AuditLog(root))
	if err != nil {
		t.Fatalf("audit log missing: %v", err)
	}
	if strings.Contains(string(data), secret) {
		t.Errorf("audit log leaked a secret: %s", data)
	}
	if !strings.Contains(string(data), "REDACTED") {
		t.Errorf("audit log should carry the redaction marker: %s", data)
	}
}

func TestLogger_UnwritableLogDoesNotFail(t *testing.T) {
	root := t.TempDir()
	t.Setenv(paths.ProjectDirEnv, root)

	// Occupy the hooks directory path with a file so MkdirAll fails.
	if err := os.MkdirAll(paths.ClaudeDir(root), 0o750); err != nil {
		t.Fatalf("MkdirAll() error = %v", err)
	}
	if err := os.WriteFile(paths.HooksDir(root), []byte("in the way"), 0o600); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}

	out, err := Logger{}.PreToolUse(context.Background(), &event.PreToolUseInput{
		Common:    event.Common{SessionID: "sess-3", CWD: root},
		ToolName:  "Bash",
		ToolInput: map[string]any{"command": "true"},
	})
	if err != nil {
		t.Fatalf("PreToolUse() must absorb log failures, got %v", err)
	}
	if out.Decision != "" {
		t.Errorf("Decision = %q, want allow", out.Decision)
	}
}
