// Package paths resolves where hookforge keeps its files relative to
// the project the host is running in.
package paths

import (
	"os"
	"path/filepath"

	"github.com/hookforge/cli/cmd/hookforge/cli/gitutil"
)

const (
	// ClaudeDirName is the host's per-project configuration directory.
	ClaudeDirName = ".claude"
	// SettingsFileName is the declarative configuration document the
	// merger keeps in sync.
	SettingsFileName = "settings.json"
	// HooksDirName holds hook runtime files (the audit log, the
	// installed binary) under the claude directory.
	HooksDirName = "hooks"
	// AuditLogFileName is the JSONL tool-call audit trail.
	AuditLogFileName = "audit.log"

	// ProjectDirEnv is set by the host when it invokes a hook; it
	// always wins over detection.
	ProjectDirEnv = "CLAUDE_PROJECT_DIR"
)

// ProjectRoot resolves the project root for the current process:
// $CLAUDE_PROJECT_DIR when set, otherwise the enclosing git worktree
// root, otherwise the working directory itself.
func ProjectRoot() (string, error) {
	cwd, err := os.Getwd()
	if err != nil {
		return "", err
	}
	return ProjectRootFrom(cwd), nil
}

// ProjectRootFrom resolves the project root for dir. Tests use it to
// pin the root without touching the process environment.
func ProjectRootFrom(dir string) string {
	if env := os.Getenv(ProjectDirEnv); env != "" {
		return env
	}
	if root, err := gitutil.WorktreeRoot(dir); err == nil {
		return root
	}
	return dir
}

// ClaudeDir returns the host configuration directory under root.
func ClaudeDir(root string) string {
	return filepath.Join(root, ClaudeDirName)
}

// SettingsFile returns the settings document path under root.
func SettingsFile(root string) string {
	return filepath.Join(ClaudeDir(root), SettingsFileName)
}

// HooksDir returns the hook runtime directory under root.
func HooksDir(root string) string {
	return filepath.Join(ClaudeDir(root), HooksDirName)
}

// AuditLog returns the tool-call audit log path under root.
func AuditLog(root string) string {
	return filepath.Join(HooksDir(root), AuditLogFileName)
}
