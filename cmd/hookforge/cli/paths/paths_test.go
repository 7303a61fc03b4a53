package paths

import (
	"os"
	"path/filepath"
	"testing"
)

func TestProjectRootFrom_EnvOverride(t *testing.T) {
	t.Setenv(ProjectDirEnv, "/tmp/project-from-host")

	got := ProjectRootFrom("/somewhere/else")
	if got != "/tmp/project-from-host" {
		t.Errorf("ProjectRootFrom() = %q, want %q", got, "/tmp/project-from-host")
	}
}

func TestProjectRootFrom_GitWorktree(t *testing.T) {
	t.Setenv(ProjectDirEnv, "")

	root := t.TempDir()
	seedGitDir(t, root)
	nested := filepath.Join(root, "internal", "deep")
	if err := os.MkdirAll(nested, 0o755); err != nil {
		t.Fatalf("failed to create nested dir: %v", err)
	}

	got := ProjectRootFrom(nested)
	if resolved, err := filepath.EvalSymlinks(got); err == nil {
		got = resolved
	}
	want := root
	if resolved, err := filepath.EvalSymlinks(root); err == nil {
		want = resolved
	}
	if got != want {
		t.Errorf("ProjectRootFrom(%q) = %q, want worktree root %q", nested, got, want)
	}
}

func TestProjectRootFrom_FallsBackToDir(t *testing.T) {
	t.Setenv(ProjectDirEnv, "")

	dir := t.TempDir()
	got := ProjectRootFrom(dir)
	if got != dir {
		t.Errorf("ProjectRootFrom(%q) = %q, want the directory itself", dir, got)
	}
}

func TestDerivedPaths(t *testing.T) {
	root := filepath.Join("work", "project")

	tests := []struct {
		name string
		got  string
		want string
	}{
		{"claude dir", ClaudeDir(root), filepath.Join(root, ".claude")},
		{"settings file", SettingsFile(root), filepath.Join(root, ".claude", "settings.json")},
		{"hooks dir", HooksDir(root), filepath.Join(root, ".claude", "hooks")},
		{"audit log", AuditLog(root), filepath.Join(root, ".claude", "hooks", "audit.log")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.got != tt.want {
				t.Errorf("got %q, want %q", tt.got, tt.want)
			}
		})
	}
}

// seedGitDir lays down the minimal .git layout go-git needs to open a
// plain repository.
func seedGitDir(t *testing.T, root string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Join(root, ".git", "refs"), 0o755); err != nil {
		t.Fatalf("failed to seed .git: %v", err)
	}
	if err := os.MkdirAll(filepath.Join(root, ".git", "objects"), 0o755); err != nil {
		t.Fatalf("failed to seed .git/objects: %v", err)
	}
	files := map[string]string{
		"HEAD":   "ref: refs/heads/main\n",
		"config": "[core]\n\trepositoryformatversion = 0\n\tbare = false\n",
	}
	for name, content := range files {
		if err := os.WriteFile(filepath.Join(root, ".git", name), []byte(content), 0o644); err != nil {
			t.Fatalf("failed to seed .git/%s: %v", name, err)
		}
	}
}
