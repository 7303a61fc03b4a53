package workspace

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/hookforge/cli/cmd/hookforge/cli/event"
	"github.com/hookforge/cli/cmd/hookforge/cli/paths"
)

func TestBrief_MentionsRootAndMarkers(t *testing.T) {
	root := t.TempDir()
	t.Setenv(paths.ProjectDirEnv, root)

	for _, name := range []string{"go.mod", "CLAUDE.md"} {
		if err := os.WriteFile(filepath.Join(root, name), []byte("x\n"), 0o644); err != nil {
			t.Fatalf("WriteFile(%s) error = %v", name, err)
		}
	}

	out, err := Brief{}.SessionStart(context.Background(), &event.SessionStartInput{
		Common: event.Common{CWD: root},
		Source: "startup",
	})
	if err != nil {
		t.Fatalf("SessionStart() error = %v", err)
	}

	ctx := out.AdditionalContext
	if !strings.Contains(ctx, root) {
		t.Errorf("context %q should name the root %q", ctx, root)
	}
	if !strings.Contains(ctx, "go.mod") || !strings.Contains(ctx, "CLAUDE.md") {
		t.Errorf("context %q should list present marker files", ctx)
	}
	if strings.Contains(ctx, "package.json") {
		t.Errorf("context %q lists a file that does not exist", ctx)
	}
}

func TestBrief_NoGitRepoStillBriefs(t *testing.T) {
	root := t.TempDir()
	t.Setenv(paths.ProjectDirEnv, root)

	out, err := Brief{}.SessionStart(context.Background(), &event.SessionStartInput{
		Common: event.Common{CWD: root},
	})
	if err != nil {
		t.Fatalf("SessionStart() error = %v", err)
	}
	if out.AdditionalContext == "" {
		t.Error("brief must not be empty outside a repository")
	}
	if strings.Contains(out.AdditionalContext, "Git branch:") {
		t.Errorf("context %q should omit the branch line outside a repository", out.AdditionalContext)
	}
}

func TestUnit(t *testing.T) {
	candidates, err := Unit().Hooks()
	if err != nil {
		t.Fatalf("Hooks() error = %v", err)
	}
	if len(candidates) != 1 {
		t.Fatalf("got %d candidates, want 1", len(candidates))
	}
	kinds := event.KindsOf(candidates[0].Impl)
	if len(kinds) != 1 || kinds[0] != event.SessionStart {
		t.Errorf("KindsOf() = %v, want [SessionStart]", kinds)
	}
}
