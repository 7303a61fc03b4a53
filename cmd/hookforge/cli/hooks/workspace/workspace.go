// Package workspace injects a short project brief into fresh
// sessions: where the root is, which branch is checked out, and which
// well-known project files exist.
package workspace

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/hookforge/cli/cmd/hookforge/cli/event"
	"github.com/hookforge/cli/cmd/hookforge/cli/gitutil"
	"github.com/hookforge/cli/cmd/hookforge/cli/hook"
	"github.com/hookforge/cli/cmd/hookforge/cli/paths"
)

// markerFiles are the project files worth mentioning when present.
var markerFiles = []string{"CLAUDE.md", "go.mod", "package.json", "requirements.txt"}

// Brief describes the workspace at session start.
type Brief struct{}

func (Brief) SessionStart(_ context.Context, in *event.SessionStartInput) (*event.SessionStartOutput, error) {
	root := paths.ProjectRootFrom(in.CWD)

	var b strings.Builder
	fmt.Fprintf(&b, "Project root: %s\n", root)
	if branch, err := gitutil.CurrentBranch(root); err == nil {
		fmt.Fprintf(&b, "Git branch: %s\n", branch)
	}
	if markers := presentMarkers(root); len(markers) > 0 {
		fmt.Fprintf(&b, "Project files: %s\n", strings.Join(markers, ", "))
	}

	return &event.SessionStartOutput{AdditionalContext: b.String()}, nil
}

func presentMarkers(root string) []string {
	var present []string
	for _, name := range markerFiles {
		if _, err := os.Stat(filepath.Join(root, name)); err == nil {
			present = append(present, name)
		}
	}
	return present
}

// Unit exposes the brief as an extension unit.
func Unit() hook.Unit {
	return hook.Unit{
		Name: "builtin/workspace",
		Hooks: func() ([]hook.Candidate, error) {
			return []hook.Candidate{{
				Name:        "WorkspaceBrief",
				Description: "Injects project root, branch and marker files at session start",
				Impl:        Brief{},
			}}, nil
		},
	}
}
