package gitutil

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing/object"
)

// initRepo creates a repository with one commit on a named branch and
// returns its root.
func initRepo(t *testing.T) string {
	t.Helper()
	root := t.TempDir()

	repo, err := git.PlainInit(root, false)
	if err != nil {
		t.Fatalf("PlainInit() error = %v", err)
	}
	wt, err := repo.Worktree()
	if err != nil {
		t.Fatalf("Worktree() error = %v", err)
	}
	if err := os.WriteFile(filepath.Join(root, "README.md"), []byte("hello\n"), 0o644); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}
	if _, err := wt.Add("README.md"); err != nil {
		t.Fatalf("Add() error = %v", err)
	}
	_, err = wt.Commit("initial commit", &git.CommitOptions{
		Author: &object.Signature{Name: "test", Email: "test@example.com", When: time.Now()},
	})
	if err != nil {
		t.Fatalf("Commit() error = %v", err)
	}
	return root
}

func TestWorktreeRoot(t *testing.T) {
	root := initRepo(t)
	nested := filepath.Join(root, "pkg", "inner")
	if err := os.MkdirAll(nested, 0o755); err != nil {
		t.Fatalf("MkdirAll() error = %v", err)
	}

	got, err := WorktreeRoot(nested)
	if err != nil {
		t.Fatalf("WorktreeRoot() error = %v", err)
	}

	want := root
	if resolved, err := filepath.EvalSymlinks(root); err == nil {
		want = resolved
	}
	if resolved, err := filepath.EvalSymlinks(got); err == nil {
		got = resolved
	}
	if got != want {
		t.Errorf("WorktreeRoot() = %q, want %q", got, want)
	}
}

func TestWorktreeRoot_NotARepository(t *testing.T) {
	_, err := WorktreeRoot(t.TempDir())
	if !errors.Is(err, ErrNotRepository) {
		t.Errorf("WorktreeRoot() error = %v, want ErrNotRepository", err)
	}
}

func TestCurrentBranch(t *testing.T) {
	root := initRepo(t)

	branch, err := CurrentBranch(root)
	if err != nil {
		t.Fatalf("CurrentBranch() error = %v", err)
	}
	// go-git initializes HEAD at master.
	if branch != "master" {
		t.Errorf("CurrentBranch() = %q, want %q", branch, "master")
	}
}

func TestCurrentBranch_NotARepository(t *testing.T) {
	_, err := CurrentBranch(t.TempDir())
	if !errors.Is(err, ErrNotRepository) {
		t.Errorf("CurrentBranch() error = %v, want ErrNotRepository", err)
	}
}
