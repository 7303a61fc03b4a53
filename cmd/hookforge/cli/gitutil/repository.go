// Package gitutil wraps the go-git lookups hookforge needs: locating
// the enclosing worktree and describing where HEAD points. Hooks run
// inside arbitrary user projects, so every helper tolerates "not a
// repository" as an ordinary outcome.
package gitutil

import (
	"errors"
	"fmt"

	"github.com/go-git/go-git/v5"
)

// ErrNotRepository marks a directory with no enclosing git worktree.
var ErrNotRepository = errors.New("not inside a git repository")

// openFrom opens the repository enclosing dir, walking up through
// parent directories the way git itself does.
func openFrom(dir string) (*git.Repository, error) {
	repo, err := git.PlainOpenWithOptions(dir, &git.PlainOpenOptions{
		DetectDotGit:          true,
		EnableDotGitCommonDir: true,
	})
	if errors.Is(err, git.ErrRepositoryNotExists) {
		return nil, fmt.Errorf("%w: %s", ErrNotRepository, dir)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to open repository at %s: %w", dir, err)
	}
	return repo, nil
}

// WorktreeRoot returns the root of the worktree enclosing dir, or
// ErrNotRepository when dir is outside any repository.
func WorktreeRoot(dir string) (string, error) {
	repo, err := openFrom(dir)
	if err != nil {
		return "", err
	}
	wt, err := repo.Worktree()
	if err != nil {
		return "", fmt.Errorf("failed to resolve worktree: %w", err)
	}
	return wt.Filesystem.Root(), nil
}

// CurrentBranch returns the short branch name HEAD points at in the
// repository enclosing dir. A detached HEAD reports the abbreviated
// commit hash instead; outside a repository it is ErrNotRepository.
func CurrentBranch(dir string) (string, error) {
	repo, err := openFrom(dir)
	if err != nil {
		return "", err
	}
	head, err := repo.Head()
	if err != nil {
		return "", fmt.Errorf("failed to resolve HEAD: %w", err)
	}
	if head.Name().IsBranch() {
		return head.Name().Short(), nil
	}
	return head.Hash().String()[:8], nil
}
