package git

import (
	"context"

	"go.abhg.dev/git-split-commit/internal/silog"
	"go.abhg.dev/git-split-commit/internal/xec"
)

// Worktree is a checkout of a Git repository at a specific path.
// Operations that require a working tree (e.g. branch checkout, rebase, etc.)
// are only available on the worktree.
type Worktree struct {
	gitDir  string // absolute path to wt's .git directory
	rootDir string // absolute path to the root directory of the worktree

	log  *silog.Logger
	exec execer
}

// OpenWorktree opens a worktree of this repository at the given directory.
func (r *Repository) OpenWorktree(ctx context.Context, dir string) (*Worktree, error) {
	rootDir, gitDir, err := showToplevel(ctx, r.log, r.exec, dir)
	if err != nil {
		return nil, err
	}

	return &Worktree{
		gitDir:  gitDir,
		rootDir: rootDir,
		log:     r.log,
		exec:    r.exec,
	}, nil
}

func (w *Worktree) gitCmd(ctx context.Context, args ...string) *xec.Cmd {
	return newGitCmd(ctx, w.log, w.exec, args...).WithDir(w.rootDir)
}

// RootDir returns the absolute path to the root directory of the worktree.
func (w *Worktree) RootDir() string {
	return w.rootDir
}
