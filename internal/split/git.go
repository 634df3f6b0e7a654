package split

import (
	"context"
	"iter"

	"go.abhg.dev/git-split-commit/internal/git"
)

// GitRepository is the subset of [git.Repository] used by this package.
type GitRepository interface {
	Head(ctx context.Context) (git.Hash, error)
	ReadCommit(ctx context.Context, commitish string) (*git.CommitObject, error)
	DiffTree(ctx context.Context, from, to string) ([]git.FileStatus, error)
	ListCommits(ctx context.Context, crange git.CommitRange) iter.Seq2[git.Hash, error]
	CreateBranch(ctx context.Context, req git.CreateBranchRequest) error
}

var _ GitRepository = (*git.Repository)(nil)

// Index stages changes for the next commit.
type Index interface {
	Add(ctx context.Context, req git.AddRequest) error
	Remove(ctx context.Context, req git.RemoveRequest) error
}

// GitWorktree is the subset of [git.Worktree] used by this package.
type GitWorktree interface {
	Index

	Checkout(ctx context.Context, branch string) error
	Reset(ctx context.Context, commit string) error
	Commit(ctx context.Context, req git.CommitRequest) error
	Rebase(ctx context.Context, req git.RebaseRequest) error
	RebaseContinue(ctx context.Context) error
}

var _ GitWorktree = (*git.Worktree)(nil)
