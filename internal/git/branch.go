package git

import (
	"context"
	"errors"
	"fmt"
)

// ErrBranchExists indicates that a branch with the given name
// already exists.
var ErrBranchExists = errors.New("branch already exists")

// BranchExists reports whether a local branch with the given name exists.
func (r *Repository) BranchExists(ctx context.Context, branch string) bool {
	return r.gitCmd(ctx,
		"show-ref", "--verify", "--quiet", "refs/heads/"+branch,
	).Run() == nil
}

// CreateBranchRequest is a request to create a new branch.
type CreateBranchRequest struct {
	// Name is the name of the branch.
	Name string // required

	// Head is the commitish to start the branch from.
	// Defaults to the current HEAD.
	Head string
}

// CreateBranch creates a new branch in the repository.
// It returns [ErrBranchExists] if a branch with that name already exists.
func (r *Repository) CreateBranch(ctx context.Context, req CreateBranchRequest) error {
	if r.BranchExists(ctx, req.Name) {
		return fmt.Errorf("%v: %w", req.Name, ErrBranchExists)
	}

	args := []string{"branch", "--end-of-options", req.Name}
	if req.Head != "" {
		args = append(args, req.Head)
	}

	r.log.Debug("Creating branch", "name", req.Name, "head", req.Head)
	if err := r.gitCmd(ctx, args...).Run(); err != nil {
		return fmt.Errorf("git branch: %w", err)
	}
	return nil
}
