package git

import (
	"context"
	"fmt"
)

// AddRequest is a request to add files to the index.
type AddRequest struct {
	// Paths are the files to add.
	// They are matched literally, not as glob patterns.
	Paths []string // required

	// All makes the index match the working tree for Paths,
	// staging removals as well as additions and modifications.
	All bool
}

// Add stages the given paths in the index.
func (w *Worktree) Add(ctx context.Context, req AddRequest) error {
	args := []string{"--literal-pathspecs", "add"}
	if req.All {
		args = append(args, "--all")
	}
	args = append(args, "--")
	args = append(args, req.Paths...)

	w.log.Debug("Staging paths", "paths", req.Paths)
	if err := w.gitCmd(ctx, args...).Run(); err != nil {
		return fmt.Errorf("git add: %w", err)
	}
	return nil
}

// RemoveRequest is a request to remove files from the index.
type RemoveRequest struct {
	// Paths are the files to remove.
	// They are matched literally, not as glob patterns.
	Paths []string // required

	// Cached removes the paths from the index only,
	// leaving the working tree alone.
	Cached bool
}

// Remove stages the removal of the given paths.
func (w *Worktree) Remove(ctx context.Context, req RemoveRequest) error {
	args := []string{"--literal-pathspecs", "rm", "--quiet"}
	if req.Cached {
		args = append(args, "--cached")
	}
	args = append(args, "--")
	args = append(args, req.Paths...)

	w.log.Debug("Removing paths", "paths", req.Paths, "cached", req.Cached)
	if err := w.gitCmd(ctx, args...).Run(); err != nil {
		return fmt.Errorf("git rm: %w", err)
	}
	return nil
}
