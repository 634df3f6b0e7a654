package git

import (
	"context"
	"errors"
	"fmt"
)

// CommitRequest is a request to commit changes.
// It relies on the 'git commit' command.
type CommitRequest struct {
	// Message is the commit message.
	Message string

	// ReuseMessage uses the commit message and authorship
	// of the given commitish.
	//
	// Exactly one of Message and ReuseMessage must be set.
	ReuseMessage string

	// NoVerify bypasses the pre-commit and commit-msg hooks.
	NoVerify bool
}

// Commit runs the 'git commit' command with the staged changes.
func (w *Worktree) Commit(ctx context.Context, req CommitRequest) error {
	if (req.Message == "") == (req.ReuseMessage == "") {
		return errors.New("exactly one of Message or ReuseMessage must be set")
	}

	args := []string{"commit", "--quiet"}
	if req.Message != "" {
		args = append(args, "-m", req.Message)
	}
	if req.ReuseMessage != "" {
		args = append(args, "-C", req.ReuseMessage)
	}
	if req.NoVerify {
		args = append(args, "--no-verify")
	}

	if err := w.gitCmd(ctx, args...).Run(); err != nil {
		return fmt.Errorf("commit: %w", err)
	}
	return nil
}
