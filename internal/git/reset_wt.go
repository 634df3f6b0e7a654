package git

import (
	"context"
	"fmt"
)

// Reset moves HEAD and the index to the given commit,
// leaving the working tree unchanged.
// This is a mixed reset.
func (w *Worktree) Reset(ctx context.Context, commit string) error {
	w.log.Debug("Resetting worktree", "commit", commit)
	if err := w.gitCmd(ctx, "reset", "--quiet", "--mixed", commit, "--").Run(); err != nil {
		return fmt.Errorf("git reset: %w", err)
	}
	return nil
}
