package git

import (
	"context"
	"fmt"
)

// HasTrackedChanges reports whether the worktree or index
// has uncommitted changes to tracked files.
// Untracked files are ignored.
func (w *Worktree) HasTrackedChanges(ctx context.Context) (bool, error) {
	cmd := w.gitCmd(ctx, "status", "--porcelain", "-z", "--untracked-files=no")
	for _, err := range cmd.Scan(splitNullByte) {
		if err != nil {
			return false, fmt.Errorf("git status: %w", err)
		}
		return true, nil
	}
	return false, nil
}
