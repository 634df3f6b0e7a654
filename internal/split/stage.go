package split

import (
	"context"
	"fmt"

	"go.abhg.dev/git-split-commit/internal/git"
	"go.abhg.dev/git-split-commit/internal/must"
)

// Stage records a single change in the index
// from the contents of the working tree.
func Stage(ctx context.Context, idx Index, c Change) error {
	var err error
	switch c.Kind {
	case Added:
		err = idx.Add(ctx, git.AddRequest{Paths: []string{c.Path}})

	case Deleted:
		err = idx.Remove(ctx, git.RemoveRequest{
			Paths:  []string{c.Path},
			Cached: true,
		})

	case Modified:
		// --all stages the removal of a rename's old path
		// alongside the new one.
		paths := []string{c.Path}
		if c.OldPath != "" {
			paths = append(paths, c.OldPath)
		}
		err = idx.Add(ctx, git.AddRequest{Paths: paths, All: true})

	default:
		must.Failf("unknown change kind: %v", c.Kind)
	}

	if err != nil {
		return fmt.Errorf("stage %v: %w", c, err)
	}
	return nil
}

// StageAll stages every change in the set, in order.
func StageAll(ctx context.Context, idx Index, cs ChangeSet) error {
	for _, c := range cs {
		if err := Stage(ctx, idx, c); err != nil {
			return err
		}
	}
	return nil
}
