package split

import (
	"context"
	"errors"
	"fmt"

	"go.abhg.dev/git-split-commit/internal/git"
	"go.abhg.dev/git-split-commit/internal/silog"
)

var (
	// ErrCancelled indicates that the user cancelled the selection.
	ErrCancelled = errors.New("split cancelled")

	// ErrAborted indicates that the user declined to proceed
	// after reviewing the split.
	ErrAborted = errors.New("split aborted")

	// ErrEmptyFirst indicates that nothing was selected
	// for the first commit.
	ErrEmptyFirst = errors.New("must select at least one change for the first commit")

	// ErrEmptySecond indicates that everything was selected
	// for the first commit.
	ErrEmptySecond = errors.New("must leave at least one change for the second commit")
)

// Partition is the result of dividing a commit's changes
// between the two commits that will replace it.
type Partition struct {
	// Target is the commit being split.
	Target *git.CommitObject

	// First holds the changes that go into the first commit.
	// It is never empty.
	First ChangeSet

	// Second holds the remaining changes.
	// It is never empty.
	Second ChangeSet
}

// Split divides changes into the changes at the selected indexes
// and the remaining changes.
// Both sides keep the order of changes.
//
// It returns [ErrEmptyFirst] or [ErrEmptySecond]
// if either side would be empty.
func Split(changes []Change, selected []int) (first, second ChangeSet, err error) {
	picked := make([]bool, len(changes))
	for _, idx := range selected {
		if idx < 0 || idx >= len(changes) {
			return nil, nil, fmt.Errorf("selection %d out of range [0, %d)", idx, len(changes))
		}
		if picked[idx] {
			return nil, nil, fmt.Errorf("selection %d repeated", idx)
		}
		picked[idx] = true
	}

	for i, c := range changes {
		if picked[i] {
			first = append(first, c)
		} else {
			second = append(second, c)
		}
	}

	switch {
	case len(first) == 0:
		return nil, nil, ErrEmptyFirst
	case len(second) == 0:
		return nil, nil, ErrEmptySecond
	}
	return first, second, nil
}

// Selector picks the changes that go into the first commit.
type Selector interface {
	// Select returns the indexes of the chosen changes.
	//
	// It returns [ErrCancelled] if the user backs out.
	Select(ctx context.Context, changes []Change) ([]int, error)
}

// Partitioner computes the [Partition] of a commit.
type Partitioner struct {
	Repo     GitRepository // required
	Selector Selector      // required by Divide
	Log      *silog.Logger
}

// Candidate is a commit that can be split, along with its changes.
type Candidate struct {
	Commit  *git.CommitObject
	Changes []Change
}

// Compute reads the changes introduced by the target commit
// and asks the selector to divide them.
// It is [Partitioner.Resolve] followed by [Partitioner.Divide].
func (p *Partitioner) Compute(ctx context.Context, target string) (*Partition, error) {
	cand, err := p.Resolve(ctx, target)
	if err != nil {
		return nil, err
	}
	return p.Divide(ctx, cand)
}

// Resolve reads the target commit and the changes it introduces.
//
// The target must have exactly one parent
// and introduce at least two changes.
// Resolve does not use the selector,
// so commits that cannot be split are reported
// before the user is asked anything.
func (p *Partitioner) Resolve(ctx context.Context, target string) (*Candidate, error) {
	commit, err := p.Repo.ReadCommit(ctx, target)
	if err != nil {
		return nil, fmt.Errorf("read commit %v: %w", target, err)
	}

	switch len(commit.Parents) {
	case 0:
		return nil, fmt.Errorf("%v: cannot split a root commit", commit.Hash.Short())
	case 1:
		// ok
	default:
		return nil, fmt.Errorf("%v: cannot split a merge commit", commit.Hash.Short())
	}

	changes, err := ListChanges(ctx, p.Repo, commit)
	if err != nil {
		return nil, err
	}
	p.log().Debug("Listed changes", "commit", commit.Hash, "count", len(changes))

	if len(changes) < 2 {
		return nil, fmt.Errorf("%v: commit has %d change(s), need at least 2 to split",
			commit.Hash.Short(), len(changes))
	}

	return &Candidate{Commit: commit, Changes: changes}, nil
}

// Divide asks the selector which of the candidate's changes
// go into the first commit.
// Nothing in the repository is modified.
func (p *Partitioner) Divide(ctx context.Context, cand *Candidate) (*Partition, error) {
	selected, err := p.Selector.Select(ctx, cand.Changes)
	if err != nil {
		return nil, err
	}

	first, second, err := Split(cand.Changes, selected)
	if err != nil {
		return nil, err
	}

	return &Partition{
		Target: cand.Commit,
		First:  first,
		Second: second,
	}, nil
}

func (p *Partitioner) log() *silog.Logger {
	if p.Log == nil {
		return silog.Nop()
	}
	return p.Log
}

// ListChanges lists the file-level changes
// that a single-parent commit introduces over its parent.
func ListChanges(ctx context.Context, repo GitRepository, commit *git.CommitObject) ([]Change, error) {
	if len(commit.Parents) != 1 {
		return nil, fmt.Errorf("%v: expected one parent, got %d", commit.Hash.Short(), len(commit.Parents))
	}

	statuses, err := repo.DiffTree(ctx, commit.Parents[0].String(), commit.Hash.String())
	if err != nil {
		return nil, fmt.Errorf("diff %v: %w", commit.Hash.Short(), err)
	}

	changes := make([]Change, 0, len(statuses))
	for _, st := range statuses {
		c, err := changeFromStatus(st)
		if err != nil {
			return nil, err
		}
		changes = append(changes, c)
	}
	return changes, nil
}
