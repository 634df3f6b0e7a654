package git

import (
	"context"
	"fmt"
	"iter"
	"strconv"
)

// CommitRange is a range of commits to list.
// Build one with [CommitRangeFrom].
type CommitRange struct {
	start   Hash
	exclude []Hash
	limit   int

	reverse bool
	topo    bool
	merges  bool
}

// CommitRangeFrom starts a range of commits
// reachable from the given commit.
func CommitRangeFrom(start Hash) CommitRange {
	return CommitRange{start: start}
}

// ExcludeFrom excludes commits reachable from the given commit.
// CommitRangeFrom(b).ExcludeFrom(a) is equivalent to "a..b".
func (r CommitRange) ExcludeFrom(h Hash) CommitRange {
	r.exclude = append(r.exclude[:len(r.exclude):len(r.exclude)], h)
	return r
}

// Limit caps the number of commits listed.
// Zero means no limit.
func (r CommitRange) Limit(n int) CommitRange {
	r.limit = n
	return r
}

// Reverse lists commits oldest first.
func (r CommitRange) Reverse() CommitRange {
	r.reverse = true
	return r
}

// TopoOrder lists parents only after all their children.
func (r CommitRange) TopoOrder() CommitRange {
	r.topo = true
	return r
}

// MergesOnly lists only commits with more than one parent.
func (r CommitRange) MergesOnly() CommitRange {
	r.merges = true
	return r
}

func (r CommitRange) args() []string {
	args := []string{"rev-list"}
	if r.limit > 0 {
		args = append(args, "--max-count="+strconv.Itoa(r.limit))
	}
	if r.topo {
		args = append(args, "--topo-order")
	}
	if r.reverse {
		args = append(args, "--reverse")
	}
	if r.merges {
		args = append(args, "--merges")
	}
	args = append(args, r.start.String())
	for _, h := range r.exclude {
		args = append(args, "^"+h.String())
	}
	return args
}

// ListCommits lists the hashes of commits in the given range.
func (r *Repository) ListCommits(ctx context.Context, crange CommitRange) iter.Seq2[Hash, error] {
	return func(yield func(Hash, error) bool) {
		for line, err := range r.gitCmd(ctx, crange.args()...).Lines() {
			if err != nil {
				yield("", fmt.Errorf("rev-list: %w", err))
				return
			}

			if !yield(Hash(line), nil) {
				return
			}
		}
	}
}
