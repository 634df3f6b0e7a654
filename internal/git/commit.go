package git

import (
	"context"
	"fmt"
	"strings"
)

// CommitObject holds the metadata of a commit.
type CommitObject struct {
	// Hash is the full hash of the commit.
	Hash Hash

	// Tree is the tree recorded by the commit.
	Tree Hash

	// Parents lists the commit's parents in order.
	// It is empty for a root commit
	// and has more than one element for a merge commit.
	Parents []Hash

	// Message is the full commit message.
	Message string
}

// Subject returns the first line of the commit message.
func (c *CommitObject) Subject() string {
	subject, _, _ := strings.Cut(strings.TrimSpace(c.Message), "\n")
	return subject
}

// ReadCommit reads the metadata of the given commit-ish.
// It returns [ErrNotExist] if the commit does not exist.
func (r *Repository) ReadCommit(ctx context.Context, commitish string) (*CommitObject, error) {
	hash, err := r.PeelToCommit(ctx, commitish)
	if err != nil {
		return nil, err
	}

	out, err := r.gitCmd(ctx,
		"log", "-1",
		"--no-show-signature",
		"--format=%H%x00%T%x00%P%x00%B",
		hash.String(),
	).Output()
	if err != nil {
		return nil, fmt.Errorf("git log: %w", err)
	}

	fields := strings.SplitN(string(out), "\x00", 4)
	if len(fields) != 4 {
		return nil, fmt.Errorf("unexpected git log output: %q", out)
	}

	var parents []Hash
	for p := range strings.FieldsSeq(fields[2]) {
		parents = append(parents, Hash(p))
	}

	return &CommitObject{
		Hash:    Hash(fields[0]),
		Tree:    Hash(fields[1]),
		Parents: parents,
		Message: strings.TrimRight(fields[3], "\n"),
	}, nil
}
