package split

import (
	"context"
	"fmt"
	"strings"

	"go.abhg.dev/git-split-commit/internal/git"
)

// Action is a rebase todo list command.
type Action string

const (
	// ActionEdit applies a commit and stops for amending.
	ActionEdit Action = "edit"

	// ActionPick applies a commit.
	ActionPick Action = "pick"
)

// Instruction is a single line of a rebase todo list.
type Instruction struct {
	Action Action
	Commit git.Hash
}

func (i Instruction) String() string {
	return string(i.Action) + " " + i.Commit.String()
}

// Script is a rebase todo list that stops at a target commit
// and replays its descendants unchanged.
type Script struct {
	// Upstream is the commit the rebase starts from:
	// the parent of the target.
	Upstream git.Hash

	// Instructions is an edit for the target
	// followed by a pick for each descendant, oldest first.
	Instructions []Instruction
}

// String renders the script in the format git expects,
// one newline-terminated instruction per line.
func (s *Script) String() string {
	var sb strings.Builder
	for _, inst := range s.Instructions {
		sb.WriteString(inst.String())
		sb.WriteByte('\n')
	}
	return sb.String()
}

// BuildScript builds a rebase script that stops at target
// and picks every commit in target..HEAD in chronological order.
//
// target must be a single-parent ancestor of HEAD,
// and there must be no merge commits between it and HEAD.
func BuildScript(ctx context.Context, repo GitRepository, target *git.CommitObject) (*Script, error) {
	if len(target.Parents) != 1 {
		return nil, fmt.Errorf("%v: expected one parent, got %d", target.Hash.Short(), len(target.Parents))
	}

	head, err := repo.Head(ctx)
	if err != nil {
		return nil, fmt.Errorf("resolve HEAD: %w", err)
	}

	if head != target.Hash {
		if err := checkAncestor(ctx, repo, target.Hash, head); err != nil {
			return nil, err
		}
	}

	descendants := git.CommitRangeFrom(head).ExcludeFrom(target.Hash)
	for merge, err := range repo.ListCommits(ctx, descendants.MergesOnly().Limit(1)) {
		if err != nil {
			return nil, fmt.Errorf("list merge commits: %w", err)
		}
		return nil, fmt.Errorf("%v: cannot replay merge commit after %v", merge.Short(), target.Hash.Short())
	}

	script := &Script{
		Upstream: target.Parents[0],
		Instructions: []Instruction{
			{Action: ActionEdit, Commit: target.Hash},
		},
	}
	for hash, err := range repo.ListCommits(ctx, descendants.TopoOrder().Reverse()) {
		if err != nil {
			return nil, fmt.Errorf("list descendants: %w", err)
		}
		script.Instructions = append(script.Instructions, Instruction{
			Action: ActionPick,
			Commit: hash,
		})
	}

	return script, nil
}

// checkAncestor verifies that ancestor is reachable from head.
func checkAncestor(ctx context.Context, repo GitRepository, ancestor, head git.Hash) error {
	// ancestor is reachable from head
	// iff excluding head from ancestor leaves nothing.
	for _, err := range repo.ListCommits(ctx, git.CommitRangeFrom(ancestor).ExcludeFrom(head).Limit(1)) {
		if err != nil {
			return fmt.Errorf("check ancestry: %w", err)
		}
		return fmt.Errorf("%v: not an ancestor of HEAD", ancestor.Short())
	}
	return nil
}
