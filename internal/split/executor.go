package split

import (
	"cmp"
	"context"
	"errors"
	"fmt"

	"go.abhg.dev/git-split-commit/internal/git"
	"go.abhg.dev/git-split-commit/internal/must"
	"go.abhg.dev/git-split-commit/internal/silog"
)

// DefaultSecondMessage is the default message of the second commit.
const DefaultSecondMessage = "Split from previous commit"

// State is a step of the [Executor].
// States are reached in the order they are declared.
type State int

const (
	// NotStarted means nothing has been modified.
	NotStarted State = iota

	// BranchCreated means the output branch exists and is checked out.
	BranchCreated

	// RewriteStarted means the rebase has stopped at the target commit.
	RewriteStarted

	// TargetIsolated means HEAD is at the target's parent
	// with the target's changes left in the working tree.
	TargetIsolated

	// FirstCommitted means the first commit was created.
	FirstCommitted

	// SecondCommitted means the second commit was created.
	SecondCommitted

	// RewriteResumed means the rebase replayed the remaining commits.
	RewriteResumed

	// Done means the split is complete.
	Done

	// Failed means a step failed.
	// The repository is left as the failed step left it.
	Failed
)

func (s State) String() string {
	switch s {
	case NotStarted:
		return "not started"
	case BranchCreated:
		return "branch created"
	case RewriteStarted:
		return "rewrite started"
	case TargetIsolated:
		return "target isolated"
	case FirstCommitted:
		return "first commit created"
	case SecondCommitted:
		return "second commit created"
	case RewriteResumed:
		return "rewrite resumed"
	case Done:
		return "done"
	case Failed:
		return "failed"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// ExecuteError is returned when the [Executor] fails partway.
type ExecuteError struct {
	// State is the last state that was reached successfully.
	State State

	// Branch is the output branch.
	Branch string

	Err error
}

func (e *ExecuteError) Error() string {
	msg := fmt.Sprintf("split failed after %v: %v", e.State, e.Err)
	switch {
	case e.State >= RewriteStarted:
		msg += fmt.Sprintf("\nA rebase of %v is in progress. "+
			"Inspect it with 'git status' or undo it with 'git rebase --abort'.", e.Branch)
	case e.State >= BranchCreated:
		msg += fmt.Sprintf("\nBranch %v was created and checked out.", e.Branch)
	}
	return msg
}

func (e *ExecuteError) Unwrap() error {
	return e.Err
}

// Executor performs a split on a new branch.
type Executor struct {
	Repo     GitRepository // required
	Worktree GitWorktree   // required
	Log      *silog.Logger
}

// ExecuteRequest is a request to split a commit.
type ExecuteRequest struct {
	// Branch is the branch to create at HEAD.
	// It must not already exist.
	Branch string // required

	// Partition is the split to perform.
	Partition *Partition // required

	// SecondMessage is the message of the second commit.
	// Defaults to [DefaultSecondMessage].
	SecondMessage string

	// NoVerify skips commit hooks.
	NoVerify bool

	// Script is the rebase script to use.
	// If unset, it's built with [BuildScript].
	Script *Script
}

// ExecuteResult is the outcome of a successful split.
type ExecuteResult struct {
	Branch string

	// First and Second are the two new commits.
	First, Second git.Hash

	// Replayed is the number of descendants replayed on top.
	Replayed int
}

// Execute runs the split.
//
// Once started, it ignores context cancellation.
// On failure it returns an [*ExecuteError];
// nothing is rolled back.
func (e *Executor) Execute(ctx context.Context, req *ExecuteRequest) (*ExecuteResult, error) {
	must.NotBeBlankf(req.Branch, "output branch must be set")
	must.Bef(req.Partition != nil, "partition must be set")
	must.NotBeEmptyf(req.Partition.First, "first change set must not be empty")
	must.NotBeEmptyf(req.Partition.Second, "second change set must not be empty")

	ctx = context.WithoutCancel(ctx)
	log := e.Log
	if log == nil {
		log = silog.Nop()
	}

	target := req.Partition.Target
	script := req.Script
	if script == nil {
		var err error
		script, err = BuildScript(ctx, e.Repo, target)
		if err != nil {
			return nil, &ExecuteError{State: NotStarted, Branch: req.Branch, Err: err}
		}
	}

	run := executeRun{
		Executor: e,
		log:      log,
		req:      req,
		message:  cmp.Or(req.SecondMessage, DefaultSecondMessage),
		target:   target,
		script:   script,
		state:    NotStarted,
	}
	res, err := run.run(ctx)
	if err != nil {
		log.Debug("Split failed", "state", run.state, "error", err)
		return nil, &ExecuteError{State: run.state, Branch: req.Branch, Err: err}
	}
	return res, nil
}

// executeRun holds the state of a single Execute call.
type executeRun struct {
	*Executor

	log     *silog.Logger
	req     *ExecuteRequest
	message string // second commit message
	target  *git.CommitObject
	script  *Script
	state   State
}

func (r *executeRun) advance(s State) {
	r.log.Debug("Split state", "from", r.state, "to", s)
	r.state = s
}

func (r *executeRun) run(ctx context.Context) (*ExecuteResult, error) {
	head, err := r.Repo.Head(ctx)
	if err != nil {
		return nil, fmt.Errorf("resolve HEAD: %w", err)
	}

	if err := r.Repo.CreateBranch(ctx, git.CreateBranchRequest{
		Name: r.req.Branch,
		Head: head.String(),
	}); err != nil {
		return nil, fmt.Errorf("create branch: %w", err)
	}
	if err := r.Worktree.Checkout(ctx, r.req.Branch); err != nil {
		return nil, fmt.Errorf("checkout %v: %w", r.req.Branch, err)
	}
	r.advance(BranchCreated)

	if err := r.startRewrite(ctx); err != nil {
		return nil, err
	}
	r.advance(RewriteStarted)

	parent := r.target.Parents[0]
	if err := r.Worktree.Reset(ctx, parent.String()); err != nil {
		return nil, fmt.Errorf("reset to %v: %w", parent.Short(), err)
	}
	r.advance(TargetIsolated)

	first, err := r.commit(ctx, r.req.Partition.First, git.CommitRequest{
		ReuseMessage: r.target.Hash.String(),
		NoVerify:     r.req.NoVerify,
	})
	if err != nil {
		return nil, fmt.Errorf("first commit: %w", err)
	}
	r.advance(FirstCommitted)

	second, err := r.commit(ctx, r.req.Partition.Second, git.CommitRequest{
		Message:  r.message,
		NoVerify: r.req.NoVerify,
	})
	if err != nil {
		return nil, fmt.Errorf("second commit: %w", err)
	}
	r.advance(SecondCommitted)

	if err := r.Worktree.RebaseContinue(ctx); err != nil {
		return nil, fmt.Errorf("replay later commits: %w", err)
	}
	r.advance(RewriteResumed)

	r.log.Info("Split commit",
		"commit", r.target.Hash, "first", first, "second", second)
	r.advance(Done)

	return &ExecuteResult{
		Branch:   r.req.Branch,
		First:    first,
		Second:   second,
		Replayed: len(r.script.Instructions) - 1,
	}, nil
}

// startRewrite starts the rebase and verifies that it stopped
// at the target commit.
func (r *executeRun) startRewrite(ctx context.Context) error {
	err := r.Worktree.Rebase(ctx, git.RebaseRequest{
		Upstream:    r.script.Upstream.String(),
		Interactive: true,
		Todo:        r.script.String(),
	})
	if err == nil {
		return fmt.Errorf("rebase finished without stopping at %v", r.target.Hash.Short())
	}

	var interrupt *git.RebaseInterruptError
	if !errors.As(err, &interrupt) || interrupt.Kind != git.RebaseInterruptDeliberate {
		return fmt.Errorf("start rebase: %w", err)
	}

	head, err := r.Repo.Head(ctx)
	if err != nil {
		return fmt.Errorf("resolve HEAD: %w", err)
	}
	if head != r.target.Hash {
		return fmt.Errorf("rebase stopped at %v, want %v", head.Short(), r.target.Hash.Short())
	}
	return nil
}

func (r *executeRun) commit(ctx context.Context, cs ChangeSet, req git.CommitRequest) (git.Hash, error) {
	if err := StageAll(ctx, r.Worktree, cs); err != nil {
		return "", err
	}
	if err := r.Worktree.Commit(ctx, req); err != nil {
		return "", err
	}

	head, err := r.Repo.Head(ctx)
	if err != nil {
		return "", fmt.Errorf("resolve HEAD: %w", err)
	}
	return head, nil
}
