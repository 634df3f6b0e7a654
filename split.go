package main

import (
	"context"
	"errors"
	"fmt"

	"github.com/dustin/go-humanize/english"
	"go.abhg.dev/git-split-commit/internal/git"
	"go.abhg.dev/git-split-commit/internal/silog"
	"go.abhg.dev/git-split-commit/internal/split"
	"go.abhg.dev/git-split-commit/internal/text"
	"go.abhg.dev/git-split-commit/internal/ui"
)

const (
	_defaultOutputBranch = "split-commit-tmp"
	_defaultMessage      = split.DefaultSecondMessage
)

type splitCmd struct {
	OutputBranch string   `short:"b" placeholder:"NAME" help:"Branch to create for the split. Prompted for if unset (default: ${defaultBranch})"`
	Message      string   `short:"m" placeholder:"MSG" help:"Message for the second commit. Prompted for if unset (default: ${defaultMessage})"`
	Select       []string `placeholder:"PATH" help:"Paths to put in the first commit instead of choosing from a list"`
	Yes          bool     `short:"y" help:"Split without asking for confirmation"`
	NoVerify     bool     `help:"Bypass pre-commit and commit-msg hooks"`

	Commit string `arg:"" help:"Commit to split"`
}

func (*splitCmd) Help() string {
	return text.Dedent(`
		Splits a commit into two consecutive commits.
		The first commit gets the selected changes and the original message.
		The second gets the remaining changes.

		History is rewritten on a new branch created at HEAD,
		so the current branch is not changed.
		Commits after the split commit are replayed on top.

		Use --select to choose the first commit's files without a prompt,
		and --yes to skip the confirmation.
	`)
}

func (cmd *splitCmd) Run(ctx context.Context, log *silog.Logger, view ui.View) error {
	repo, err := git.Open(ctx, ".", git.OpenOptions{Log: log})
	if err != nil {
		return fmt.Errorf("open repository: %w", err)
	}

	wt, err := repo.OpenWorktree(ctx, ".")
	if err != nil {
		return fmt.Errorf("open worktree: %w", err)
	}

	if err := checkWorktree(ctx, wt); err != nil {
		return err
	}

	var selector split.Selector = &split.ChecklistSelector{View: view}
	if len(cmd.Select) > 0 {
		selector = &split.PathSelector{Paths: cmd.Select}
	}
	partitioner := split.Partitioner{
		Repo:     repo,
		Selector: selector,
		Log:      log,
	}

	// Reject commits and histories that cannot be split
	// before asking anything.
	cand, err := partitioner.Resolve(ctx, cmd.Commit)
	if err != nil {
		return err
	}
	script, err := split.BuildScript(ctx, repo, cand.Commit)
	if err != nil {
		return err
	}

	branch, err := cmd.outputBranch(ctx, repo, view)
	if err != nil {
		return err
	}

	part, err := partitioner.Divide(ctx, cand)
	if err != nil {
		return err
	}

	message, err := cmd.secondMessage(view)
	if err != nil {
		return err
	}

	ok, err := split.Review(view, part, &split.ReviewOptions{
		SecondMessage: message,
		Yes:           cmd.Yes,
	})
	if err != nil {
		return err
	}
	if !ok {
		return split.ErrAborted
	}

	executor := split.Executor{
		Repo:     repo,
		Worktree: wt,
		Log:      log,
	}
	res, err := executor.Execute(ctx, &split.ExecuteRequest{
		Branch:        branch,
		Partition:     part,
		SecondMessage: message,
		NoVerify:      cmd.NoVerify,
		Script:        script,
	})
	if err != nil {
		return err
	}

	log.Infof("%v: split %v into %v and %v",
		res.Branch, part.Target.Hash.Short(), res.First.Short(), res.Second.Short())
	if res.Replayed > 0 {
		log.Infof("%v: replayed %v", res.Branch, english.Plural(res.Replayed, "commit", ""))
	}
	return nil
}

// checkWorktree verifies that the worktree is in a state
// where a rebase can start.
func checkWorktree(ctx context.Context, wt *git.Worktree) error {
	if state, err := wt.RebaseState(ctx); err == nil {
		msg := "a rebase is already in progress"
		if state.Branch != "" {
			msg += " on " + state.Branch
		}
		return errors.New(msg)
	} else if !errors.Is(err, git.ErrNoRebase) {
		return fmt.Errorf("check rebase state: %w", err)
	}

	dirty, err := wt.HasTrackedChanges(ctx)
	if err != nil {
		return fmt.Errorf("check worktree: %w", err)
	}
	if dirty {
		return errors.New("worktree has uncommitted changes: commit or stash them first")
	}
	return nil
}

// outputBranch returns the name of the branch to create,
// prompting for it if necessary.
// The branch must not already exist.
func (cmd *splitCmd) outputBranch(ctx context.Context, repo *git.Repository, view ui.View) (string, error) {
	branch := cmd.OutputBranch
	if branch == "" {
		branch = _defaultOutputBranch
		if ui.Interactive(view) {
			field := ui.NewInput().
				WithTitle("Output branch").
				WithDescription("Branch to create for the split commits").
				WithValue(&branch).
				WithValidate(func(name string) error {
					if name == "" {
						return errors.New("branch name is required")
					}
					if repo.BranchExists(ctx, name) {
						return fmt.Errorf("%v: %w", name, git.ErrBranchExists)
					}
					return nil
				})
			if err := ui.Run(view, field); err != nil {
				return "", fmt.Errorf("prompt for branch: %w", err)
			}
		}
	}

	if repo.BranchExists(ctx, branch) {
		return "", fmt.Errorf("%v: %w", branch, git.ErrBranchExists)
	}
	return branch, nil
}

// secondMessage returns the message for the second commit,
// prompting for it if necessary.
func (cmd *splitCmd) secondMessage(view ui.View) (string, error) {
	if cmd.Message != "" {
		return cmd.Message, nil
	}

	msg := _defaultMessage
	if !ui.Interactive(view) {
		return msg, nil
	}

	field := ui.NewInput().
		WithTitle("Second commit message").
		WithValue(&msg).
		WithValidate(func(s string) error {
			if s == "" {
				return errors.New("message is required")
			}
			return nil
		})
	if err := ui.Run(view, field); err != nil {
		return "", fmt.Errorf("prompt for message: %w", err)
	}
	return msg, nil
}
