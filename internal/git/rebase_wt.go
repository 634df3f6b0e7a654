package git

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/buildkite/shellwords"
	"go.abhg.dev/git-split-commit/internal/must"
	"go.abhg.dev/git-split-commit/internal/osutil"
	"go.abhg.dev/git-split-commit/internal/xec"
)

// RebaseInterruptKind specifies the kind of rebase interruption.
type RebaseInterruptKind int

const (
	// RebaseInterruptConflict indicates that a rebase operation
	// was interrupted due to a conflict.
	RebaseInterruptConflict RebaseInterruptKind = iota

	// RebaseInterruptDeliberate indicates that a rebase operation
	// was interrupted deliberately by an instruction
	// in the rebase todo list (e.g. "edit" or "break").
	RebaseInterruptDeliberate
)

func (k RebaseInterruptKind) String() string {
	switch k {
	case RebaseInterruptConflict:
		return "conflict"
	case RebaseInterruptDeliberate:
		return "deliberate"
	default:
		return fmt.Sprintf("RebaseInterruptKind(%d)", int(k))
	}
}

// RebaseInterruptError indicates that a rebasing operation was interrupted.
// It includes the kind of interruption and the current rebase state.
type RebaseInterruptError struct {
	Kind  RebaseInterruptKind
	State *RebaseState // always non-nil

	// Err is non-nil only if the rebase operation failed
	// due to a conflict.
	Err error
}

func (e *RebaseInterruptError) Error() string {
	var msg strings.Builder
	msg.WriteString("rebase")
	if e.State != nil && e.State.Branch != "" {
		fmt.Fprintf(&msg, " of %s", e.State.Branch)
	}
	msg.WriteString(" interrupted")
	switch e.Kind {
	case RebaseInterruptConflict:
		msg.WriteString(" by a conflict")
	case RebaseInterruptDeliberate:
		msg.WriteString(" deliberately")
	}
	if e.Err != nil {
		fmt.Fprintf(&msg, ": %v", e.Err)
	}
	return msg.String()
}

func (e *RebaseInterruptError) Unwrap() error {
	return e.Err
}

// RebaseRequest is a request to rebase the current branch.
type RebaseRequest struct {
	// Upstream is the upstream commitish
	// from which the current branch started.
	//
	// Commits between Upstream and HEAD will be rebased.
	Upstream string // required

	// Interactive runs an interactive rebase.
	Interactive bool

	// Todo replaces the todo list that Git generates
	// for an interactive rebase.
	// Git's own list is discarded without being read.
	//
	// Requires Interactive.
	Todo string
}

// Rebase runs a git rebase operation with the specified parameters.
// It returns [RebaseInterruptError] for known rebase interruptions.
func (w *Worktree) Rebase(ctx context.Context, req RebaseRequest) error {
	must.NotBeBlankf(req.Upstream, "rebase upstream must be set")
	must.Bef(req.Todo == "" || req.Interactive, "rebase todo requires an interactive rebase")

	args := []string{
		// Never include advice on how to resolve merge conflicts.
		"-c", "advice.mergeConflict=false",
	}

	var env []string
	if req.Todo != "" {
		editor, cleanup, err := todoEditor(req.Todo)
		if err != nil {
			return fmt.Errorf("prepare rebase todo: %w", err)
		}
		defer cleanup()

		// GIT_SEQUENCE_EDITOR takes precedence over sequence.editor,
		// so set both.
		args = append(args, "-c", "sequence.editor="+editor)
		env = append(env, "GIT_SEQUENCE_EDITOR="+editor)
	}

	args = append(args, "rebase")
	if req.Interactive {
		args = append(args, "--interactive")
	}
	args = append(args, req.Upstream)

	w.log.Debug("Rebasing", "upstream", req.Upstream, "interactive", req.Interactive)
	if err := w.gitCmd(ctx, args...).AppendEnv(env...).Run(); err != nil {
		return w.handleRebaseError(ctx, err)
	}
	return w.handleRebaseFinish(ctx)
}

// todoEditor writes the todo list to a temporary file
// and returns a shell command that copies it over
// the file Git passes as its first argument.
func todoEditor(todo string) (editor string, cleanup func(), err error) {
	path, cleanup, err := osutil.WriteTempFile("rebase-todo-", []byte(todo))
	if err != nil {
		return "", nil, err
	}
	return "cp " + shellwords.QuotePosix(path), cleanup, nil
}

// RebaseContinue continues an ongoing rebase operation.
func (w *Worktree) RebaseContinue(ctx context.Context) error {
	// The commit message was settled before continuing.
	// Nothing should open an editor at this point.
	cmd := w.gitCmd(ctx, "rebase", "--continue").AppendEnv("GIT_EDITOR=true")
	if err := cmd.Run(); err != nil {
		return w.handleRebaseError(ctx, err)
	}
	return w.handleRebaseFinish(ctx)
}

func (w *Worktree) handleRebaseError(ctx context.Context, err error) error {
	originalErr := err
	if exitErr := new(xec.ExitError); !errors.As(err, &exitErr) {
		return fmt.Errorf("rebase: %w", err)
	}

	// If the rebase operation actually ran, but failed,
	// we might be in the middle of a rebase operation.
	state, err := w.RebaseState(ctx)
	if err != nil {
		w.log.Debug("Failed to read rebase state", "error", err)
		return fmt.Errorf("rebase: %w", originalErr)
	}

	return &RebaseInterruptError{
		Err:   originalErr,
		Kind:  RebaseInterruptConflict,
		State: state,
	}
}

func (w *Worktree) handleRebaseFinish(ctx context.Context) error {
	// Rebase state after a successful return
	// means that the rebase stopped on an instruction.
	if state, err := w.RebaseState(ctx); err == nil {
		return &RebaseInterruptError{
			Kind:  RebaseInterruptDeliberate,
			State: state,
		}
	}

	return nil
}

// RebaseBackend specifies the kind of rebase backend in use.
//
// See https://git-scm.com/docs/git-rebase#_behavioral_differences for details.
type RebaseBackend int

const (
	// RebaseBackendMerge refers to the "merge" backend.
	// It is the default backend used by Git.
	RebaseBackendMerge RebaseBackend = iota

	// RebaseBackendApply refers to the "apply" backend.
	// It is enabled with the --apply flag.
	RebaseBackendApply
)

func (b RebaseBackend) String() string {
	switch b {
	case RebaseBackendMerge:
		return "merge"
	case RebaseBackendApply:
		return "apply"
	default:
		return "unknown"
	}
}

// stateDir reports the directory inside the .git directory
// where rebase state is stored.
func (b RebaseBackend) stateDir() string {
	switch b {
	case RebaseBackendMerge:
		return "rebase-merge"
	case RebaseBackendApply:
		return "rebase-apply"
	default:
		must.Failf("unknown rebase backend: %v", b)
		return ""
	}
}

// RebaseState holds information about the current state of a rebase operation.
type RebaseState struct {
	// Branch is the branch being rebased.
	// It is empty if the rebase started from a detached HEAD.
	Branch string

	// Backend specifies which rebase backend is being used.
	Backend RebaseBackend
}

// ErrNoRebase indicates that a rebase is not in progress.
var ErrNoRebase = errors.New("no rebase in progress")

// RebaseState loads information about an ongoing rebase,
// or [ErrNoRebase] if no rebase is in progress.
func (w *Worktree) RebaseState(context.Context) (*RebaseState, error) {
	// Rebase state is stored inside .git/rebase-merge or .git/rebase-apply
	// depending on the backend in use.
	// head-name inside that directory holds the full ref name
	// of the branch being rebased, or "detached HEAD".
	// There's no porcelain command to get this information.
	for _, backend := range []RebaseBackend{RebaseBackendApply, RebaseBackendMerge} {
		stateDir := filepath.Join(w.gitDir, backend.stateDir())
		head, err := os.ReadFile(filepath.Join(stateDir, "head-name"))
		if err != nil {
			if errors.Is(err, os.ErrNotExist) {
				continue
			}
			return nil, fmt.Errorf("read %v head: %w", backend, err)
		}

		var branch string
		if ref := strings.TrimSpace(string(head)); strings.HasPrefix(ref, "refs/heads/") {
			branch = strings.TrimPrefix(ref, "refs/heads/")
		}

		return &RebaseState{
			Branch:  branch,
			Backend: backend,
		}, nil
	}

	return nil, ErrNoRebase
}
