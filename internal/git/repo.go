package git

import (
	"context"
	"fmt"
	"strings"

	"go.abhg.dev/git-split-commit/internal/silog"
	"go.abhg.dev/git-split-commit/internal/xec"
)

// OpenOptions configures the behavior of Open.
type OpenOptions struct {
	// Log specifies the logger to use for messages.
	Log *silog.Logger

	exec execer
}

// Open opens the repository at the given directory.
// If dir is empty, the current working directory is used.
func Open(ctx context.Context, dir string, opts OpenOptions) (*Repository, error) {
	if opts.exec == nil {
		opts.exec = _realExec
	}
	if opts.Log == nil {
		opts.Log = silog.Nop()
	}

	root, gitDir, err := showToplevel(ctx, opts.Log, opts.exec, dir)
	if err != nil {
		return nil, err
	}

	return &Repository{
		root:   root,
		gitDir: gitDir,
		log:    opts.Log,
		exec:   opts.exec,
	}, nil
}

func showToplevel(ctx context.Context, log *silog.Logger, exec execer, dir string) (root, gitDir string, err error) {
	out, err := newGitCmd(ctx, log, exec,
		"rev-parse",
		"--show-toplevel",
		"--absolute-git-dir",
	).WithDir(dir).OutputChomp()
	if err != nil {
		return "", "", fmt.Errorf("not a git repository: %w", err)
	}

	root, gitDir, ok := strings.Cut(out, "\n")
	if !ok {
		return "", "", fmt.Errorf("unexpected output from git rev-parse: %q", out)
	}
	return root, gitDir, nil
}

// Repository is a handle to a Git repository.
// It provides read-write access to the repository's contents.
type Repository struct {
	root   string
	gitDir string

	log  *silog.Logger
	exec execer
}

// gitCmd returns a command that will run
// with the repository's root as the working directory.
func (r *Repository) gitCmd(ctx context.Context, args ...string) *xec.Cmd {
	return newGitCmd(ctx, r.log, r.exec, args...).WithDir(r.root)
}

// RootDir returns the absolute path to the root of the repository.
func (r *Repository) RootDir() string {
	return r.root
}
