// Package git provides access to the Git CLI with a Git library-like
// interface.
//
// All shell-to-Git interactions should be done through this package.
package git

import (
	"context"
	"strings"

	"go.abhg.dev/git-split-commit/internal/silog"
	"go.abhg.dev/git-split-commit/internal/xec"
)

// execer controls actual execution of Git commands.
// It provides a single place to hook into for testing.
type execer = xec.Execer

var _realExec = xec.DefaultExecer

// newGitCmd builds a new Git command with the given arguments.
// The first argument is the Git subcommand to run.
//
// If the logger is at Debug level or lower,
// stderr of the command will be written to the logger.
// Otherwise, it will be captured and surfaced in the error
// if the command fails.
func newGitCmd(ctx context.Context, log *silog.Logger, exec execer, args ...string) *xec.Cmd {
	return xec.Command(ctx, log, "git", args...).
		WithExecer(exec).
		WithLogPrefix(logPrefix(args))
}

// logPrefix names the Git subcommand in args,
// skipping over leading "-c key=value" pairs.
func logPrefix(args []string) string {
	for _, arg := range args {
		if strings.HasPrefix(arg, "-") || strings.Contains(arg, "=") {
			continue
		}
		return "git " + arg
	}
	return "git"
}
