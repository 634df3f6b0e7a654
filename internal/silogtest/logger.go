// Package silogtest provides a logger for tests.
package silogtest

import (
	"io"

	"go.abhg.dev/git-split-commit/internal/silog"
)

// T is the subset of testing.TB used by New.
type T interface {
	Helper()
	Output() io.Writer
}

// New builds a debug-level logger that writes to the test's output.
func New(t T) *silog.Logger {
	t.Helper()

	return silog.New(t.Output(), &silog.Options{
		Level: silog.LevelDebug,
	})
}
