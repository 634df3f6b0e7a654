// Package xec is a wrapper around os/exec
// that centralizes command execution.
//
// # Stderr handling
//
// [Cmd] treats stderr as follows:
//
//   - if the logger is at debug level or lower,
//     stderr for the command is written to the logger line-by-line
//     with the prefix "$name: " (e.g. "git rebase: ").
//   - otherwise, stderr is buffered
//     and surfaced in the error if the command fails.
//
// Use WithLogPrefix to change the prefix for log messages.
package xec

import (
	"bufio"
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"iter"
	"os"
	"os/exec"

	"go.abhg.dev/git-split-commit/internal/silog"
	"go.abhg.dev/io/ioutil"
)

var _osEnviron = os.Environ

// Cmd is an external command being prepared or run.
type Cmd struct {
	cmd     *exec.Cmd
	log     *silog.Logger
	prefix  string
	_execer Execer

	// Wraps an error with the captured stderr output.
	wrap func(error) error
}

// Command constructs a Cmd to execute a program with the given arguments.
//
// ctx controls the lifetime of the command,
// and log is used to log command output.
// If log is nil, stderr is always buffered for errors.
func Command(ctx context.Context, log *silog.Logger, name string, args ...string) *Cmd {
	if log == nil {
		log = silog.Nop()
	}

	c := &Cmd{
		cmd:     exec.CommandContext(ctx, name, args...),
		log:     log,
		prefix:  name,
		_execer: DefaultExecer,
	}
	c.cmd.Env = _osEnviron()
	c.cmd.Stderr, c.wrap = c.stderrWriter()
	return c
}

// WithExecer sets the Execer used to run the command.
// If nil, the DefaultExecer is used.
func (c *Cmd) WithExecer(execer Execer) *Cmd {
	c._execer = execer
	return c
}

func (c *Cmd) execer() Execer {
	if c._execer != nil {
		return c._execer
	}
	return DefaultExecer
}

// Run runs the command, blocking until it completes.
// It returns an error if the command exits with a non-zero code.
func (c *Cmd) Run() error {
	return c.wrap(c.execer().Run(c.cmd))
}

// Output runs the command and returns its stdout.
func (c *Cmd) Output() ([]byte, error) {
	out, err := c.execer().Output(c.cmd)
	return out, c.wrap(err)
}

// OutputChomp runs the command and returns its stdout
// with the trailing newline removed.
func (c *Cmd) OutputChomp() (string, error) {
	out, err := c.Output()
	out, _ = bytes.CutSuffix(out, []byte{'\n'})
	return string(out), err
}

// WithLogPrefix changes the prefix used for log messages from this command.
func (c *Cmd) WithLogPrefix(prefix string) *Cmd {
	c.prefix = prefix
	return c
}

// WithDir sets the working directory for the command.
func (c *Cmd) WithDir(dir string) *Cmd {
	c.cmd.Dir = dir
	return c
}

// AppendEnv appends KEY=VALUE pairs to the command's environment.
func (c *Cmd) AppendEnv(env ...string) *Cmd {
	c.cmd.Env = append(c.cmd.Env, env...)
	return c
}

// Lines runs the command and returns its stdout as a sequence of lines.
// See [Cmd.Scan] for details.
func (c *Cmd) Lines() iter.Seq2[[]byte, error] {
	return c.Scan(bufio.ScanLines)
}

// Scan runs the command and returns its stdout
// as a sequence of tokens split by the given split function.
//
// The byte slice is re-used between iterations.
// Callers must not retain it.
//
// If the iteration is stopped early, the command is killed.
// If the command exits with a non-zero code,
// the error is the final element of the sequence.
func (c *Cmd) Scan(split bufio.SplitFunc) iter.Seq2[[]byte, error] {
	return func(yield func([]byte, error) bool) {
		out, err := c.cmd.StdoutPipe()
		if err != nil {
			yield(nil, fmt.Errorf("pipe stdout: %w", err))
			return
		}

		if err := c.wrap(c.execer().Start(c.cmd)); err != nil {
			yield(nil, fmt.Errorf("start: %w", err))
			return
		}

		var finished bool
		defer func() {
			if !finished {
				_ = c.execer().Kill(c.cmd)
				_ = c.execer().Wait(c.cmd)
			}
		}()

		scanner := bufio.NewScanner(out)
		scanner.Split(split)
		for scanner.Scan() {
			if !yield(scanner.Bytes(), nil) {
				return
			}
		}

		if err := scanner.Err(); err != nil {
			yield(nil, fmt.Errorf("scan: %w", err))
			return
		}

		finished = true
		if err := c.wrap(c.execer().Wait(c.cmd)); err != nil {
			yield(nil, fmt.Errorf("wait: %w", err))
		}
	}
}

func (c *Cmd) stderrWriter() (io.Writer, func(error) error) {
	if c.log.Level() <= silog.LevelDebug {
		w, flush := ioutil.LineWriter(func(line []byte) {
			c.log.WithPrefix(c.prefix).Debug(string(line))
		})
		return w, func(err error) error {
			flush()
			return err
		}
	}

	var buf bytes.Buffer
	return &buf, func(err error) error {
		// err != nil guarantees that the command has exited,
		// so buf is no longer being written to.
		if err == nil {
			return nil
		}

		stderr := bytes.TrimSpace(buf.Bytes())
		if len(stderr) == 0 {
			return err
		}
		return errors.Join(err, fmt.Errorf("stderr:\n%s", stderr))
	}
}
