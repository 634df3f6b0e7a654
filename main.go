// git-split-commit splits a commit into two consecutive commits.
//
// It asks which of the commit's file-level changes belong to the first
// commit, then rewrites history on a new branch so that the target
// commit is replaced by two commits and later commits are replayed on top.
// The current branch is left untouched.
package main

import (
	"context"
	"io"
	"os"
	"os/signal"

	"github.com/alecthomas/kong"
	"github.com/mattn/go-isatty"
	"go.abhg.dev/git-split-commit/internal/silog"
	"go.abhg.dev/git-split-commit/internal/ui"
)

// _buildView builds the view used to talk to the user.
// Tests replace it to drive prompts.
var _buildView = func(stdin io.Reader, stderr io.Writer, interactive bool) ui.View {
	if !interactive {
		return &ui.WriterView{Writer: stderr}
	}
	return &ui.TerminalView{In: stdin, Out: stderr}
}

func main() {
	logger := silog.New(os.Stderr, &silog.Options{
		Level: silog.LevelInfo,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	view := _buildView(os.Stdin, os.Stderr, isTerminal(os.Stdin) && isTerminal(os.Stderr))

	var cmd mainCmd
	parser, err := kong.New(&cmd,
		kong.Name("git-split-commit"),
		kong.Description("Split a commit into two consecutive commits on a new branch."),
		kong.Bind(logger),
		kong.BindTo(ctx, (*context.Context)(nil)),
		kong.BindTo(view, (*ui.View)(nil)),
		kong.Vars{
			"defaultBranch":  _defaultOutputBranch,
			"defaultMessage": _defaultMessage,
		},
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{Compact: true}),
	)
	if err != nil {
		panic(err)
	}

	kctx, err := parser.Parse(os.Args[1:])
	if err != nil {
		logger.Fatalf("git-split-commit: %v", err)
	}

	if err := kctx.Run(); err != nil {
		logger.Fatalf("git-split-commit: %v", err)
	}
}

func isTerminal(f *os.File) bool {
	fd := f.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

type mainCmd struct {
	// Flags with side effects whose values are never accessed directly.
	Verbose bool               `short:"v" aliases:"debug" help:"Enable verbose output" env:"GIT_SPLIT_COMMIT_VERBOSE"`
	Dir     kong.ChangeDirFlag `short:"C" placeholder:"DIR" help:"Change to DIR before doing anything"`
	Version versionFlag        `help:"Print version information and quit"`

	// splitCmd's Run is promoted to the root command.
	splitCmd
}

func (cmd *mainCmd) AfterApply(logger *silog.Logger) error {
	if cmd.Verbose {
		logger.SetLevel(silog.LevelDebug)
	}
	return nil
}
