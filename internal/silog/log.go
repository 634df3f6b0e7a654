// Package silog implements a leveled logger for CLI usage.
// It wraps log/slog with a [go.abhg.dev/log/silog.Handler] and adds
// printf-style methods and a fatal level that stops the program.
package silog

import (
	"cmp"
	"context"
	"fmt"
	"io"
	"log/slog"
	"maps"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
	"go.abhg.dev/git-split-commit/internal/must"
	silogh "go.abhg.dev/log/silog"
)

// Options defines options for the logger.
type Options struct {
	// Level is the minimum log level to log.
	// The default is LevelInfo.
	Level Level

	// OnFatal is called after a fatal message is logged.
	// It must stop control flow.
	//
	// If unset, the program exits with status 1.
	OnFatal func() // optional

	// Style is the style to render messages with.
	// If unset, it is picked based on whether
	// the output is a terminal.
	Style *silogh.Style // optional
}

// Logger provides structured and printf-style logging.
type Logger struct {
	sl      *slog.Logger   // required
	lvl     *slog.LevelVar // required
	onFatal func()         // required
}

// Nop returns a logger that discards all messages.
func Nop() *Logger {
	return New(io.Discard, nil)
}

// New builds a logger that writes to w.
func New(w io.Writer, opts *Options) *Logger {
	opts = cmp.Or(opts, &Options{Level: LevelInfo})

	must.Bef(opts.Level >= LevelDebug, "level must be >= LevelDebug, got %d", opts.Level)
	must.Bef(opts.Level <= LevelFatal, "level must be <= LevelFatal, got %d", opts.Level)

	style := opts.Style
	if style == nil {
		var isTTY bool
		if f, ok := w.(interface{ Fd() uintptr }); ok {
			isTTY = isatty.IsTerminal(f.Fd())
		}
		if isTTY {
			style = silogh.DefaultStyle(nil)
		} else {
			style = silogh.PlainStyle(lipgloss.DefaultRenderer())
		}
	}
	style = withFatalLabel(style)

	var lvl slog.LevelVar
	lvl.Set(opts.Level.Level())
	handler := silogh.NewHandler(w, &silogh.HandlerOptions{
		Level:       &lvl,
		Style:       style,
		ReplaceAttr: dropTime,
	})

	return &Logger{
		sl:      slog.New(handler),
		lvl:     &lvl,
		onFatal: cmp.Or(opts.OnFatal, exitOnFatal),
	}
}

// withFatalLabel returns a copy of the style
// that labels fatal messages the same way as errors but with "FTL".
func withFatalLabel(style *silogh.Style) *silogh.Style {
	s := *style
	s.LevelLabels = maps.Clone(style.LevelLabels)
	if s.LevelLabels == nil {
		s.LevelLabels = make(map[slog.Level]lipgloss.Style)
	}
	if _, ok := s.LevelLabels[LevelFatal.Level()]; !ok {
		s.LevelLabels[LevelFatal.Level()] = s.LevelLabels[slog.LevelError].SetString("FTL")
	}
	return &s
}

// CLI output has no use for timestamps.
func dropTime(groups []string, attr slog.Attr) slog.Attr {
	if len(groups) == 0 && attr.Key == slog.TimeKey {
		return slog.Attr{}
	}
	return attr
}

// Level returns the current log level of the logger.
func (l *Logger) Level() Level {
	if l == nil {
		return LevelFatal + 1
	}
	return Level(l.lvl.Level())
}

// SetLevel changes the log level of the logger.
func (l *Logger) SetLevel(lvl Level) {
	if l == nil {
		return
	}
	l.lvl.Set(lvl.Level())
}

// WithPrefix returns a copy of the logger
// that prefixes all messages with the given string.
// An existing prefix is replaced.
func (l *Logger) WithPrefix(prefix string) *Logger {
	if l == nil {
		return l
	}
	newL := *l
	newL.sl = slog.New(l.sl.Handler().(*silogh.Handler).WithPrefix(prefix))
	return &newL
}

// Log logs a message at the given level with the given key-value pairs.
func (l *Logger) Log(lvl Level, msg string, kvs ...any) {
	if l == nil {
		if lvl >= LevelFatal {
			_osExit(1)
		}
		return
	}

	l.sl.Log(context.Background(), lvl.Level(), msg, kvs...)
	if lvl >= LevelFatal {
		l.onFatal()
		panic("unreachable: onFatal should stop control flow")
	}
}

// Logf logs a printf-style message at the given level.
func (l *Logger) Logf(lvl Level, format string, args ...any) {
	l.Log(lvl, fmt.Sprintf(format, args...))
}

// Debug posts a structured log message with the level [LevelDebug].
func (l *Logger) Debug(msg string, kvs ...any) { l.Log(LevelDebug, msg, kvs...) }

// Info posts a structured log message with the level [LevelInfo].
func (l *Logger) Info(msg string, kvs ...any) { l.Log(LevelInfo, msg, kvs...) }

// Infof posts a printf-style log message with the level [LevelInfo].
func (l *Logger) Infof(format string, args ...any) { l.Logf(LevelInfo, format, args...) }

// Fatalf posts a printf-style log message with the level [LevelFatal]
// and stops the program.
func (l *Logger) Fatalf(format string, args ...any) { l.Logf(LevelFatal, format, args...) }

var _osExit = os.Exit

func exitOnFatal() { _osExit(1) }
