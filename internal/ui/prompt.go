package ui

import (
	"errors"
	"io"

	tea "github.com/charmbracelet/bubbletea"
)

// ErrPrompt indicates that input was needed
// but the view cannot prompt for it.
var ErrPrompt = errors.New("not allowed to prompt for input")

// View is where messages for the user are written.
// Implementations write to stderr so that stdout stays clean.
type View interface {
	io.Writer
}

// Prompter is a [View] that can also ask the user questions.
type Prompter interface {
	View

	// Prompt shows the fields one after another.
	// It returns once every field is answered
	// or the user cancels with [ErrCancelled].
	Prompt(fields ...Field) error
}

// Interactive reports whether the view can prompt.
func Interactive(v View) bool {
	_, ok := v.(Prompter)
	return ok
}

// Run asks the given questions through the view.
// It returns [ErrPrompt] if the view cannot prompt.
func Run(v View, fields ...Field) error {
	p, ok := v.(Prompter)
	if !ok {
		return ErrPrompt
	}
	return p.Prompt(fields...)
}

// WriterView is a [View] that only prints.
// It is used when stdin or stderr is not a terminal.
type WriterView struct {
	io.Writer // required
}

var _ View = (*WriterView)(nil)

// TerminalView is a [Prompter] attached to a terminal.
type TerminalView struct {
	In  io.Reader // required
	Out io.Writer // required
}

var _ Prompter = (*TerminalView)(nil)

func (v *TerminalView) Write(p []byte) (int, error) {
	return v.Out.Write(p)
}

// Prompt runs the fields as a single bubbletea program.
func (v *TerminalView) Prompt(fields ...Field) error {
	f := newForm(fields)
	if _, err := tea.NewProgram(f, tea.WithInput(v.In), tea.WithOutput(v.Out)).Run(); err != nil {
		return err
	}
	return f.Err()
}
