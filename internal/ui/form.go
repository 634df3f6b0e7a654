package ui

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// ErrCancelled indicates that the user pressed ctrl+c at a prompt.
var ErrCancelled = errors.New("user cancelled")

// Writer receives the rendered view of a [Field].
type Writer interface {
	io.Writer
	io.StringWriter
}

// Field is a single question asked by a [Prompter].
type Field interface {
	// Init is called when the field gets focus.
	Init() tea.Cmd

	// Update handles a bubbletea event.
	// It returns [AcceptField] once the field is answered.
	Update(msg tea.Msg) tea.Cmd

	Render(Writer)

	// Err reports why the current answer is not acceptable.
	// It is shown below the field.
	Err() error

	// Title is always shown, next to the field.
	Title() string

	// Description is shown below the field while it has focus.
	Description() string
}

type acceptFieldMsg struct{}

// AcceptField is a [tea.Cmd] that a field returns from Update
// to move on to the next field.
func AcceptField() tea.Msg {
	return acceptFieldMsg{}
}

// label holds the title and description of a field.
type label struct {
	title, desc string
}

func (l *label) Title() string       { return l.title }
func (l *label) Description() string { return l.desc }

var _cancelKey = key.NewBinding(key.WithKeys("ctrl+c"))

// form shows fields one at a time.
// Answered fields stay on screen, dimmed, above the focused one.
type form struct {
	fields   []Field
	focused  int
	answered strings.Builder
	err      error
}

var _ tea.Model = (*form)(nil)

func newForm(fields []Field) *form {
	return &form{fields: fields}
}

func (f *form) done() bool {
	return f.focused >= len(f.fields)
}

func (f *form) Init() tea.Cmd {
	if f.done() {
		return tea.Quit
	}
	return f.fields[f.focused].Init()
}

func (f *form) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if f.done() {
		return f, tea.Quit
	}

	switch msg := msg.(type) {
	case acceptFieldMsg:
		writeField(&f.answered, f.fields[f.focused], true)
		f.answered.WriteString("\n")

		f.focused++
		if f.done() {
			return f, tea.Quit
		}
		return f, f.fields[f.focused].Init()

	case tea.KeyMsg:
		if key.Matches(msg, _cancelKey) {
			f.err = ErrCancelled
			return f, tea.Quit
		}
	}

	return f, f.fields[f.focused].Update(msg)
}

func (f *form) View() string {
	var sb strings.Builder
	sb.WriteString(f.answered.String())
	if !f.done() {
		writeField(&sb, f.fields[f.focused], false)
	}
	return sb.String()
}

// Err reports cancellation and any field errors.
func (f *form) Err() error {
	errs := []error{f.err}
	for _, field := range f.fields {
		errs = append(errs, field.Err())
	}
	return errors.Join(errs...)
}

func writeField(w Writer, field Field, answered bool) {
	var body strings.Builder
	if title := field.Title(); title != "" {
		style := _titleStyle
		if answered {
			style = _answeredTitleStyle
		}
		fmt.Fprintf(&body, "%s: ", style.Render(title))
	}
	field.Render(&body)
	if err := field.Err(); err != nil {
		fmt.Fprintf(&body, "\n%s", _errorStyle.Render(err.Error()))
	}

	if answered {
		w.WriteString(_answeredStyle.Render(body.String()))
		return
	}

	w.WriteString(body.String())
	if desc := field.Description(); desc != "" {
		fmt.Fprintf(w, "\n%s", _descriptionStyle.Render(desc))
	}
}
