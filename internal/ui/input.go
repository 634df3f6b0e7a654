package ui

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

var _inputAcceptKey = key.NewBinding(key.WithKeys("enter", "tab"))

// Input asks for a single line of text.
type Input struct {
	label

	text     textinput.Model
	value    *string
	validate func(string) error
}

var _ Field = (*Input)(nil)

// NewInput builds a text field.
func NewInput() *Input {
	text := textinput.New()
	text.Prompt = "" // the title serves as the prompt
	return &Input{
		text:  text,
		value: new(string),
	}
}

// WithValue sets where the answer is stored.
// Its current value is the initial text.
func (i *Input) WithValue(value *string) *Input {
	i.value = value
	i.text.SetValue(*value)
	return i
}

// WithTitle sets the question.
func (i *Input) WithTitle(title string) *Input {
	i.title = title
	return i
}

// WithDescription sets text shown below the field.
func (i *Input) WithDescription(desc string) *Input {
	i.desc = desc
	return i
}

// WithValidate sets a function that checks the text.
// The field cannot be accepted while it reports an error.
func (i *Input) WithValidate(validate func(string) error) *Input {
	i.validate = validate
	i.text.Validate = validate
	return i
}

// Err reports why the current text is not acceptable.
func (i *Input) Err() error {
	return i.text.Err
}

// Init focuses the field and checks the initial text.
func (i *Input) Init() tea.Cmd {
	i.text.Err = nil
	if i.validate != nil {
		i.text.Err = i.validate(i.text.Value())
	}
	return i.text.Focus()
}

// Update handles a bubbletea event.
func (i *Input) Update(msg tea.Msg) tea.Cmd {
	if keyMsg, ok := msg.(tea.KeyMsg); ok && key.Matches(keyMsg, _inputAcceptKey) {
		if i.text.Err != nil {
			return nil
		}
		i.text.Blur()
		return AcceptField
	}

	var cmd tea.Cmd
	i.text, cmd = i.text.Update(msg)
	*i.value = i.text.Value()
	return cmd
}

// Render renders the text being edited.
func (i *Input) Render(w Writer) {
	w.WriteString(i.text.View())
}
