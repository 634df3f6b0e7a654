package ui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

var _confirmKeys = struct {
	Yes, No, Accept key.Binding
}{
	Yes:    key.NewBinding(key.WithKeys("y", "Y")),
	No:     key.NewBinding(key.WithKeys("n", "N")),
	Accept: key.NewBinding(key.WithKeys("enter")),
}

// Confirm asks a yes or no question.
// Enter keeps the current answer,
// which is no unless set otherwise with [Confirm.WithValue].
type Confirm struct {
	label

	value    *bool
	keyStyle lipgloss.Style
}

var _ Field = (*Confirm)(nil)

// NewConfirm builds a yes or no question.
func NewConfirm() *Confirm {
	return &Confirm{
		value:    new(bool),
		keyStyle: _keyStyle,
	}
}

// WithValue sets where the answer is stored.
// Its current value is the default answer.
func (c *Confirm) WithValue(value *bool) *Confirm {
	c.value = value
	return c
}

// WithTitle sets the question.
func (c *Confirm) WithTitle(title string) *Confirm {
	c.title = title
	return c
}

// WithDescription sets text shown below the question.
func (c *Confirm) WithDescription(desc string) *Confirm {
	c.desc = desc
	return c
}

// Value reports the current answer.
func (c *Confirm) Value() bool {
	return *c.value
}

// Err returns nil. Every answer is acceptable.
func (c *Confirm) Err() error {
	return nil
}

// Init initializes the field.
func (c *Confirm) Init() tea.Cmd {
	return nil
}

// Update handles a bubbletea event.
func (c *Confirm) Update(msg tea.Msg) tea.Cmd {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return nil
	}

	switch {
	case key.Matches(keyMsg, _confirmKeys.Yes):
		*c.value = true
	case key.Matches(keyMsg, _confirmKeys.No):
		*c.value = false
	case key.Matches(keyMsg, _confirmKeys.Accept):
	default:
		return nil
	}
	return AcceptField
}

// Render renders the answer choices,
// with the current answer capitalized.
func (c *Confirm) Render(w Writer) {
	yes, no := "y", "N"
	if *c.value {
		yes, no = "Y", "n"
	}
	w.WriteString("[" + c.keyStyle.Render(yes) + "/" + c.keyStyle.Render(no) + "]")
}
