package ui

import (
	"slices"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// ChecklistKeyMap defines the key bindings for [Checklist].
type ChecklistKeyMap struct {
	Up, Down key.Binding
	Toggle   key.Binding
	Accept   key.Binding
	Cancel   key.Binding
}

// DefaultChecklistKeyMap is the default key map for a [Checklist].
var DefaultChecklistKeyMap = ChecklistKeyMap{
	Up: key.NewBinding(
		key.WithKeys("up", "k"),
		key.WithHelp("up/k", "move up"),
	),
	Down: key.NewBinding(
		key.WithKeys("down", "j"),
		key.WithHelp("down/j", "move down"),
	),
	Toggle: key.NewBinding(
		key.WithKeys(" ", "x"),
		key.WithHelp("space", "toggle"),
	),
	Accept: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("enter", "toggle or choose action"),
	),
	Cancel: key.NewBinding(
		key.WithKeys("esc", "q"),
		key.WithHelp("esc/q", "cancel"),
	),
}

// ChecklistStyle defines the styles for [Checklist].
type ChecklistStyle struct {
	Cursor lipgloss.Style

	Checkbox        lipgloss.Style
	CheckboxChecked lipgloss.Style

	// Actions shown below the items.
	Cancel lipgloss.Style
	Done   lipgloss.Style

	// Markers shown when the list is scrolled.
	ScrollUp   lipgloss.Style
	ScrollDown lipgloss.Style

	// Cancelled is rendered in place of the list
	// once the user has cancelled.
	Cancelled lipgloss.Style
}

// DefaultChecklistStyle is the default style for a [Checklist].
var DefaultChecklistStyle = ChecklistStyle{
	Cursor:          NewStyle().Foreground(Yellow).Bold(true).SetString("▶"),
	Checkbox:        NewStyle().SetString("[ ]"),
	CheckboxChecked: NewStyle().Foreground(Green).SetString("[x]"),
	Cancel:          NewStyle().Foreground(Red).SetString("Cancel"),
	Done:            NewStyle().Foreground(Green).SetString("Done"),
	ScrollUp:        NewStyle().Foreground(Gray).SetString("▲▲▲"),
	ScrollDown:      NewStyle().Foreground(Gray).SetString("▼▼▼"),
	Cancelled:       NewStyle().Foreground(Gray).SetString("cancelled"),
}

// ChecklistItem is a single toggleable entry in a [Checklist].
type ChecklistItem[T any] struct {
	Value   T
	Checked bool
}

// Checklist is a field that presents a list of items to toggle,
// followed by two fixed actions: Cancel and Done.
//
// Choosing either action accepts the field.
// Use [Checklist.Cancelled] to tell them apart,
// and [Checklist.Selected] to read the checked items.
type Checklist[T any] struct {
	KeyMap ChecklistKeyMap
	Style  ChecklistStyle

	label

	render func(Writer, T)
	items  []ChecklistItem[T]

	// cursor is an index into items,
	// or one of the two action positions after them.
	cursor  int
	visible int // number of visible items; 0 means all
	offset  int // index of the first visible item

	accepted  bool
	cancelled bool
}

var _ Field = (*Checklist[int])(nil)

// NewChecklist builds a checklist that renders each item's value
// with the given function.
func NewChecklist[T any](render func(Writer, T)) *Checklist[T] {
	return &Checklist[T]{
		KeyMap: DefaultChecklistKeyMap,
		Style:  DefaultChecklistStyle,
		render: render,
	}
}

// WithItems sets the items of the checklist,
// replacing any existing items.
func (c *Checklist[T]) WithItems(items ...ChecklistItem[T]) *Checklist[T] {
	c.items = slices.Clone(items)
	return c
}

// WithTitle sets the title of the checklist.
func (c *Checklist[T]) WithTitle(title string) *Checklist[T] {
	c.title = title
	return c
}

// WithDescription sets the description of the checklist.
func (c *Checklist[T]) WithDescription(desc string) *Checklist[T] {
	c.desc = desc
	return c
}

// Err returns nil.
func (c *Checklist[T]) Err() error {
	return nil
}

// Cancelled reports whether the user chose the Cancel action.
func (c *Checklist[T]) Cancelled() bool {
	return c.cancelled
}

// Selected returns the indexes of the checked items in order.
func (c *Checklist[T]) Selected() []int {
	var selected []int
	for i, item := range c.items {
		if item.Checked {
			selected = append(selected, i)
		}
	}
	return selected
}

func (c *Checklist[T]) cancelPos() int { return len(c.items) }
func (c *Checklist[T]) donePos() int   { return len(c.items) + 1 }

// Init initializes the checklist.
func (c *Checklist[T]) Init() tea.Cmd {
	c.cursor = 0
	c.offset = 0
	c.accepted = false
	c.cancelled = false
	return nil
}

// Update handles a bubbletea event.
func (c *Checklist[T]) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		// Leave room for the title, scroll markers and actions.
		c.visible = max(msg.Height-6, 1)
		c.scrollToCursor()

	case tea.KeyMsg:
		// Keys typed in quick succession arrive as one message.
		if msg.Type == tea.KeyRunes && len(msg.Runes) > 1 {
			for _, r := range msg.Runes {
				single := msg
				single.Runes = []rune{r}
				if cmd := c.Update(single); cmd != nil {
					return cmd
				}
			}
			return nil
		}

		switch {
		case key.Matches(msg, c.KeyMap.Up):
			c.moveCursor(-1)

		case key.Matches(msg, c.KeyMap.Down):
			c.moveCursor(1)

		case key.Matches(msg, c.KeyMap.Cancel):
			c.cursor = c.cancelPos()
			return c.accept()

		case key.Matches(msg, c.KeyMap.Accept):
			if c.cursor >= c.cancelPos() {
				return c.accept()
			}
			c.toggle()

		case key.Matches(msg, c.KeyMap.Toggle):
			if c.cursor < c.cancelPos() {
				c.toggle()
			}
		}
	}

	return nil
}

func (c *Checklist[T]) accept() tea.Cmd {
	c.accepted = true
	c.cancelled = c.cursor == c.cancelPos()
	return AcceptField
}

func (c *Checklist[T]) toggle() {
	c.items[c.cursor].Checked = !c.items[c.cursor].Checked
}

func (c *Checklist[T]) moveCursor(delta int) {
	positions := c.donePos() + 1
	c.cursor = (c.cursor + delta + positions) % positions
	c.scrollToCursor()
}

func (c *Checklist[T]) scrollToCursor() {
	if c.visible <= 0 || len(c.items) == 0 {
		return
	}

	// Actions are always shown,
	// so keep the last item in view when they are focused.
	idx := min(c.cursor, len(c.items)-1)
	if idx < c.offset {
		c.offset = idx
	}
	if idx >= c.offset+c.visible {
		c.offset = idx - c.visible + 1
	}
}

// Render renders the checklist.
func (c *Checklist[T]) Render(w Writer) {
	if c.accepted {
		c.renderAccepted(w)
		return
	}

	start, end := 0, len(c.items)
	scrolled := c.visible > 0 && c.visible < len(c.items)
	if scrolled {
		start = c.offset
		end = min(c.offset+c.visible, len(c.items))

		w.WriteString("\n")
		if start > 0 {
			w.WriteString(c.Style.ScrollUp.String())
		}
	}

	for idx := start; idx < end; idx++ {
		item := c.items[idx]

		w.WriteString("\n")
		c.renderCursor(w, idx)
		if item.Checked {
			w.WriteString(c.Style.CheckboxChecked.String())
		} else {
			w.WriteString(c.Style.Checkbox.String())
		}
		w.WriteString(" ")
		c.render(w, item.Value)
	}

	if scrolled {
		w.WriteString("\n")
		if end < len(c.items) {
			w.WriteString(c.Style.ScrollDown.String())
		}
	}

	w.WriteString("\n")
	c.renderCursor(w, c.cancelPos())
	w.WriteString(c.Style.Cancel.String())

	w.WriteString("\n")
	c.renderCursor(w, c.donePos())
	w.WriteString(c.Style.Done.String())
}

func (c *Checklist[T]) renderCursor(w Writer, pos int) {
	if pos == c.cursor {
		w.WriteString(c.Style.Cursor.String())
	} else {
		w.WriteString(" ")
	}
	w.WriteString(" ")
}

func (c *Checklist[T]) renderAccepted(w Writer) {
	if c.cancelled {
		w.WriteString(c.Style.Cancelled.String())
		return
	}

	for _, item := range c.items {
		if item.Checked {
			w.WriteString("\n  ")
			c.render(w, item.Value)
		}
	}
}
