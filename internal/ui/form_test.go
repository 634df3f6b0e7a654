package ui

import (
	"bytes"
	"errors"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestForm_answersInOrder(t *testing.T) {
	branch := "split-commit-tmp"
	var proceed bool
	f := newForm([]Field{
		NewInput().WithValue(&branch).WithTitle("Output branch"),
		NewConfirm().WithValue(&proceed).WithTitle("Proceed?"),
	})
	f.Init()
	assert.Contains(t, f.View(), "Output branch")
	assert.NotContains(t, f.View(), "Proceed?")

	_, cmd := f.Update(tea.KeyMsg{Type: tea.KeyEnter})
	require.NotNil(t, cmd)
	f.Update(cmd())

	// The answered field stays on screen above the focused one.
	assert.Contains(t, f.View(), "split-commit-tmp")
	assert.Contains(t, f.View(), "Proceed?")

	_, cmd = f.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("y")})
	require.NotNil(t, cmd)
	_, cmd = f.Update(cmd())
	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())

	assert.True(t, proceed)
	assert.NoError(t, f.Err())
}

func TestForm_cancel(t *testing.T) {
	f := newForm([]Field{NewConfirm()})
	f.Init()

	_, cmd := f.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())
	assert.ErrorIs(t, f.Err(), ErrCancelled)
}

func TestForm_noFields(t *testing.T) {
	cmd := newForm(nil).Init()
	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())
}

func TestForm_fieldErrors(t *testing.T) {
	errTaken := errors.New("branch already exists")
	branch := "main"
	f := newForm([]Field{
		NewInput().WithValue(&branch).WithValidate(func(string) error {
			return errTaken
		}),
	})
	f.Init()

	assert.Contains(t, f.View(), "branch already exists")
	assert.ErrorIs(t, f.Err(), errTaken)
}

func TestRun_writerView(t *testing.T) {
	var buf bytes.Buffer
	view := &WriterView{Writer: &buf}
	assert.False(t, Interactive(view))

	err := Run(view, NewConfirm())
	assert.ErrorIs(t, err, ErrPrompt)
	assert.Empty(t, buf.String())
}

func TestRun_terminalView(t *testing.T) {
	view := &TerminalView{Out: new(bytes.Buffer)}
	assert.True(t, Interactive(view))
}
