package ui_test

import (
	"errors"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"go.abhg.dev/git-split-commit/internal/ui"
)

func TestInput_typing(t *testing.T) {
	value := "Split from"
	in := ui.NewInput().WithValue(&value).WithTitle("Second commit message")
	in.Init()

	for _, r := range " HEAD" {
		in.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
	assert.Equal(t, "Split from HEAD", value)

	cmd := in.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if assert.NotNil(t, cmd) {
		assert.Equal(t, ui.AcceptField(), cmd())
	}
}

func TestInput_validate(t *testing.T) {
	errEmpty := errors.New("branch name must not be empty")
	validate := func(s string) error {
		if s == "" {
			return errEmpty
		}
		return nil
	}

	t.Run("InitialValue", func(t *testing.T) {
		var value string
		in := ui.NewInput().WithValue(&value).WithValidate(validate)
		in.Init()

		assert.ErrorIs(t, in.Err(), errEmpty)
		assert.Nil(t, in.Update(tea.KeyMsg{Type: tea.KeyEnter}),
			"invalid text must not be accepted")
	})

	t.Run("Edited", func(t *testing.T) {
		value := "a"
		in := ui.NewInput().WithValue(&value).WithValidate(validate)
		in.Init()
		assert.NoError(t, in.Err())

		in.Update(tea.KeyMsg{Type: tea.KeyBackspace})
		assert.ErrorIs(t, in.Err(), errEmpty)

		in.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("b")})
		assert.NoError(t, in.Err())
		assert.Equal(t, "b", value)
	})
}
