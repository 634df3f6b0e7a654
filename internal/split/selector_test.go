package split

import (
	"bytes"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.abhg.dev/git-split-commit/internal/git"
	"go.abhg.dev/git-split-commit/internal/ui"
)

// scriptedView is an interactive view that answers prompts
// by feeding the given keys to each field in turn.
type scriptedView struct {
	bytes.Buffer

	keys []tea.KeyMsg
}

var _ ui.Prompter = (*scriptedView)(nil)

func (v *scriptedView) Prompt(fields ...ui.Field) error {
	for _, f := range fields {
		f.Init()
		for len(v.keys) > 0 {
			msg := v.keys[0]
			v.keys = v.keys[1:]
			if cmd := f.Update(msg); cmd != nil {
				if _, ok := cmd().(tea.QuitMsg); ok {
					return ui.ErrCancelled
				}
				// Any other command accepts the field.
				break
			}
		}
	}
	return nil
}

var (
	_keyDown  = tea.KeyMsg{Type: tea.KeyDown}
	_keyEnter = tea.KeyMsg{Type: tea.KeyEnter}
	_keySpace = tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
	_keyEsc   = tea.KeyMsg{Type: tea.KeyEsc}
	_keyN     = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'n'}}
	_keyY     = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'y'}}
)

func TestChecklistSelector(t *testing.T) {
	t.Run("Done", func(t *testing.T) {
		view := &scriptedView{keys: []tea.KeyMsg{
			_keyDown, _keySpace, // b.txt
			_keyDown, _keyDown, _keyDown, // Cancel, Done
			_keyEnter,
		}}

		got, err := (&ChecklistSelector{View: view}).Select(t.Context(), _threeChanges)
		require.NoError(t, err)
		assert.Equal(t, []int{1}, got)
	})

	t.Run("Cancel", func(t *testing.T) {
		view := &scriptedView{keys: []tea.KeyMsg{_keySpace, _keyEsc}}

		_, err := (&ChecklistSelector{View: view}).Select(t.Context(), _threeChanges)
		assert.ErrorIs(t, err, ErrCancelled)
	})

	t.Run("NonInteractive", func(t *testing.T) {
		view := &ui.WriterView{Writer: new(bytes.Buffer)}

		_, err := (&ChecklistSelector{View: view}).Select(t.Context(), _threeChanges)
		assert.ErrorIs(t, err, ui.ErrPrompt)
		assert.ErrorContains(t, err, "--select")
	})
}

func TestPathSelector(t *testing.T) {
	changes := []Change{
		{Kind: Modified, Status: git.FileModified, Path: "src/main.go"},
		{Kind: Modified, Status: git.FileRenamed, Path: "docs/new.md", OldPath: "docs/old.md"},
		{Kind: Added, Status: git.FileAdded, Path: "src/util.go"},
	}

	tests := []struct {
		name  string
		paths []string

		want       []int
		wantErrMsg []string
	}{
		{
			name:  "Single",
			paths: []string{"src/util.go"},
			want:  []int{2},
		},
		{
			name:  "SelectionOrder",
			paths: []string{"src/util.go", "src/main.go"},
			want:  []int{2, 0},
		},
		{
			name:  "RenameByOldPath",
			paths: []string{"docs/old.md"},
			want:  []int{1},
		},
		{
			name:  "RenameBothPaths",
			paths: []string{"docs/old.md", "docs/new.md"},
			want:  []int{1},
		},
		{
			name:       "Unknown",
			paths:      []string{"util.go"},
			wantErrMsg: []string{"util.go: not changed by this commit (did you mean src/util.go?)"},
		},
		{
			name:       "UnknownNoSuggestion",
			paths:      []string{"zzz"},
			wantErrMsg: []string{"zzz: not changed by this commit"},
		},
		{
			name:  "AllUnknownReported",
			paths: []string{"x1", "src/main.go", "x2"},
			wantErrMsg: []string{
				"x1: not changed",
				"x2: not changed",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := (&PathSelector{Paths: tt.paths}).Select(t.Context(), changes)
			if len(tt.wantErrMsg) > 0 {
				require.Error(t, err)
				for _, msg := range tt.wantErrMsg {
					assert.ErrorContains(t, err, msg)
				}
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
