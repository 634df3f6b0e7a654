package split

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/sahilm/fuzzy"
	"go.abhg.dev/git-split-commit/internal/ui"
)

// ChecklistSelector lets the user pick changes from a checklist.
type ChecklistSelector struct {
	View ui.View // required
}

var _ Selector = (*ChecklistSelector)(nil)

// Select shows a checklist of changes and returns the checked ones.
// It returns [ErrCancelled] if the user chooses Cancel.
func (s *ChecklistSelector) Select(_ context.Context, changes []Change) ([]int, error) {
	items := make([]ui.ChecklistItem[Change], len(changes))
	for i, c := range changes {
		items[i] = ui.ChecklistItem[Change]{Value: c}
	}

	list := ui.NewChecklist(renderChange).
		WithItems(items...).
		WithTitle("Select changes for the first commit").
		WithDescription("Unselected changes go into the second commit.")
	if err := ui.Run(s.View, list); err != nil {
		switch {
		case errors.Is(err, ui.ErrPrompt):
			return nil, fmt.Errorf("select changes: %w (use --select to pick changes)", err)
		case errors.Is(err, ui.ErrCancelled):
			return nil, ErrCancelled
		default:
			return nil, fmt.Errorf("select changes: %w", err)
		}
	}

	if list.Cancelled() {
		return nil, ErrCancelled
	}
	return list.Selected(), nil
}

var (
	_statusStyle = ui.NewStyle().Foreground(ui.Yellow)
	_pathStyle   = ui.NewStyle()
)

func renderChange(w ui.Writer, c Change) {
	_, _ = w.WriteString(_statusStyle.Render(string(c.Status)))
	_, _ = w.WriteString(" ")
	if c.OldPath != "" {
		_, _ = w.WriteString(_pathStyle.Render(c.OldPath))
		_, _ = w.WriteString(" -> ")
	}
	_, _ = w.WriteString(_pathStyle.Render(c.Path))
}

// PathSelector selects changes by path without prompting.
type PathSelector struct {
	// Paths to put in the first commit.
	// A rename or copy matches by either of its paths.
	Paths []string
}

var _ Selector = (*PathSelector)(nil)

// Select returns the changes that match Paths.
// Every path must match a change.
func (s *PathSelector) Select(_ context.Context, changes []Change) ([]int, error) {
	byPath := make(map[string]int, len(changes))
	for i, c := range changes {
		byPath[c.Path] = i
		if c.OldPath != "" {
			if _, ok := byPath[c.OldPath]; !ok {
				byPath[c.OldPath] = i
			}
		}
	}

	var (
		selected []int
		seen     = make(map[int]struct{})
		errs     []error
	)
	for _, path := range s.Paths {
		idx, ok := byPath[path]
		if !ok {
			errs = append(errs, unknownPathError(path, changes))
			continue
		}

		if _, dup := seen[idx]; dup {
			continue
		}
		seen[idx] = struct{}{}
		selected = append(selected, idx)
	}

	if err := errors.Join(errs...); err != nil {
		return nil, err
	}
	return selected, nil
}

// unknownPathError reports that path is not among the changes,
// suggesting up to three similar paths.
func unknownPathError(path string, changes []Change) error {
	candidates := make([]string, len(changes))
	for i, c := range changes {
		candidates[i] = c.Path
	}

	matches := fuzzy.Find(path, candidates)
	if len(matches) == 0 {
		return fmt.Errorf("%v: not changed by this commit", path)
	}

	suggestions := make([]string, 0, 3)
	for _, m := range matches {
		if len(suggestions) == cap(suggestions) {
			break
		}
		suggestions = append(suggestions, m.Str)
	}
	return fmt.Errorf("%v: not changed by this commit (did you mean %v?)",
		path, strings.Join(suggestions, ", "))
}
