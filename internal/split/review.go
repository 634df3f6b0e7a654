package split

import (
	"fmt"
	"io"

	"github.com/dustin/go-humanize/english"
	"go.abhg.dev/git-split-commit/internal/ui"
)

// ReviewOptions configures [Review].
type ReviewOptions struct {
	// SecondMessage is the message of the second commit.
	SecondMessage string // required

	// Yes approves the split without prompting.
	Yes bool
}

var (
	_reviewHeadingStyle = ui.NewStyle().Bold(true)
	_reviewSubjectStyle = ui.NewStyle().Foreground(ui.Cyan)
	_reviewStatusStyle  = ui.NewStyle().Foreground(ui.Yellow)
)

// Review shows the partition to the user and asks whether to proceed.
//
// With a non-interactive view, the split must be pre-approved with
// [ReviewOptions.Yes], or Review fails with [ui.ErrPrompt].
func Review(view ui.View, p *Partition, opts *ReviewOptions) (bool, error) {
	if !opts.Yes && !ui.Interactive(view) {
		// Fail before printing anything
		// that suggests a choice is coming.
		return false, fmt.Errorf("confirm split: %w (use --yes to skip confirmation)", ui.ErrPrompt)
	}

	writeReview(view, p, opts.SecondMessage)
	if opts.Yes {
		return true, nil
	}

	proceed := false
	confirm := ui.NewConfirm().
		WithValue(&proceed).
		WithTitle("Proceed?").
		WithDescription("Nothing has been changed yet.")
	if err := ui.Run(view, confirm); err != nil {
		return false, fmt.Errorf("confirm split: %w", err)
	}
	return proceed, nil
}

func writeReview(w io.Writer, p *Partition, secondMessage string) {
	writeChangeSet(w, "First commit", p.Target.Subject(), p.First)
	writeChangeSet(w, "Second commit", secondMessage, p.Second)
}

func writeChangeSet(w io.Writer, heading, subject string, cs ChangeSet) {
	fmt.Fprintf(w, "%s: %s (%s)\n",
		_reviewHeadingStyle.Render(heading),
		_reviewSubjectStyle.Render(subject),
		english.Plural(len(cs), "change", ""),
	)
	for _, c := range cs {
		fmt.Fprintf(w, "  %s ", _reviewStatusStyle.Render(string(c.Status)))
		if c.OldPath != "" {
			fmt.Fprintf(w, "%s -> ", c.OldPath)
		}
		fmt.Fprintln(w, c.Path)
	}
}
