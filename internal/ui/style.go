package ui

import (
	"os"

	"github.com/charmbracelet/lipgloss"
)

// Renderer is a lipgloss renderer that writes to stderr.
//
// Prompts and messages go to stderr,
// so that's what decides whether output is colorized.
var Renderer = lipgloss.NewRenderer(os.Stderr)

func init() {
	lipgloss.SetDefaultRenderer(Renderer)
}

// NewStyle returns a new lipgloss style based on our default renderer.
func NewStyle() lipgloss.Style {
	return Renderer.NewStyle()
}

// Colors used throughout the UI.
var (
	Yellow  = lipgloss.AdaptiveColor{Light: "3", Dark: "11"}
	Red     = lipgloss.AdaptiveColor{Light: "1", Dark: "9"}
	Green   = lipgloss.AdaptiveColor{Light: "2", Dark: "10"}
	Plain   = lipgloss.AdaptiveColor{Light: "0", Dark: "7"}
	Cyan    = lipgloss.AdaptiveColor{Light: "6", Dark: "14"}
	Magenta = lipgloss.AdaptiveColor{Light: "5", Dark: "13"}
	Gray    = lipgloss.AdaptiveColor{Light: "8", Dark: "8"}
)

var (
	_titleStyle         = NewStyle().Foreground(Green).Bold(true)
	_answeredTitleStyle = NewStyle().Foreground(Plain)
	_answeredStyle      = NewStyle().Faint(true)
	_descriptionStyle   = NewStyle().Foreground(Gray).Faint(true)
	_errorStyle         = NewStyle().Foreground(Red)
	_keyStyle           = NewStyle().Foreground(Magenta)
)
