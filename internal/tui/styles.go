// Package tui renders per-word outcomes, either as plain report lines or as a
// live progress view.
package tui

import "github.com/charmbracelet/lipgloss"

// Color palette
var (
	ColorPrimary   = lipgloss.Color("#FF6B6B") // Red - failures
	ColorSecondary = lipgloss.Color("#4ecdc4") // Teal - titles, spinner
	ColorAccent    = lipgloss.Color("#ffe66d") // Yellow - words
	ColorMuted     = lipgloss.Color("#666666") // Gray - help text, details
	ColorSuccess   = lipgloss.Color("#a8e6cf") // Green - success
)

var (
	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorSecondary)

	SuccessMarkStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(ColorSuccess)

	FailureMarkStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(ColorPrimary)

	WordStyle = lipgloss.NewStyle().
			Foreground(ColorAccent)

	FailedWordStyle = lipgloss.NewStyle().
			Foreground(ColorPrimary)

	DetailStyle = lipgloss.NewStyle().
			Foreground(ColorMuted)

	HelpStyle = lipgloss.NewStyle().
			Foreground(ColorMuted)

	SpinnerStyle = lipgloss.NewStyle().
			Foreground(ColorSecondary)
)
