// Package styles provides shared lipgloss styles for CLI output.
package styles

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/inkfold/redline/internal/core/review"
)

var (
	// Success styles confirmations and accepted decisions.
	Success = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))

	// Warning styles customized decisions and non-fatal notices.
	Warning = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))

	// Error styles failures and unapplied edits.
	Error = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))

	// Muted styles secondary detail lines.
	Muted = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))

	// Highlight marks the located passage inside a content excerpt.
	Highlight = lipgloss.NewStyle().Reverse(true)

	// Label styles field names in issue detail output.
	Label = lipgloss.NewStyle().Bold(true)
)

// Status returns the rendered, color-coded form of a review status.
func Status(s review.Status) string {
	switch s {
	case review.StatusAccepted:
		return Success.Render(string(s))
	case review.StatusCustom:
		return Warning.Render(string(s))
	default:
		return Muted.Render(string(s))
	}
}
