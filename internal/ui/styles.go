// =============================================================================
// Make Data - Terminal Styles
// =============================================================================
//
// Lipgloss styles shared by the banner, the extended help, the run summary and
// the final error line.
//
// =============================================================================

package ui

import "github.com/charmbracelet/lipgloss"

var (
	// BannerStyle renders the startup banner.
	BannerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#22D3EE"))

	// CommandStyle highlights example command lines.
	CommandStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#4ADE80"))

	// LabelStyle renders summary labels.
	LabelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#6B7280"))

	// ValueStyle renders summary values.
	ValueStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FACC15")).
			Bold(true)

	// ErrorStyle renders the error line printed when a run fails.
	ErrorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF4757")).
			Bold(true)
)
