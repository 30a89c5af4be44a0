package cli

import "github.com/charmbracelet/lipgloss"

var (
	// Colors
	secondaryColor = lipgloss.Color("#666666") // Gray for secondary text
	successColor   = lipgloss.Color("#87AF87") // Muted sage for success
	warningColor   = lipgloss.Color("#D7AF5F") // Amber for skipped records
	errorColor     = lipgloss.Color("#AF5F5F") // Muted terracotta for errors

	// subtleStyle for details under a summary line
	subtleStyle = lipgloss.NewStyle().
			Foreground(secondaryColor)

	// successStyle for the completion line
	successStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(successColor)

	// warningStyle for counts of plans left out
	warningStyle = lipgloss.NewStyle().
			Foreground(warningColor)

	// errorStyle for fatal errors
	errorStyle = lipgloss.NewStyle().
			Foreground(errorColor)
)
