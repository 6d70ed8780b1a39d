package tui

import "github.com/charmbracelet/lipgloss"

// Styles for the package picker
var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("39"))

	categoryStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("8")).
			Italic(true)

	cursorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("205")).
			Bold(true)

	checkedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("40"))

	descStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("8"))
)
