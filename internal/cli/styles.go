package cli

import "github.com/charmbracelet/lipgloss"

var (
	HeadingStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("205")).
			Bold(true)

	PinnedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("220")).
			Bold(true)

	DoneStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("42"))

	DimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240"))
)
