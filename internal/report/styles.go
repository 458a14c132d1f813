package report

import "github.com/charmbracelet/lipgloss"

var (
	// Summary lines
	Value = lipgloss.NewStyle().
		Foreground(lipgloss.Color("220"))

	// Positive and negative edge
	EdgeUp   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("82"))
	EdgeDown = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("203"))

	// Warnings, usage errors and help
	Warning = lipgloss.NewStyle().
		Foreground(lipgloss.Color("196"))

	// Matrix cells
	Win  = lipgloss.NewStyle().Foreground(lipgloss.Color("86"))
	Loss = lipgloss.NewStyle().Foreground(lipgloss.Color("242"))

	Subtle = lipgloss.NewStyle().
		Foreground(lipgloss.Color("238"))
)

func edgeStyle(edge float64) lipgloss.Style {
	if edge < 0 {
		return EdgeDown
	}
	return EdgeUp
}
