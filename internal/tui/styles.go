package tui

import "github.com/charmbracelet/lipgloss"

var (
	statusBorderStyle = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(lipgloss.Color("39")).
				Padding(0, 1)

	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("205"))

	selectedStyle = lipgloss.NewStyle().Bold(true).Background(lipgloss.Color("42")).Foreground(lipgloss.Color("0"))
	itemStyle     = lipgloss.NewStyle().Bold(true)
	spinnerStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("205"))
	helpStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
)
