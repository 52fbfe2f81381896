package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// View renders the status panel above the theme list, with a scroll window
// sized to the terminal.
func (m Model) View() string {
	var sections []string

	status := m.status
	if m.applying {
		status = m.spinner.View() + " " + status
	}
	sections = append(sections, statusBorderStyle.Width(max(m.width-2, 20)).Render(status))

	sections = append(sections, titleStyle.Render("Themes"))
	sections = append(sections, m.renderList())
	sections = append(sections, helpStyle.Render("↑/k up • ↓/j down • enter apply • q quit"))

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (m Model) renderList() string {
	if len(m.themes) == 0 {
		return helpStyle.Render("no themes available")
	}

	// Reserve room for status panel, title and help line.
	visible := m.height - 7
	if visible < 1 {
		visible = 1
	}

	start := 0
	if m.cursor >= visible {
		start = m.cursor - visible + 1
	}
	end := start + visible
	if end > len(m.themes) {
		end = len(m.themes)
	}

	var lines []string
	for i := start; i < end; i++ {
		theme := m.themes[i]
		if i == m.cursor {
			lines = append(lines, selectedStyle.Render(fmt.Sprintf("> %s", theme)))
			continue
		}
		lines = append(lines, itemStyle.Render(fmt.Sprintf("  %s", theme)))
	}

	return strings.Join(lines, "\n")
}
