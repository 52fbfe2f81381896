package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
)

// Update handles Bubbletea messages and updates model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case spinner.TickMsg:
		if !m.applying {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case applyResultMsg:
		m.applying = false
		if msg.err != nil {
			m.status = fmt.Sprintf("Error updating config: %v", msg.err)
		} else {
			m.status = fmt.Sprintf("Successfully applied theme: %s", msg.theme)
		}
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Down):
			m.moveDown()
			return m, nil
		case key.Matches(msg, m.keys.Up):
			m.moveUp()
			return m, nil
		case key.Matches(msg, m.keys.Apply):
			if m.applying || len(m.themes) == 0 {
				return m, nil
			}
			theme := m.themes[m.cursor]
			m.applying = true
			m.status = fmt.Sprintf("Applying theme: %s…", theme)
			return m, tea.Batch(m.spinner.Tick, applyCmd(m.applier, theme))
		}
	}

	return m, nil
}

// applyCmd runs the selection persistence off the update loop.
func applyCmd(applier Applier, theme string) tea.Cmd {
	return func() tea.Msg {
		return applyResultMsg{theme: theme, err: applier.ApplySelection(theme)}
	}
}
