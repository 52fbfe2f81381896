package tui

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
)

// Applier persists a theme selection. Satisfied by themes.Resolver.
type Applier interface {
	ApplySelection(name string) error
}

// applyResultMsg reports the outcome of an async selection apply.
type applyResultMsg struct {
	theme string
	err   error
}

type keyMap struct {
	Up    key.Binding
	Down  key.Binding
	Apply key.Binding
	Quit  key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Up:    key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:  key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		Apply: key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "apply theme")),
		Quit:  key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// Model contains the Bubbletea state for the theme picker.
type Model struct {
	themes   []string
	cursor   int
	status   string
	applying bool
	spinner  spinner.Model
	keys     keyMap
	applier  Applier
	width    int
	height   int
}

// NewModel constructs the picker over an already resolved catalog.
func NewModel(themes []string, applier Applier) Model {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = spinnerStyle

	return Model{
		themes:  themes,
		status:  "Press enter to apply theme, q to quit",
		spinner: s,
		keys:    defaultKeyMap(),
		applier: applier,
		width:   80,
		height:  24,
	}
}

// Init starts the Bubbletea program.
func (m Model) Init() tea.Cmd {
	return nil
}

// Selected returns the currently highlighted theme name.
func (m Model) Selected() string {
	if len(m.themes) == 0 {
		return ""
	}
	return m.themes[m.cursor]
}

// Status exposes the current status line.
func (m Model) Status() string {
	return m.status
}

func (m *Model) moveDown() {
	if len(m.themes) == 0 {
		return
	}
	m.cursor++
	if m.cursor >= len(m.themes) {
		m.cursor = 0
	}
}

func (m *Model) moveUp() {
	if len(m.themes) == 0 {
		return
	}
	m.cursor--
	if m.cursor < 0 {
		m.cursor = len(m.themes) - 1
	}
}
