package tui

import (
	tea "github.com/charmbracelet/bubbletea"
)

// Update handles messages
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "tab":
			if m.focus == PaneThemes {
				m.focus = PaneBorders
			} else {
				m.focus = PaneThemes
			}
		case "j", "down":
			m.move(1)
		case "k", "up":
			m.move(-1)
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
	}

	return m, nil
}

func (m *Model) move(delta int) {
	if m.focus == PaneThemes {
		m.selectedTheme = clamp(m.selectedTheme+delta, 0, len(m.themes)-1)
	} else {
		m.selectedBorder = clamp(m.selectedBorder+delta, 0, len(m.borders)-1)
	}
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
