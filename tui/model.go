// Package tui provides an interactive catalog for browsing banner themes
// and border styles with a live preview.
package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/neuroforge/forge/internal/banner"
)

// Pane identifies which list has keyboard focus
type Pane int

const (
	PaneThemes Pane = iota
	PaneBorders
)

// Model is the catalog application model
type Model struct {
	themes  []string
	borders []string

	selectedTheme  int
	selectedBorder int
	focus          Pane

	previewTitle string
	previewLines []string

	width  int
	height int
}

// NewModel creates a catalog model with all registered themes and borders
func NewModel() Model {
	return Model{
		themes:       banner.ThemeNames(),
		borders:      banner.BorderNames(),
		previewTitle: "Terminal Forge",
		previewLines: []string{"The quick brown fox", "jumps over the lazy dog"},
	}
}

// Init initializes the model
func (m Model) Init() tea.Cmd {
	return nil
}

// Theme returns the currently selected theme name
func (m Model) Theme() string {
	return m.themes[m.selectedTheme]
}

// Border returns the currently selected border name
func (m Model) Border() string {
	return m.borders[m.selectedBorder]
}
