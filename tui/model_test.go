package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func keyMsg(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestNewModel(t *testing.T) {
	m := NewModel()

	if len(m.themes) == 0 {
		t.Fatal("model should list themes")
	}
	if len(m.borders) == 0 {
		t.Fatal("model should list borders")
	}
	if m.Theme() == "" {
		t.Error("Theme() should return the initial selection")
	}
}

func TestUpdate_Navigation(t *testing.T) {
	m := NewModel()

	updated, _ := m.Update(keyMsg("j"))
	m = updated.(Model)
	if m.selectedTheme != 1 {
		t.Errorf("selectedTheme = %d, want 1", m.selectedTheme)
	}

	updated, _ = m.Update(keyMsg("k"))
	m = updated.(Model)
	if m.selectedTheme != 0 {
		t.Errorf("selectedTheme = %d, want 0", m.selectedTheme)
	}

	// Moving above the top clamps
	updated, _ = m.Update(keyMsg("k"))
	m = updated.(Model)
	if m.selectedTheme != 0 {
		t.Errorf("selectedTheme = %d, want 0 after clamp", m.selectedTheme)
	}
}

func TestUpdate_TabSwitchesPane(t *testing.T) {
	m := NewModel()

	updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyTab})
	m = updated.(Model)
	if m.focus != PaneBorders {
		t.Errorf("focus = %v, want PaneBorders", m.focus)
	}

	updated, _ = m.Update(keyMsg("j"))
	m = updated.(Model)
	if m.selectedBorder != 1 {
		t.Errorf("selectedBorder = %d, want 1", m.selectedBorder)
	}
	if m.selectedTheme != 0 {
		t.Errorf("selectedTheme = %d, want 0 (unfocused pane)", m.selectedTheme)
	}
}

func TestUpdate_NavigationClampsAtEnd(t *testing.T) {
	m := NewModel()

	for range len(m.themes) + 5 {
		updated, _ := m.Update(keyMsg("j"))
		m = updated.(Model)
	}
	if m.selectedTheme != len(m.themes)-1 {
		t.Errorf("selectedTheme = %d, want %d", m.selectedTheme, len(m.themes)-1)
	}
}

func TestUpdate_Quit(t *testing.T) {
	m := NewModel()

	_, cmd := m.Update(keyMsg("q"))
	if cmd == nil {
		t.Fatal("q should produce a quit command")
	}
	if msg := cmd(); msg != tea.Quit() {
		t.Errorf("cmd() = %v, want tea.Quit", msg)
	}
}

func TestView(t *testing.T) {
	m := NewModel()

	if got := m.View(); got != "Loading..." {
		t.Errorf("zero-width view = %q, want Loading...", got)
	}

	updated, _ := m.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	m = updated.(Model)

	out := m.View()
	if !strings.Contains(out, "Theme Catalog") {
		t.Error("view missing header")
	}
	if !strings.Contains(out, "Themes") || !strings.Contains(out, "Borders") {
		t.Error("view missing pane titles")
	}
	if !strings.Contains(out, "Terminal Forge") {
		t.Error("view missing preview banner")
	}
}
