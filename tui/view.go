package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/neuroforge/forge/internal/banner"
)

var (
	headerStyle = lipgloss.NewStyle().
		Background(lipgloss.Color("236")).
		Foreground(lipgloss.Color("255")).
		Padding(0, 1)

	paneTitleActiveStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("205")).
		Underline(true)

	paneTitleStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color("244"))

	selectedStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("42"))

	itemStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color("250"))

	statusBarStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color("240"))
)

// View renders the catalog
func (m Model) View() string {
	if m.width == 0 {
		return "Loading..."
	}

	var b strings.Builder

	b.WriteString(headerStyle.Width(m.width).Render(" Theme Catalog "))
	b.WriteString("\n\n")

	themesList := m.renderList("Themes", m.themes, m.selectedTheme, m.focus == PaneThemes)
	bordersList := m.renderList("Borders", m.borders, m.selectedBorder, m.focus == PaneBorders)

	preview := banner.New(m.previewTitle)
	for _, line := range m.previewLines {
		preview.AddLine(line)
	}
	rendered := preview.Theme(m.Theme()).Border(m.Border()).Width(44).Render()

	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top,
		themesList, "  ", bordersList, "   ", rendered))
	b.WriteString("\n\n")
	b.WriteString(statusBarStyle.Render(" j/k: select │ tab: switch pane │ q: quit "))

	return b.String()
}

func (m Model) renderList(title string, items []string, selected int, active bool) string {
	var b strings.Builder

	if active {
		b.WriteString(paneTitleActiveStyle.Render(title))
	} else {
		b.WriteString(paneTitleStyle.Render(title))
	}
	b.WriteString("\n")

	for i, item := range items {
		if i == selected {
			b.WriteString(selectedStyle.Render("> " + item))
		} else {
			b.WriteString(itemStyle.Render("  " + item))
		}
		b.WriteString("\n")
	}

	return b.String()
}
