// Package banner renders framed, themed banners for terminal output.
package banner

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Alignment determines how banner content is positioned
type Alignment int

const (
	AlignLeft Alignment = iota
	AlignCenter
	AlignRight
)

// ParseAlignment maps a name to an Alignment, defaulting to left
func ParseAlignment(name string) Alignment {
	switch name {
	case "center":
		return AlignCenter
	case "right":
		return AlignRight
	default:
		return AlignLeft
	}
}

func (a Alignment) position() lipgloss.Position {
	switch a {
	case AlignCenter:
		return lipgloss.Center
	case AlignRight:
		return lipgloss.Right
	default:
		return lipgloss.Left
	}
}

// Banner builds a framed block of text. Methods chain so callers can
// configure and render in one expression.
type Banner struct {
	title  string
	lines  []string
	width  int
	align  Alignment
	theme  Theme
	border string
}

// New creates a banner with the given title and the default theme
func New(title string) *Banner {
	return &Banner{
		title: title,
		width: 60,
		theme: DefaultTheme(),
	}
}

// AddLine appends a content line
func (b *Banner) AddLine(line string) *Banner {
	b.lines = append(b.lines, line)
	return b
}

// Width sets the inner width of the banner
func (b *Banner) Width(w int) *Banner {
	if w > 0 {
		b.width = w
	}
	return b
}

// Align sets the content alignment
func (b *Banner) Align(a Alignment) *Banner {
	b.align = a
	return b
}

// Theme applies a named theme; unknown names keep the default
func (b *Banner) Theme(name string) *Banner {
	if t, ok := LookupTheme(name); ok {
		b.theme = t
	}
	return b
}

// Border overrides the theme's border style; unknown names are ignored
func (b *Banner) Border(name string) *Banner {
	if _, ok := LookupBorder(name); ok {
		b.border = name
	}
	return b
}

// Render produces the framed banner. It never writes to the terminal.
func (b *Banner) Render() string {
	borderName := b.border
	if borderName == "" {
		borderName = b.theme.BorderStyle
	}
	border, ok := LookupBorder(borderName)
	if !ok {
		border, _ = LookupBorder("single")
	}

	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(b.theme.Title)
	contentStyle := lipgloss.NewStyle().Foreground(b.theme.Content)

	var body strings.Builder
	body.WriteString(titleStyle.Render(b.theme.Symbol + b.title))
	for _, line := range b.lines {
		body.WriteString("\n")
		body.WriteString(contentStyle.Render(line))
	}

	frame := lipgloss.NewStyle().
		Border(border).
		BorderForeground(b.theme.Border).
		Padding(0, 1).
		Width(b.width).
		Align(b.align.position())

	return frame.Render(body.String())
}
