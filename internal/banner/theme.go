package banner

import (
	"sort"

	"github.com/charmbracelet/lipgloss"
)

// Theme is a named set of banner colors with an optional symbol prefix
// and preferred border style
type Theme struct {
	Name        string
	Border      lipgloss.Color
	Title       lipgloss.Color
	Content     lipgloss.Color
	Symbol      string
	BorderStyle string
}

var themes = map[string]Theme{
	"default": {
		Name:        "default",
		Border:      lipgloss.Color("15"),
		Title:       lipgloss.Color("15"),
		Content:     lipgloss.Color("7"),
		BorderStyle: "single",
	},
	"error": {
		Name:        "error",
		Border:      lipgloss.Color("1"),
		Title:       lipgloss.Color("9"),
		Content:     lipgloss.Color("7"),
		Symbol:      "⚠ ",
		BorderStyle: "bold",
	},
	"success": {
		Name:        "success",
		Border:      lipgloss.Color("2"),
		Title:       lipgloss.Color("10"),
		Content:     lipgloss.Color("7"),
		Symbol:      "✓ ",
		BorderStyle: "rounded",
	},
	"warning": {
		Name:        "warning",
		Border:      lipgloss.Color("3"),
		Title:       lipgloss.Color("11"),
		Content:     lipgloss.Color("7"),
		Symbol:      "⚠ ",
		BorderStyle: "single",
	},
	"info": {
		Name:        "info",
		Border:      lipgloss.Color("4"),
		Title:       lipgloss.Color("12"),
		Content:     lipgloss.Color("7"),
		Symbol:      "ℹ ",
		BorderStyle: "single",
	},
	"cyberpunk": {
		Name:        "cyberpunk",
		Border:      lipgloss.Color("#FF0099"),
		Title:       lipgloss.Color("#00FFFF"),
		Content:     lipgloss.Color("#CCCC00"),
		Symbol:      "⚡ ",
		BorderStyle: "double",
	},
}

// DefaultTheme returns the default theme
func DefaultTheme() Theme {
	return themes["default"]
}

// LookupTheme returns the theme registered under name
func LookupTheme(name string) (Theme, bool) {
	t, ok := themes[name]
	return t, ok
}

// ThemeNames returns all registered theme names, sorted
func ThemeNames() []string {
	names := make([]string, 0, len(themes))
	for name := range themes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
