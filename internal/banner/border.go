package banner

import (
	"sort"

	"github.com/charmbracelet/lipgloss"
)

var borders = map[string]lipgloss.Border{
	"ascii": {
		Top: "-", Bottom: "-", Left: "|", Right: "|",
		TopLeft: "+", TopRight: "+", BottomLeft: "+", BottomRight: "+",
	},
	"single":  lipgloss.NormalBorder(),
	"rounded": lipgloss.RoundedBorder(),
	"double":  lipgloss.DoubleBorder(),
	"bold":    lipgloss.ThickBorder(),
}

// LookupBorder returns the border style registered under name
func LookupBorder(name string) (lipgloss.Border, bool) {
	b, ok := borders[name]
	return b, ok
}

// BorderNames returns all registered border style names, sorted
func BorderNames() []string {
	names := make([]string, 0, len(borders))
	for name := range borders {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
