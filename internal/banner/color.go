package banner

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"
)

// Gradient colors text with a linear blend from startHex to endHex.
// Whitespace runes are left uncolored.
func Gradient(text, startHex, endHex string) (string, error) {
	start, err := colorful.Hex(startHex)
	if err != nil {
		return "", fmt.Errorf("parsing start color: %w", err)
	}
	end, err := colorful.Hex(endHex)
	if err != nil {
		return "", fmt.Errorf("parsing end color: %w", err)
	}

	runes := []rune(text)
	if len(runes) == 0 {
		return "", nil
	}

	// The first rune is exactly start, the last exactly end.
	denom := len(runes) - 1
	if denom < 1 {
		denom = 1
	}

	var b strings.Builder
	for i, r := range runes {
		if unicode.IsSpace(r) {
			b.WriteRune(r)
			continue
		}
		t := float64(i) / float64(denom)
		c := start.BlendRgb(end, t)
		b.WriteString(lipgloss.NewStyle().
			Foreground(lipgloss.Color(c.Hex())).
			Render(string(r)))
	}
	return b.String(), nil
}

var rainbowColors = []lipgloss.Color{"1", "3", "2", "6", "4", "5"}

// Rainbow cycles text through the six base terminal colors.
// Whitespace runes are left uncolored but still advance the cycle,
// so the same column always gets the same color.
func Rainbow(text string) string {
	var b strings.Builder
	for i, r := range []rune(text) {
		if unicode.IsSpace(r) {
			b.WriteRune(r)
			continue
		}
		color := rainbowColors[i%len(rainbowColors)]
		b.WriteString(lipgloss.NewStyle().
			Foreground(color).
			Render(string(r)))
	}
	return b.String()
}
