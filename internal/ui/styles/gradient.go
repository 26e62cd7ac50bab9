package styles

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/rivo/uniseg"
)

// neutral stands in for colors that are not hex (ANSI palette indexes).
var neutral = colorful.Color{R: 0.5, G: 0.5, B: 0.5}

// Blend mixes from and to in HCL space; t is clamped to [0, 1].
func Blend(from, to lipgloss.Color, t float64) lipgloss.Color {
	switch {
	case t <= 0:
		return lipgloss.Color(toColorful(from).Hex())
	case t >= 1:
		return lipgloss.Color(toColorful(to).Hex())
	}
	return lipgloss.Color(toColorful(from).BlendHcl(toColorful(to), t).Clamped().Hex())
}

// ApplyGradient renders bold text with a horizontal color gradient, one
// color per grapheme cluster.
func ApplyGradient(text string, from, to lipgloss.Color) string {
	var clusters []string
	gr := uniseg.NewGraphemes(text)
	for gr.Next() {
		clusters = append(clusters, gr.Str())
	}

	switch len(clusters) {
	case 0:
		return ""
	case 1:
		return lipgloss.NewStyle().Foreground(from).Bold(true).Render(text)
	}

	var b strings.Builder
	last := float64(len(clusters) - 1)
	for i, cluster := range clusters {
		c := Blend(from, to, float64(i)/last)
		b.WriteString(lipgloss.NewStyle().Foreground(c).Bold(true).Render(cluster))
	}
	return b.String()
}

func toColorful(c lipgloss.Color) colorful.Color {
	hex := string(c)
	if strings.HasPrefix(hex, "#") {
		if col, err := colorful.Hex(hex); err == nil {
			return col
		}
	}
	return neutral
}
