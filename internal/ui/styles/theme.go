package styles

import "github.com/charmbracelet/lipgloss"

// Theme defines the color palette and pre-built styles for the application.
type Theme struct {
	// Rail colors
	Accent    lipgloss.Color // Rail items at rest
	Highlight lipgloss.Color // Highlighted rail item and the indicator

	// Text hierarchy (most to least prominent)
	FgBase   lipgloss.Color // Primary text (bright)
	FgMuted  lipgloss.Color // Secondary text (dimmed)
	FgSubtle lipgloss.Color // Tertiary text (very dim)

	// Rail tick line
	Tick lipgloss.Color

	styles *Styles
}

// Styles contains pre-built lipgloss styles for common UI patterns.
type Styles struct {
	Base          lipgloss.Style // Default text
	Muted         lipgloss.Style // Dimmed text
	Subtle        lipgloss.Style // Very dim text
	Title         lipgloss.Style // Bold, bright
	SectionHeader lipgloss.Style // List section titles
	Tick          lipgloss.Style // Rail tick line
	Indicator     lipgloss.Style // Rail indicator puck
}

var defaultTheme = Theme{
	Accent:    lipgloss.Color("#693FC4"),
	Highlight: lipgloss.Color("#FF6548"),

	FgBase:   lipgloss.Color("#c0c0c0"),
	FgMuted:  lipgloss.Color("#808080"),
	FgSubtle: lipgloss.Color("#585858"),

	Tick: lipgloss.Color("#e4e4e4"),
}

// T returns the default theme.
func T() *Theme {
	return &defaultTheme
}

// New returns the default theme with the rail colors replaced.
func New(accent, highlight string) *Theme {
	t := defaultTheme
	t.styles = nil
	if accent != "" {
		t.Accent = lipgloss.Color(accent)
	}
	if highlight != "" {
		t.Highlight = lipgloss.Color(highlight)
	}
	return &t
}

// S returns the pre-built styles for this theme.
func (t *Theme) S() *Styles {
	if t.styles == nil {
		t.styles = t.buildStyles()
	}
	return t.styles
}

func (t *Theme) buildStyles() *Styles {
	base := lipgloss.NewStyle().Foreground(t.FgBase)

	return &Styles{
		Base:   base,
		Muted:  lipgloss.NewStyle().Foreground(t.FgMuted),
		Subtle: lipgloss.NewStyle().Foreground(t.FgSubtle),
		Title:  base.Bold(true),
		SectionHeader: lipgloss.NewStyle().
			Foreground(t.Accent).
			Bold(true),
		Tick: lipgloss.NewStyle().Foreground(t.Tick),
		Indicator: lipgloss.NewStyle().
			Foreground(t.Highlight).
			Bold(true),
	}
}

// RailItem returns the style of a rail label whose highlight scale is
// scale, between 1 (at rest) and maxScale (highlighted).
func (t *Theme) RailItem(scale, maxScale float64, highlighted bool) lipgloss.Style {
	frac := 0.0
	if maxScale > 1 {
		frac = (scale - 1) / (maxScale - 1)
	}
	return lipgloss.NewStyle().
		Foreground(Blend(t.Accent, t.Highlight, frac)).
		Bold(highlighted)
}
