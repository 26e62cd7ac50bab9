// Package rail renders the alphabet rail next to the contact list.
//
// Items are laid out as one block, spacing lines apart, centred in the
// available height. Each item's label is pulled left by its elevation and
// coloured by its highlight scale; the indicator puck sits on the tick
// column at the row of the current index.
package rail

import (
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/llehouerou/rolodex/internal/scrollsync"
	"github.com/llehouerou/rolodex/internal/ui"
	"github.com/llehouerou/rolodex/internal/ui/layout"
	"github.com/llehouerou/rolodex/internal/ui/render"
	"github.com/llehouerou/rolodex/internal/ui/styles"
)

// Tick is drawn after every label.
const Tick = "──"

// Puck glyphs, from resting to fully grabbed.
const (
	PuckSmall = "•"
	PuckLarge = "●"
	PuckRing  = "◉"
)

// Model is the rail component.
type Model struct {
	ui.Base
	theme     *styles.Theme
	titles    []string
	spacing   int
	maxOffset int
	engine    *scrollsync.Engine
}

// New creates a rail for titles, with items spacing lines apart and pulled
// out by at most maxOffset columns. spacing must be at least 1.
func New(th *styles.Theme, titles []string, spacing, maxOffset int) Model {
	return Model{
		theme:     th,
		titles:    titles,
		spacing:   spacing,
		maxOffset: maxOffset,
	}
}

// SetEngine attaches the engine the rail draws its frames from.
func (m *Model) SetEngine(e *scrollsync.Engine) {
	m.engine = e
}

// Len returns the number of rail items.
func (m Model) Len() int {
	return len(m.titles)
}

// Spacing returns the number of lines per item.
func (m Model) Spacing() int {
	return m.spacing
}

// Width returns the column width the rail needs.
func (m Model) Width() int {
	return layout.RailWidth(m.maxOffset)
}

// BlockHeight returns the height of the item block in lines.
func (m Model) BlockHeight() int {
	return len(m.titles) * m.spacing
}

// Top returns the content row of the first item.
func (m Model) Top() int {
	return layout.RailTop(m.Height(), m.BlockHeight())
}

// RailY converts a content row to a position within the block, measured
// from the block top to the middle of the row.
func (m Model) RailY(contentRow int) float64 {
	return float64(contentRow-m.Top()) + 0.5
}

// Calibrate reports the block height to c. It returns true the first time
// a usable height is applied.
func (m Model) Calibrate(c *scrollsync.Calibration) bool {
	return c.CalibrateRailBlock(float64(m.BlockHeight()), len(m.titles))
}

// View renders the rail for the current frame.
func (m Model) View() string {
	width := m.Width()
	height := m.Height()
	if height == 0 || len(m.titles) == 0 {
		return strings.Join(render.Block(nil, width, height), "\n")
	}

	items := m.itemFrames()
	puckRow, puck := m.puck()
	top := m.Top()

	lines := make([]string, height)
	for row := range height {
		r := row - top
		item := -1
		if r >= 0 && r%m.spacing == 0 && r/m.spacing < len(m.titles) {
			item = r / m.spacing
		}

		var b strings.Builder
		if item >= 0 {
			b.WriteString(m.renderLabel(item, items[item]))
		} else {
			b.WriteString(strings.Repeat(" ", ui.RailMargin+m.maxOffset+ui.RailLabelWidth+1))
		}

		switch {
		case puck != "" && r == puckRow:
			b.WriteString(m.theme.S().Indicator.Render(render.Pad(puck, ui.RailTickWidth)))
		case item >= 0:
			b.WriteString(m.theme.S().Tick.Render(Tick))
		default:
			b.WriteString(strings.Repeat(" ", ui.RailTickWidth))
		}
		b.WriteString(strings.Repeat(" ", ui.RailMargin))

		lines[row] = render.Fit(b.String(), width)
	}
	return strings.Join(lines, "\n")
}

// renderLabel draws the margin, offset room and label of item i, with the
// label shifted left by its elevation.
func (m Model) renderLabel(i int, f scrollsync.ItemFrame) string {
	shift := int(math.Round(f.Offset(float64(m.maxOffset))))
	shift = min(max(shift, 0), m.maxOffset)

	label := render.Truncate(m.titles[i], ui.RailLabelWidth)
	label = strings.Repeat(" ", ui.RailLabelWidth-lipgloss.Width(label)) + label

	style := m.theme.RailItem(f.Scale, scrollsync.HighlightScale, f.Highlighted)
	return strings.Repeat(" ", ui.RailMargin+m.maxOffset-shift) +
		style.Render(label) +
		strings.Repeat(" ", shift+1)
}

func (m Model) itemFrames() []scrollsync.ItemFrame {
	if m.engine != nil && m.engine.Len() == len(m.titles) {
		return m.engine.Items().Frame()
	}
	frames := make([]scrollsync.ItemFrame, len(m.titles))
	for i := range frames {
		frames[i].Scale = 1
	}
	return frames
}

// puck returns the block row and glyph of the indicator, or "" when there
// is nothing to draw yet.
func (m Model) puck() (int, string) {
	if m.engine == nil {
		return 0, ""
	}
	f := m.engine.Indicator().Frame()
	row := int(math.Round(f.Y))
	row = min(max(row, 0), m.BlockHeight()-1)
	return row, PuckGlyph(f, float64(m.spacing))
}

// PuckGlyph picks the glyph for an indicator frame on a rail whose items are
// itemHeight tall. The puck is a small dot until it has grown halfway to the
// grabbed scale, then a large dot, and a ring once its border is closer to
// the grabbed thickness than to the resting one (half the item height).
func PuckGlyph(f scrollsync.IndicatorFrame, itemHeight float64) string {
	grown := (f.Scale - 1) / (scrollsync.IndicatorActiveScale - 1)
	if grown < 0.5 {
		return PuckSmall
	}
	rest := itemHeight / 2
	if math.Abs(f.Border-scrollsync.IndicatorActiveBorder) <= math.Abs(f.Border-rest) {
		return PuckRing
	}
	return PuckLarge
}
