// Package layout provides pure functions for UI dimension calculations.
package layout

import "github.com/llehouerou/rolodex/internal/ui"

// MinListWidth is the narrowest the contact list gets before the rail is
// squeezed instead.
const MinListWidth = 16

// ContentOpts contains the parameters needed to calculate content height.
type ContentOpts struct {
	HeaderHeight int
	FooterHeight int // grows when full help is shown
}

// ContentHeight calculates the available height for the list and rail:
// the terminal height minus header and footer.
func ContentHeight(windowHeight int, opts ContentOpts) int {
	height := windowHeight
	height -= opts.HeaderHeight
	height -= opts.FooterHeight
	return max(height, 0)
}

// RailWidth returns the width of the rail column for a given maximum item
// offset: margin, offset room, label, space, tick and a trailing margin.
func RailWidth(maxOffset int) int {
	return ui.RailMargin + max(maxOffset, 0) + ui.RailLabelWidth + 1 + ui.RailTickWidth + ui.RailMargin
}

// ListWidth calculates the width left for the contact list.
func ListWidth(windowWidth, railWidth int) int {
	return max(windowWidth-railWidth, 0)
}

// RailTop returns the first content row of a rail block of blockHeight lines
// centred in contentHeight. Blocks taller than the content start at the top.
func RailTop(contentHeight, blockHeight int) int {
	return max((contentHeight-blockHeight)/2, 0)
}

// Region identifies what part of the screen a cell belongs to.
type Region int

const (
	RegionNone Region = iota
	RegionHeader
	RegionList
	RegionRail
	RegionFooter
)

// Screen describes the current screen split, for hit testing mouse events.
type Screen struct {
	Width         int
	Height        int
	HeaderHeight  int
	ContentHeight int
	RailWidth     int
}

// RegionAt returns the region containing the 0-based cell (x, y).
func (s Screen) RegionAt(x, y int) Region {
	if x < 0 || y < 0 || x >= s.Width || y >= s.Height {
		return RegionNone
	}
	if y < s.HeaderHeight {
		return RegionHeader
	}
	if y >= s.HeaderHeight+s.ContentHeight {
		return RegionFooter
	}
	if x >= ListWidth(s.Width, s.RailWidth) {
		return RegionRail
	}
	return RegionList
}

// ContentRow converts a screen row to a row within the content area. The
// result may be negative or past the content for rows outside it.
func (s Screen) ContentRow(y int) int {
	return y - s.HeaderHeight
}
