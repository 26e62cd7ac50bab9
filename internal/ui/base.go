package ui

// Base holds the size every component is laid out at. Embed it in component
// models:
//
//	type Model struct {
//	    ui.Base
//	    sections []contacts.Section
//	}
type Base struct {
	width, height int
}

// SetSize sets the component dimensions. Negative values are treated as zero.
func (b *Base) SetSize(width, height int) {
	b.width = max(width, 0)
	b.height = max(height, 0)
}

// Size returns the component dimensions.
func (b Base) Size() (width, height int) {
	return b.width, b.height
}

// Width returns the component width.
func (b Base) Width() int {
	return b.width
}

// Height returns the component height.
func (b Base) Height() int {
	return b.height
}

// Hidden reports whether the component has no room to draw in.
func (b Base) Hidden() bool {
	return b.width == 0 || b.height == 0
}
