// Package ui provides shared UI constants and utilities.
package ui

// Layout constants for consistent sizing across UI components.
const (
	// ScrollStep is the number of lines j/k moves the list.
	ScrollStep = 1

	// WheelStep is the number of lines a mouse wheel notch moves the list.
	WheelStep = 3

	// RailLabelWidth is the widest section title the rail shows, in cells.
	RailLabelWidth = 2

	// RailTickWidth is the width of the tick drawn after each rail label;
	// the indicator puck sits on it.
	RailTickWidth = 2

	// RailMargin is the blank column between the list and the rail, and
	// after the rail.
	RailMargin = 1

	// FooterHeight is the height of the short help line.
	FooterHeight = 1
)
