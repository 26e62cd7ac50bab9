package scrollsync

import (
	"math"
	"sync/atomic"
)

// Dimension names a calibrated height.
type Dimension uint8

const (
	// DimensionRow is the height of one list row unit (a whole section block).
	DimensionRow Dimension = iota
	// DimensionRail is the height of one rail item.
	DimensionRail
)

// String returns the dimension name.
func (d Dimension) String() string {
	switch d {
	case DimensionRow:
		return "row"
	case DimensionRail:
		return "rail"
	default:
		return "unknown"
	}
}

// Measurement is a layout result for one dimension.
type Measurement struct {
	Dimension Dimension
	Height    float64
}

// Calibration holds the measured geometry. Each height goes from unset to a
// positive value exactly once and never changes afterwards, so repeated
// layouts cannot disturb conversions already in use. Heights are stored as
// float64 bits; zero bits mean unset.
type Calibration struct {
	row      atomic.Uint64
	rail     atomic.Uint64
	watchers watchers
}

// Observe records a measurement if its dimension is still unset.
// Non-positive or non-finite heights and unknown dimensions are ignored.
// It returns true when the measurement was applied.
func (c *Calibration) Observe(m Measurement) bool {
	if !(m.Height > 0) || math.IsInf(m.Height, 0) {
		return false
	}
	field := c.field(m.Dimension)
	if field == nil {
		return false
	}
	if !field.CompareAndSwap(0, math.Float64bits(m.Height)) {
		return false
	}
	c.watchers.notify()
	return true
}

// CalibrateRailBlock derives the rail item height from the height of the
// whole rail, measured as one block of n evenly sized items.
func (c *Calibration) CalibrateRailBlock(blockHeight float64, n int) bool {
	if n <= 0 {
		return false
	}
	return c.Observe(Measurement{Dimension: DimensionRail, Height: blockHeight / float64(n)})
}

// Row returns the list row height and whether it has been measured.
func (c *Calibration) Row() (float64, bool) {
	return load(&c.row)
}

// Rail returns the rail item height and whether it has been measured.
func (c *Calibration) Rail() (float64, bool) {
	return load(&c.rail)
}

// Watch implements Source.
func (c *Calibration) Watch(fn func()) func() {
	return c.watchers.add(fn)
}

func (c *Calibration) field(d Dimension) *atomic.Uint64 {
	switch d {
	case DimensionRow:
		return &c.row
	case DimensionRail:
		return &c.rail
	default:
		return nil
	}
}

func load(v *atomic.Uint64) (float64, bool) {
	bits := v.Load()
	if bits == 0 {
		return 0, false
	}
	return math.Float64frombits(bits), true
}
