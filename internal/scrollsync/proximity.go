package scrollsync

import "math"

const (
	// highlightRadius is the distance below which a rail item is the current one.
	highlightRadius = 0.5

	// elevationStretch widens the cosine so the falloff spans several
	// neighbours instead of only the adjacent item.
	elevationStretch = 2.0 / 3.0
)

// ElevationRadius is the distance at and beyond which items are not elevated.
var ElevationRadius = 1.5 * math.Pi

// Emphasis is the visual weight of one rail item relative to the index.
type Emphasis struct {
	Highlighted bool
	Elevation   float64 // 1 at the index, 0 at ElevationRadius and beyond
}

// Offset returns how far the item is pulled out of the rail, given the
// offset of a fully elevated item.
func (e Emphasis) Offset(maxOffset float64) float64 {
	return e.Elevation * maxOffset
}

// Proximity computes the emphasis of the item at ordinal i for a fractional
// index.
func Proximity(index float64, i int) Emphasis {
	distance := math.Abs(index - float64(i))

	e := Emphasis{Highlighted: distance < highlightRadius}
	if distance < ElevationRadius {
		e.Elevation = (math.Cos(distance*elevationStretch) + 1) / 2
	}
	return e
}

// Field computes the emphasis of every item of an n-item rail.
func Field(index float64, n int) []Emphasis {
	field := make([]Emphasis, max(n, 0))
	for i := range field {
		field[i] = Proximity(index, i)
	}
	return field
}
