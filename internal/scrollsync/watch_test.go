package scrollsync

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDerive_RecomputesOnSourceChange(t *testing.T) {
	s := NewPositionState(10)
	doubled := Derive(func() float64 { return s.Index() * 2 }, s)

	assert.Equal(t, 0.0, doubled.Value())
	s.WriteIndex(OwnerList, 3)
	assert.Equal(t, 6.0, doubled.Value())
}

func TestDerive_Chains(t *testing.T) {
	s := NewPositionState(10)
	var calib Calibration

	offset := Derive(func() float64 {
		row, ok := calib.Row()
		if !ok {
			return -1
		}
		return s.Index() * row
	}, s, &calib)
	label := Derive(func() bool { return offset.Value() >= 0 }, offset)

	assert.False(t, label.Value())
	calib.Observe(Measurement{Dimension: DimensionRow, Height: 4})
	assert.True(t, label.Value())

	s.WriteIndex(OwnerList, 2)
	assert.Equal(t, 8.0, offset.Value())
}

func TestDerive_CloseDetaches(t *testing.T) {
	s := NewPositionState(10)
	d := Derive(s.Index, s)
	d.Close()

	s.WriteIndex(OwnerList, 5)
	assert.Equal(t, 0.0, d.Value())
}

func TestWatchers_CancelIsIdempotent(t *testing.T) {
	var w watchers
	calls := 0
	cancel := w.add(func() { calls++ })
	other := w.add(func() { calls += 10 })

	cancel()
	cancel()
	w.notify()
	assert.Equal(t, 10, calls)

	other()
	w.notify()
	assert.Equal(t, 10, calls)
}
