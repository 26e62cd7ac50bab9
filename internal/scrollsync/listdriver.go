package scrollsync

import (
	"math"

	"github.com/llehouerou/rolodex/internal/motion"
)

// ListDriver connects the list's scroll offset to the shared index.
//
// While the list owns the index, scroll samples are turned into section
// candidates and the index springs towards them. While the rail owns it,
// Projection gives the offset the list must show.
type ListDriver struct {
	state   *PositionState
	calib   *Calibration
	profile motion.Profile
	channel *motion.Channel
}

func newListDriver(state *PositionState, calib *Calibration, profile motion.Profile) *ListDriver {
	return &ListDriver{
		state:   state,
		calib:   calib,
		profile: profile,
		channel: motion.NewChannel(0),
	}
}

// Touch marks the start of direct interaction with the list: the list
// becomes the owner of the index.
func (d *ListDriver) Touch() {
	d.state.Claim(OwnerList)
}

// OnScroll handles one scroll-offset sample. It returns true when the sample
// produced a new index target. Samples are ignored while the rail owns the
// index, before the row height is known, and when they fall outside the list
// (overscroll).
func (d *ListDriver) OnScroll(offsetY float64) bool {
	snap := d.state.Snapshot()
	if snap.Owner != OwnerList {
		return false
	}
	candidate, ok := d.Candidate(offsetY)
	if !ok {
		return false
	}
	d.channel.AnimateFrom(d.profile, snap.Index, candidate)
	return true
}

// Candidate converts a scroll offset to the section it falls in.
func (d *ListDriver) Candidate(offsetY float64) (float64, bool) {
	row, ok := d.calib.Row()
	if !ok {
		return 0, false
	}
	candidate := math.Floor(offsetY / row)
	if candidate < 0 || candidate >= float64(d.state.Len()) {
		return 0, false
	}
	return candidate, true
}

// Projection returns the scroll offset the list must show while the rail owns
// the index. ok is false while the list owns it or before calibration.
func (d *ListDriver) Projection() (offsetY float64, ok bool) {
	snap := d.state.Snapshot()
	if snap.Owner != OwnerScrollbar {
		return 0, false
	}
	row, calibrated := d.calib.Row()
	if !calibrated {
		return 0, false
	}
	return snap.Index * row, true
}

// step advances the list's interpolation by one frame and writes it. A write
// refused because the rail took over abandons the interpolation.
func (d *ListDriver) step() bool {
	v, moved := d.channel.Step()
	if !moved {
		return false
	}
	if !d.state.WriteIndex(OwnerList, v) {
		d.channel.Stop()
		return false
	}
	return d.channel.Active()
}

func (d *ListDriver) stop() {
	d.channel.Stop()
}
