package scrollsync

import (
	"math"
	"sync"

	"github.com/llehouerou/rolodex/internal/motion"
)

// PointerID identifies the pointer performing a rail gesture.
type PointerID int

// ScrollbarDriver turns drag gestures on the rail into index writes.
//
// Begin claims the index for the rail and jumps to the touched item with a
// fixed-duration curve. Update follows the pointer with a spring, ignoring
// samples past either end of the rail. End lowers the indicator but leaves
// the rail as owner, so the list stays where the rail left it until it is
// touched again.
//
// Phases are serialised per pointer: a Begin from a second pointer while a
// drag is in progress is ignored, as are Update and End from any pointer
// other than the one that began the drag.
type ScrollbarDriver struct {
	state   *PositionState
	calib   *Calibration
	jump    motion.Profile
	follow  motion.Profile
	channel *motion.Channel

	mu       sync.Mutex
	pointer  PointerID
	dragging bool
}

func newScrollbarDriver(state *PositionState, calib *Calibration, jump, follow motion.Profile) *ScrollbarDriver {
	return &ScrollbarDriver{
		state:   state,
		calib:   calib,
		jump:    jump,
		follow:  follow,
		channel: motion.NewChannel(0),
	}
}

// Begin starts a drag at y, relative to the top of the rail. It returns false
// when another pointer is already dragging.
func (d *ScrollbarDriver) Begin(p PointerID, y float64) bool {
	d.mu.Lock()
	if d.dragging && d.pointer != p {
		d.mu.Unlock()
		return false
	}
	d.dragging = true
	d.pointer = p
	d.mu.Unlock()

	// Owner first, so no reader sees the new index under the old owner.
	d.state.Claim(OwnerScrollbar)
	d.state.SetIndicatorActive(true)

	if raw, ok := d.RawIndex(y); ok {
		d.channel.AnimateFrom(d.jump, d.state.Index(), raw)
	}
	return true
}

// Update moves the drag to y. It returns true when the sample produced a new
// index target.
func (d *ScrollbarDriver) Update(p PointerID, y float64) bool {
	if !d.isDragging(p) {
		return false
	}
	snap := d.state.Snapshot()
	if snap.Owner != OwnerScrollbar {
		return false
	}
	raw, ok := d.RawIndex(y)
	if !ok {
		return false
	}
	d.channel.AnimateFrom(d.follow, snap.Index, raw)
	return true
}

// End finishes the drag. The index keeps settling on its last target.
func (d *ScrollbarDriver) End(p PointerID) bool {
	d.mu.Lock()
	if !d.dragging || d.pointer != p {
		d.mu.Unlock()
		return false
	}
	d.dragging = false
	d.mu.Unlock()

	d.state.SetIndicatorActive(false)
	return true
}

// Active returns the pointer currently dragging, if any.
func (d *ScrollbarDriver) Active() (PointerID, bool) {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.pointer, d.dragging
}

// RawIndex converts a rail position to the item under it. ok is false before
// the rail is calibrated and for positions outside the rail.
func (d *ScrollbarDriver) RawIndex(y float64) (float64, bool) {
	rail, ok := d.calib.Rail()
	if !ok {
		return 0, false
	}
	raw := math.Floor(y / rail)
	if raw < 0 || raw >= float64(d.state.Len()) {
		return 0, false
	}
	return raw, true
}

// ItemCenter returns the rail position of the middle of item i.
func (d *ScrollbarDriver) ItemCenter(i int) (float64, bool) {
	rail, ok := d.calib.Rail()
	if !ok {
		return 0, false
	}
	return (float64(i) + 0.5) * rail, true
}

func (d *ScrollbarDriver) isDragging(p PointerID) bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.dragging && d.pointer == p
}

func (d *ScrollbarDriver) step() bool {
	v, moved := d.channel.Step()
	if !moved {
		return false
	}
	if !d.state.WriteIndex(OwnerScrollbar, v) {
		d.channel.Stop()
		return false
	}
	return d.channel.Active()
}

func (d *ScrollbarDriver) stop() {
	d.channel.Stop()
}
