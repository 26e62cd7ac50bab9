// Package motion provides finite interpolation sequences used to smooth
// value changes over frames: damped springs and fixed-duration timing curves.
//
// A Profile starts a Sequence from a current value towards a target. A
// Sequence is lazy and finite: every call to Next computes one frame, and the
// last frame always lands exactly on the target. Sequences are not restartable;
// moving to a new target means starting a new one.
package motion

// Sequence is a finite series of values converging on a target.
type Sequence interface {
	// Next returns the value for the next frame. done is true when the
	// returned value is the target and the sequence is exhausted; further
	// calls keep returning the target.
	Next() (value float64, done bool)

	// Target returns the value the sequence converges on.
	Target() float64
}

// Profile describes how a value travels from its current position to a target.
type Profile interface {
	Start(current, target float64) Sequence
}

// DefaultFPS is the frame rate used when a profile does not set one.
const DefaultFPS = 60

func fpsOrDefault(fps int) int {
	if fps <= 0 {
		return DefaultFPS
	}
	return fps
}
