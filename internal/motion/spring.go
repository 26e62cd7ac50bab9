package motion

import (
	"math"

	"github.com/charmbracelet/harmonica"
)

// Spring is a damped harmonic oscillator profile.
// Damping of 1 is critically damped: the value reaches the target as fast as
// possible without oscillating. Values below 1 overshoot.
type Spring struct {
	FPS       int
	Frequency float64 // angular frequency in rad/s
	Damping   float64 // damping ratio

	// Epsilon is the distance and speed below which the spring counts as
	// settled. Zero uses DefaultEpsilon.
	Epsilon float64

	// MaxFrames bounds the sequence length. Zero allows five seconds of frames.
	MaxFrames int
}

// DefaultEpsilon is the settle threshold used when a spring sets none.
const DefaultEpsilon = 1e-3

// CriticalSpring returns a critically damped spring at the given frame rate.
func CriticalSpring(fps int) Spring {
	return Spring{FPS: fps, Frequency: 10, Damping: 1}
}

// Start implements Profile.
func (s Spring) Start(current, target float64) Sequence {
	fps := fpsOrDefault(s.FPS)

	freq := s.Frequency
	if freq <= 0 {
		freq = 10
	}
	damping := s.Damping
	if damping <= 0 {
		damping = 1
	}
	eps := s.Epsilon
	if eps <= 0 {
		eps = DefaultEpsilon
	}
	maxFrames := s.MaxFrames
	if maxFrames <= 0 {
		maxFrames = fps * 5
	}

	return &springSequence{
		spring:    harmonica.NewSpring(harmonica.FPS(fps), freq, damping),
		pos:       current,
		target:    target,
		eps:       eps,
		maxFrames: maxFrames,
	}
}

type springSequence struct {
	spring    harmonica.Spring
	pos, vel  float64
	target    float64
	eps       float64
	frame     int
	maxFrames int
	done      bool
}

func (q *springSequence) Target() float64 { return q.target }

func (q *springSequence) Next() (float64, bool) {
	if q.done {
		return q.target, true
	}

	q.frame++
	q.pos, q.vel = q.spring.Update(q.pos, q.vel, q.target)

	settled := math.Abs(q.pos-q.target) < q.eps && math.Abs(q.vel) < q.eps
	if settled || q.frame >= q.maxFrames {
		q.done = true
		q.pos, q.vel = q.target, 0
		return q.target, true
	}
	return q.pos, false
}
