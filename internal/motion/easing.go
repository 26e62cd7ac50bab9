package motion

import "math"

// Easing maps time progress (0-1) to value progress. Values may leave the
// 0-1 range in between for curves that overshoot, but must start at 0 and
// end at 1.
type Easing func(t float64) float64

var (
	// Linear moves at constant speed.
	Linear Easing = func(t float64) float64 { return t }

	// OutCubic decelerates smoothly.
	OutCubic Easing = func(t float64) float64 {
		t--
		return t*t*t + 1
	}

	// InOutQuad accelerates then decelerates.
	InOutQuad Easing = func(t float64) float64 {
		if t < 0.5 {
			return 2 * t * t
		}
		return -1 + (4-2*t)*t
	}

	// OutBack overshoots slightly then settles.
	OutBack Easing = func(t float64) float64 {
		c1 := 1.70158
		c3 := c1 + 1
		return 1 + c3*(t-1)*(t-1)*(t-1) + c1*(t-1)*(t-1)
	}
)

// Elastic returns a spring-like curve that oscillates around the target before
// settling. bounciness 0 gives no oscillation; 1 gives a single soft wobble.
func Elastic(bounciness float64) Easing {
	if bounciness < 0 {
		bounciness = 0
	}
	p := bounciness * math.Pi
	return func(t float64) float64 {
		if t <= 0 {
			return 0
		}
		if t >= 1 {
			return 1
		}
		return 1 - math.Pow(math.Cos(t*math.Pi/2), 3)*math.Cos(t*p)
	}
}

// EasingByName resolves an easing curve from its configuration name.
// Unknown names fall back to OutCubic.
func EasingByName(name string) Easing {
	switch name {
	case "out-cubic":
		return OutCubic
	case "linear":
		return Linear
	case "in-out-quad":
		return InOutQuad
	case "out-back":
		return OutBack
	case "elastic":
		return Elastic(1)
	default:
		return OutCubic
	}
}
