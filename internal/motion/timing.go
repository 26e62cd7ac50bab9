package motion

import (
	"math"
	"time"
)

// Timing moves a value along an easing curve over a fixed duration, so the
// settle time is known in advance regardless of the distance travelled.
type Timing struct {
	FPS      int
	Duration time.Duration
	Easing   Easing
}

// Start implements Profile.
func (t Timing) Start(current, target float64) Sequence {
	fps := fpsOrDefault(t.FPS)
	frames := int(math.Ceil(t.Duration.Seconds() * float64(fps)))
	if frames < 1 {
		frames = 1
	}
	ease := t.Easing
	if ease == nil {
		ease = Linear
	}
	return &timingSequence{
		from:   current,
		to:     target,
		frames: frames,
		ease:   ease,
	}
}

type timingSequence struct {
	from, to float64
	frame    int
	frames   int
	ease     Easing
}

func (q *timingSequence) Target() float64 { return q.to }

func (q *timingSequence) Next() (float64, bool) {
	if q.frame >= q.frames {
		return q.to, true
	}
	q.frame++
	if q.frame == q.frames {
		return q.to, true
	}
	progress := float64(q.frame) / float64(q.frames)
	return q.from + (q.to-q.from)*q.ease(progress), false
}
