package motion

import "sync"

// Channel drives one animated value. At most one sequence is in flight:
// animating towards a different target replaces it, animating towards the
// target already in flight keeps it, and animating an idle value to itself
// starts nothing. Channel is safe for concurrent use.
type Channel struct {
	mu    sync.Mutex
	value float64
	seq   Sequence
}

// NewChannel creates an idle channel holding initial.
func NewChannel(initial float64) *Channel {
	return &Channel{value: initial}
}

// Value returns the value produced by the last step (or the last Set).
func (c *Channel) Value() float64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.value
}

// Set jumps to v and abandons any in-flight sequence.
func (c *Channel) Set(v float64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.value = v
	c.seq = nil
}

// AnimateTo starts moving from the current value to target.
func (c *Channel) AnimateTo(p Profile, target float64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.animateLocked(p, c.value, target)
}

// AnimateFrom starts moving from an explicit value to target. Use it when the
// value was changed outside the channel since its last step.
func (c *Channel) AnimateFrom(p Profile, from, target float64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.animateLocked(p, from, target)
}

func (c *Channel) animateLocked(p Profile, from, target float64) {
	if c.seq != nil && c.seq.Target() == target {
		return
	}
	if c.seq == nil && from == target {
		c.value = from
		return
	}
	c.value = from
	c.seq = p.Start(from, target)
}

// Step advances the in-flight sequence by one frame. It returns the new value
// and true, or the held value and false when the channel is idle.
func (c *Channel) Step() (float64, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.seq == nil {
		return c.value, false
	}
	v, done := c.seq.Next()
	c.value = v
	if done {
		c.seq = nil
	}
	return v, true
}

// Active reports whether a sequence is in flight.
func (c *Channel) Active() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.seq != nil
}

// Target returns the in-flight target, if any.
func (c *Channel) Target() (float64, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.seq == nil {
		return 0, false
	}
	return c.seq.Target(), true
}

// Stop abandons the in-flight sequence without producing its remaining frames.
func (c *Channel) Stop() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.seq = nil
}
