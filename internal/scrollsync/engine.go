package scrollsync

import (
	"sync/atomic"
	"time"

	"github.com/llehouerou/rolodex/internal/motion"
)

// Options configures the interpolations used by an Engine.
type Options struct {
	// Spring smooths list scrolling, rail dragging and scale changes.
	Spring motion.Spring
	// Jump is the fixed-duration curve used when a rail drag begins.
	Jump motion.Timing
	// Fade eases the indicator border.
	Fade motion.Timing
}

// DefaultOptions returns the engine defaults at the given frame rate:
// a critically damped spring, a 500ms elastic jump and a 300ms border fade.
func DefaultOptions(fps int) Options {
	return Options{
		Spring: motion.CriticalSpring(fps),
		Jump: motion.Timing{
			FPS:      fps,
			Duration: 500 * time.Millisecond,
			Easing:   motion.Elastic(1),
		},
		Fade: motion.Timing{
			FPS:      fps,
			Duration: 300 * time.Millisecond,
			Easing:   motion.InOutQuad,
		},
	}
}

// Engine owns the shared position and calibration for one list/rail pair and
// wires the drivers and presenters to them.
type Engine struct {
	state     *PositionState
	calib     *Calibration
	list      *ListDriver
	rail      *ScrollbarDriver
	indicator *IndicatorPresenter
	items     *RailPresenter

	closed atomic.Bool
}

// NewEngine creates an engine for n sections.
func NewEngine(n int, opts Options) *Engine {
	state := NewPositionState(n)
	calib := &Calibration{}
	return &Engine{
		state:     state,
		calib:     calib,
		list:      newListDriver(state, calib, opts.Spring),
		rail:      newScrollbarDriver(state, calib, opts.Jump, opts.Spring),
		indicator: newIndicatorPresenter(state, calib, opts.Spring, opts.Fade),
		items:     newRailPresenter(state, opts.Spring),
	}
}

// State returns the shared position.
func (e *Engine) State() *PositionState { return e.state }

// Calibration returns the measured geometry.
func (e *Engine) Calibration() *Calibration { return e.calib }

// List returns the list driver.
func (e *Engine) List() *ListDriver { return e.list }

// Rail returns the rail driver.
func (e *Engine) Rail() *ScrollbarDriver { return e.rail }

// Indicator returns the puck presenter.
func (e *Engine) Indicator() *IndicatorPresenter { return e.indicator }

// Items returns the rail item presenter.
func (e *Engine) Items() *RailPresenter { return e.items }

// Len returns the number of sections.
func (e *Engine) Len() int { return e.state.Len() }

// Tick advances every in-flight interpolation by one frame. It returns true
// while anything is still moving. Only the driver owning the index gets its
// frame written; the other one's interpolation is dropped.
func (e *Engine) Tick() bool {
	if e.closed.Load() {
		return false
	}
	listActive := e.list.step()
	railActive := e.rail.step()
	indicatorActive := e.indicator.step()
	itemsActive := e.items.step()
	return listActive || railActive || indicatorActive || itemsActive
}

// Animating reports whether a Tick would move anything.
func (e *Engine) Animating() bool {
	if e.closed.Load() {
		return false
	}
	if e.list.channel.Active() || e.rail.channel.Active() {
		return true
	}
	if e.indicator.scale.Active() || e.indicator.border.Active() {
		return true
	}
	for _, c := range e.items.scales {
		if c.Active() {
			return true
		}
	}
	return false
}

// Settle ticks until nothing moves or maxFrames have elapsed, and returns the
// number of frames ticked.
func (e *Engine) Settle(maxFrames int) int {
	frames := 0
	for frames < maxFrames && e.Animating() {
		e.Tick()
		frames++
	}
	return frames
}

// Close abandons every in-flight interpolation without writing it and tears
// the shared state down.
func (e *Engine) Close() {
	if e.closed.Swap(true) {
		return
	}
	e.list.stop()
	e.rail.stop()
	e.indicator.close()
	e.items.close()
	e.state.Close()
}
