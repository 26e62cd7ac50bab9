package scrollsync

import (
	"github.com/llehouerou/rolodex/internal/motion"
)

const (
	// IndicatorActiveScale is the puck scale while the rail is dragged.
	IndicatorActiveScale = 1.8
	// IndicatorActiveBorder is the puck border thickness while dragged.
	IndicatorActiveBorder = 2.0
	// HighlightScale is the scale of the highlighted rail item.
	HighlightScale = 2.0
)

// IndicatorFrame is what the puck looks like on one frame.
type IndicatorFrame struct {
	Y      float64 // distance from the top of the rail
	Scale  float64
	Border float64
	Active bool
}

// IndicatorPresenter derives the puck from the position and the rail height.
// Scale and border ease towards targets set by the indicator flag.
type IndicatorPresenter struct {
	state  *PositionState
	calib  *Calibration
	grow   motion.Profile
	fade   motion.Profile
	scale  *motion.Channel
	border *motion.Channel
	cancel []func()
}

func newIndicatorPresenter(state *PositionState, calib *Calibration, grow, fade motion.Profile) *IndicatorPresenter {
	p := &IndicatorPresenter{
		state:  state,
		calib:  calib,
		grow:   grow,
		fade:   fade,
		scale:  motion.NewChannel(1),
		border: motion.NewChannel(0),
	}
	if rail, ok := calib.Rail(); ok {
		p.border.Set(rail / 2)
	}
	p.cancel = []func(){
		state.Watch(p.retarget),
		calib.Watch(p.retarget),
	}
	return p
}

func (p *IndicatorPresenter) retarget() {
	active := p.state.IndicatorActive()
	if active {
		p.scale.AnimateTo(p.grow, IndicatorActiveScale)
		p.border.AnimateTo(p.fade, IndicatorActiveBorder)
		return
	}
	p.scale.AnimateTo(p.grow, 1)
	if rail, ok := p.calib.Rail(); ok {
		if _, animating := p.border.Target(); !animating && p.border.Value() == 0 {
			// First calibration: start at rest rather than growing from nothing.
			p.border.Set(rail / 2)
			return
		}
		p.border.AnimateTo(p.fade, rail/2)
	}
}

// Frame returns the current puck geometry.
func (p *IndicatorPresenter) Frame() IndicatorFrame {
	snap := p.state.Snapshot()
	f := IndicatorFrame{
		Scale:  p.scale.Value(),
		Border: p.border.Value(),
		Active: snap.IndicatorActive,
	}
	if rail, ok := p.calib.Rail(); ok {
		f.Y = snap.Index * rail
	}
	return f
}

func (p *IndicatorPresenter) step() bool {
	p.scale.Step()
	p.border.Step()
	return p.scale.Active() || p.border.Active()
}

func (p *IndicatorPresenter) close() {
	for _, cancel := range p.cancel {
		cancel()
	}
	p.scale.Stop()
	p.border.Stop()
}

// ItemFrame is what one rail item looks like on one frame.
type ItemFrame struct {
	Emphasis
	Scale float64 // eases between 1 and HighlightScale
}

// RailPresenter derives every rail item's emphasis from the index. The
// proximity field is a derived value of the position; each item's highlight
// scale springs towards its target instead of toggling.
type RailPresenter struct {
	field  *Derived[[]Emphasis]
	grow   motion.Profile
	scales []*motion.Channel
	cancel func()
}

func newRailPresenter(state *PositionState, grow motion.Profile) *RailPresenter {
	n := state.Len()
	p := &RailPresenter{
		field: Derive(func() []Emphasis {
			return Field(state.Index(), n)
		}, state),
		grow:   grow,
		scales: make([]*motion.Channel, n),
	}
	for i, e := range p.field.Value() {
		scale := 1.0
		if e.Highlighted {
			scale = HighlightScale
		}
		p.scales[i] = motion.NewChannel(scale)
	}
	p.cancel = p.field.Watch(p.retarget)
	return p
}

func (p *RailPresenter) retarget() {
	for i, e := range p.field.Value() {
		target := 1.0
		if e.Highlighted {
			target = HighlightScale
		}
		p.scales[i].AnimateTo(p.grow, target)
	}
}

// Frame returns every item's emphasis and eased scale.
func (p *RailPresenter) Frame() []ItemFrame {
	field := p.field.Value()
	frames := make([]ItemFrame, len(field))
	for i, e := range field {
		frames[i] = ItemFrame{Emphasis: e, Scale: p.scales[i].Value()}
	}
	return frames
}

func (p *RailPresenter) step() bool {
	active := false
	for _, c := range p.scales {
		c.Step()
		active = active || c.Active()
	}
	return active
}

func (p *RailPresenter) close() {
	p.cancel()
	p.field.Close()
	for _, c := range p.scales {
		c.Stop()
	}
}
