package scrollsync

import (
	"math"
	"sync"
	"sync/atomic"
)

// register is the tagged value swapped atomically: the index is only ever
// replaced together with the owner that wrote it.
type register struct {
	owner Owner
	index float64
}

// Snapshot is a consistent read of the position.
type Snapshot struct {
	Owner           Owner
	Index           float64
	IndicatorActive bool
}

// PositionState is the shared position of the list and the rail.
//
// The {owner, index} pair is one compare-and-set register: a write carries
// the owner it was made as, and fails if another surface claimed the index
// in between. The indicator flag is an independent register.
type PositionState struct {
	n         int
	reg       atomic.Pointer[register]
	indicator atomic.Bool
	closed    atomic.Bool

	watchers watchers

	subsMu sync.RWMutex
	subs   []*Subscription
}

// NewPositionState creates a state for n sections, at index 0 owned by the list.
func NewPositionState(n int) *PositionState {
	s := &PositionState{n: max(n, 0)}
	s.reg.Store(&register{owner: OwnerList})
	return s
}

// Len returns the number of sections.
func (s *PositionState) Len() int {
	return s.n
}

// Snapshot returns the current owner, index and indicator flag.
func (s *PositionState) Snapshot() Snapshot {
	r := s.reg.Load()
	return Snapshot{
		Owner:           r.owner,
		Index:           r.index,
		IndicatorActive: s.indicator.Load(),
	}
}

// Index returns the current index.
func (s *PositionState) Index() float64 {
	return s.reg.Load().index
}

// Owner returns the surface currently allowed to write the index.
func (s *PositionState) Owner() Owner {
	return s.reg.Load().owner
}

// IndicatorActive reports whether a rail drag is in progress.
func (s *PositionState) IndicatorActive() bool {
	return s.indicator.Load()
}

// Claim makes owner the writer of the index. The last claim wins.
// It returns true when the owner changed.
func (s *PositionState) Claim(owner Owner) bool {
	if !owner.Valid() || s.closed.Load() {
		return false
	}
	for {
		cur := s.reg.Load()
		if cur.owner == owner {
			return false
		}
		next := &register{owner: owner, index: cur.index}
		if s.reg.CompareAndSwap(cur, next) {
			s.broadcast(func(sub *Subscription) {
				sub.sendOwner(OwnerChange{Previous: cur.owner, Current: owner})
			})
			return true
		}
	}
}

// WriteIndex sets the index on behalf of as. The write is rejected when as
// does not own the index, when v is not finite, or after Close. Accepted
// values are clamped to [0, N-1].
func (s *PositionState) WriteIndex(as Owner, v float64) bool {
	if s.closed.Load() || s.n == 0 || math.IsNaN(v) || math.IsInf(v, 0) {
		return false
	}
	v = s.clamp(v)
	for {
		cur := s.reg.Load()
		if cur.owner != as {
			return false
		}
		if cur.index == v {
			return true
		}
		next := &register{owner: as, index: v}
		if s.reg.CompareAndSwap(cur, next) {
			s.broadcast(func(sub *Subscription) {
				sub.sendIndex(IndexChange{Index: v, Owner: as})
			})
			return true
		}
	}
}

// SetIndicatorActive raises or lowers the rail drag indicator.
func (s *PositionState) SetIndicatorActive(active bool) {
	if s.closed.Load() {
		return
	}
	if s.indicator.Swap(active) == active {
		return
	}
	s.broadcast(func(sub *Subscription) {
		sub.sendIndicator(IndicatorChange{Active: active})
	})
}

func (s *PositionState) clamp(v float64) float64 {
	upper := float64(s.n - 1)
	if v < 0 {
		return 0
	}
	if v > upper {
		return upper
	}
	return v
}

// Watch implements Source. Watchers run synchronously after every change.
func (s *PositionState) Watch(fn func()) func() {
	return s.watchers.add(fn)
}

// Subscribe creates a channel-based subscription for readers on other
// goroutines.
func (s *PositionState) Subscribe() *Subscription {
	s.subsMu.Lock()
	defer s.subsMu.Unlock()
	sub := newSubscription()
	if s.closed.Load() {
		sub.close()
		return sub
	}
	s.subs = append(s.subs, sub)
	return sub
}

// broadcast notifies watchers first, then subscriptions.
func (s *PositionState) broadcast(send func(*Subscription)) {
	s.watchers.notify()

	s.subsMu.RLock()
	defer s.subsMu.RUnlock()
	for _, sub := range s.subs {
		send(sub)
	}
}

// Close tears the state down. Later claims and writes are ignored, watchers
// are dropped and subscriptions are closed.
func (s *PositionState) Close() {
	if s.closed.Swap(true) {
		return
	}
	s.watchers.clear()

	s.subsMu.Lock()
	for _, sub := range s.subs {
		sub.close()
	}
	s.subs = nil
	s.subsMu.Unlock()
}
