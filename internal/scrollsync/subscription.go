package scrollsync

import "sync"

const eventBufferSize = 16

// IndexChange is emitted after the index is written.
type IndexChange struct {
	Index float64
	Owner Owner
}

// OwnerChange is emitted when a surface claims the index.
type OwnerChange struct {
	Previous Owner
	Current  Owner
}

// IndicatorChange is emitted when a rail drag starts or ends.
type IndicatorChange struct {
	Active bool
}

// Subscription delivers position events to a reader on another goroutine.
// Sends never block the writer: events are dropped when a buffer is full.
type Subscription struct {
	IndexChanged     <-chan IndexChange
	OwnerChanged     <-chan OwnerChange
	IndicatorChanged <-chan IndicatorChange
	Done             <-chan struct{}

	indexCh     chan IndexChange
	ownerCh     chan OwnerChange
	indicatorCh chan IndicatorChange
	doneCh      chan struct{}
	closeOnce   sync.Once
}

func newSubscription() *Subscription {
	s := &Subscription{
		indexCh:     make(chan IndexChange, eventBufferSize),
		ownerCh:     make(chan OwnerChange, eventBufferSize),
		indicatorCh: make(chan IndicatorChange, eventBufferSize),
		doneCh:      make(chan struct{}),
	}
	s.IndexChanged = s.indexCh
	s.OwnerChanged = s.ownerCh
	s.IndicatorChanged = s.indicatorCh
	s.Done = s.doneCh
	return s
}

func (s *Subscription) close() {
	s.closeOnce.Do(func() { close(s.doneCh) })
}

func (s *Subscription) sendIndex(e IndexChange) {
	select {
	case s.indexCh <- e:
	default:
	}
}

func (s *Subscription) sendOwner(e OwnerChange) {
	select {
	case s.ownerCh <- e:
	default:
	}
}

func (s *Subscription) sendIndicator(e IndicatorChange) {
	select {
	case s.indicatorCh <- e:
	default:
	}
}
