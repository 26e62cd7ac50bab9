package scrollsync

import (
	"sync"
	"sync/atomic"
)

// Source is a value that can notify dependents when it changes.
type Source interface {
	// Watch registers fn to run after every change. The returned function
	// unregisters it. fn runs on the goroutine that made the change.
	Watch(fn func()) (cancel func())
}

type watcher struct {
	id int
	fn func()
}

// watchers is an ordered observer list.
type watchers struct {
	mu     sync.RWMutex
	nextID int
	list   []watcher
}

func (w *watchers) add(fn func()) func() {
	w.mu.Lock()
	w.nextID++
	id := w.nextID
	w.list = append(w.list, watcher{id: id, fn: fn})
	w.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() { w.remove(id) })
	}
}

func (w *watchers) remove(id int) {
	w.mu.Lock()
	defer w.mu.Unlock()
	for i, entry := range w.list {
		if entry.id == id {
			w.list = append(w.list[:i], w.list[i+1:]...)
			return
		}
	}
}

func (w *watchers) clear() {
	w.mu.Lock()
	w.list = nil
	w.mu.Unlock()
}

// notify calls every watcher outside the lock so watchers may register or
// cancel others.
func (w *watchers) notify() {
	w.mu.RLock()
	list := make([]watcher, len(w.list))
	copy(list, w.list)
	w.mu.RUnlock()

	for _, entry := range list {
		entry.fn()
	}
}

// Derived is a cached value recomputed whenever one of its sources changes.
// Value may be read from any goroutine. A Derived is itself a Source, so
// derived values can depend on each other.
type Derived[T any] struct {
	compute  func() T
	value    atomic.Pointer[T]
	cancels  []func()
	watchers watchers
}

// Derive creates a Derived value computed by compute and refreshed after any
// change in sources.
func Derive[T any](compute func() T, sources ...Source) *Derived[T] {
	d := &Derived[T]{compute: compute}
	d.recompute()
	for _, src := range sources {
		d.cancels = append(d.cancels, src.Watch(d.recompute))
	}
	return d
}

func (d *Derived[T]) recompute() {
	v := d.compute()
	d.value.Store(&v)
	d.watchers.notify()
}

// Value returns the last computed value.
func (d *Derived[T]) Value() T {
	return *d.value.Load()
}

// Watch implements Source.
func (d *Derived[T]) Watch(fn func()) func() {
	return d.watchers.add(fn)
}

// Close detaches the value from its sources. The last value stays readable.
func (d *Derived[T]) Close() {
	for _, cancel := range d.cancels {
		cancel()
	}
	d.cancels = nil
	d.watchers.clear()
}
