package reactive

import (
	"sync"
	"sync/atomic"
)

// Memo is a cached derived value. The computation runs lazily on first Get
// and again only after a dependency changed. Reading a memo subscribes the
// current listener, so effects re-run when the memo's value is invalidated.
type Memo[T any] struct {
	dep depCore

	// compute derives the value; its reads are tracked as sources.
	compute func() T

	// value is the cached result, valid while dirty is false.
	value T
	mu    sync.Mutex

	// dirty marks the cache as stale.
	dirty atomic.Bool

	// sources the last computation subscribed to.
	sources   []*depCore
	sourcesMu sync.Mutex
}

// NewMemo creates a memo over the given computation.
func NewMemo[T any](compute func() T) *Memo[T] {
	m := &Memo[T]{
		dep:     depCore{id: nextID()},
		compute: compute,
	}
	m.dirty.Store(true)
	return m
}

// Get returns the memo's value, recomputing if stale, and subscribes the
// current listener.
func (m *Memo[T]) Get() T {
	m.mu.Lock()
	if m.dirty.Load() {
		m.recompute()
	}
	value := m.value
	m.mu.Unlock()

	m.dep.track()

	return value
}

// Peek returns the value without subscribing, recomputing if stale.
func (m *Memo[T]) Peek() T {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.dirty.Load() {
		m.recompute()
	}
	return m.value
}

// recompute re-derives the value with this memo as the tracked listener.
// Caller holds m.mu.
func (m *Memo[T]) recompute() {
	m.sourcesMu.Lock()
	for _, source := range m.sources {
		source.unsubscribe(m)
	}
	m.sources = m.sources[:0]
	m.sourcesMu.Unlock()

	old := setCurrentListener(m)
	m.value = m.compute()
	setCurrentListener(old)

	m.dirty.Store(false)
}

// MarkDirty implements Listener: invalidate the cache and propagate to the
// memo's own subscribers.
func (m *Memo[T]) MarkDirty() {
	if m.dirty.Swap(true) {
		return
	}
	m.dep.notify()
}

// ID implements Listener.
func (m *Memo[T]) ID() uint64 {
	return m.dep.id
}

// addSource records a dependency of the computation.
func (m *Memo[T]) addSource(source *depCore) {
	m.sourcesMu.Lock()
	defer m.sourcesMu.Unlock()

	for _, s := range m.sources {
		if s == source {
			return
		}
	}
	m.sources = append(m.sources, source)
}
