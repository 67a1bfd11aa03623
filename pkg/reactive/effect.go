package reactive

import (
	"sync"
	"sync/atomic"
)

// Effect represents a reactive side effect that re-runs when its
// dependencies change. The effect function runs once on creation, tracking
// every signal or map key it reads; any later write to one of those
// re-runs the function — inline by default, or through a Scheduler when
// one is configured.
type Effect struct {
	id uint64

	// fn is the effect function.
	fn func() Cleanup

	// cleanup from the last run, called before the next run and on Stop.
	cleanup Cleanup

	// sources this effect subscribed to during its last run.
	sources   []*depCore
	sourcesMu sync.Mutex

	// scheduler intercepts re-runs when non-nil.
	scheduler *Scheduler

	// pending indicates the effect is scheduled for re-run.
	pending atomic.Bool

	// stopped indicates the effect has been stopped.
	stopped atomic.Bool
}

// EffectOption configures an Effect.
type EffectOption func(*Effect)

// WithScheduler routes the effect's re-runs through a Scheduler instead of
// running them inline on write.
func WithScheduler(s *Scheduler) EffectOption {
	return func(e *Effect) {
		e.scheduler = s
	}
}

// NewEffect creates an effect and runs it immediately.
func NewEffect(fn func() Cleanup, opts ...EffectOption) *Effect {
	e := &Effect{
		id: nextID(),
		fn: fn,
	}
	for _, opt := range opts {
		opt(e)
	}
	e.run()
	return e
}

// MarkDirty implements Listener. The first notification between runs wins;
// further writes before the re-run are coalesced by the pending flag.
func (e *Effect) MarkDirty() {
	if e.stopped.Load() {
		return
	}

	if e.pending.CompareAndSwap(false, true) {
		if e.scheduler != nil {
			e.scheduler.enqueue(e)
			return
		}
		e.run()
	}
}

// ID implements Listener.
func (e *Effect) ID() uint64 {
	return e.id
}

// Run re-executes the effect immediately, regardless of scheduling state.
func (e *Effect) Run() {
	e.run()
}

// run executes the effect function, re-collecting dependencies.
func (e *Effect) run() {
	if e.stopped.Load() {
		return
	}

	e.pending.Store(false)

	if e.cleanup != nil {
		e.cleanup()
		e.cleanup = nil
	}

	// Drop stale subscriptions; the run below re-subscribes what it reads.
	e.sourcesMu.Lock()
	for _, source := range e.sources {
		source.unsubscribe(e)
	}
	e.sources = e.sources[:0]
	e.sourcesMu.Unlock()

	oldListener := setCurrentListener(e)
	e.cleanup = e.fn()
	setCurrentListener(oldListener)
}

// addSource records a dependency. Called by sources on tracked reads.
func (e *Effect) addSource(source *depCore) {
	e.sourcesMu.Lock()
	defer e.sourcesMu.Unlock()

	for _, s := range e.sources {
		if s == source {
			return
		}
	}
	e.sources = append(e.sources, source)
}

// Stop runs the cleanup and unsubscribes from all sources. A stopped
// effect never runs again.
func (e *Effect) Stop() {
	if e.stopped.Swap(true) {
		return
	}

	if e.cleanup != nil {
		e.cleanup()
		e.cleanup = nil
	}

	e.sourcesMu.Lock()
	for _, source := range e.sources {
		source.unsubscribe(e)
	}
	e.sources = nil
	e.sourcesMu.Unlock()
}

// Stopped reports whether Stop has been called.
func (e *Effect) Stopped() bool {
	return e.stopped.Load()
}
