// Package reactive provides the reactive primitives consumed by the
// Reflow renderer: value cells, derived values, shallow-reactive maps, and
// side-effect runners.
//
// # Core Types
//
// Signal[T] is a reactive value container:
//
//	count := NewSignal(0)
//	value := count.Get()  // Read (subscribes current listener)
//	count.Set(5)          // Write (notifies subscribers)
//
// Map is a shallow-reactive string-keyed map with per-key dependency
// tracking; component props and state are built on it.
//
// Memo[T] is a cached derived computation that recomputes only when a
// dependency changed.
//
// Effect runs a function and re-runs it when anything it read changes:
//
//	NewEffect(func() Cleanup {
//	    fmt.Println("Count is:", count.Get())
//	    return nil
//	})
//
// # Scheduling
//
// By default a write re-runs affected effects inline. A Scheduler
// intercepts re-runs instead: writes enqueue effects deduplicated by ID,
// and Flush drains the queue once, with re-entry guarded. Batch
// additionally coalesces notifications across several writes.
//
// # Thread Safety
//
// Primitives are safe for concurrent use; the tracking context is
// per-goroutine. The renderer itself is single-threaded and relies only on
// the synchronous guarantees.
package reactive
