package reactive

// Batch groups multiple writes into a single notification phase. All
// notifications raised inside fn are collected, deduplicated by listener
// ID, and delivered once when the outermost batch completes.
//
// Example:
//
//	Batch(func() {
//	    first.Set("John")
//	    last.Set("Doe")
//	})
//	// One notification per affected listener.
func Batch(fn func()) {
	incrementBatchDepth()

	defer func() {
		if decrementBatchDepth() {
			processPendingUpdates()
		}
	}()

	fn()
}

// processPendingUpdates deduplicates and notifies all pending listeners.
func processPendingUpdates() {
	updates := drainPendingUpdates()
	if len(updates) == 0 {
		return
	}

	seen := make(map[uint64]bool, len(updates))
	for _, listener := range updates {
		id := listener.ID()
		if seen[id] {
			continue
		}
		seen[id] = true
		listener.MarkDirty()
	}
}
