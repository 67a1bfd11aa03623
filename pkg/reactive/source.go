package reactive

import "sync"

// depCore provides type-erased subscriber management. It is embedded in
// Signal and Memo, and owned per-key by Map, to share subscription logic.
type depCore struct {
	id uint64

	// subs are the listeners subscribed to this dependency.
	subs []Listener

	// subMu protects the subs slice.
	subMu sync.RWMutex
}

// subscribe adds a listener, deduplicating by listener ID.
func (d *depCore) subscribe(l Listener) {
	if l == nil {
		return
	}

	d.subMu.Lock()
	defer d.subMu.Unlock()

	lid := l.ID()
	for _, existing := range d.subs {
		if existing.ID() == lid {
			return
		}
	}

	d.subs = append(d.subs, l)
}

// unsubscribe removes a listener.
func (d *depCore) unsubscribe(l Listener) {
	if l == nil {
		return
	}

	d.subMu.Lock()
	defer d.subMu.Unlock()

	lid := l.ID()
	for i, existing := range d.subs {
		if existing.ID() == lid {
			// Swap-remove; subscriber order carries no meaning.
			d.subs[i] = d.subs[len(d.subs)-1]
			d.subs = d.subs[:len(d.subs)-1]
			return
		}
	}
}

// notify tells every subscriber this dependency changed. Subscribers are
// copied out first so no lock is held during notification. Inside a batch
// the notifications queue instead and drain when the batch completes.
func (d *depCore) notify() {
	d.subMu.RLock()
	subs := make([]Listener, len(d.subs))
	copy(subs, d.subs)
	d.subMu.RUnlock()

	if getBatchDepth() > 0 {
		for _, sub := range subs {
			queuePendingUpdate(sub)
		}
		return
	}

	for _, sub := range subs {
		sub.MarkDirty()
	}
}

// track subscribes the current listener, if any, and records this source
// on the listener for later unsubscription.
func (d *depCore) track() {
	listener := getCurrentListener()
	if listener == nil {
		return
	}
	d.subscribe(listener)
	if tracker, ok := listener.(sourceTracker); ok {
		tracker.addSource(d)
	}
}
