package reactive

import "sync"

// Map is a shallow-reactive string-keyed map. Dependencies are tracked per
// key: a listener that read key "a" is notified when "a" changes or is
// deleted, but not when "b" does. Values themselves are not made reactive
// (shallow semantics). Component props and legacy data state use this.
type Map struct {
	mu     sync.RWMutex
	values map[string]any

	// deps holds the per-key dependency cores, created lazily on first
	// tracked read. A deleted key keeps its core so resurrection notifies
	// old readers.
	deps   map[string]*depCore
	depsMu sync.Mutex

	// structural is notified on key-set changes (adds and deletes), for
	// listeners that iterate.
	structural depCore
}

// NewMap creates a reactive map seeded with the given values.
// The seed map is copied.
func NewMap(seed map[string]any) *Map {
	values := make(map[string]any, len(seed))
	for k, v := range seed {
		values[k] = v
	}
	return &Map{
		values:     values,
		deps:       make(map[string]*depCore),
		structural: depCore{id: nextID()},
	}
}

// keyDep returns the dependency core for a key, creating it if needed.
func (m *Map) keyDep(key string) *depCore {
	m.depsMu.Lock()
	defer m.depsMu.Unlock()

	dep, ok := m.deps[key]
	if !ok {
		dep = &depCore{id: nextID()}
		m.deps[key] = dep
	}
	return dep
}

// Get returns the value for key and subscribes the current listener to it.
// A missing key returns nil; the read is still tracked, so a later Set of
// that key notifies.
func (m *Map) Get(key string) any {
	m.mu.RLock()
	value := m.values[key]
	m.mu.RUnlock()

	m.keyDep(key).track()

	return value
}

// Has reports whether key is present and subscribes the current listener.
func (m *Map) Has(key string) bool {
	m.mu.RLock()
	_, ok := m.values[key]
	m.mu.RUnlock()

	m.keyDep(key).track()

	return ok
}

// Peek returns the value for key without subscribing.
func (m *Map) Peek(key string) (any, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	v, ok := m.values[key]
	return v, ok
}

// Set stores a value and notifies the key's subscribers if it changed.
func (m *Map) Set(key string, value any) {
	m.mu.Lock()
	old, existed := m.values[key]
	changed := !existed || !valuesEqual(old, value)
	if changed {
		m.values[key] = value
	}
	m.mu.Unlock()

	if changed {
		m.keyDep(key).notify()
		if !existed {
			m.structural.notify()
		}
	}
}

// Delete removes a key and notifies its subscribers.
func (m *Map) Delete(key string) {
	m.mu.Lock()
	_, existed := m.values[key]
	if existed {
		delete(m.values, key)
	}
	m.mu.Unlock()

	if existed {
		m.keyDep(key).notify()
		m.structural.notify()
	}
}

// Len returns the number of keys and subscribes to structural changes.
func (m *Map) Len() int {
	m.mu.RLock()
	n := len(m.values)
	m.mu.RUnlock()

	m.structural.track()

	return n
}

// Keys returns the key set (unordered) and subscribes to structural changes.
func (m *Map) Keys() []string {
	m.mu.RLock()
	keys := make([]string, 0, len(m.values))
	for k := range m.values {
		keys = append(keys, k)
	}
	m.mu.RUnlock()

	m.structural.track()

	return keys
}

// Snapshot returns an untracked copy of the current contents.
func (m *Map) Snapshot() map[string]any {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make(map[string]any, len(m.values))
	for k, v := range m.values {
		out[k] = v
	}
	return out
}

// Readonly returns a read-only view of the map. Reads through the view are
// tracked like direct reads.
func (m *Map) Readonly() *ReadonlyMap {
	return &ReadonlyMap{m: m}
}

// ReadonlyMap is a tracked, read-only view of a Map.
type ReadonlyMap struct {
	m *Map
}

// Get returns the value for key, tracking the read.
func (r *ReadonlyMap) Get(key string) any {
	return r.m.Get(key)
}

// Has reports whether key is present, tracking the read.
func (r *ReadonlyMap) Has(key string) bool {
	return r.m.Has(key)
}
