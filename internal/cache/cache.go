// Package cache provides the append-only memoization maps shared by the
// parser, the formatter and the conversion engine.
package cache

import "sync"

// Map is a concurrent insert-if-absent map. Entries are never removed or
// replaced: the first stored value for a key wins.
type Map[K comparable, V any] struct {
	mu      sync.RWMutex
	entries map[K]V
}

// New returns an empty map.
func New[K comparable, V any]() *Map[K, V] {
	return &Map[K, V]{entries: make(map[K]V)}
}

// Load returns the value stored for key.
func (m *Map[K, V]) Load(key K) (V, bool) {
	m.mu.RLock()
	v, ok := m.entries[key]
	m.mu.RUnlock()
	return v, ok
}

// LoadOrStore returns the existing value for key when present. Otherwise it
// stores and returns value. The boolean reports whether the value was loaded.
func (m *Map[K, V]) LoadOrStore(key K, value V) (V, bool) {
	if v, ok := m.Load(key); ok {
		return v, true
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.entries == nil {
		m.entries = make(map[K]V)
	}
	if v, ok := m.entries[key]; ok {
		return v, true
	}
	m.entries[key] = value
	return value, false
}

// LoadOrCompute returns the value for key, computing and storing it on a
// miss. A failed computation stores nothing. Concurrent misses may compute
// redundantly; only the first result is kept.
func (m *Map[K, V]) LoadOrCompute(key K, compute func() (V, error)) (V, error) {
	if v, ok := m.Load(key); ok {
		return v, nil
	}
	v, err := compute()
	if err != nil {
		var zero V
		return zero, err
	}
	v, _ = m.LoadOrStore(key, v)
	return v, nil
}

// Len returns the number of entries.
func (m *Map[K, V]) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.entries)
}
