// Package collection provides a small insertion-ordered map used by the
// registry to keep catalog snapshots in a stable order while still offering
// O(1) keyed access. It is not safe for concurrent use; callers hold their
// own locks.
package collection

// OrderedMap is a string-keyed map that remembers insertion order.
// Replacing an existing key keeps its original position.
type OrderedMap[V any] struct {
	keys  []string
	items map[string]V
}

// NewOrderedMap constructs an empty OrderedMap.
func NewOrderedMap[V any]() *OrderedMap[V] {
	return &OrderedMap[V]{items: make(map[string]V)}
}

// Set upserts value under key and reports whether an existing entry was
// replaced. New keys append to the iteration order; replaced keys keep
// their position.
func (m *OrderedMap[V]) Set(key string, value V) bool {
	_, exists := m.items[key]
	if !exists {
		m.keys = append(m.keys, key)
	}
	m.items[key] = value
	return exists
}

// Get returns the value stored under key.
func (m *OrderedMap[V]) Get(key string) (V, bool) {
	v, ok := m.items[key]
	return v, ok
}

// Delete removes key and reports whether it existed.
func (m *OrderedMap[V]) Delete(key string) bool {
	if _, ok := m.items[key]; !ok {
		return false
	}
	delete(m.items, key)
	for i, k := range m.keys {
		if k == key {
			m.keys = append(m.keys[:i], m.keys[i+1:]...)
			break
		}
	}
	return true
}

// Len returns the number of entries.
func (m *OrderedMap[V]) Len() int { return len(m.items) }

// Keys returns the keys in insertion order. The slice is a copy.
func (m *OrderedMap[V]) Keys() []string {
	keys := make([]string, len(m.keys))
	copy(keys, m.keys)
	return keys
}

// Values returns the values in insertion order.
func (m *OrderedMap[V]) Values() []V {
	values := make([]V, 0, len(m.keys))
	for _, k := range m.keys {
		values = append(values, m.items[k])
	}
	return values
}

// Clear removes all entries.
func (m *OrderedMap[V]) Clear() {
	m.keys = nil
	m.items = make(map[string]V)
}
