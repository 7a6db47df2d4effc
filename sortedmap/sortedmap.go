package sortedmap

import (
	"fmt"
	"slices"
	"strings"

	"github.com/scopekit/scopekit/compare"
)

// Map is a key/value container whose keys stay sorted by a comparer,
// while ForEach replays entries in the order their keys were first
// inserted. Lookups are binary searches over the sorted keys.
//
// A visit callback running under ForEach may freely mutate the map: the
// first structural change made during a traversal shifts further
// mutations onto a fresh copy of the backing slices, so the traversal
// keeps the snapshot it started with.
//
// Map is not safe for concurrent use; callers sharing one across
// goroutines must serialize access themselves.
type Map[K, V any] struct {
	cmp  compare.Comparer[K]
	keys []K
	vals []V
	// order[i] is the sequence number handed out when keys[i] was first
	// inserted. It survives value updates; deletion retires it, and a
	// re-inserted key draws a fresh, larger one.
	order []uint64

	seq     uint64
	version uint64
	// copyOnWrite is set while a ForEach snapshot may still be live;
	// the next structural mutation clones the backing slices first.
	copyOnWrite bool
}

// New returns an empty map ordered by cmp.
func New[K, V any](cmp compare.Comparer[K]) *Map[K, V] {
	return &Map[K, V]{cmp: cmp}
}

// Len is the number of entries.
func (m *Map[K, V]) Len() int { return len(m.keys) }

// Has reports whether key is present.
func (m *Map[K, V]) Has(key K) bool { return m.search(key) >= 0 }

// Get returns the value stored under key.
func (m *Map[K, V]) Get(key K) (V, bool) {
	if i := m.search(key); i >= 0 {
		return m.vals[i], true
	}
	var zero V
	return zero, false
}

// Set stores value under key and returns m for chaining. Updating an
// existing key replaces the value in place, keeping its sequence number
// and sort position; only inserting a new key is a structural change.
func (m *Map[K, V]) Set(key K, value V) *Map[K, V] {
	i := m.search(key)
	if i >= 0 {
		m.vals[i] = value
		return m
	}
	m.beforeWrite()
	at := ^i
	m.keys = InsertAt(m.keys, at, key)
	m.vals = InsertAt(m.vals, at, value)
	m.order = InsertAt(m.order, at, m.seq)
	m.seq++
	m.version++
	return m
}

// Delete removes key and reports whether it was present.
func (m *Map[K, V]) Delete(key K) bool {
	i := m.search(key)
	if i < 0 {
		return false
	}
	m.beforeWrite()
	m.keys = RemoveAt(m.keys, i)
	m.vals = RemoveAt(m.vals, i)
	m.order = RemoveAt(m.order, i)
	m.version++
	return true
}

// Clear drops every entry and restarts sequence numbering from zero.
func (m *Map[K, V]) Clear() {
	// Fresh slices rather than truncation: a traversal in progress may
	// still hold the old backing arrays.
	m.keys = nil
	m.vals = nil
	m.order = nil
	m.seq = 0
	m.version++
	m.copyOnWrite = false
}

// ForEach visits every entry in insertion order.
func (m *Map[K, V]) ForEach(visit func(key K, value V)) {
	keys, vals, order := m.keys, m.vals, m.order
	start := m.version
	m.copyOnWrite = true

	indices := make([]int, len(keys))
	for i := range indices {
		indices[i] = i
	}
	slices.SortStableFunc(indices, func(a, b int) int {
		return compare.Ordered(order[a], order[b])
	})
	for _, i := range indices {
		visit(keys[i], vals[i])
	}

	if m.version == start {
		m.copyOnWrite = false
	}
}

// Keys returns the keys in sorted order.
func (m *Map[K, V]) Keys() []K { return slices.Clone(m.keys) }

// String renders the entries in sorted-key order, for debugging.
func (m *Map[K, V]) String() string {
	var b strings.Builder
	b.WriteByte('{')
	for i, k := range m.keys {
		if i > 0 {
			b.WriteString(", ")
		}
		fmt.Fprintf(&b, "%v:%v", k, m.vals[i])
	}
	b.WriteByte('}')
	return b.String()
}

func (m *Map[K, V]) search(key K) int {
	return Search(m.keys, key, identity[K], m.cmp, 0)
}

func (m *Map[K, V]) beforeWrite() {
	if m.copyOnWrite {
		m.keys = slices.Clone(m.keys)
		m.vals = slices.Clone(m.vals)
		m.order = slices.Clone(m.order)
		m.copyOnWrite = false
	}
}
