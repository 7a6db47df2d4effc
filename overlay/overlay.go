// Package overlay implements a hierarchical key/value store: a chain of
// layers where each layer sees the union of its own entries and its
// ancestors', and a local entry shadows the ancestor entry of the same
// key without touching it.
package overlay

// Value is a tagged entry: either a concrete value or an explicit
// "no value" marker. The marker lets a layer record that a key is
// deliberately set to nothing, which is not the same as the key being
// absent: Store.Has reports it and Store.Get returns it.
type Value[V any] struct {
	v       V
	defined bool
}

// Some wraps a concrete value.
func Some[V any](v V) Value[V] { return Value[V]{v: v, defined: true} }

// Undefined is the explicit "no value" marker.
func Undefined[V any]() Value[V] { return Value[V]{} }

// Defined reports whether the entry carries a concrete value.
func (v Value[V]) Defined() bool { return v.defined }

// Get returns the carried value, with ok false for the undefined
// marker.
func (v Value[V]) Get() (V, bool) { return v.v, v.defined }

// Or returns the carried value, or fallback for the undefined marker.
func (v Value[V]) Or(fallback V) V {
	if v.defined {
		return v.v
	}
	return fallback
}

// Store is one layer of an overlay chain. Writes and deletes touch only
// the layer itself; lookups fall through to the parent chain. The
// parent reference is non-owning, so a parent must outlive every child
// built on it.
//
// Store is not safe for concurrent use.
type Store[V any] struct {
	parent  *Store[V]
	local   map[string]Value[V]
	version uint64

	// Visible-key count, memoized against the versions observed when it
	// was computed. sizeChainVer folds in every ancestor, so a change
	// anywhere up the chain invalidates the cache.
	sizeCached   bool
	size         int
	sizeSelfVer  uint64
	sizeChainVer uint64
}

// New returns an empty root layer.
func New[V any]() *Store[V] {
	return &Store[V]{local: make(map[string]Value[V])}
}

// NewChild returns an empty layer that resolves misses through s.
func (s *Store[V]) NewChild() *Store[V] {
	return &Store[V]{parent: s, local: make(map[string]Value[V])}
}

// Has reports whether key resolves anywhere in the chain.
func (s *Store[V]) Has(key string) bool {
	for l := s; l != nil; l = l.parent {
		if _, ok := l.local[key]; ok {
			return true
		}
	}
	return false
}

// Get resolves key through the chain, nearest layer first. A present
// key yields ok true even when its entry is the undefined marker.
func (s *Store[V]) Get(key string) (Value[V], bool) {
	for l := s; l != nil; l = l.parent {
		if v, ok := l.local[key]; ok {
			return v, true
		}
	}
	return Value[V]{}, false
}

// Set stores value under key in this layer only.
func (s *Store[V]) Set(key string, value V) {
	s.local[key] = Some(value)
	s.version++
}

// SetUndefined records key in this layer as present with no value.
func (s *Store[V]) SetUndefined(key string) {
	s.local[key] = Undefined[V]()
	s.version++
}

// Delete removes the local entry for key, if any, and reports whether
// one existed. An ancestor's entry for the same key, previously
// shadowed, becomes visible again.
func (s *Store[V]) Delete(key string) bool {
	if _, ok := s.local[key]; !ok {
		return false
	}
	delete(s.local, key)
	s.version++
	return true
}

// Clear empties this layer only; ancestors keep their entries.
func (s *Store[V]) Clear() {
	s.local = make(map[string]Value[V])
	s.version++
}

// Size is the number of distinct keys visible through this layer: own
// keys plus inherited keys not locally shadowed, each counted once. The
// count is recomputed only after some layer in the chain has changed.
func (s *Store[V]) Size() int {
	var chainVer uint64
	if s.parent != nil {
		chainVer = s.parent.chainVersion()
	}
	if s.sizeCached && s.sizeSelfVer == s.version && s.sizeChainVer == chainVer {
		return s.size
	}

	seen := make(map[string]struct{})
	for l := s; l != nil; l = l.parent {
		for k := range l.local {
			seen[k] = struct{}{}
		}
	}

	s.size = len(seen)
	s.sizeCached = true
	s.sizeSelfVer = s.version
	s.sizeChainVer = chainVer
	return s.size
}

// ForEach visits every distinct visible key exactly once with its
// resolved value, nearest layer winning. Order is unspecified. The
// callback may mutate any layer; each key is resolved against the
// then-current chain when it is visited.
func (s *Store[V]) ForEach(visit func(key string, value Value[V])) {
	seen := make(map[string]struct{})
	for l := s; l != nil; l = l.parent {
		keys := make([]string, 0, len(l.local))
		for k := range l.local {
			keys = append(keys, k)
		}
		for _, k := range keys {
			if _, dup := seen[k]; dup {
				continue
			}
			seen[k] = struct{}{}
			if v, ok := s.Get(k); ok {
				visit(k, v)
			}
		}
	}
}

// chainVersion folds this layer's version with every ancestor's.
// Versions only grow, so the sum changes whenever any layer changes.
func (s *Store[V]) chainVersion() uint64 {
	v := s.version
	if s.parent != nil {
		v += s.parent.chainVersion()
	}
	return v
}
