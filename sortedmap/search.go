// Package sortedmap implements a key/value container kept sorted by a
// caller-supplied comparer, together with the binary-search and
// order-preserving splice primitives it is built on.
package sortedmap

import "github.com/scopekit/scopekit/compare"

// Search locates key within seq, which must already be sorted by cmp
// over the keys extracted by keyOf. A nonnegative result is the index
// of an exact match. A negative result encodes the insertion point as
// its bitwise complement: insert at ^result to keep seq sorted. The
// search ignores elements before offset; a nil or empty seq yields
// ^offset.
func Search[T, K any](seq []T, key K, keyOf func(T) K, cmp compare.Comparer[K], offset int) int {
	lo, hi := offset, len(seq)-1
	for lo <= hi {
		mid := lo + (hi-lo)/2
		switch c := cmp(keyOf(seq[mid]), key); {
		case c < 0:
			lo = mid + 1
		case c > 0:
			hi = mid - 1
		default:
			return mid
		}
	}
	return ^lo
}

// SearchValues is Search over a plain sorted slice, comparing elements
// directly.
func SearchValues[T any](seq []T, key T, cmp compare.Comparer[T]) int {
	return Search(seq, key, identity[T], cmp, 0)
}

func identity[T any](v T) T { return v }
