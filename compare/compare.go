// Package compare provides the ordering and equality primitives the
// scopekit containers are parameterized with.
package compare

import (
	"strings"

	"golang.org/x/exp/constraints"
)

// Comparer is a total order over T: negative when a sorts before b,
// zero when they are equivalent, positive when a sorts after b.
// Containers built on a Comparer require it to be a strict weak
// ordering; handing them anything else is undefined behavior, not a
// detected error.
type Comparer[T any] func(a, b T) int

// Equaler reports whether two values are interchangeable.
type Equaler[T any] func(a, b T) bool

// Ordered compares by the natural order of T.
func Ordered[T constraints.Ordered](a, b T) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

// StringsCaseInsensitive uppercases both arguments before comparing,
// so "kind" and "KIND" collate as the same key.
func StringsCaseInsensitive(a, b string) int {
	return Ordered(strings.ToUpper(a), strings.ToUpper(b))
}

// Equal reports a == b.
func Equal[T comparable](a, b T) bool { return a == b }

// EqualsCaseInsensitive reports whether a and b are equal after
// uppercasing.
func EqualsCaseInsensitive(a, b string) bool {
	return strings.ToUpper(a) == strings.ToUpper(b)
}

// Reverse inverts the order of cmp.
func Reverse[T any](cmp Comparer[T]) Comparer[T] {
	return func(a, b T) int { return cmp(b, a) }
}
