package sortedmap

// InsertAt returns s with v at index and every later element shifted
// one slot right. Appending at len(s) does no shifting at all.
func InsertAt[T any](s []T, index int, v T) []T {
	if index == len(s) {
		return append(s, v)
	}
	var zero T
	s = append(s, zero)
	copy(s[index+1:], s[index:])
	s[index] = v
	return s
}

// RemoveAt returns s without the element at index, preserving the
// relative order of the rest. The vacated tail slot is zeroed so the
// backing array drops its reference.
func RemoveAt[T any](s []T, index int) []T {
	last := len(s) - 1
	copy(s[index:], s[index+1:])
	var zero T
	s[last] = zero
	return s[:last]
}
