package sortedmap

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/scopekit/scopekit/compare"
)

func TestSearch_Found(t *testing.T) {
	seq := []int{2, 4, 6, 8, 10}
	for want, v := range seq {
		assert.Equal(t, want, SearchValues(seq, v, compare.Ordered[int]))
	}
}

func TestSearch_NotFoundEncodesInsertionPoint(t *testing.T) {
	seq := []int{2, 4, 6, 8}

	for _, tc := range []struct {
		key      int
		insertAt int
	}{
		{1, 0},
		{3, 1},
		{5, 2},
		{7, 3},
		{9, 4},
	} {
		got := SearchValues(seq, tc.key, compare.Ordered[int])
		assert.Negative(t, got)
		assert.Equal(t, tc.insertAt, ^got, "key %d", tc.key)
	}
}

func TestSearch_Empty(t *testing.T) {
	assert.Equal(t, ^0, SearchValues(nil, 5, compare.Ordered[int]))
	assert.Equal(t, ^0, SearchValues([]int{}, 5, compare.Ordered[int]))
}

func TestSearch_Offset(t *testing.T) {
	seq := []int{10, 20, 30, 40}

	// The prefix before offset is invisible to the search.
	assert.Equal(t, ^2, Search(seq, 10, identity[int], compare.Ordered[int], 2))
	assert.Equal(t, 3, Search(seq, 40, identity[int], compare.Ordered[int], 2))
}

func TestSearch_KeyExtraction(t *testing.T) {
	type entry struct {
		id   int
		name string
	}
	seq := []entry{{1, "a"}, {3, "b"}, {5, "c"}}
	keyOf := func(e entry) int { return e.id }

	assert.Equal(t, 1, Search(seq, 3, keyOf, compare.Ordered[int], 0))
	assert.Equal(t, ^2, Search(seq, 4, keyOf, compare.Ordered[int], 0))
}

func TestSearch_CaseInsensitiveComparer(t *testing.T) {
	seq := []string{"Alpha", "BETA", "gamma"}
	got := SearchValues(seq, "beta", compare.StringsCaseInsensitive)
	assert.Equal(t, 1, got)
}
