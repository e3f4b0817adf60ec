package intset

import (
	"testing"

	"gotest.tools/v3/assert"
)

func TestHead(t *testing.T) {
	s := New([]int64{1, 3, 5, 7})

	assert.DeepEqual(t, []int64{1, 3}, s.Head(5).Slice())
	assert.DeepEqual(t, []int64{1, 3}, s.Head(4).Slice())
	assert.DeepEqual(t, []int64{}, s.Head(1).Slice())
	assert.DeepEqual(t, []int64{1, 3, 5, 7}, s.Head(100).Slice())
}

func TestTail(t *testing.T) {
	s := New([]int64{1, 3, 5, 7})

	assert.DeepEqual(t, []int64{5, 7}, s.Tail(5).Slice())
	assert.DeepEqual(t, []int64{5, 7}, s.Tail(4).Slice())
	assert.DeepEqual(t, []int64{1, 3, 5, 7}, s.Tail(-10).Slice())
	assert.DeepEqual(t, []int64{}, s.Tail(8).Slice())
}

func TestSub(t *testing.T) {
	s := New([]int64{1, 3, 5, 7})

	// lo inclusive, hi exclusive
	assert.DeepEqual(t, []int64{3, 5}, s.Sub(3, 7).Slice())
	assert.DeepEqual(t, []int64{3, 5}, s.Sub(2, 6).Slice())
	assert.DeepEqual(t, []int64{1, 3, 5, 7}, s.Sub(0, 8).Slice())
	assert.DeepEqual(t, []int64{}, s.Sub(4, 4).Slice())
}

func TestSubInvertedBoundsIsEmpty(t *testing.T) {
	s := New([]int64{1, 3, 5, 7})

	inv := s.Sub(7, 3)
	assert.Equal(t, 0, inv.Len())
	assert.Assert(t, inv.IsEmpty())

	// the empty view must still be safely derivable and iterable
	assert.Equal(t, 0, inv.Head(10).Len())
	assert.Assert(t, !inv.Iter().HasNext())
}

// Head(k) and Tail(k) partition the set for every key: no overlap, no gap.
func TestHeadTailPartition(t *testing.T) {
	s := New([]int64{-4, -1, 0, 3, 7, 8, 12})

	for key := int64(-6); key <= 14; key++ {
		head := s.Head(key)
		tail := s.Tail(key)

		assert.Equal(t, s.Len(), head.Len()+tail.Len(), "key %d", key)
		assert.DeepEqual(t, s.Slice(), append(head.Slice(), tail.Slice()...))
	}
}

func TestViewsShareTheBackingArray(t *testing.T) {
	s := New([]int64{1, 3, 5, 7})

	tail := s.Tail(3)
	sub := tail.Sub(3, 7)
	head := sub.Head(100)

	for _, v := range []*Set{tail, sub, head} {
		assert.Assert(t, !v.IsEmpty())
		assert.Assert(t, &v.data[0] == &s.data[0], "view must not reallocate the array")
	}
}

func TestViewOfViewComposes(t *testing.T) {
	s := New([]int64{1, 2, 3, 4, 5, 6, 7, 8})

	got := s.Tail(3).Head(7).Sub(4, 6)
	assert.DeepEqual(t, []int64{4, 5}, got.Slice())

	first, err := got.First()
	assert.NilError(t, err)
	assert.Equal(t, int64(4), first)

	last, err := got.Last()
	assert.NilError(t, err)
	assert.Equal(t, int64(5), last)
}
