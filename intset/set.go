package intset

import (
	"cmp"
	"iter"
	"slices"
)

// Set is an immutable sorted set of int64 values: a view [start, end) over
// one shared backing array. Derived views copy the bounds, never the array.
type Set struct {
	data       []int64
	start, end int
}

// New creates a set from items, taking ownership of the array. The array is
// sorted and deduplicated in place and used as the backing store; changing
// it after construction is undefined behavior.
func New(items []int64) *Set {
	// Whole-array bounds cannot violate the range check.
	end, _ := Normalize(items, 0, len(items))
	return &Set{data: items, start: 0, end: end}
}

// NewFromRange creates a set from the sub-range items[from:to], taking
// ownership as New does. Only the sub-range is normalized; the rest of the
// array is never read.
//
// Returns ErrIndexRange if the bounds do not satisfy 0 <= from <= to <= len(items).
func NewFromRange(items []int64, from, to int) (*Set, error) {
	end, err := Normalize(items, from, to)
	if err != nil {
		return nil, err
	}
	return &Set{data: items, start: from, end: end}, nil
}

// Collect accumulates seq into a fresh array and builds a set from it.
func Collect(seq iter.Seq[int64]) *Set {
	var items []int64
	for v := range seq {
		items = append(items, v)
	}
	return New(items)
}

// newClean wraps bounds that are known to delimit a sorted, duplicate-free
// sub-range, skipping normalization. View derivation only; never exported.
func newClean(data []int64, start, end int) *Set {
	return &Set{data: data, start: start, end: end}
}

// Len returns the number of elements in the set.
func (s *Set) Len() int { return s.end - s.start }

// IsEmpty reports whether the set has no elements.
func (s *Set) IsEmpty() bool { return s.start == s.end }

// Contains reports whether key is an element of the set.
func (s *Set) Contains(key int64) bool {
	_, found := Search(s.data, s.start, s.end, key)
	return found
}

// First returns the smallest element, or ErrNoElement if the set is empty.
func (s *Set) First() (int64, error) {
	if s.start == s.end {
		return 0, ErrNoElement
	}
	return s.data[s.start], nil
}

// Last returns the largest element, or ErrNoElement if the set is empty.
func (s *Set) Last() (int64, error) {
	if s.start == s.end {
		return 0, ErrNoElement
	}
	return s.data[s.end-1], nil
}

// Remove always fails with ErrImmutable. It exists so that removal is a
// loud contract violation rather than a silent no-op.
func (s *Set) Remove(key int64) error {
	return ErrImmutable
}

// Compare orders two keys the way the set does: natural ascending order.
// Generic callers can ask the set for its ordering through this; no other
// ordering is ever supported.
func (s *Set) Compare(a, b int64) int { return cmp.Compare(a, b) }

// Slice copies the elements out in ascending order. This is the only
// copying operation in the package; the backing array is never exposed.
func (s *Set) Slice() []int64 {
	out := make([]int64, s.end-s.start)
	copy(out, s.data[s.start:s.end])
	return out
}

// Equal reports whether s and other contain the same elements.
func (s *Set) Equal(other *Set) bool {
	return slices.Equal(s.data[s.start:s.end], other.data[other.start:other.end])
}
