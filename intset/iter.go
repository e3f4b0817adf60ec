package intset

import "iter"

// Iterator is a bidirectional cursor over a set. The cursor pos satisfies
// start <= pos <= end; pos == end is the one-past-last sentinel. Each
// iterator owns its cursor exclusively, the range it reads is shared and
// immutable.
type Iterator struct {
	data       []int64
	start, end int
	pos        int
}

// Iter returns a cursor positioned before the first element.
func (s *Set) Iter() *Iterator {
	return &Iterator{data: s.data, start: s.start, end: s.end, pos: s.start}
}

// IterFrom returns a cursor seeked to key. The cursor lands at key's
// insertion point, then steps once more if key is present. So Next yields
// the element strictly after key, while Previous yields key itself when
// present, or the nearest lesser element otherwise. This asymmetry is the
// contract, not an off-by-one.
func (s *Set) IterFrom(key int64) *Iterator {
	pos, found := Search(s.data, s.start, s.end, key)
	if found {
		pos++
	}
	return &Iterator{data: s.data, start: s.start, end: s.end, pos: pos}
}

// HasNext reports whether a Next call would succeed.
func (it *Iterator) HasNext() bool { return it.pos < it.end }

// HasPrevious reports whether a Previous call would succeed.
func (it *Iterator) HasPrevious() bool { return it.pos > it.start }

// Next returns the element at the cursor and advances past it, or fails
// with ErrIterExhausted at the upper bound.
func (it *Iterator) Next() (int64, error) {
	if it.pos >= it.end {
		return 0, ErrIterExhausted
	}
	v := it.data[it.pos]
	it.pos++
	return v, nil
}

// Previous steps the cursor back and returns the element it lands on, or
// fails with ErrIterExhausted at the lower bound.
func (it *Iterator) Previous() (int64, error) {
	if it.pos <= it.start {
		return 0, ErrIterExhausted
	}
	it.pos--
	return it.data[it.pos], nil
}

// All yields the elements in ascending order.
func (s *Set) All() iter.Seq[int64] {
	return func(yield func(int64) bool) {
		for i := s.start; i < s.end; i++ {
			if !yield(s.data[i]) {
				return
			}
		}
	}
}

// Backward yields the elements in descending order.
func (s *Set) Backward() iter.Seq[int64] {
	return func(yield func(int64) bool) {
		for i := s.end - 1; i >= s.start; i-- {
			if !yield(s.data[i]) {
				return
			}
		}
	}
}
