package intset

// Head returns the view of all elements strictly less than key. The result
// shares the backing array; only the bounds are new.
func (s *Set) Head(key int64) *Set {
	i, _ := Search(s.data, s.start, s.end, key)
	return newClean(s.data, s.start, i)
}

// Tail returns the view of all elements greater than or equal to key. The
// result shares the backing array; only the bounds are new.
func (s *Set) Tail(key int64) *Set {
	i, _ := Search(s.data, s.start, s.end, key)
	return newClean(s.data, i, s.end)
}

// Sub returns the view of all elements x with lo <= x < hi, sharing the
// backing array. If lo > hi the result is an empty view anchored at lo's
// insertion point; an inverted range is never produced.
func (s *Set) Sub(lo, hi int64) *Set {
	i, _ := Search(s.data, s.start, s.end, lo)
	j, _ := Search(s.data, s.start, s.end, hi)
	if j < i {
		j = i
	}
	return newClean(s.data, i, j)
}
