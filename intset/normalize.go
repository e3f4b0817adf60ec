package intset

import (
	"fmt"
	"slices"
)

// IsSorted reports whether data[start:end] is in ascending order.
func IsSorted(data []int64, start, end int) bool {
	for i := start; i < end-1; i++ {
		if data[i] > data[i+1] {
			return false
		}
	}
	return true
}

// Deduplicate removes duplicate elements from the sorted sub-range
// data[start:end] in place and returns the new end index. Elements at or
// beyond the returned index, within the original range, are destroyed.
//
// The sub-range must already be sorted so that duplicates are adjacent.
func Deduplicate(data []int64, start, end int) int {
	if start == end {
		return end
	}

	// The range is non-empty, so pos lands on end if every element is unique.
	pos := start + 1
	for i := pos; i < end; i++ {
		if data[i] != data[i-1] {
			if i != pos { // cursors diverged, must copy
				data[pos] = data[i]
			}
			pos++
		}
		// a duplicate steps i forward while pos stays, eliding data[i]
	}
	return pos
}

// Normalize sorts and deduplicates data[from:to] in place and returns the
// canonical end index (<= to). The sub-range is scanned once first so an
// already sorted input skips the sort entirely.
//
// Returns ErrIndexRange if the bounds do not satisfy 0 <= from <= to <= len(data).
func Normalize(data []int64, from, to int) (int, error) {
	if from < 0 || to > len(data) || from > to {
		return 0, fmt.Errorf("%w: [%d, %d) over %d entries", ErrIndexRange, from, to, len(data))
	}
	if !IsSorted(data, from, to) {
		slices.Sort(data[from:to])
	}
	return Deduplicate(data, from, to), nil
}
