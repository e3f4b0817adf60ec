package intset

// Search is the single binary search primitive for the package. It returns
// the index of the first element of data[start:end] that is >= key (end if
// there is none) together with whether key itself is present at that index.
//
// Both the membership answer and the insertion point come out of the one
// O(log n) pass; no caller ever needs a second search.
//
// The sub-range must be sorted and duplicate free, as established by
// Normalize; the result is undefined otherwise.
func Search(data []int64, start, end int, key int64) (int, bool) {
	i, j := start, end
	for i < j {
		h := int(uint(i+j) >> 1)
		if data[h] < key {
			i = h + 1
		} else {
			j = h
		}
	}
	return i, i < end && data[i] == key
}
