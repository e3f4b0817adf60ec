package intset

import (
	"strconv"
	"strings"
)

// debug utilities

// String renders the set as {a, b, c} for diagnostics.
func (s *Set) String() string {
	var b strings.Builder
	b.WriteByte('{')
	for i := s.start; i < s.end; i++ {
		if i > s.start {
			b.WriteString(", ")
		}
		b.WriteString(strconv.FormatInt(s.data[i], 10))
	}
	b.WriteByte('}')
	return b.String()
}
