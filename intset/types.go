package intset

import (
	"errors"
	"iter"
)

var (
	ErrIndexRange    = errors.New("intset: index range out of bounds")
	ErrNoElement     = errors.New("intset: set is empty")
	ErrIterExhausted = errors.New("intset: iterator exhausted")
	ErrImmutable     = errors.New("intset: set is immutable")
)

// Interface is the minimal capability contract for a sorted integer set:
// size, membership and ordered traversal. Range derivation stays on the
// concrete type so derived views remain directly derivable themselves.
type Interface interface {
	Len() int
	IsEmpty() bool
	Contains(key int64) bool
	First() (int64, error)
	Last() (int64, error)
	All() iter.Seq[int64]
}

var _ Interface = (*Set)(nil)
