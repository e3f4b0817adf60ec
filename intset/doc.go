package intset

/*

# Immutable sorted integer sets over a shared array

This package provides an immutable set of int64 values backed by a single
sorted, duplicate-free array. It replaces hash sets and linear scans in hot
paths where ordering and range queries matter and where the set, once built,
never changes.

It follows the style of small, composable primitives:

- explicit index arithmetic on slices
- package level algorithm primitives (Normalize, Search) reused by all methods
- a burden of knowledge on the caller for the unchecked hot paths

## What the set is (and is not)

A set is a view `[start, end)` over one backing array. Every derived view
(Head, Tail, Sub) shares that array and only carries new bounds. Nothing is
ever copied on derivation; the single deliberate copy in the package is
Slice.

The set is NOT mutable. Remove exists only to fail loudly with ErrImmutable,
so that callers holding the set through the capability interface get a
definitive signal rather than a silent no-op.

## Construction and ownership

New and NewFromRange take ownership of the array they are given. The array
is sorted and deduplicated in place, once, at construction. Mutating the
array afterwards, or constructing two independent sets over overlapping
ranges of it, is undefined behavior by contract.

Elements between the canonical end returned by Normalize and the original
upper bound are destroyed by deduplication and must not be read again.

## Concurrency

After construction everything is read-only. Any number of views and
iterators over one backing array may be used from multiple goroutines
without synchronization. A single Iterator holds a mutable cursor and must
not be shared without external serialization.

## Ordering

Natural ascending int64 order only. No comparators are supported.

*/
