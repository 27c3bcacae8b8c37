package corevalue

import (
	"unsafe"

	"golang.org/x/exp/slices"
)

// Allocator is the minimal contract a memory context must satisfy to own a
// List's backing memory. corevalue stays a leaf package (no import of
// memctx) by accepting this interface instead of a concrete context type;
// memctx.Context implements it.
type Allocator interface {
	// Track records size bytes of backing storage as owned by the
	// allocator. It never fails; implementations that care about limits
	// enforce them elsewhere.
	Track(size int)
}

// List is an ordered, homogeneously typed collection with amortized
// append, comparator-based sort and comparator-based lookup. It mirrors
// the pgBackRest List object (array of fixed-size elements, explicit
// comparator callback) using Go generics instead of a declared element
// size.
type List[T any] struct {
	items []T
	alloc Allocator
}

// NewList creates an empty list. alloc may be nil, in which case the list
// tracks no owning context (matching the root-context default for
// allocations made before any context is current).
func NewList[T any](alloc Allocator) *List[T] {
	return &List[T]{alloc: alloc}
}

// Len returns the number of elements in the list.
func (l *List[T]) Len() int { return len(l.items) }

// Get returns the element at index i, panicking if out of range.
func (l *List[T]) Get(i int) T { return l.items[i] }

// Append adds v to the end of the list, growing the backing slice with
// Go's amortized-doubling append and reporting the growth to the owning
// allocator, if any.
func (l *List[T]) Append(v T) {
	before := cap(l.items)
	l.items = append(l.items, v)
	if grew := cap(l.items) - before; grew > 0 && l.alloc != nil {
		var zero T
		l.alloc.Track(grew * int(unsafe.Sizeof(zero)))
	}
}

// Sort orders the list in place using less as the "a should sort before
// b" comparator.
func (l *List[T]) Sort(less func(a, b T) bool) {
	slices.SortFunc(l.items, less)
}

// Find performs a binary search for target in a list already sorted by
// cmp's ordering (cmp(element, target) < 0 means element sorts before
// target, 0 means equal, > 0 means after). It returns the index of a
// match and true, or the insertion point and false.
func (l *List[T]) Find(target T, cmp func(element, target T) int) (int, bool) {
	return slices.BinarySearchFunc(l.items, target, cmp)
}

// Slice returns a read-only view over the list's elements.
func (l *List[T]) Slice() []T { return l.items }
