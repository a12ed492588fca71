// Package sortkata is a small library of adaptive comparison sorts: an
// in-place samplesort for random-access ranges, a hybrid
// partition/encroaching-list sort ("slabsort") for bidirectional ranges,
// and the stable in-place partition and projection-compare primitives
// both of them are built on.
//
// The package ties together five independent sub-packages, leaves first:
// ordercmp (projection-compare fusion), partition (stable in-place
// partition), listpool (the fixed-capacity intrusive list and node pool
// slabsort's melsort pass runs on), samplesort, and slabsort. Each is
// independently documented and tested; this file only exposes the three
// external entry points and the bidirectional list container callers
// build ranges out of.
package sortkata

import (
	"sortkata/dlist"
	"sortkata/ordercmp"
	"sortkata/partition"
	"sortkata/samplesort"
	"sortkata/slabsort"
)

// List is the bidirectional range SortBidirectional sorts in place.
// Build one with NewList or FromSlice.
type List[T any] = dlist.List[T]

// Elem is one node of a List.
type Elem[T any] = dlist.Elem[T]

// NewList returns an empty bidirectional range.
func NewList[T any]() *List[T] { return dlist.New[T]() }

// FromSlice builds a List holding a copy of data, in order.
func FromSlice[T any](data []T) *List[T] { return dlist.FromSlice(data) }

// SortRandomAccess sorts data in place under fuse(cmp, proj) using the
// samplesort core (component D). It is not stable. Pass ordercmp.Less and
// ordercmp.Identity for the natural order of plain values; proj is still
// called on both operands of every comparison (see ordercmp.Fuse).
func SortRandomAccess[T any, K any](data []T, cmp ordercmp.Comparator[K], proj ordercmp.Projection[T, K]) {
	samplesort.Sort(data, cmp, proj)
}

// SortBidirectional sorts l in place under fuse(cmp, proj) using
// slabsort (component E): a cheap melsort probe first, falling back to
// recursive median partitioning when melsort's encroaching-list budget
// is exceeded. It is not stable.
func SortBidirectional[T any, K any](l *List[T], cmp ordercmp.Comparator[K], proj ordercmp.Projection[T, K]) {
	slabsort.Sort(l, cmp, proj)
}

// StablePartition partitions data in place so every element for which
// pred is true precedes every element for which it is false, preserving
// the relative order within each group, and returns the index of the
// first false element (component B).
func StablePartition[T any](data []T, pred func(T) bool) int {
	return partition.Stable(data, partition.Predicate[T](pred))
}
