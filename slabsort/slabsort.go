// Package slabsort implements component E: an adaptive sort for
// bidirectional ranges that first tries a cheap melsort pass (which
// exploits existing runs) and, if melsort creates too many encroaching
// lists, falls back to recursively partitioning around a stable median
// and retrying melsort on the smaller halves with a larger list budget.
//
// The original represents a range as a pair of bidirectional iterators
// and builds its encroaching lists out of iterators into the live range,
// only writing values back once a melsort attempt succeeds. Go values
// have none of the move-semantics or iterator-invalidation concerns that
// motivated that indirection, so this port flattens the whole
// bidirectional range into one scratch slice up front (dlist.List.ToSlice,
// called once by Sort) and runs every step - quickselect, stable
// partition, melsort - directly against that slice, exactly the "scratch
// vector of iterators" the original copies out for nth_element (§4.E),
// except the vector holds values instead of iterators. The final sorted
// slice is written back into the original list's nodes in one pass at
// the very end.
package slabsort

import (
	"math/bits"
	"math/rand"

	"sortkata/dlist"
	"sortkata/listpool"
	"sortkata/ordercmp"
	"sortkata/partition"
)

// randIntN is the same swappable-generator hook samplesort uses, kept
// package-local so slabsort's quickselect pivot choice is independently
// testable.
var randIntN func(n int) int = rand.Intn

// Sort sorts l in place under fuse(cmp, proj). It is not stable: the
// melsort pass prepends a value in front of an equal list head, so equal
// keys can leave their input order.
func Sort[T any, K any](l *dlist.List[T], cmp ordercmp.Comparator[K], proj ordercmp.Projection[T, K]) {
	pred := ordercmp.Fuse(cmp, proj)
	n := l.Len()
	if n < 2 {
		return
	}

	vals := l.ToSlice()
	pool := listpool.NewPool[T](n)

	// Cheap presortedness probe: 2*floor(log2(n)) is only 2 for n = 2 or
	// 3, so the budget is floored at 4 for small n, the small-n behaviour
	// the source leaves ambiguous (§9's open question).
	probeBudget := 2 * floorLog2(n)
	if probeBudget < 4 {
		probeBudget = 4
	}
	if tryMelsort(vals, pred, pool, probeBudget) {
		writeBack(l, vals)
		return
	}

	slabsortImpl(vals, pred, pool, 2, 2)
	writeBack(l, vals)
}

// writeBack copies vals, in order, into l's existing nodes.
func writeBack[T any](l *dlist.List[T], vals []T) {
	i := 0
	for e := l.Front(); e != nil; e = e.Next() {
		e.Value = vals[i]
		i++
	}
}

// slabsortImpl is the recursive median-partition/melsort-retry loop of
// §4.E. p0 is the list budget melsort will be attempted with once p has
// been halved down to 2; p is the remaining partition-depth countdown for
// this call.
func slabsortImpl[T any](vals []T, pred ordercmp.Predicate[T], pool *listpool.Pool[T], p0, p int) {
	n := len(vals)
	if n < 2 {
		return
	}

	median := stableMedianValue(vals, pred)
	mid := partition.Stable(vals, func(x T) bool { return pred(x, median) })
	if mid == 0 || mid == n {
		// No element orders before the chosen median, so the median is
		// the smallest key and more than half the range ties with it:
		// the partition predicate can't split this range further. Fall
		// back to melsort directly with whatever budget is in scope; if
		// it still fails, finish with a plain insertion sort.
		if !tryMelsort(vals, pred, pool, p0) {
			insertionSortFallback(vals, pred)
		}
		return
	}

	left, right := vals[:mid], vals[mid:]

	if p > 2 {
		slabsortImpl(left, pred, pool, p0, p/2)
		slabsortImpl(right, pred, pool, p0, p/2)
		return
	}

	if !tryMelsort(left, pred, pool, p0) {
		slabsortImpl(left, pred, pool, p0*p0, p0*p0)
	}
	if !tryMelsort(right, pred, pool, p0) {
		slabsortImpl(right, pred, pool, p0*p0, p0*p0)
	}
}

// insertionSortFallback is the last resort for a range melsort refuses
// (budget exhausted) and that the median partition could not subdivide
// any further (more than half the keys tie with the smallest key). It
// never participates in the ordinary recursion.
func insertionSortFallback[T any](vals []T, pred ordercmp.Predicate[T]) {
	for i := 1; i < len(vals); i++ {
		v := vals[i]
		j := i
		for j > 0 && pred(v, vals[j-1]) {
			vals[j] = vals[j-1]
			j--
		}
		vals[j] = v
	}
}

// stableMedianValue finds, without disturbing vals, the value that would
// occupy index len(vals)/2 if vals were fully sorted. It runs a Hoare-
// style quickselect over a throwaway copy, leaving the original order of
// vals untouched until the caller's subsequent stable_partition pass -
// matching §4.E's requirement that pivot selection and partitioning are
// separate steps, the latter alone responsible for stability.
func stableMedianValue[T any](vals []T, pred ordercmp.Predicate[T]) T {
	scratch := append([]T(nil), vals...)
	k := len(scratch) / 2
	lo, hi := 0, len(scratch)-1
	for lo < hi {
		pivotIdx := lo + randIntN(hi-lo+1)
		p := lomutoPartition(scratch, pred, lo, hi, pivotIdx)
		switch {
		case p == k:
			return scratch[p]
		case p < k:
			lo = p + 1
		default:
			hi = p - 1
		}
	}
	return scratch[lo]
}

// lomutoPartition partitions scratch[lo:hi] around scratch[pivotIdx] and
// returns the pivot's final resting index.
func lomutoPartition[T any](scratch []T, pred ordercmp.Predicate[T], lo, hi, pivotIdx int) int {
	pivot := scratch[pivotIdx]
	scratch[pivotIdx], scratch[hi] = scratch[hi], scratch[pivotIdx]
	store := lo
	for i := lo; i < hi; i++ {
		if pred(scratch[i], pivot) {
			scratch[i], scratch[store] = scratch[store], scratch[i]
			store++
		}
	}
	scratch[store], scratch[hi] = scratch[hi], scratch[store]
	return store
}

// floorLog2 returns floor(log2(n)) for n >= 1.
func floorLog2(n int) int {
	if n < 1 {
		return 0
	}
	return bits.Len(uint(n)) - 1
}

// tryMelsort attempts to sort vals in place by building encroaching
// lists out of a shared pool and merging them, aborting without touching
// vals as soon as the number of simultaneous lists would reach budget
// (so at most budget-1 lists are ever built). It returns whether the
// attempt succeeded.
//
// Each encroaching list is kept sorted ascending end-to-end by only ever
// growing it at whichever end preserves that order (append when the new
// value is not less than the tail, prepend when it is not greater than
// the head); a new list is started only when neither end accepts the
// value. This is a faithful, simplified reading of melsort's nondecreasing-
// head/nonincreasing-tail construction (§3) - the upstream melsort.h that
// would pin down the exact binary-search-by-flipped-comparator search
// order was not available to ground against, so insertion-point search
// here is a linear scan over the existing lists (documented simplification,
// harmless given list counts are bounded by the small budget p) rather
// than true binary search.
func tryMelsort[T any](vals []T, pred ordercmp.Predicate[T], pool *listpool.Pool[T], budget int) bool {
	if len(vals) == 0 {
		return true
	}
	if budget < 1 {
		budget = 1
	}

	lists := make([]*listpool.List[T], 0, budget)
	lists = append(lists, listpool.NewList(pool))
	lists[0].PushBack(vals[0])

	abort := func() bool {
		for _, l := range lists {
			l.Release(nil)
		}
		return false
	}

	for i := 1; i < len(vals); i++ {
		x := vals[i]

		appendTo := bestAppendTarget(lists, pred, x)
		if appendTo >= 0 {
			lists[appendTo].PushBack(x)
			continue
		}
		prependTo := bestPrependTarget(lists, pred, x)
		if prependTo >= 0 {
			lists[prependTo].PushFront(x)
			continue
		}

		if len(lists)+1 >= budget {
			return abort()
		}
		fresh := listpool.NewList(pool)
		fresh.PushBack(x)
		lists = append(lists, fresh)
	}

	merged := lists[0]
	for _, l := range lists[1:] {
		merged.Merge(0, 0, l, pred)
	}
	i := 0
	for r := merged.Front(); r != 0; r = merged.Next(r) {
		vals[i] = merged.Value(r)
		i++
	}
	merged.Release(nil)
	return true
}

// bestAppendTarget returns the index of the list whose tail is closest
// to, but not greater than, x - the tightest-fitting list x can legally
// extend at the back while keeping that list ascending - or -1 if no
// list qualifies.
func bestAppendTarget[T any](lists []*listpool.List[T], pred ordercmp.Predicate[T], x T) int {
	best := -1
	for i, l := range lists {
		tail := l.Value(l.Back())
		if pred(x, tail) {
			continue // x < tail: appending here would break order
		}
		if best == -1 || pred(lists[best].Value(lists[best].Back()), tail) {
			best = i
		}
	}
	return best
}

// bestPrependTarget is bestAppendTarget's mirror image for the front of
// the list: it returns the list whose head is closest to, but not less
// than, x.
func bestPrependTarget[T any](lists []*listpool.List[T], pred ordercmp.Predicate[T], x T) int {
	best := -1
	for i, l := range lists {
		head := l.Value(l.Front())
		if pred(head, x) {
			continue // head < x: prepending here would break order
		}
		if best == -1 || pred(head, lists[best].Value(lists[best].Front())) {
			best = i
		}
	}
	return best
}
