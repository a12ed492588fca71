// Package partition implements a stable in-place partition over a
// random-access range. A slice trivially satisfies the "bidirectional
// range" the original algorithm is specified against (random access is
// a strictly stronger guarantee), so a slice-based implementation is a
// faithful, idiomatic realization of component B: it is also the
// implementation slabsort reuses internally, against a scratch slice of
// values copied out of its own bidirectional range (see slabsort's
// package doc).
package partition

// Predicate reports whether x belongs in the "true" group.
type Predicate[T any] func(x T) bool

// maxScratchBuffer bounds the one scratch-buffer allocation Stable makes
// per call. Go's allocator does not partially fail the way the original's
// std::get_temporary_buffer can hand back fewer elements than requested,
// so a buffer capped at len(data) would always fit every recursive
// sub-range and the buffer-less rotate fallback (§4.B step 5) would never
// run. Capping it at a fixed size instead means any range bigger than
// this genuinely falls back to the recursion/rotation path, the same way
// the original's fallback triggers on a too-small allocation.
const maxScratchBuffer = 1024

// Stable partitions data in place so that every element for which pred
// reports true precedes every element for which it reports false,
// preserving the relative order of elements within each group. It
// returns the index of the first element for which pred is false.
//
// Stable makes one attempt to allocate a scratch buffer, capped at
// maxScratchBuffer elements, for the whole call; every recursive step
// that needs a buffer reuses that same allocation. When a recursive
// step's range no longer fits in it, that step falls back to the
// buffer-less rotate-based recursion (§4.B step 5) - there is no error,
// only a change in the constant factor.
func Stable[T any](data []T, pred Predicate[T]) int {
	if len(data) == 0 {
		return 0
	}
	bufCap := len(data)
	if bufCap > maxScratchBuffer {
		bufCap = maxScratchBuffer
	}
	buf := make([]T, 0, bufCap)
	return stable(data, 0, len(data), pred, buf)
}

// stable partitions data[lo:hi) in place and returns the absolute index
// of the first false element.
func stable[T any](data []T, lo, hi int, pred Predicate[T], buf []T) int {
	for lo < hi && pred(data[lo]) {
		lo++
	}
	if lo == hi {
		return hi
	}
	for hi > lo && !pred(data[hi-1]) {
		hi--
	}
	if lo == hi {
		return lo
	}

	// Invariant from here on: data[lo] is false, data[hi-1] is true,
	// hi-lo >= 2.
	switch hi - lo {
	case 2:
		data[lo], data[lo+1] = data[lo+1], data[lo]
		return lo + 1
	case 3:
		m := lo + 1
		if pred(data[m]) {
			data[lo], data[m] = data[m], data[lo]
			data[m], data[lo+2] = data[lo+2], data[m]
			return lo + 2
		}
		data[m], data[lo+2] = data[lo+2], data[m]
		data[lo], data[m] = data[m], data[lo]
		return m
	}

	if hi-lo <= cap(buf) {
		return stableBuffered(data, lo, hi, pred, buf)
	}

	mid := lo + (hi-lo)/2
	ff := stable(data, lo, mid, pred, buf)
	sf := stable(data, mid, hi, pred, buf)
	rotate(data, ff, mid, sf)
	return ff + (sf - mid)
}

// stableBuffered streams true elements to the front of data[lo:hi) in
// place, buffering the false elements, then copies the buffer back
// after the last true element.
func stableBuffered[T any](data []T, lo, hi int, pred Predicate[T], buf []T) int {
	b := buf[:0]
	out := lo
	for i := lo; i < hi; i++ {
		if pred(data[i]) {
			data[out] = data[i]
			out++
		} else {
			b = append(b, data[i])
		}
	}
	copy(data[out:hi], b)
	return out
}

// rotate brings data[mid:hi) in front of data[lo:mid) via the standard
// reverse/reverse/reverse rotation.
func rotate[T any](data []T, lo, mid, hi int) {
	reverse(data[lo:mid])
	reverse(data[mid:hi])
	reverse(data[lo:hi])
}

func reverse[T any](data []T) {
	for i, j := 0, len(data)-1; i < j; i, j = i+1, j-1 {
		data[i], data[j] = data[j], data[i]
	}
}
