// Package ordercmp fuses a comparator with a projection into a single
// binary predicate. It is the smallest component in this module:
// samplesort and slabsort both accept a (compare, projection) pair and
// immediately fuse it into one callable via Fuse, and listpool's Merge
// takes the fused Predicate. Stable partition takes a unary predicate
// of its own instead.
package ordercmp

// Comparator is a strict weak order over projected keys K.
type Comparator[K any] func(a, b K) bool

// Projection extracts a sort key K out of a value T.
type Projection[T, K any] func(x T) K

// Predicate is a fused binary predicate over values T, equivalent to
// Comparator(Projection(a), Projection(b)).
type Predicate[T any] func(a, b T) bool

// Identity is the degenerate projection: the key is the value itself.
// Fuse does not special-case it: Fuse(cmp, Identity) still calls Identity
// on both operands of every comparison. FuseIdentity is the variant that
// calls cmp on the values directly.
func Identity[T any](x T) T {
	return x
}

// Fuse composes cmp and proj into a single predicate pred(a, b) that is
// equivalent to cmp(proj(a), proj(b)). The returned predicate is callable
// repeatedly and carries no state beyond copies of cmp and proj.
func Fuse[T, K any](cmp Comparator[K], proj Projection[T, K]) Predicate[T] {
	return func(a, b T) bool {
		return cmp(proj(a), proj(b))
	}
}

// FuseIdentity is Fuse specialized for Identity, so callers that sort
// plain values (T == K) don't pay for a projection call at all.
func FuseIdentity[T any](cmp Comparator[T]) Predicate[T] {
	return func(a, b T) bool {
		return cmp(a, b)
	}
}

// Equivalent reports whether a and b compare equal under pred, i.e.
// neither orders before the other.
func Equivalent[T any](pred Predicate[T], a, b T) bool {
	return !pred(a, b) && !pred(b, a)
}

// Less is the Comparator most callers default to: the natural order of
// any ordered key type.
func Less[K interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr |
		~float32 | ~float64 | ~string
}](a, b K) bool {
	return a < b
}
