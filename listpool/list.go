package listpool

import "sortkata/ordercmp"

// List is a doubly linked list whose nodes are acquired from a Pool. A
// List never owns its Pool; many Lists can share one Pool, which is
// exactly how slabsort's melsort keeps a whole vector of encroaching
// lists backed by one arena sized to the range being sorted (§4.E).
//
// The sentinel lives inline in the List value, not in the arena - there
// is no node 0 to burn on it. Ref 0 is reinterpreted contextually as
// "this list's own sentinel" by at(), the same trick dlist.List plays
// with its own inline root, except here the real nodes live in a shared
// external arena instead of being heap-allocated one at a time.
type List[T any] struct {
	pool     *Pool[T]
	sentinel node[T]
	len      int
}

// NewList returns an empty list drawing nodes from pool.
func NewList[T any](pool *Pool[T]) *List[T] {
	return &List[T]{pool: pool}
}

// Len returns the number of elements currently linked into l.
func (l *List[T]) Len() int { return l.len }

// Empty reports whether l has no elements.
func (l *List[T]) Empty() bool { return l.len == 0 }

// at resolves a ref to the node it names: ref 0 means l's own sentinel,
// anything else is an arena slot.
func (l *List[T]) at(r ref) *node[T] {
	if r == 0 {
		return &l.sentinel
	}
	return &l.pool.arena[r]
}

// Front returns the handle of the first element, or 0 if l is empty.
func (l *List[T]) Front() ref { return l.sentinel.next }

// Back returns the handle of the last element, or 0 if l is empty.
func (l *List[T]) Back() ref { return l.sentinel.prev }

// Next returns the handle following r, or 0 past the last element.
func (l *List[T]) Next(r ref) ref { return l.at(r).next }

// Prev returns the handle preceding r, or 0 before the first element.
func (l *List[T]) Prev(r ref) ref { return l.at(r).prev }

// Value returns the value stored at r.
func (l *List[T]) Value(r ref) T { return l.at(r).value }

// SetValue overwrites the value stored at r.
func (l *List[T]) SetValue(r ref, v T) { l.at(r).value = v }

// insertBefore links a freshly acquired node holding v immediately
// before at, and returns its handle.
func (l *List[T]) insertBefore(v T, at ref) ref {
	r := l.pool.acquire()
	n := l.at(r)
	n.value = v
	before := l.at(at).prev
	n.prev = before
	n.next = at
	l.at(before).next = r
	l.at(at).prev = r
	l.len++
	return r
}

// PushBack appends v and returns its handle.
func (l *List[T]) PushBack(v T) ref { return l.insertBefore(v, 0) }

// PushFront prepends v and returns its handle.
func (l *List[T]) PushFront(v T) ref { return l.insertBefore(v, l.sentinel.next) }

// Insert links a new node holding v immediately before pos (pos may be 0
// to insert at the back) and returns its handle.
func (l *List[T]) Insert(pos ref, v T) ref { return l.insertBefore(v, pos) }

// unlink removes r from whatever list it is currently linked into
// (l itself, by the caller's contract) without touching the pool.
func (l *List[T]) unlink(r ref) {
	n := l.at(r)
	l.at(n.prev).next = n.next
	l.at(n.next).prev = n.prev
	n.next = 0
	n.prev = 0
	l.len--
}

// Extract unlinks pos and returns its value; the caller takes ownership
// of the value (it is no longer reachable through l). The node itself is
// returned to the pool, since Go values need no separate destructor step
// once they have been copied out.
func (l *List[T]) Extract(pos ref) T {
	v := l.at(pos).value
	l.unlink(pos)
	l.pool.release(pos, pos)
	return v
}

// Splice moves every element of other to immediately before pos in l (pos
// 0 means the end of l), in O(1). other is left empty. Both lists must
// share the same pool.
func (l *List[T]) Splice(pos ref, other *List[T]) {
	if other.len == 0 {
		return
	}
	first, lastIncl := other.sentinel.next, other.sentinel.prev
	before := l.at(pos).prev
	l.at(before).next = first
	other.at(first).prev = before
	l.at(pos).prev = lastIncl
	other.at(lastIncl).next = pos
	l.len += other.len
	other.sentinel.next, other.sentinel.prev, other.len = 0, 0, 0
}

// SpliceRange moves the consecutive run [first, last) of other's nodes to
// immediately before pos in l. last == 0 means "to the end of other".
// Relinking is constant-time, but the run is walked once to count its
// nodes, so the call is linear in the run's length. Both lists must share
// the same pool.
func (l *List[T]) SpliceRange(pos ref, other *List[T], first, last ref) {
	if first == 0 || first == last {
		return
	}
	lastIncl := other.at(last).prev

	n := 0
	for r := first; ; r = other.at(r).next {
		n++
		if r == lastIncl {
			break
		}
	}

	beforeFirst := other.at(first).prev
	other.at(beforeFirst).next = last
	other.at(last).prev = beforeFirst
	other.len -= n

	before := l.at(pos).prev
	l.at(before).next = first
	other.at(first).prev = before
	l.at(pos).prev = lastIncl
	other.at(lastIncl).next = pos
	l.len += n
}

// Merge merges other, in its entirety, into the receiver between first
// and last (first/last delimit a sub-range of l; use 0/0 to merge across
// the whole list), ordering by pred. Ties prefer the receiver's own
// elements, so the merge is stable when other holds elements that were
// logically produced after l's (the melsort reification order, §4.E).
//
// Runs of consecutive other-elements that land at the same insertion
// point are spliced in one shot via SpliceRange rather than one node at
// a time.
func (l *List[T]) Merge(first, last ref, other *List[T], pred ordercmp.Predicate[T]) {
	if other.len == 0 {
		return
	}
	if first == 0 && last == 0 && l.len == 0 {
		l.Splice(0, other)
		return
	}

	cur := first
	if cur == 0 {
		cur = l.Front()
	}
	end := last
	for other.len > 0 {
		if cur == end {
			// Remaining other-elements all land at the tail of this
			// sub-range (or the whole list, when end == 0).
			l.SpliceRange(end, other, other.Front(), 0)
			return
		}
		curVal := l.Value(cur)
		if !pred(other.Value(other.Front()), curVal) {
			cur = l.Next(cur)
			continue
		}
		// other's head belongs before cur; find the longest run of
		// other-elements that also belong before cur.
		runEnd := other.Next(other.Front())
		for runEnd != 0 && pred(other.Value(runEnd), curVal) {
			runEnd = other.Next(runEnd)
		}
		l.SpliceRange(cur, other, other.Front(), runEnd)
	}
}

// Release walks l, invoking destroyValue (if non-nil) once per element,
// then returns every node to the pool in a single O(1) splice. l is left
// empty. This is the Go-idiomatic stand-in for the original's list
// destructor, called explicitly rather than run implicitly at scope
// exit.
func (l *List[T]) Release(destroyValue func(T)) {
	if l.len == 0 {
		return
	}
	if destroyValue != nil {
		for r := l.Front(); r != 0; r = l.Next(r) {
			destroyValue(l.Value(r))
		}
	}
	first, last := l.sentinel.next, l.sentinel.prev
	l.pool.release(first, last)
	l.sentinel.next = 0
	l.sentinel.prev = 0
	l.len = 0
}
