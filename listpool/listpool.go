// Package listpool implements component C: a fixed-capacity intrusive
// doubly linked list whose nodes live in one contiguously allocated pool,
// so slabsort's encroaching-lists structure never allocates per element.
//
// The original is pointer-based (a node is an address, the sentinel is a
// self-referential cycle). Go's garbage collector has no aliasing model
// that rewards raw pointers into a slice the way an ownership-disciplined
// systems language would, and reslicing the backing array would
// invalidate every outstanding pointer anyway - so this follows the
// design notes' own suggested re-architecture: the pool is an arena
// (`[]node[T]`) and every reference into it is an index (`ref`), not a
// pointer. Handle 0 is reserved; it never names an arena slot directly,
// it means "this list's own sentinel" (see List.at).
package listpool

import "errors"

// ErrPoolExhausted is never returned to a caller - see acquire - but is
// kept as a named sentinel the way the teacher names its skiplist errors,
// for use in panic messages and tests that want to assert on it with
// errors.Is against a recovered panic value.
var ErrPoolExhausted = errors.New("listpool: pool exhausted")

// ref is a 1-based handle into a Pool's arena. The zero value is never a
// valid arena index; List uses it to mean "this list's sentinel" instead.
type ref uint32

// node is one slot of the pool's arena. value is only meaningful while
// the node is linked into some list and that list has not yet marked the
// slot empty.
type node[T any] struct {
	next, prev ref
	value      T
}

// Pool is a fixed-capacity arena of list nodes with O(1) acquire/release,
// exactly the node pool of §4.C. A Pool is sized once at construction and
// never grows; acquire on an exhausted pool panics, since running out of
// nodes means a caller violated the one-pool-per-n invariant (§3's
// "pool exhausted" case is a programmer bug, not a runtime condition).
type Pool[T any] struct {
	arena     []node[T]
	firstFree ref
}

// NewPool returns a Pool with capacity n. Capacity 0 is legal; any acquire
// against it panics immediately.
func NewPool[T any](n int) *Pool[T] {
	p := &Pool[T]{arena: make([]node[T], n+1)}
	p.ResetNodes(n)
	return p
}

// Cap returns the pool's fixed node capacity.
func (p *Pool[T]) Cap() int { return len(p.arena) - 1 }

// ResetNodes rebuilds a dense free list over the first k slots of the
// arena. The caller promises none of those slots is currently owned by
// any list - violating that promise silently corrupts both the free list
// and whichever list still held a node in [0,k).
func (p *Pool[T]) ResetNodes(k int) {
	if k > len(p.arena)-1 {
		panic("listpool: ResetNodes k exceeds pool capacity")
	}
	if k == 0 {
		p.firstFree = 0
		return
	}
	for i := 1; i < k; i++ {
		p.arena[i].next = ref(i + 1)
	}
	p.arena[k].next = 0
	p.firstFree = 1
}

// acquire returns the handle of a fresh node, or panics if the pool is
// exhausted.
func (p *Pool[T]) acquire() ref {
	if p.firstFree == 0 {
		panic(ErrPoolExhausted)
	}
	r := p.firstFree
	p.firstFree = p.arena[r].next
	var zero T
	p.arena[r].value = zero
	return r
}

// release pushes the chain first..last (already linked via next) back
// onto the free list in O(1).
func (p *Pool[T]) release(first, last ref) {
	if first == 0 {
		return
	}
	p.arena[last].next = p.firstFree
	p.firstFree = first
}
