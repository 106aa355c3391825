// Copyright 2026 The Cockroach Authors.
//
// Use of this software is governed by the CockroachDB Software License
// included in the /LICENSE file.

// Package list implements a generic doubly linked list whose nodes live in a
// single arena and are addressed by integer positions.
//
// Position 0 is a sentinel closing the cycle, so End is a real position:
// Next(Back()) == End() and Prev(End()) == Back(). Erased slots are recycled
// through a free list. A Pos stays valid, and keeps designating the same
// element, across insertions and removals of other elements. Clone preserves
// the arena layout, so a position valid in the source designates the
// corresponding element in the clone.
//
// To iterate over a list (where l is a *List[T]):
//
//	for p := l.Front(); p != l.End(); p = l.Next(p) {
//		// do something with l.Value(p)
//	}
package list

import (
	"iter"

	"github.com/cockroachdb/errors"
	"github.com/cockroachdb/redact"
	"github.com/cockroachdb/stl/pkg/util/errorutil"
)

// Pos designates a node of a List.
type Pos int32

// end is the position of the sentinel node.
const end Pos = 0

type node[T any] struct {
	value      T
	prev, next Pos
	// inUse is false for the sentinel and for slots on the free list.
	inUse bool
}

// List is a doubly linked list. The zero value is an empty list ready to
// use.
type List[T any] struct {
	// nodes[0] is the sentinel. The slice is allocated lazily.
	nodes []node[T]
	// free is the head of the chain of recycled slots, linked through next.
	free Pos
	size int
}

// New returns an empty list.
func New[T any]() *List[T] {
	return &List[T]{}
}

// Of returns a list holding elems in order.
func Of[T any](elems ...T) *List[T] {
	l := &List[T]{}
	for _, e := range elems {
		l.PushBack(e)
	}
	return l
}

func (l *List[T]) lazyInit() {
	if l.nodes == nil {
		l.nodes = make([]node[T], 1)
	}
}

// Len returns the number of elements in the list.
func (l *List[T]) Len() int { return l.size }

// Empty returns true iff the list holds no elements.
func (l *List[T]) Empty() bool { return l.size == 0 }

// End returns the sentinel position, one past the last element.
func (l *List[T]) End() Pos { return end }

// Front returns the position of the first element, or End if the list is
// empty.
func (l *List[T]) Front() Pos {
	if l.size == 0 {
		return end
	}
	return l.nodes[end].next
}

// Begin is an alias for Front.
func (l *List[T]) Begin() Pos { return l.Front() }

// Back returns the position of the last element, or End if the list is
// empty.
func (l *List[T]) Back() Pos {
	if l.size == 0 {
		return end
	}
	return l.nodes[end].prev
}

// valid returns true iff p designates a live element.
func (l *List[T]) valid(p Pos) bool {
	return p > end && int(p) < len(l.nodes) && l.nodes[p].inUse
}

// Contains returns true iff p designates a live element of the list. A
// position whose slot was erased and then reused by a later insertion
// designates the new element.
func (l *List[T]) Contains(p Pos) bool { return l.valid(p) }

func (l *List[T]) mustValid(p Pos) {
	if !l.valid(p) {
		panic(errors.AssertionFailedf("list position %d does not designate an element", errors.Safe(p)))
	}
}

func (l *List[T]) mustValidOrEnd(p Pos) {
	if p != end {
		l.mustValid(p)
	}
}

func invalidPos(p Pos) error {
	return errors.Mark(
		errors.NewWithDepthf(1, "invalid list position %d", errors.Safe(p)),
		errorutil.ErrOutOfRange,
	)
}

// Next returns the position following p. Next(Back()) is End, and
// Next(End()) is Front.
func (l *List[T]) Next(p Pos) Pos {
	if l.nodes == nil {
		return end
	}
	l.mustValidOrEnd(p)
	return l.nodes[p].next
}

// Prev returns the position preceding p. Prev(Front()) is End, and
// Prev(End()) is Back.
func (l *List[T]) Prev(p Pos) Pos {
	if l.nodes == nil {
		return end
	}
	l.mustValidOrEnd(p)
	return l.nodes[p].prev
}

// Value returns the element at p. It panics if p does not designate an
// element.
func (l *List[T]) Value(p Pos) T {
	l.mustValid(p)
	return l.nodes[p].value
}

// Ptr returns a pointer to the element at p. The pointer is valid until the
// next insertion into the list.
func (l *List[T]) Ptr(p Pos) *T {
	l.mustValid(p)
	return &l.nodes[p].value
}

// alloc places x in a free slot and returns its position. The node is not
// linked.
func (l *List[T]) alloc(x T) Pos {
	l.lazyInit()
	if p := l.free; p != end {
		n := &l.nodes[p]
		l.free = n.next
		*n = node[T]{value: x, inUse: true}
		return p
	}
	l.nodes = append(l.nodes, node[T]{value: x, inUse: true})
	return Pos(len(l.nodes) - 1)
}

// linkBefore links the allocated node p in front of at.
func (l *List[T]) linkBefore(p, at Pos) {
	prev := l.nodes[at].prev
	l.nodes[p].prev = prev
	l.nodes[p].next = at
	l.nodes[prev].next = p
	l.nodes[at].prev = p
	l.size++
}

// release unlinks p and returns its slot to the free list.
func (l *List[T]) release(p Pos) {
	n := &l.nodes[p]
	l.nodes[n.prev].next = n.next
	l.nodes[n.next].prev = n.prev
	*n = node[T]{next: l.free}
	l.free = p
	l.size--
}

// PushBack appends x and returns its position.
func (l *List[T]) PushBack(x T) Pos {
	p := l.alloc(x)
	l.linkBefore(p, end)
	return p
}

// PushFront prepends x and returns its position.
func (l *List[T]) PushFront(x T) Pos {
	p := l.alloc(x)
	l.linkBefore(p, l.nodes[end].next)
	return p
}

// InsertBefore inserts x immediately before at, which must be an element of
// the list or End, and returns the new element's position.
func (l *List[T]) InsertBefore(at Pos, x T) (Pos, error) {
	if at != end && !l.valid(at) {
		return end, invalidPos(at)
	}
	p := l.alloc(x)
	l.linkBefore(p, at)
	return p, nil
}

// InsertAfter inserts x immediately after at, which must be an element of
// the list, and returns the new element's position.
func (l *List[T]) InsertAfter(at Pos, x T) (Pos, error) {
	if !l.valid(at) {
		return end, invalidPos(at)
	}
	p := l.alloc(x)
	l.linkBefore(p, l.nodes[at].next)
	return p, nil
}

// Erase removes the element at p. Erasing End or a position that no longer
// designates an element is an error.
func (l *List[T]) Erase(p Pos) error {
	if !l.valid(p) {
		return invalidPos(p)
	}
	l.release(p)
	return nil
}

// PopFront removes the first element.
func (l *List[T]) PopFront() error {
	if l.size == 0 {
		return errorutil.EmptyContainerf("pop from empty list")
	}
	l.release(l.nodes[end].next)
	return nil
}

// PopBack removes the last element.
func (l *List[T]) PopBack() error {
	if l.size == 0 {
		return errorutil.EmptyContainerf("pop from empty list")
	}
	l.release(l.nodes[end].prev)
	return nil
}

// Clear removes all elements. Every outstanding position is invalidated.
func (l *List[T]) Clear() {
	if l.nodes == nil {
		return
	}
	clear(l.nodes)
	l.nodes = l.nodes[:1]
	l.free = end
	l.size = 0
}

// Clone returns a deep copy of l with the same node layout.
func (l *List[T]) Clone() *List[T] {
	c := &List[T]{free: l.free, size: l.size}
	if l.nodes != nil {
		c.nodes = make([]node[T], len(l.nodes), cap(l.nodes))
		copy(c.nodes, l.nodes)
	}
	return c
}

// Move transfers l's contents to a new list and leaves l empty. Positions
// remain valid in the returned list.
func (l *List[T]) Move() *List[T] {
	m := &List[T]{}
	*m, *l = *l, List[T]{}
	return m
}

// Swap exchanges the contents of l and o.
func (l *List[T]) Swap(o *List[T]) {
	*l, *o = *o, *l
}

// All iterates over the positions and elements of the list, front to back.
// The iteration tolerates erasing the current position.
func (l *List[T]) All() iter.Seq2[Pos, T] {
	return func(yield func(Pos, T) bool) {
		if l.size == 0 {
			return
		}
		for p := l.nodes[end].next; p != end; {
			next := l.nodes[p].next
			if !yield(p, l.nodes[p].value) {
				return
			}
			p = next
		}
	}
}

// Values iterates over the elements of the list, front to back.
func (l *List[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, v := range l.All() {
			if !yield(v) {
				return
			}
		}
	}
}

// EqualFunc reports whether l and o have the same length and eq holds for
// each pair of elements in order.
func (l *List[T]) EqualFunc(o *List[T], eq func(a, b T) bool) bool {
	if l.size != o.size {
		return false
	}
	p, q := l.Front(), o.Front()
	for p != end {
		if !eq(l.nodes[p].value, o.nodes[q].value) {
			return false
		}
		p, q = l.nodes[p].next, o.nodes[q].next
	}
	return true
}

// Equal reports whether a and b hold the same elements in the same order.
func Equal[T comparable](a, b *List[T]) bool {
	return a.EqualFunc(b, func(x, y T) bool { return x == y })
}

// SafeFormat implements the redact.SafeFormatter interface.
func (l *List[T]) SafeFormat(w redact.SafePrinter, _ rune) {
	w.Printf("sz(%d) [", redact.Safe(l.size))
	i := 0
	for _, v := range l.All() {
		if i > 0 {
			w.SafeRune(' ')
		}
		w.Print(v)
		i++
	}
	w.SafeRune(']')
}

// String implements the fmt.Stringer interface.
func (l *List[T]) String() string {
	return redact.StringWithoutMarkers(l)
}
