// Copyright 2026 The Cockroach Authors.
//
// Use of this software is governed by the CockroachDB Software License
// included in the /LICENSE file.

// Package vector provides Vector, a contiguous growable array with explicit
// capacity management.
//
// Unlike a plain Go slice, a Vector's growth policy is fixed: whenever an
// insertion needs more room than the current capacity, the capacity doubles
// (jumping from 0 to 1) as many times as necessary. Shrinking the length never
// releases capacity. Positions are plain integer indexes; Begin is 0 and End
// is Len.
package vector

import (
	"iter"
	"math"
	"unsafe"

	"github.com/cockroachdb/errors"
	"github.com/cockroachdb/redact"
	"github.com/cockroachdb/stl/pkg/util/errorutil"
)

// Vector is a dynamic array. The zero value is an empty vector with capacity
// zero and no allocated buffer.
type Vector[T any] struct {
	// buf holds the allocated slots; len(buf) is the capacity. Slots at or
	// beyond size hold zero values.
	buf  []T
	size int
}

// New returns an empty vector. It does not allocate a buffer.
func New[T any]() *Vector[T] {
	return &Vector[T]{}
}

// WithCapacity returns an empty vector with n allocated slots.
func WithCapacity[T any](n int) *Vector[T] {
	if n < 0 {
		panic(errors.AssertionFailedf("negative capacity %d", n))
	}
	v := &Vector[T]{}
	if n > 0 {
		v.buf = make([]T, n)
	}
	return v
}

// overAllocate is the capacity given to a vector constructed from an initial
// run of n elements. Newly constructed sequences over-allocate for
// anticipated growth.
func overAllocate(n int) int {
	return 2 * n
}

// Filled returns a vector holding n copies of value.
func Filled[T any](n int, value T) *Vector[T] {
	if n < 0 {
		panic(errors.AssertionFailedf("negative size %d", n))
	}
	v := &Vector[T]{}
	if n == 0 {
		return v
	}
	v.buf = make([]T, overAllocate(n))
	for i := 0; i < n; i++ {
		v.buf[i] = value
	}
	v.size = n
	return v
}

// FromSlice returns a vector holding a copy of s.
func FromSlice[T any](s []T) *Vector[T] {
	v := &Vector[T]{}
	if len(s) == 0 {
		return v
	}
	v.buf = make([]T, overAllocate(len(s)))
	v.size = copy(v.buf, s)
	return v
}

// Of returns a vector holding the given elements.
func Of[T any](elems ...T) *Vector[T] {
	return FromSlice(elems)
}

// FromRange returns a vector holding a copy of src[first:last]. The range
// must be non-empty.
func FromRange[T any](src []T, first, last int) (*Vector[T], error) {
	if last <= first {
		return nil, errorutil.InvalidRange(first, last)
	}
	if first < 0 || first > len(src) {
		return nil, errorutil.OutOfRange(first, 0, len(src))
	}
	if last > len(src) {
		return nil, errorutil.OutOfRange(last, 0, len(src))
	}
	return FromSlice(src[first:last]), nil
}

// Len returns the number of elements in the vector.
func (v *Vector[T]) Len() int {
	return v.size
}

// Cap returns the number of allocated slots.
func (v *Vector[T]) Cap() int {
	return len(v.buf)
}

// Available returns the number of slots that can be filled without growing.
func (v *Vector[T]) Available() int {
	return len(v.buf) - v.size
}

// Empty returns true iff the vector holds no elements.
func (v *Vector[T]) Empty() bool {
	return v.size == 0
}

// Data returns the live elements. The returned slice aliases the vector's
// buffer and is nil iff the vector has no buffer (never grown, or moved
// from).
func (v *Vector[T]) Data() []T {
	return v.buf[:v.size:v.size]
}

// Begin returns the position of the first element.
func (v *Vector[T]) Begin() int {
	return 0
}

// End returns the position one past the last element.
func (v *Vector[T]) End() int {
	return v.size
}

// At returns the element at position i. Bounds are the caller's
// responsibility; an out-of-range index panics.
func (v *Vector[T]) At(i int) T {
	return v.buf[:v.size][i]
}

// Set overwrites the element at position i.
func (v *Vector[T]) Set(i int, x T) {
	v.buf[:v.size][i] = x
}

// Ptr returns a pointer to the element at position i. The pointer is
// invalidated by any operation that grows the vector.
func (v *Vector[T]) Ptr(i int) *T {
	return &v.buf[:v.size][i]
}

// nextCap returns the capacity reached by repeatedly doubling cur, starting
// at 1 when cur is zero, until it is at least n.
func nextCap(cur, n int) int {
	c := cur
	for c < n {
		if c == 0 {
			c = 1
		} else {
			c *= 2
		}
	}
	return c
}

// reallocate moves the live elements into a fresh buffer of size newCap.
func (v *Vector[T]) reallocate(newCap int) {
	buf := make([]T, newCap)
	copy(buf, v.buf[:v.size])
	v.buf = buf
}

// PushBack appends x, doubling the capacity first if the vector is full.
func (v *Vector[T]) PushBack(x T) {
	if v.size == len(v.buf) {
		v.reallocate(nextCap(len(v.buf), v.size+1))
	}
	v.buf[v.size] = x
	v.size++
}

// PopBack removes the last element. Capacity is retained.
func (v *Vector[T]) PopBack() error {
	if v.size == 0 {
		return errorutil.EmptyContainerf("pop from empty vector")
	}
	v.size--
	var zero T
	v.buf[v.size] = zero
	return nil
}

// Clear removes all elements. Capacity is retained.
func (v *Vector[T]) Clear() {
	clear(v.buf[:v.size])
	v.size = 0
}

// Erase removes the element at pos, shifting the remainder left.
func (v *Vector[T]) Erase(pos int) error {
	if pos < 0 || pos >= v.size {
		return errorutil.IndexOutOfRange(pos, v.size)
	}
	return v.EraseRange(pos, pos+1)
}

// EraseRange removes the elements in [first,last), shifting the remainder
// left. A last position beyond the end is clamped to the end.
func (v *Vector[T]) EraseRange(first, last int) error {
	if first < 0 || first > v.size {
		return errorutil.OutOfRange(first, 0, v.size)
	}
	if last < first {
		return errorutil.InvalidRange(first, last)
	}
	if last > v.size {
		last = v.size
	}
	n := copy(v.buf[first:], v.buf[last:v.size])
	clear(v.buf[first+n : v.size])
	v.size = first + n
	return nil
}

// openGap makes room for n elements at pos, growing the capacity by doubling
// until everything fits. The slots [pos,pos+n) are left for the caller to
// fill. When growing, the new buffer is fully laid out before it replaces the
// old one.
func (v *Vector[T]) openGap(pos, n int) {
	need := v.size + n
	if need > len(v.buf) {
		buf := make([]T, nextCap(len(v.buf), need))
		copy(buf, v.buf[:pos])
		copy(buf[pos+n:], v.buf[pos:v.size])
		v.buf = buf
	} else {
		copy(v.buf[pos+n:need], v.buf[pos:v.size])
	}
	v.size = need
}

func (v *Vector[T]) checkInsertPos(pos int) error {
	if pos < 0 || pos > v.size {
		return errorutil.OutOfRange(pos, 0, v.size)
	}
	return nil
}

// Insert inserts x before pos. pos may equal Len, in which case x is
// appended.
func (v *Vector[T]) Insert(pos int, x T) error {
	return v.InsertN(pos, 1, x)
}

// InsertN inserts n copies of x before pos.
func (v *Vector[T]) InsertN(pos, n int, x T) error {
	if err := v.checkInsertPos(pos); err != nil {
		return err
	}
	if n < 0 {
		return errors.Wrap(errorutil.OutOfRange(n, 0, math.MaxInt), "insert count")
	}
	if n == 0 {
		return nil
	}
	v.openGap(pos, n)
	for i := pos; i < pos+n; i++ {
		v.buf[i] = x
	}
	return nil
}

// InsertRange inserts a copy of src before pos. src may alias the vector's
// own buffer, in which case it is copied before the gap is opened.
func (v *Vector[T]) InsertRange(pos int, src []T) error {
	if err := v.checkInsertPos(pos); err != nil {
		return err
	}
	if len(src) == 0 {
		return nil
	}
	if aliases(v.buf, src) {
		src = append([]T(nil), src...)
	}
	v.openGap(pos, len(src))
	copy(v.buf[pos:], src)
	return nil
}

// aliases returns true iff s starts inside buf. Slices of distinct arrays
// never do.
func aliases[T any](buf, s []T) bool {
	if len(buf) == 0 || len(s) == 0 {
		return false
	}
	var zero T
	lo := uintptr(unsafe.Pointer(unsafe.SliceData(buf)))
	hi := lo + uintptr(len(buf))*unsafe.Sizeof(zero)
	p := uintptr(unsafe.Pointer(unsafe.SliceData(s)))
	return p >= lo && p < hi
}

// Resize sets the length to n. New elements are zero values.
func (v *Vector[T]) Resize(n int) {
	var zero T
	v.ResizeWith(n, zero)
}

// ResizeWith sets the length to n, filling newly exposed slots with fill.
// Shrinking only changes the length; the capacity is retained.
func (v *Vector[T]) ResizeWith(n int, fill T) {
	if n < 0 {
		panic(errors.AssertionFailedf("negative size %d", n))
	}
	if n <= v.size {
		clear(v.buf[n:v.size])
		v.size = n
		return
	}
	if n > len(v.buf) {
		v.reallocate(nextCap(len(v.buf), n))
	}
	for i := v.size; i < n; i++ {
		v.buf[i] = fill
	}
	v.size = n
}

// Reserve grows the capacity by doubling until it is at least n. It never
// shrinks the vector.
func (v *Vector[T]) Reserve(n int) {
	if n > len(v.buf) {
		v.reallocate(nextCap(len(v.buf), n))
	}
}

// Swap exchanges the contents of v and o.
func (v *Vector[T]) Swap(o *Vector[T]) {
	v.buf, o.buf = o.buf, v.buf
	v.size, o.size = o.size, v.size
}

// Clone returns a deep copy of v with the same capacity.
func (v *Vector[T]) Clone() *Vector[T] {
	c := &Vector[T]{size: v.size}
	if v.buf != nil {
		c.buf = make([]T, len(v.buf))
		copy(c.buf, v.buf[:v.size])
	}
	return c
}

// Move transfers v's buffer to a new vector and leaves v empty, with no
// buffer and zero capacity.
func (v *Vector[T]) Move() *Vector[T] {
	m := &Vector[T]{buf: v.buf, size: v.size}
	v.buf, v.size = nil, 0
	return m
}

// All iterates over the positions and elements of the vector.
func (v *Vector[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i := 0; i < v.size; i++ {
			if !yield(i, v.buf[i]) {
				return
			}
		}
	}
}

// Values iterates over the elements of the vector.
func (v *Vector[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for i := 0; i < v.size; i++ {
			if !yield(v.buf[i]) {
				return
			}
		}
	}
}

// EqualFunc reports whether v and o have the same length and eq holds for
// each pair of elements.
func (v *Vector[T]) EqualFunc(o *Vector[T], eq func(a, b T) bool) bool {
	if v.size != o.size {
		return false
	}
	for i := 0; i < v.size; i++ {
		if !eq(v.buf[i], o.buf[i]) {
			return false
		}
	}
	return true
}

// Equal reports whether a and b hold the same elements in the same order.
// Capacities are not compared.
func Equal[T comparable](a, b *Vector[T]) bool {
	return a.EqualFunc(b, func(x, y T) bool { return x == y })
}

// SafeFormat implements the redact.SafeFormatter interface. Sizes are safe;
// elements are not.
func (v *Vector[T]) SafeFormat(w redact.SafePrinter, _ rune) {
	w.Printf("sz(%d) cap(%d) [", redact.Safe(v.size), redact.Safe(len(v.buf)))
	for i := 0; i < v.size; i++ {
		if i > 0 {
			w.SafeRune(' ')
		}
		w.Print(v.buf[i])
	}
	w.SafeRune(']')
}

// String implements the fmt.Stringer interface.
func (v *Vector[T]) String() string {
	return redact.StringWithoutMarkers(v)
}
