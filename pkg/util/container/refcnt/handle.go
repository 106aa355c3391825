// Copyright 2026 The Cockroach Authors.
//
// Use of this software is governed by the CockroachDB Software License
// included in the /LICENSE file.

// Package refcnt provides Handle, a reference-counted shared owner of a heap
// object.
//
// Handles are not safe for concurrent use. Copying a Handle value does not
// take a reference; use Clone for that.
package refcnt

import (
	"github.com/cockroachdb/errors"
	"github.com/cockroachdb/redact"
	"github.com/cockroachdb/stl/pkg/util/errorutil"
)

// control is the state shared by every handle to the same object.
type control[T any] struct {
	ptr     *T
	count   int
	release func(*T)
}

// Handle shares ownership of a *T. The zero value is an empty handle.
type Handle[T any] struct {
	c *control[T]
}

// New returns a handle owning ptr with a use count of 1. A nil ptr yields an
// empty handle.
func New[T any](ptr *T) Handle[T] {
	return NewWithRelease(ptr, nil)
}

// NewWithRelease is like New, but release is called with the object when the
// last handle to it lets go.
func NewWithRelease[T any](ptr *T, release func(*T)) Handle[T] {
	if ptr == nil {
		return Handle[T]{}
	}
	return Handle[T]{c: &control[T]{ptr: ptr, count: 1, release: release}}
}

// Clone returns a new handle sharing h's object, incrementing the use count.
func (h *Handle[T]) Clone() Handle[T] {
	if h.c != nil {
		h.c.count++
	}
	return Handle[T]{c: h.c}
}

// Reset drops h's reference, releasing the object if it was the last one. h
// is left empty.
func (h *Handle[T]) Reset() {
	c := h.c
	h.c = nil
	if c == nil {
		return
	}
	if c.count <= 0 {
		panic(errors.AssertionFailedf("use count %d on a live handle", errors.Safe(c.count)))
	}
	c.count--
	if c.count == 0 {
		ptr := c.ptr
		c.ptr = nil
		if c.release != nil {
			c.release(ptr)
		}
	}
}

// ResetTo drops h's reference and makes h the sole owner of ptr.
func (h *Handle[T]) ResetTo(ptr *T) {
	h.Reset()
	*h = New(ptr)
}

// Move returns a handle holding h's reference and leaves h empty. The use
// count is unchanged.
func (h *Handle[T]) Move() Handle[T] {
	m := Handle[T]{c: h.c}
	h.c = nil
	return m
}

// Swap exchanges the objects held by h and o.
func (h *Handle[T]) Swap(o *Handle[T]) {
	h.c, o.c = o.c, h.c
}

// Get returns the held object, or nil for an empty handle.
func (h *Handle[T]) Get() *T {
	if h.c == nil {
		return nil
	}
	return h.c.ptr
}

// Deref returns the held object or ErrNilHandle for an empty handle.
func (h *Handle[T]) Deref() (*T, error) {
	if h.c == nil {
		return nil, errors.Mark(errors.New("dereference of empty handle"), errorutil.ErrNilHandle)
	}
	return h.c.ptr, nil
}

// UseCount returns the number of handles sharing the object, or 0 for an
// empty handle.
func (h *Handle[T]) UseCount() int {
	if h.c == nil {
		return 0
	}
	return h.c.count
}

// Valid returns true iff h holds an object.
func (h *Handle[T]) Valid() bool {
	return h.c != nil
}

// With takes a reference to h's object for the duration of fn. The reference
// is dropped on every exit path, including a panic in fn.
func With[T any](h *Handle[T], fn func(*T) error) error {
	ref := h.Clone()
	defer ref.Reset()
	ptr, err := ref.Deref()
	if err != nil {
		return err
	}
	return fn(ptr)
}

// SafeFormat implements the redact.SafeFormatter interface.
func (h *Handle[T]) SafeFormat(w redact.SafePrinter, _ rune) {
	if h.c == nil {
		w.SafeString("handle(empty)")
		return
	}
	w.Printf("handle(refs=%d ", redact.Safe(h.c.count))
	w.Print(*h.c.ptr)
	w.SafeRune(')')
}

// String implements the fmt.Stringer interface.
func (h *Handle[T]) String() string {
	return redact.StringWithoutMarkers(h)
}
