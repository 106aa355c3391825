// Copyright 2026 The Cockroach Authors.
//
// Use of this software is governed by the CockroachDB Software License
// included in the /LICENSE file.

// Package str provides String, a minimal owned byte string with explicit
// copy and move.
package str

import (
	"bytes"

	"github.com/cockroachdb/redact"
)

// String owns a byte buffer. The zero value is the empty string.
type String struct {
	buf []byte
}

// Make returns a String holding a copy of s.
func Make(s string) String {
	return String{buf: []byte(s)}
}

// FromBytes returns a String holding a copy of b.
func FromBytes(b []byte) String {
	return String{buf: bytes.Clone(b)}
}

// Clone returns a deep copy of s.
func (s *String) Clone() String {
	return FromBytes(s.buf)
}

// Move returns a String taking over s's buffer and leaves s empty.
func (s *String) Move() String {
	m := String{buf: s.buf}
	s.buf = nil
	return m
}

// Assign replaces the contents of s with a copy of o. Assigning a string to
// itself is a no-op.
func (s *String) Assign(o *String) {
	if s == o {
		return
	}
	s.buf = bytes.Clone(o.buf)
}

// AssignString replaces the contents of s with a copy of v.
func (s *String) AssignString(v string) {
	s.buf = []byte(v)
}

// Len returns the number of bytes in s.
func (s String) Len() int { return len(s.buf) }

// Bytes returns the contents of s. The result aliases s's buffer and must not
// be modified.
func (s String) Bytes() []byte { return s.buf }

// Equal reports whether s and o hold the same bytes.
func (s String) Equal(o String) bool {
	return bytes.Equal(s.buf, o.buf)
}

// Hash returns the polynomial hash h = h*31 + c over the bytes of s, with
// bytes taken as signed and 32-bit wrap-around.
func (s String) Hash() int32 {
	var h int32
	for _, c := range s.buf {
		h = h*31 + int32(int8(c))
	}
	return h
}

// SafeFormat implements the redact.SafeFormatter interface.
func (s String) SafeFormat(w redact.SafePrinter, _ rune) {
	w.Printf("string[%d] => (%s)", redact.Safe(len(s.buf)), string(s.buf))
}

// String returns the contents of s.
func (s String) String() string {
	return string(s.buf)
}
