// Copyright 2026 The Cockroach Authors.
//
// Use of this software is governed by the CockroachDB Software License
// included in the /LICENSE file.

package errorutil

import "github.com/cockroachdb/errors"

// Sentinel errors shared by the container packages. Errors returned by the
// containers are marked with one of these, so callers should test with
// errors.Is rather than comparing directly.
var (
	// ErrEmptyContainer is returned when an operation requires a non-empty
	// container, e.g. popping from an empty vector or list.
	ErrEmptyContainer = errors.New("empty container")

	// ErrOutOfRange is returned when a position or index argument lies
	// outside the valid bounds of the container.
	ErrOutOfRange = errors.New("position out of range")

	// ErrInvalidRange is returned when a [first,last) pair is malformed.
	ErrInvalidRange = errors.New("invalid range")

	// ErrKeyNotFound is returned by keyed lookups on a missing key.
	ErrKeyNotFound = errors.New("key not found")

	// ErrNullOrOverlap is returned by the checked copy routine when either
	// side is nil or the source and destination regions overlap.
	ErrNullOrOverlap = errors.New("null or overlapping memory regions")

	// ErrNilHandle is returned when dereferencing an empty reference-counted
	// handle.
	ErrNilHandle = errors.New("nil handle")
)

// EmptyContainerf returns an error marked as ErrEmptyContainer.
func EmptyContainerf(format string, args ...interface{}) error {
	return errors.Mark(errors.NewWithDepthf(1, format, args...), ErrEmptyContainer)
}

// OutOfRange returns an error marked as ErrOutOfRange describing a position
// that fell outside [lo, hi].
func OutOfRange(pos, lo, hi int) error {
	return errors.Mark(
		errors.NewWithDepthf(1, "position %d out of range [%d,%d]",
			errors.Safe(pos), errors.Safe(lo), errors.Safe(hi)),
		ErrOutOfRange)
}

// IndexOutOfRange returns an error marked as ErrOutOfRange for an index
// outside [0,n).
func IndexOutOfRange(pos, n int) error {
	return errors.Mark(
		errors.NewWithDepthf(1, "position %d out of range [0,%d)", errors.Safe(pos), errors.Safe(n)),
		ErrOutOfRange)
}

// InvalidRange returns an error marked as ErrInvalidRange for a malformed
// [first,last) pair.
func InvalidRange(first, last int) error {
	return errors.Mark(
		errors.NewWithDepthf(1, "invalid range [%d,%d)", errors.Safe(first), errors.Safe(last)),
		ErrInvalidRange)
}

// KeyNotFound returns an error marked as ErrKeyNotFound. The key itself is
// considered unsafe for reporting.
func KeyNotFound(key interface{}) error {
	return errors.Mark(errors.NewWithDepthf(1, "key %v not found", key), ErrKeyNotFound)
}
