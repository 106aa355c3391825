// Copyright 2026 The Cockroach Authors.
//
// Use of this software is governed by the CockroachDB Software License
// included in the /LICENSE file.

// Package memutil contains checked helpers for raw byte copies.
package memutil

import (
	"unsafe"

	"github.com/cockroachdb/errors"
	"github.com/cockroachdb/stl/pkg/util/errorutil"
)

// Copy copies the first n bytes of src into dst and returns dst[:n].
//
// Unlike the built-in copy, it refuses nil slices and regions that overlap in
// memory, returning an error marked with errorutil.ErrNullOrOverlap. Whether
// two regions overlap depends on n: the copy is rejected iff the n-byte
// windows starting at dst and src share a byte.
func Copy(dst, src []byte, n int) ([]byte, error) {
	if dst == nil || src == nil {
		return nil, errors.Mark(errors.New("copy with nil source or destination"), errorutil.ErrNullOrOverlap)
	}
	if n < 0 || n > len(dst) || n > len(src) {
		return nil, errors.Wrap(errorutil.OutOfRange(n, 0, min(len(dst), len(src))), "copy length")
	}
	d := uintptr(unsafe.Pointer(unsafe.SliceData(dst)))
	s := uintptr(unsafe.Pointer(unsafe.SliceData(src)))
	if (d >= s && s+uintptr(n) > d) || (s >= d && d+uintptr(n) > s) {
		return nil, errors.Mark(
			errors.Newf("copy of %d bytes between overlapping regions", errors.Safe(n)),
			errorutil.ErrNullOrOverlap,
		)
	}
	for i := 0; i < n; i++ {
		dst[i] = src[i]
	}
	return dst[:n], nil
}
