// Copyright 2017 The Cockroach Authors.
//
// Use of this software is governed by the CockroachDB Software License
// included in the /LICENSE file.

package util

import (
	"github.com/cespare/xxhash/v2"
	"golang.org/x/exp/constraints"
)

// StringHash hashes a string key with xxhash. It is the default hash
// function for string-keyed unordered maps.
func StringHash(s string) uint64 {
	return xxhash.Sum64String(s)
}

// BytesHash hashes a byte slice with xxhash. It agrees with StringHash on
// equal contents.
func BytesHash(b []byte) uint64 {
	return xxhash.Sum64(b)
}

// IntHash is the identity hash for integer keys, mirroring std::hash for
// integral types. Negative values wrap around to large unsigned values.
func IntHash[T constraints.Integer](v T) uint64 {
	return uint64(v)
}

// fnvPrime and fnvBase are the FNV-64 constants.
const fnvBase = uint64(14695981039346656037)
const fnvPrime = 1099511628211

// FNV64Init returns the FNV-64 offset basis.
func FNV64Init() uint64 {
	return fnvBase
}

// FNV64AddToHash folds c into the running FNV-64 hash s0.
func FNV64AddToHash(s0 uint64, c int32) uint64 {
	s0 *= fnvPrime
	s0 ^= uint64(c)
	return s0
}

// RuneHash hashes a string rune by rune with FNV-64. It is slower than
// StringHash but stable across releases of the xxhash module, which makes it
// suitable for golden test output that depends on bucket placement.
func RuneHash(s string) uint64 {
	h := FNV64Init()
	for _, c := range s {
		h = FNV64AddToHash(h, c)
	}
	return h
}
