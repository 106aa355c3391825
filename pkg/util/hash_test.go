// Copyright 2026 The Cockroach Authors.
//
// Use of this software is governed by the CockroachDB Software License
// included in the /LICENSE file.

package util

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestStringHash(t *testing.T) {
	require.Equal(t, StringHash("abc"), StringHash("abc"))
	require.NotEqual(t, StringHash("abc"), StringHash("abd"))
	require.Equal(t, StringHash("abc"), BytesHash([]byte("abc")))
	// xxhash64 of the empty input with seed 0.
	require.Equal(t, uint64(0xef46db3751d8e999), StringHash(""))
}

func TestIntHash(t *testing.T) {
	require.Equal(t, uint64(42), IntHash(42))
	require.Equal(t, uint64(7), IntHash(uint8(7)))
	require.Equal(t, ^uint64(0), IntHash(int64(-1)))
}

func TestRuneHash(t *testing.T) {
	require.Equal(t, FNV64Init(), RuneHash(""))
	h := FNV64AddToHash(FNV64Init(), 'a')
	require.Equal(t, h, RuneHash("a"))
	require.NotEqual(t, RuneHash("ab"), RuneHash("ba"))
}
