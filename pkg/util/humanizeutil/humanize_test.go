// Copyright 2026 The Cockroach Authors.
//
// Use of this software is governed by the CockroachDB Software License
// included in the /LICENSE file.

package humanizeutil

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestIBytes(t *testing.T) {
	require.Equal(t, "0 B", IBytes(0))
	require.Equal(t, "1.0 KiB", IBytes(1024))
	require.Equal(t, "-1.5 MiB", IBytes(-3<<19))
}

func TestCount(t *testing.T) {
	require.Equal(t, "0", Count(0))
	require.Equal(t, "1,048,576", Count(1<<20))
	require.Equal(t, "-1,000", Count(-1000))
}

func TestDuration(t *testing.T) {
	testCases := []struct {
		in  time.Duration
		out string
	}{
		{0, "0s"},
		{85, "85ns"},
		{123456, "123µs"},
		{12345678, "12ms"},
		{12345678912, "12.3s"},
		{90 * time.Minute, "1h30m0s"},
	}
	for _, tc := range testCases {
		require.Equal(t, tc.out, Duration(tc.in))
	}
}
