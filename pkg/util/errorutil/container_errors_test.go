// Copyright 2026 The Cockroach Authors.
//
// Use of this software is governed by the CockroachDB Software License
// included in the /LICENSE file.

package errorutil

import (
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/cockroachdb/redact"
	"github.com/stretchr/testify/require"
)

func TestContainerErrorMarkers(t *testing.T) {
	testCases := []struct {
		err      error
		sentinel error
		msg      string
	}{
		{EmptyContainerf("pop from empty %s", "vector"), ErrEmptyContainer, "pop from empty vector"},
		{OutOfRange(7, 0, 3), ErrOutOfRange, "position 7 out of range [0,3]"},
		{IndexOutOfRange(0, 0), ErrOutOfRange, "position 0 out of range [0,0)"},
		{InvalidRange(4, 2), ErrInvalidRange, "invalid range [4,2)"},
		{KeyNotFound("k"), ErrKeyNotFound, "key k not found"},
	}
	all := []error{
		ErrEmptyContainer, ErrOutOfRange, ErrInvalidRange, ErrKeyNotFound, ErrNullOrOverlap, ErrNilHandle,
	}
	for _, tc := range testCases {
		t.Run(tc.msg, func(t *testing.T) {
			require.EqualError(t, tc.err, tc.msg)
			for _, s := range all {
				require.Equal(t, s == tc.sentinel, errors.Is(tc.err, s), "%v vs %v", tc.err, s)
			}
			// Wrapping preserves the marker.
			require.True(t, errors.Is(errors.Wrap(tc.err, "context"), tc.sentinel))
		})
	}
}

func TestOutOfRangeIsSafeForReporting(t *testing.T) {
	err := OutOfRange(7, 0, 3)
	require.Equal(t, redact.RedactableString("position 7 out of range [0,3]"), redact.Sprint(err))

	err = KeyNotFound("secret")
	require.Equal(t, redact.RedactableString("key ‹×› not found"), redact.Sprint(err).Redact())
}
