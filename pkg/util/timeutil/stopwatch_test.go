// Copyright 2022 The Cockroach Authors.
//
// Use of this software is governed by the CockroachDB Software License
// included in the /LICENSE file.

package timeutil

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestStopWatch(t *testing.T) {
	var now time.Time
	w := NewTestStopWatch(func() time.Time { return now })
	w.Start()
	now = now.Add(time.Second)
	w.Start()
	now = now.Add(time.Second)
	w.Stop()
	require.Equal(t, 2*time.Second, w.Elapsed())

	now = now.Add(time.Hour)
	w.Stop()
	w.Start()
	now = now.Add(time.Millisecond)
	w.Stop()
	require.Equal(t, 2*time.Second+time.Millisecond, w.Elapsed())

	var nilWatch *StopWatch
	nilWatch.Start()
	nilWatch.Stop()
	require.Zero(t, nilWatch.Elapsed())
}

func TestNow(t *testing.T) {
	require.Equal(t, time.UTC, Now().Location())
	require.GreaterOrEqual(t, Since(Now().Add(-time.Second)), time.Second)
}
