// Copyright 2022 The Cockroach Authors.
//
// Use of this software is governed by the CockroachDB Software License
// included in the /LICENSE file.

package timeutil

import "time"

// StopWatch accumulates wall time across any number of Start/Stop intervals.
// It is not safe to use concurrently. If the StopWatch is nil, all operations
// are no-ops.
type StopWatch struct {
	started bool
	start   time.Time
	total   time.Duration
	now     func() time.Time
}

// NewStopWatch returns a stopped StopWatch.
func NewStopWatch() *StopWatch {
	return NewTestStopWatch(Now)
}

// NewTestStopWatch returns a StopWatch reading time from now.
func NewTestStopWatch(now func() time.Time) *StopWatch {
	return &StopWatch{now: now}
}

// Start begins an interval. Starting a running watch has no effect.
func (w *StopWatch) Start() {
	if w == nil || w.started {
		return
	}
	w.started = true
	w.start = w.now()
}

// Stop ends the current interval and adds it to the total.
func (w *StopWatch) Stop() {
	if w == nil || !w.started {
		return
	}
	w.started = false
	w.total += w.now().Sub(w.start)
}

// Elapsed returns the total of all completed intervals.
func (w *StopWatch) Elapsed() time.Duration {
	if w == nil {
		return 0
	}
	return w.total
}
