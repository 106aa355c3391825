// Copyright 2020 The Cockroach Authors.
//
// Use of this software is governed by the CockroachDB Software License
// included in the /LICENSE file.

// Package skip holds helpers that skip tests under build or run
// conditions they are too slow for.
package skip

import (
	"testing"

	"github.com/cockroachdb/stl/pkg/util"
)

// UnderRace skips this test if the race detector is enabled.
func UnderRace(t testing.TB, args ...interface{}) {
	t.Helper()
	if util.RaceEnabled {
		t.Skip(append([]interface{}{"disabled under race"}, args...)...)
	}
}

// UnderShort skips this test if the -short flag is specified.
func UnderShort(t testing.TB, args ...interface{}) {
	t.Helper()
	if testing.Short() {
		t.Skip(append([]interface{}{"disabled under -short"}, args...)...)
	}
}
