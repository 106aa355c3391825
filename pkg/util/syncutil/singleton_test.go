// Copyright 2026 The Cockroach Authors.
//
// Use of this software is governed by the CockroachDB Software License
// included in the /LICENSE file.

package syncutil

import (
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSingleton(t *testing.T) {
	var calls atomic.Int32
	s := NewSingleton(func() *string {
		calls.Add(1)
		v := "instance"
		return &v
	})

	const n = 16
	var wg sync.WaitGroup
	got := make([]*string, n)
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			got[i] = s.Get()
		}(i)
	}
	wg.Wait()
	for _, p := range got {
		require.Same(t, got[0], p)
	}
	require.Equal(t, int32(1), calls.Load())
	require.Equal(t, "instance", *s.Get())
}

func TestSingletonZeroValue(t *testing.T) {
	var s Singleton[int]
	require.Same(t, s.Get(), s.Get())
	require.Equal(t, 0, *s.Get())
}

func TestMutexAssertHeld(t *testing.T) {
	var mu Mutex
	require.Panics(t, mu.AssertHeld)
	mu.Lock()
	mu.AssertHeld()
	mu.Unlock()
}
