// Copyright 2026 The Cockroach Authors.
//
// Use of this software is governed by the CockroachDB Software License
// included in the /LICENSE file.

package syncutil

import "sync"

// Singleton lazily constructs a single instance of T on first use. It is safe
// for concurrent use; every call to Get returns the same pointer.
type Singleton[T any] struct {
	once  sync.Once
	newFn func() *T
	v     *T
}

// NewSingleton returns a Singleton that builds its instance with newFn.
func NewSingleton[T any](newFn func() *T) *Singleton[T] {
	return &Singleton[T]{newFn: newFn}
}

// Get returns the instance, constructing it on the first call.
func (s *Singleton[T]) Get() *T {
	s.once.Do(func() {
		if s.newFn != nil {
			s.v = s.newFn()
		}
		if s.v == nil {
			s.v = new(T)
		}
	})
	return s.v
}
