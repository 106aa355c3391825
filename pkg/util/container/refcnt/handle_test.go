// Copyright 2026 The Cockroach Authors.
//
// Use of this software is governed by the CockroachDB Software License
// included in the /LICENSE file.

package refcnt

import (
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/cockroachdb/stl/pkg/util/errorutil"
	"github.com/stretchr/testify/require"
)

type tracked struct {
	name     string
	released int
}

func newTracked(name string) (*tracked, Handle[tracked]) {
	obj := &tracked{name: name}
	return obj, NewWithRelease(obj, func(t *tracked) { t.released++ })
}

func TestHandleLifecycle(t *testing.T) {
	obj, h := newTracked("a")
	require.True(t, h.Valid())
	require.Equal(t, 1, h.UseCount())
	require.Same(t, obj, h.Get())

	h2 := h.Clone()
	h3 := h2.Clone()
	require.Equal(t, 3, h.UseCount())
	require.Equal(t, 3, h3.UseCount())

	h2.Reset()
	require.False(t, h2.Valid())
	require.Equal(t, 0, h2.UseCount())
	require.Equal(t, 2, h.UseCount())
	require.Equal(t, 0, obj.released)

	h.Reset()
	require.Equal(t, 0, obj.released)
	h3.Reset()
	require.Equal(t, 1, obj.released)

	// Resetting an empty handle is a no-op.
	h3.Reset()
	require.Equal(t, 1, obj.released)
}

func TestHandleMoveAndSwap(t *testing.T) {
	a, ha := newTracked("a")
	b, hb := newTracked("b")

	m := ha.Move()
	require.False(t, ha.Valid())
	require.Equal(t, 1, m.UseCount())
	require.Same(t, a, m.Get())

	m.Swap(&hb)
	require.Same(t, b, m.Get())
	require.Same(t, a, hb.Get())

	m.ResetTo(&tracked{name: "c"})
	require.Equal(t, 1, b.released)
	require.Equal(t, "c", m.Get().name)
	hb.ResetTo(nil)
	require.Equal(t, 1, a.released)
	require.False(t, hb.Valid())
}

func TestHandleNil(t *testing.T) {
	h := New[int](nil)
	require.False(t, h.Valid())
	require.Nil(t, h.Get())
	require.Equal(t, 0, h.UseCount())
	_, err := h.Deref()
	require.True(t, errors.Is(err, errorutil.ErrNilHandle), "%v", err)

	c := h.Clone()
	require.False(t, c.Valid())
	require.Equal(t, "handle(empty)", h.String())

	var zero Handle[string]
	require.False(t, zero.Valid())
}

func TestHandleWith(t *testing.T) {
	obj, h := newTracked("a")
	err := With(&h, func(p *tracked) error {
		require.Equal(t, 2, h.UseCount())
		p.name = "b"
		return nil
	})
	require.NoError(t, err)
	require.Equal(t, 1, h.UseCount())
	require.Equal(t, "b", obj.name)

	sentinel := errors.New("boom")
	require.ErrorIs(t, With(&h, func(*tracked) error { return sentinel }), sentinel)
	require.Equal(t, 1, h.UseCount())

	require.Panics(t, func() {
		_ = With(&h, func(*tracked) error { panic("oops") })
	})
	require.Equal(t, 1, h.UseCount())

	// The scoped reference keeps the object alive even if the outer handle is
	// reset inside fn.
	err = With(&h, func(p *tracked) error {
		h.Reset()
		require.Equal(t, 0, obj.released)
		return nil
	})
	require.NoError(t, err)
	require.Equal(t, 1, obj.released)

	var empty Handle[tracked]
	err = With(&empty, func(*tracked) error { return nil })
	require.True(t, errors.Is(err, errorutil.ErrNilHandle), "%v", err)
}

func TestHandleFormat(t *testing.T) {
	v := 42
	h := New(&v)
	h2 := h.Clone()
	require.Equal(t, "handle(refs=2 42)", h2.String())
	deref, err := h.Deref()
	require.NoError(t, err)
	require.Equal(t, 42, *deref)
}
