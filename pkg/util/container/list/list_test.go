// Copyright 2026 The Cockroach Authors.
//
// Use of this software is governed by the CockroachDB Software License
// included in the /LICENSE file.

package list

import (
	"fmt"
	"math/rand"
	"slices"
	"strings"
	"testing"
	"time"

	"github.com/cockroachdb/datadriven"
	"github.com/cockroachdb/errors"
	"github.com/cockroachdb/stl/pkg/testutils/skip"
	"github.com/cockroachdb/stl/pkg/util/errorutil"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

// checkInvariants walks the list in both directions and verifies the links,
// the size and the free list.
func checkInvariants[T any](t *testing.T, l *List[T]) {
	t.Helper()
	if l.nodes == nil {
		require.Equal(t, 0, l.size)
		return
	}
	require.False(t, l.nodes[end].inUse)
	n := 0
	for p := l.nodes[end].next; p != end; p = l.nodes[p].next {
		require.True(t, l.nodes[p].inUse, "position %d", p)
		require.Equal(t, p, l.nodes[l.nodes[p].next].prev)
		n++
		require.LessOrEqual(t, n, len(l.nodes))
	}
	require.Equal(t, l.size, n)
	free := 0
	for p := l.free; p != end; p = l.nodes[p].next {
		require.False(t, l.nodes[p].inUse, "free position %d", p)
		free++
	}
	require.Equal(t, len(l.nodes)-1, l.size+free)
}

func values[T any](l *List[T]) []T {
	return slices.Collect(l.Values())
}

func TestListBasics(t *testing.T) {
	var l List[int]
	require.True(t, l.Empty())
	require.Equal(t, l.End(), l.Front())
	require.Equal(t, l.End(), l.Back())
	require.Equal(t, l.End(), l.Next(l.End()))
	checkInvariants(t, &l)

	p2 := l.PushBack(2)
	p1 := l.PushFront(1)
	p3 := l.PushBack(3)
	require.Equal(t, []int{1, 2, 3}, values(&l))
	require.Equal(t, p1, l.Front())
	require.Equal(t, p1, l.Begin())
	require.Equal(t, p3, l.Back())
	require.Equal(t, p2, l.Next(p1))
	require.Equal(t, l.End(), l.Next(p3))
	require.Equal(t, p1, l.Next(l.End()))
	require.Equal(t, p3, l.Prev(l.End()))
	require.Equal(t, l.End(), l.Prev(p1))

	*l.Ptr(p2) = 20
	require.Equal(t, 20, l.Value(p2))
	checkInvariants(t, &l)
}

func TestListPositionsAreStable(t *testing.T) {
	l := Of("a", "b", "c", "d")
	var pos []Pos
	for p := range l.All() {
		pos = append(pos, p)
	}
	require.NoError(t, l.Erase(pos[1]))
	_, err := l.InsertBefore(pos[3], "x")
	require.NoError(t, err)
	require.NoError(t, l.PopFront())
	require.Equal(t, "c", l.Value(pos[2]))
	require.Equal(t, "d", l.Value(pos[3]))
	require.Equal(t, []string{"c", "x", "d"}, values(l))
	checkInvariants(t, l)
}

func TestListErrors(t *testing.T) {
	l := Of(1)
	p := l.Front()

	err := l.Erase(l.End())
	require.True(t, errors.Is(err, errorutil.ErrOutOfRange), "%v", err)
	_, err = l.InsertAfter(l.End(), 5)
	require.True(t, errors.Is(err, errorutil.ErrOutOfRange), "%v", err)
	_, err = l.InsertBefore(Pos(42), 5)
	require.True(t, errors.Is(err, errorutil.ErrOutOfRange), "%v", err)
	require.Equal(t, []int{1}, values(l))

	require.NoError(t, l.Erase(p))
	require.False(t, l.Contains(p))
	// A stale position is detected until its slot is reused.
	err = l.Erase(p)
	require.True(t, errors.Is(err, errorutil.ErrOutOfRange), "%v", err)

	err = l.PopBack()
	require.True(t, errors.Is(err, errorutil.ErrEmptyContainer), "%v", err)
	err = l.PopFront()
	require.True(t, errors.Is(err, errorutil.ErrEmptyContainer), "%v", err)

	require.Panics(t, func() { l.Value(l.End()) })
	require.Panics(t, func() { l.Value(p) })
	checkInvariants(t, l)
}

func TestListCloneMoveSwap(t *testing.T) {
	l := Of(1, 2, 3, 4)
	require.NoError(t, l.Erase(l.Next(l.Front())))
	back := l.Back()

	c := l.Clone()
	require.True(t, Equal(l, c))
	// Positions carry over to the clone.
	require.Equal(t, 4, c.Value(back))
	*c.Ptr(back) = 40
	require.Equal(t, 4, l.Value(back))
	// The clone recycles the same free slot.
	require.Equal(t, l.PushBack(5), c.PushBack(5))
	checkInvariants(t, c)

	m := l.Move()
	require.True(t, l.Empty())
	require.Nil(t, l.nodes)
	require.Equal(t, 4, m.Value(back))
	require.Equal(t, []int{1, 3, 4, 5}, values(m))

	o := Of(9)
	m.Swap(o)
	require.Equal(t, []int{9}, values(m))
	require.Equal(t, []int{1, 3, 4, 5}, values(o))
	require.False(t, Equal(m, o))
	require.True(t, o.EqualFunc(Of(2, 6, 8, 10), func(a, b int) bool { return 2*a == b }))
}

func TestListClear(t *testing.T) {
	l := Of(1, 2, 3)
	l.Clear()
	require.True(t, l.Empty())
	require.Equal(t, "sz(0) []", l.String())
	checkInvariants(t, l)
	l.PushBack(7)
	require.Equal(t, []int{7}, values(l))
	checkInvariants(t, l)
}

func TestListAllToleratesErase(t *testing.T) {
	l := Of(1, 2, 3, 4, 5, 6)
	for p, v := range l.All() {
		if v%2 == 0 {
			require.NoError(t, l.Erase(p))
		}
	}
	require.Equal(t, []int{1, 3, 5}, values(l))
	for range l.All() {
		break
	}
}

// TestListRandomized checks the list against a slice model, tracking the
// position of every live element.
func TestListRandomized(t *testing.T) {
	skip.UnderShort(t)
	seed := time.Now().UnixNano()
	t.Logf("seed: %d", seed)
	rng := rand.New(rand.NewSource(seed))

	var l List[int]
	var model []int
	var pos []Pos
	for i := 0; i < 3000; i++ {
		x := rng.Int()
		switch op := rng.Intn(6); op {
		case 0:
			pos = append(pos, l.PushBack(x))
			model = append(model, x)
		case 1:
			pos = slices.Insert(pos, 0, l.PushFront(x))
			model = slices.Insert(model, 0, x)
		case 2:
			j := rng.Intn(len(model) + 1)
			at := l.End()
			if j < len(pos) {
				at = pos[j]
			}
			p, err := l.InsertBefore(at, x)
			require.NoError(t, err)
			pos = slices.Insert(pos, j, p)
			model = slices.Insert(model, j, x)
		case 3, 4:
			if len(model) == 0 {
				require.Error(t, l.PopBack())
				continue
			}
			j := rng.Intn(len(model))
			require.NoError(t, l.Erase(pos[j]))
			pos = slices.Delete(pos, j, j+1)
			model = slices.Delete(model, j, j+1)
		case 5:
			if rng.Intn(50) == 0 {
				l.Clear()
				pos, model = nil, nil
			}
		}
		if diff := cmp.Diff(model, values(&l)); diff != "" {
			t.Fatalf("op %d: unexpected contents (-want +got):\n%s", i, diff)
		}
		for j, p := range pos {
			require.Equal(t, model[j], l.Value(p))
		}
		checkInvariants(t, &l)
	}
}

func TestListDataDriven(t *testing.T) {
	var l *List[string]
	dump := func(err error) string {
		var buf strings.Builder
		if err != nil {
			fmt.Fprintf(&buf, "error: %v\n", err)
		}
		fmt.Fprintf(&buf, "%s\npos:", l)
		for p := range l.All() {
			fmt.Fprintf(&buf, " %d", p)
		}
		return buf.String()
	}
	scanPos := func(t *testing.T, d *datadriven.TestData, key string) Pos {
		var p int
		d.ScanArgs(t, key, &p)
		return Pos(p)
	}

	datadriven.RunTest(t, "testdata/list", func(t *testing.T, d *datadriven.TestData) string {
		switch d.Cmd {
		case "init":
			var vals []string
			d.MaybeScanArgs(t, "vals", &vals)
			l = Of(vals...)
			return dump(nil)

		case "push-back", "push-front":
			var v string
			d.ScanArgs(t, "v", &v)
			if d.Cmd == "push-back" {
				l.PushBack(v)
			} else {
				l.PushFront(v)
			}
			return dump(nil)

		case "insert-before", "insert-after":
			var v string
			d.ScanArgs(t, "v", &v)
			at := scanPos(t, d, "at")
			var err error
			if d.Cmd == "insert-before" {
				_, err = l.InsertBefore(at, v)
			} else {
				_, err = l.InsertAfter(at, v)
			}
			return dump(err)

		case "erase":
			return dump(l.Erase(scanPos(t, d, "pos")))

		case "pop-front":
			return dump(l.PopFront())

		case "pop-back":
			return dump(l.PopBack())

		case "clear":
			l.Clear()
			return dump(nil)

		case "walk-back":
			var out []string
			for p := l.Prev(l.End()); p != l.End(); p = l.Prev(p) {
				out = append(out, l.Value(p))
			}
			return strings.Join(out, " ")

		default:
			d.Fatalf(t, "unknown command %s", d.Cmd)
			return ""
		}
	})
}
