// Copyright 2026 The Cockroach Authors.
//
// Use of this software is governed by the CockroachDB Software License
// included in the /LICENSE file.

package cli

import (
	"context"
	"math/rand"
	"slices"
	"strconv"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/cockroachdb/logtags"
	"github.com/cockroachdb/stl/pkg/cli/clierror"
	"github.com/cockroachdb/stl/pkg/cli/exit"
	"github.com/cockroachdb/stl/pkg/util"
	"github.com/cockroachdb/stl/pkg/util/container/list"
	"github.com/cockroachdb/stl/pkg/util/container/unorderedmap"
	"github.com/cockroachdb/stl/pkg/util/container/vector"
	"github.com/cockroachdb/stl/pkg/util/humanizeutil"
	"github.com/cockroachdb/stl/pkg/util/log"
	"github.com/cockroachdb/stl/pkg/util/timeutil"
	"github.com/spf13/cobra"
)

var benchCmd = &cobra.Command{
	Use:   "bench [--n N]",
	Short: "time the containers against the built-in types",
	Long: `
Runs each container operation over N keys and prints the elapsed time next to
the time taken by the equivalent built-in slice or map. The contents of every
container are checked against the built-in result; a mismatch terminates the
command with exit status 125.
`,
	Args: cobra.NoArgs,
	RunE: runBench,
}

// benchSeed makes the key permutation, and thus the output sizes,
// reproducible.
const benchSeed = 1

// benchOp is one timed workload. run executes the workload over keys with
// sw running only around the container operations, and returns an error if
// the result disagrees with the model built by baseline.
type benchOp struct {
	name     string
	run      func(sw *timeutil.StopWatch, keys []int) error
	baseline func(sw *timeutil.StopWatch, keys []int)
}

var benchOps = []benchOp{
	{
		name: "vector push-back",
		run: func(sw *timeutil.StopWatch, keys []int) error {
			var v vector.Vector[int]
			sw.Start()
			for _, k := range keys {
				v.PushBack(k)
			}
			sw.Stop()
			if !slices.Equal(v.Data(), keys) {
				return errors.New("vector contents differ from the appended keys")
			}
			return nil
		},
		baseline: func(sw *timeutil.StopWatch, keys []int) {
			var s []int
			sw.Start()
			for _, k := range keys {
				s = append(s, k)
			}
			sw.Stop()
			_ = s
		},
	},
	{
		name: "list push-back",
		run: func(sw *timeutil.StopWatch, keys []int) error {
			var l list.List[int]
			sw.Start()
			for _, k := range keys {
				l.PushBack(k)
			}
			sw.Stop()
			if got := slices.Collect(l.Values()); !slices.Equal(got, keys) {
				return errors.New("list contents differ from the appended keys")
			}
			return nil
		},
		baseline: func(sw *timeutil.StopWatch, keys []int) {
			s := make([]int, 0, len(keys))
			sw.Start()
			for _, k := range keys {
				s = append(s, k)
			}
			sw.Stop()
		},
	},
	{
		name: "map insert+find",
		run: func(sw *timeutil.StopWatch, keys []int) error {
			m := unorderedmap.New[int, int](util.IntHash[int])
			sw.Start()
			for i, k := range keys {
				m.Insert(k, i)
			}
			for _, k := range keys {
				if m.Find(k) == m.End() {
					sw.Stop()
					return errors.Newf("key %d not found after insertion", k)
				}
			}
			sw.Stop()
			if m.Len() != len(keys) {
				return errors.Newf("map holds %d entries, expected %d", m.Len(), len(keys))
			}
			for i, k := range keys {
				if v, err := m.At(k); err != nil || *v != i {
					return errors.Newf("wrong value for key %d", k)
				}
			}
			return nil
		},
		baseline: func(sw *timeutil.StopWatch, keys []int) {
			m := make(map[int]int)
			sw.Start()
			for i, k := range keys {
				m[k] = i
			}
			for _, k := range keys {
				_ = m[k]
			}
			sw.Stop()
		},
	},
	{
		name: "map erase",
		run: func(sw *timeutil.StopWatch, keys []int) error {
			m := unorderedmap.New[int, int](util.IntHash[int])
			m.Reserve(len(keys))
			for i, k := range keys {
				m.Insert(k, i)
			}
			sw.Start()
			for _, k := range keys {
				m.EraseKey(k)
			}
			sw.Stop()
			if !m.Empty() {
				return errors.Newf("map holds %d entries after erasing every key", m.Len())
			}
			return nil
		},
		baseline: func(sw *timeutil.StopWatch, keys []int) {
			m := make(map[int]int, len(keys))
			for i, k := range keys {
				m[k] = i
			}
			sw.Start()
			for _, k := range keys {
				delete(m, k)
			}
			sw.Stop()
		},
	},
}

var benchCols = []string{"operation", "n", "elapsed", "per op", "builtin", "ratio"}

func runBench(cmd *cobra.Command, _ []string) error {
	n := benchCtx.n
	if n <= 0 {
		return clierror.NewError(
			errors.Newf("--n must be positive, got %d", n),
			exit.CommandLineFlagError())
	}
	ctx := logtags.AddTag(context.Background(), "bench", nil)
	keys := rand.New(rand.NewSource(benchSeed)).Perm(n)

	rows := make([][]string, 0, len(benchOps))
	for _, op := range benchOps {
		opCtx := logtags.AddTag(ctx, "op", op.name)
		sw := timeutil.NewStopWatch()
		if err := op.run(sw, keys); err != nil {
			return clierror.NewError(
				errors.Wrapf(err, "%s", op.name), exit.BenchCheckFailed())
		}
		base := timeutil.NewStopWatch()
		op.baseline(base, keys)
		log.VEventf(opCtx, 1, "%s vs %s", sw.Elapsed(), base.Elapsed())
		rows = append(rows, []string{
			op.name,
			humanizeutil.Count(int64(n)),
			humanizeutil.Duration(sw.Elapsed()),
			humanizeutil.Duration(sw.Elapsed() / time.Duration(n)),
			humanizeutil.Duration(base.Elapsed()),
			ratio(sw.Elapsed(), base.Elapsed()),
		})
	}
	return printQueryOutput(cmd.OutOrStdout(), benchCols, newRowSliceIter(rows), cliCtx.tableDisplayFormat)
}

func ratio(a, b time.Duration) string {
	if b <= 0 {
		return "-"
	}
	return strconv.FormatFloat(float64(a)/float64(b), 'f', 2, 64) + "x"
}
