// Copyright 2026 The Cockroach Authors.
//
// Use of this software is governed by the CockroachDB Software License
// included in the /LICENSE file.

package cli

import (
	"context"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/cockroachdb/logtags"
	"github.com/cockroachdb/stl/pkg/cli/clierror"
	"github.com/cockroachdb/stl/pkg/cli/exit"
	"github.com/cockroachdb/stl/pkg/util"
	"github.com/cockroachdb/stl/pkg/util/container/unorderedmap"
	"github.com/cockroachdb/stl/pkg/util/log"
	"github.com/spf13/cobra"
)

var mapCmd = &cobra.Command{
	Use:   "map [command]",
	Short: "inspect the open-hash map",
	RunE:  UsageAndErr,
}

var mapTraceCmd = &cobra.Command{
	Use:   "trace [--keys a,b,c]",
	Short: "trace bucket assignment and rehashing",
	Long: `
Inserts the given keys, in order, into an empty map and prints after every
insertion the size, bucket count and load factor of the map, the bucket the
key landed in, and the rehash the insertion triggered, if any. A key that is
already present is reported as a duplicate and leaves the map unchanged.
`,
	Args: cobra.NoArgs,
	RunE: runMapTrace,
}

func init() {
	mapCmd.AddCommand(mapTraceCmd)
}

var mapTraceCols = []string{"key", "inserted", "size", "buckets", "bucket", "load", "rehash"}

func runMapTrace(cmd *cobra.Command, _ []string) error {
	if f := mapCtx.maxLoadFactor; !(f > 0) || math.IsInf(f, 0) {
		return clierror.NewError(
			errors.Newf("--max-load-factor must be positive and finite, got %v", f),
			exit.CommandLineFlagError())
	}
	ctx := logtags.AddTag(context.Background(), "map", nil)

	var rehash string
	m := unorderedmap.New[string, int](util.StringHash,
		unorderedmap.WithCapacity(mapCtx.capacity),
		unorderedmap.WithMaxLoadFactor(mapCtx.maxLoadFactor),
		unorderedmap.WithRehashHook(func(oldBuckets, newBuckets int) {
			rehash = fmt.Sprintf("%d -> %d", oldBuckets, newBuckets)
			log.VEventf(ctx, 1, "rehash: %d -> %d buckets", oldBuckets, newBuckets)
		}))

	// Long key lists may repeat keys many times; at --v 1 only the first
	// duplicate in every ten seconds is reported.
	dupLog := log.Every(10 * time.Second)
	dups := 0
	rows := make([][]string, 0, len(mapCtx.keys))
	for i, k := range mapCtx.keys {
		rehash = ""
		inserted := "yes"
		if !m.Insert(k, i) {
			inserted = "duplicate"
			dups++
			if dupLog.ShouldLog() {
				log.VEventf(logtags.AddTag(ctx, "key", k), 1, "already present (%d duplicates so far)", dups)
			}
		}
		b := m.Bucket(k)
		checkBucket(ctx, k, b, m.BucketCount(), m.BucketSize(b))
		rows = append(rows, []string{
			k,
			inserted,
			strconv.Itoa(m.Len()),
			strconv.Itoa(m.BucketCount()),
			strconv.Itoa(b),
			strconv.FormatFloat(m.LoadFactor(), 'f', 2, 64),
			rehash,
		})
	}
	w := cmd.OutOrStdout()
	if err := printQueryOutput(w, mapTraceCols, newRowSliceIter(rows), cliCtx.tableDisplayFormat); err != nil {
		return err
	}
	if mapCtx.dump {
		for i, keys := range m.Buckets() {
			fmt.Fprintf(w, "bucket %d: %s\n", i, strings.Join(keys, " "))
		}
	}
	return nil
}

// checkBucket terminates the process if the map reports a bucket for k that
// is outside its table or empty right after k was inserted.
func checkBucket(ctx context.Context, k string, b, buckets, size int) {
	if b < 0 || b >= buckets || size == 0 {
		log.Fatalf(ctx, "key %q placed in bucket %d of %d holding %d entries", k, b, buckets, size)
	}
}
