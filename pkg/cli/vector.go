// Copyright 2026 The Cockroach Authors.
//
// Use of this software is governed by the CockroachDB Software License
// included in the /LICENSE file.

package cli

import (
	"context"
	"strconv"
	"unsafe"

	"github.com/cockroachdb/errors"
	"github.com/cockroachdb/logtags"
	"github.com/cockroachdb/stl/pkg/cli/clierror"
	"github.com/cockroachdb/stl/pkg/cli/exit"
	"github.com/cockroachdb/stl/pkg/util/container/vector"
	"github.com/cockroachdb/stl/pkg/util/humanizeutil"
	"github.com/cockroachdb/stl/pkg/util/log"
	"github.com/spf13/cobra"
)

var vectorCmd = &cobra.Command{
	Use:   "vector [command]",
	Short: "inspect the dynamic sequence",
	RunE:  UsageAndErr,
}

var vectorGrowthCmd = &cobra.Command{
	Use:   "growth [--n N]",
	Short: "show how the capacity of a vector grows",
	Long: `
Appends the integers 1..N to an empty vector and prints, after every
append, the length and capacity of the vector and the size of its buffer.
Appends that reallocated the buffer are marked.
`,
	Args: cobra.NoArgs,
	RunE: runVectorGrowth,
}

func init() {
	vectorCmd.AddCommand(vectorGrowthCmd)
}

var vectorGrowthCols = []string{"push", "len", "cap", "buffer", "realloc"}

func runVectorGrowth(cmd *cobra.Command, _ []string) error {
	if vectorCtx.n < 0 {
		return clierror.NewError(
			errors.Newf("--n must be non-negative, got %d", vectorCtx.n),
			exit.CommandLineFlagError())
	}
	ctx := logtags.AddTag(context.Background(), "vector", nil)

	var v vector.Vector[int64]
	elemSize := int64(unsafe.Sizeof(int64(0)))
	rows := make([][]string, 0, vectorCtx.n)
	for i := 1; i <= vectorCtx.n; i++ {
		prevCap := v.Cap()
		v.PushBack(int64(i))
		realloc := ""
		if v.Cap() != prevCap {
			realloc = "*"
			log.VEventf(ctx, 1, "push %d: capacity %d -> %d", i, prevCap, v.Cap())
		}
		rows = append(rows, []string{
			strconv.Itoa(i),
			strconv.Itoa(v.Len()),
			strconv.Itoa(v.Cap()),
			humanizeutil.IBytes(int64(v.Cap()) * elemSize),
			realloc,
		})
	}
	return printQueryOutput(cmd.OutOrStdout(), vectorGrowthCols, newRowSliceIter(rows), cliCtx.tableDisplayFormat)
}
