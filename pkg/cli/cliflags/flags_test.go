// Copyright 2026 The Cockroach Authors.
//
// Use of this software is governed by the CockroachDB Software License
// included in the /LICENSE file.

package cliflags

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestUsage(t *testing.T) {
	u := Config.Usage()
	require.True(t, strings.HasPrefix(u, "\n"), "%q", u)
	require.Contains(t, u, "Environment variable: STL_CONFIG")
	// Preformatted text is kept as is.
	require.Contains(t, u, "  vector:\n")
	for _, line := range strings.Split(u, "\n") {
		require.LessOrEqual(t, len(line), 80, "%q", line)
	}

	require.Equal(t, "\n       Number of elements to process.\n", N.Usage())
	require.True(t, strings.HasSuffix(Verbosity.Usage(), "Environment variable: STL_VERBOSITY\n"))
}

func TestWrapDescription(t *testing.T) {
	words := strings.Repeat("word ", 30)
	wrapped := wrapDescription(words)
	for _, line := range strings.Split(wrapped, "\n") {
		require.LessOrEqual(t, len(line), wrapWidth)
	}
	require.Equal(t, strings.Fields(words), strings.Fields(wrapped))
	require.Equal(t, "a b\n  keep   this\nc", wrapDescription("a   b<PRE>\n  keep   this\n</PRE>c"))
}
