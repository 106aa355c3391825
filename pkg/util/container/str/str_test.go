// Copyright 2026 The Cockroach Authors.
//
// Use of this software is governed by the CockroachDB Software License
// included in the /LICENSE file.

package str

import (
	"testing"

	"github.com/cockroachdb/redact"
	"github.com/stretchr/testify/require"
)

func checkEqual(t *testing.T, s String, ref string) {
	t.Helper()
	require.Equal(t, len(ref), s.Len())
	require.Equal(t, ref, s.String())
}

func TestString(t *testing.T) {
	var s1 String
	checkEqual(t, s1, "")

	s2 := Make("abc")
	checkEqual(t, s2, "abc")

	s3 := s2.Clone()
	checkEqual(t, s3, "abc")
	require.True(t, s3.Equal(s2))

	s4 := s2.Move()
	checkEqual(t, s4, "abc")
	checkEqual(t, s2, "")
	require.True(t, s4.Equal(s3))

	b := []byte("xyz")
	s5 := FromBytes(b)
	b[0] = 'q'
	checkEqual(t, s5, "xyz")

	var s6 String
	s6.Assign(&s5)
	s6.Assign(&s6)
	checkEqual(t, s6, "xyz")
	s6.AssignString("hello")
	checkEqual(t, s6, "hello")
	checkEqual(t, s5, "xyz")
	require.False(t, s6.Equal(s5))
}

func TestStringHash(t *testing.T) {
	require.Equal(t, int32(0), String{}.Hash())
	require.Equal(t, int32(96354), Make("abc").Hash())
	// Wraps around like a 32-bit int.
	require.Equal(t, int32(-531983206), Make("hello world, hello").Hash())
	// Bytes are signed.
	require.Equal(t, int32(-1), FromBytes([]byte{0xff}).Hash())
}

func TestStringFormat(t *testing.T) {
	s := Make("abc")
	require.Equal(t, "string[3] => (‹abc›)", string(redact.Sprint(s)))
	require.Equal(t, "string[3] => (‹×›)", string(redact.Sprint(s).Redact()))
}
