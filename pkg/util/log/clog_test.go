// Copyright 2026 The Cockroach Authors.
//
// Use of this software is governed by the CockroachDB Software License
// included in the /LICENSE file.

package log

import (
	"bytes"
	"context"
	"regexp"
	"strings"
	"testing"
	"time"

	"github.com/cockroachdb/logtags"
	"github.com/cockroachdb/redact"
	"github.com/cockroachdb/stl/pkg/cli/exit"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/require"
)

func captureOutput(t *testing.T) *bytes.Buffer {
	var buf bytes.Buffer
	restore := SetOutput(&buf)
	t.Cleanup(restore)
	return &buf
}

func TestLogFormat(t *testing.T) {
	buf := captureOutput(t)
	ctx := logtags.AddTag(context.Background(), "map", 3)
	ctx = logtags.AddTag(ctx, "n", 1)

	Infof(ctx, "inserted %d keys", 7)
	Warningf(context.Background(), "load factor %.2f", 1.75)
	Errorf(ctx, "failed")

	lines := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
	require.Len(t, lines, 3)
	require.Regexp(t, regexp.MustCompile(`^I\d{6} \d\d:\d\d:\d\d\.\d{6} clog_test\.go:\d+ \[map=3,n1\] inserted 7 keys$`), lines[0])
	require.Regexp(t, regexp.MustCompile(`^W\d{6} .* \[-\] load factor 1\.75$`), lines[1])
	require.Regexp(t, regexp.MustCompile(`^E\d{6} .* \[map=3,n1\] failed$`), lines[2])
}

func TestLogRedaction(t *testing.T) {
	buf := captureOutput(t)
	ctx := context.Background()

	Infof(ctx, "key %s at %d", "secret", redact.Safe(4))
	require.Contains(t, buf.String(), "] key secret at 4\n")

	buf.Reset()
	SetRedactable(true)
	defer SetRedactable(false)
	Infof(ctx, "key %s at %d", "secret", redact.Safe(4))
	require.Contains(t, buf.String(), "] key ‹secret› at 4\n")
}

func TestVerbosity(t *testing.T) {
	buf := captureOutput(t)
	ctx := context.Background()
	prev := SetVerbosity(0)
	defer SetVerbosity(prev)

	require.True(t, V(0))
	require.False(t, V(1))
	VEventf(ctx, 1, "hidden")
	require.Empty(t, buf.String())

	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	AddFlags(fs)
	require.NoError(t, fs.Parse([]string{"--v=2", "--redactable-logs"}))
	defer SetRedactable(false)
	require.True(t, V(2))
	VEventf(ctx, 1, "shown")
	require.Contains(t, buf.String(), "shown")
	require.Error(t, fs.Parse([]string{"--v=-1"}))
	require.Error(t, fs.Parse([]string{"--v=x"}))
}

func TestEveryN(t *testing.T) {
	prev := SetVerbosity(0)
	defer SetVerbosity(prev)

	start := time.Now()
	e := Every(time.Minute)
	require.True(t, e.shouldLog(start))
	require.False(t, e.shouldLog(start.Add(time.Second)))
	require.True(t, e.shouldLog(start.Add(time.Minute)))

	SetVerbosity(2)
	require.True(t, e.shouldLog(start.Add(time.Minute)))
}

func TestFatalExitOverride(t *testing.T) {
	buf := captureOutput(t)
	var code exit.Code
	exited := false
	SetExitFunc(true /* hideStack */, func(c exit.Code) {
		code, exited = c, true
	})
	defer ResetExitFunc()

	Fatalf(context.Background(), "corrupt bucket %d", 3)
	require.True(t, exited)
	require.Equal(t, exit.FatalError(), code)
	require.Regexp(t, `^F\d{6} .* corrupt bucket 3\n$`, buf.String())
}

func TestFormatWithContextTags(t *testing.T) {
	ctx := logtags.AddTag(context.Background(), "cmd", "trace")
	require.Equal(t, "[cmd=trace] hello world", FormatWithContextTags(ctx, "hello %s", "world"))
	require.Equal(t, "plain", FormatWithContextTags(context.Background(), "plain"))
}

func TestColorProfile(t *testing.T) {
	require.Nil(t, colorProfileFor(&bytes.Buffer{}))
	require.Equal(t, colorProfile256, colorProfileForTerm("xterm-256color"))
	require.Equal(t, colorProfile8, colorProfileForTerm("screen"))
	require.Nil(t, colorProfileForTerm("dumb"))

	out := formatLogEntryInternal(logEntry{
		sev: Severity_WARNING, time: time.Date(2026, 1, 2, 3, 4, 5, 6000, time.UTC),
		file: "f.go", line: 9, msg: "m",
	}, false, colorProfile8)
	require.Equal(t,
		"\033[0;33;49mW\033[0m\033[2;37;49m260102 03:04:05.000006\033[0m f.go:9 [-] m\n",
		string(out))
}
