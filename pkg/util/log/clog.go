// Copyright 2013 Google Inc. All Rights Reserved.
// Copyright 2017 The Cockroach Authors.
//
// Use of this software is governed by the CockroachDB Software License
// included in the /LICENSE file.

// Package log is a small leveled logger. Entries carry the logging tags of
// their context and are rendered through the redact package, so that values
// which are not marked safe can be stripped from reports.
package log

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"runtime"
	"sync/atomic"
	"time"

	"github.com/cockroachdb/redact"
	"github.com/cockroachdb/stl/pkg/cli/exit"
	"github.com/cockroachdb/stl/pkg/util/syncutil"
	"github.com/cockroachdb/stl/pkg/util/timeutil"
)

// OrigStderr points to the original stderr stream when the process
// started.
var OrigStderr = os.Stderr

type loggingT struct {
	verbosity  atomic.Int32
	redactable atomic.Bool

	mu struct {
		syncutil.Mutex
		out    io.Writer
		colors *colorProfile
		// exitOverride is used when shutting down logging.
		exitOverride struct {
			f         func(exit.Code) // overrides exit.WithCode when non-nil; testing only
			hideStack bool            // hides stack trace; only in effect when f is not nil
		}
	}
}

var logging loggingT

func init() {
	logging.mu.out = OrigStderr
	logging.mu.colors = colorProfileFor(OrigStderr)
}

// logEntry is a single rendered log event.
type logEntry struct {
	sev  Severity
	time time.Time
	file string
	line int
	tags string
	msg  redact.RedactableString
}

// SetOutput redirects all log output to w and returns a function restoring
// the previous destination.
func SetOutput(w io.Writer) (restore func()) {
	logging.mu.Lock()
	defer logging.mu.Unlock()
	prevOut, prevColors := logging.mu.out, logging.mu.colors
	logging.mu.out, logging.mu.colors = w, colorProfileFor(w)
	return func() {
		logging.mu.Lock()
		defer logging.mu.Unlock()
		logging.mu.out, logging.mu.colors = prevOut, prevColors
	}
}

// SetVerbosity sets the global verbosity level and returns the previous one.
func SetVerbosity(level int32) int32 {
	return logging.verbosity.Swap(level)
}

// SetRedactable controls whether redaction markers are kept in the output.
func SetRedactable(redactable bool) {
	logging.redactable.Store(redactable)
}

// V returns true if the logging verbosity is set to the specified level or
// higher.
func V(level int32) bool {
	return level <= logging.verbosity.Load()
}

func makeEntry(
	ctx context.Context, sev Severity, depth int, format string, args []interface{},
) logEntry {
	e := logEntry{sev: sev, time: timeutil.Now(), file: "???", line: 1}
	if _, file, line, ok := runtime.Caller(depth + 1); ok {
		e.file, e.line = filepath.Base(file), line
	}
	e.tags = formatTagsToString(ctx)
	e.msg = renderArgs(format, args)
	return e
}

func logDepth(ctx context.Context, depth int, sev Severity, format string, args []interface{}) {
	entry := makeEntry(ctx, sev, depth+1, format, args)
	logging.outputEntry(entry)
	if sev == Severity_FATAL {
		logging.exitFatal()
	}
}

func (l *loggingT) outputEntry(entry logEntry) {
	l.mu.Lock()
	defer l.mu.Unlock()
	f := formatterFor(l.mu.colors)
	buf := f.formatEntry(entry, l.redactable.Load(), l.mu.colors)
	if _, err := l.mu.out.Write(buf); err != nil && l.mu.out != OrigStderr {
		_, _ = OrigStderr.Write(buf)
	}
}

// Infof logs to the INFO severity.
func Infof(ctx context.Context, format string, args ...interface{}) {
	logDepth(ctx, 1, Severity_INFO, format, args)
}

// Info logs a message to the INFO severity.
func Info(ctx context.Context, msg string) {
	logDepth(ctx, 1, Severity_INFO, "", []interface{}{msg})
}

// Warningf logs to the WARNING severity.
func Warningf(ctx context.Context, format string, args ...interface{}) {
	logDepth(ctx, 1, Severity_WARNING, format, args)
}

// Errorf logs to the ERROR severity.
func Errorf(ctx context.Context, format string, args ...interface{}) {
	logDepth(ctx, 1, Severity_ERROR, format, args)
}

// Fatalf logs to the FATAL severity, including a stack trace, and then
// terminates the process with exit.FatalError.
func Fatalf(ctx context.Context, format string, args ...interface{}) {
	logDepth(ctx, 1, Severity_FATAL, format, args)
}

// VEventf logs to the INFO severity if the verbosity is at least level.
func VEventf(ctx context.Context, level int32, format string, args ...interface{}) {
	if V(level) {
		logDepth(ctx, 1, Severity_INFO, format, args)
	}
}

// Logf logs to the given severity. A FATAL entry terminates the process.
func Logf(ctx context.Context, sev Severity, format string, args ...interface{}) {
	logDepth(ctx, 1, sev, format, args)
}
