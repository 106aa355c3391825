// Copyright 2019 The Cockroach Authors.
//
// Use of this software is governed by the CockroachDB Software License
// included in the /LICENSE file.

package log

import (
	"runtime/debug"

	"github.com/cockroachdb/stl/pkg/cli/exit"
)

// SetExitFunc allows setting a function that will be called to exit
// the process when a Fatal message is generated. The supplied bool,
// if true, suppresses the stack trace, which is useful for test
// callers wishing to keep the logs reasonably clean.
//
// Call with a nil function to undo.
func SetExitFunc(hideStack bool, f func(exit.Code)) {
	logging.mu.Lock()
	defer logging.mu.Unlock()
	logging.mu.exitOverride.f = f
	logging.mu.exitOverride.hideStack = hideStack
}

// ResetExitFunc undoes any prior call to SetExitFunc.
func ResetExitFunc() {
	SetExitFunc(false /* hideStack */, nil)
}

// exitFatal is called after a FATAL entry has been written. It dumps the
// stack, unless an override asked to hide it, and exits.
func (l *loggingT) exitFatal() {
	l.mu.Lock()
	f, hideStack := l.mu.exitOverride.f, l.mu.exitOverride.hideStack
	if f == nil || !hideStack {
		_, _ = l.mu.out.Write(debug.Stack())
	}
	l.mu.Unlock()

	if f != nil {
		f(exit.FatalError())
		return
	}
	exit.WithCode(exit.FatalError())
}
