// Copyright 2021 The Cockroach Authors.
//
// Use of this software is governed by the CockroachDB Software License
// included in the /LICENSE file.

package clierror

import (
	"fmt"

	"github.com/cockroachdb/errors"
	"github.com/cockroachdb/stl/pkg/cli/exit"
	"github.com/cockroachdb/stl/pkg/util/log"
)

// Error means that an error was encountered during the execution of a
// command. The error carries the exit code to use when the process
// terminates and the severity at which it should be logged.
type Error struct {
	exitCode exit.Code
	severity log.Severity
	cause    error
}

// NewError instantiates a new Error.
func NewError(cause error, exitCode exit.Code) error {
	return NewErrorWithSeverity(cause, exitCode, log.Severity_UNKNOWN)
}

// NewErrorWithSeverity instantiates a new Error with a severity. The
// severity overrides the one chosen by CheckAndMaybeLog.
func NewErrorWithSeverity(cause error, exitCode exit.Code, severity log.Severity) error {
	return &Error{
		exitCode: exitCode,
		severity: severity,
		cause:    cause,
	}
}

// GetExitCode retrieves the exit code.
func (e *Error) GetExitCode() exit.Code { return e.exitCode }

// GetSeverity retrieves the severity.
func (e *Error) GetSeverity() log.Severity { return e.severity }

// Error implements the error interface.
func (e *Error) Error() string { return e.cause.Error() }

// Cause implements causer.
func (e *Error) Cause() error { return e.cause }

// Unwrap implements the Go 1.13 wrapper interface.
func (e *Error) Unwrap() error { return e.cause }

// Format implements fmt.Formatter.
func (e *Error) Format(s fmt.State, verb rune) { errors.FormatError(e, s, verb) }

// FormatError implements errors.Formatter.
func (e *Error) FormatError(p errors.Printer) error {
	if p.Detail() {
		p.Printf("error with exit code: %d", e.exitCode.Int())
	}
	return e.cause
}

// ExitCode returns the exit code to use for err: the code of the
// outermost Error in its chain, or exit.UnspecifiedError.
func ExitCode(err error) exit.Code {
	if cliErr := (*Error)(nil); errors.As(err, &cliErr) {
		return cliErr.exitCode
	}
	return exit.UnspecifiedError()
}
