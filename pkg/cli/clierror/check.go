// Copyright 2019 The Cockroach Authors.
//
// Use of this software is governed by the CockroachDB Software License
// included in the /LICENSE file.

package clierror

import (
	"context"

	"github.com/cockroachdb/errors"
	"github.com/cockroachdb/stl/pkg/util/log"
)

// Logger is the signature of the function used to report errors.
type Logger func(ctx context.Context, sev log.Severity, format string, args ...interface{})

// CheckAndMaybeLog reports the error, if non-nil, to the given logger
// and returns the original error.
//
// If err is (or wraps) an *Error carrying an explicit severity, that
// severity is used and one layer of *Error is unwrapped before logging.
// Otherwise the error is logged at ERROR. Hints attached to the error
// follow at INFO.
func CheckAndMaybeLog(err error, logger Logger) error {
	if err == nil {
		return nil
	}
	sev := log.Severity_ERROR
	logged := err
	if cliErr := (*Error)(nil); errors.As(err, &cliErr) {
		if s := cliErr.GetSeverity(); s != log.Severity_UNKNOWN {
			sev = s
		}
		logged = cliErr.Cause()
	}
	ctx := context.Background()
	logger(ctx, sev, "%v", logged)
	if hint := errors.FlattenHints(err); hint != "" {
		logger(ctx, log.Severity_INFO, "HINT: %s", hint)
	}
	return err
}
