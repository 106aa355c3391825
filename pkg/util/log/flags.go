// Copyright 2015 The Cockroach Authors.
//
// Use of this software is governed by the CockroachDB Software License
// included in the /LICENSE file.

package log

import (
	"strconv"

	"github.com/cockroachdb/errors"
	"github.com/spf13/pflag"
)

// Names of the logging flags.
const (
	VerbosityFlagName  = "v"
	NoColorFlagName    = "no-color"
	RedactableFlagName = "redactable-logs"
)

// AddFlags registers the logging flags on fs.
func AddFlags(fs *pflag.FlagSet) {
	fs.Var(verbosityValue{}, VerbosityFlagName, "log level for V logs")
	fs.BoolVar(&noColor, NoColorFlagName, noColor, "disable colors in log output to a terminal")
	fs.Var(redactableValue{}, RedactableFlagName, "keep redaction markers in log output")
	fs.Lookup(RedactableFlagName).NoOptDefVal = "true"
}

// verbosityValue is a pflag.Value bound to the global verbosity.
type verbosityValue struct{}

var _ pflag.Value = verbosityValue{}

func (verbosityValue) String() string {
	return strconv.Itoa(int(logging.verbosity.Load()))
}

func (verbosityValue) Set(s string) error {
	v, err := strconv.ParseInt(s, 10, 32)
	if err != nil {
		return errors.Wrapf(err, "invalid verbosity %q", s)
	}
	if v < 0 {
		return errors.Newf("verbosity must be non-negative, got %d", v)
	}
	SetVerbosity(int32(v))
	return nil
}

func (verbosityValue) Type() string { return "int" }

type redactableValue struct{}

var _ pflag.Value = redactableValue{}

func (redactableValue) String() string {
	return strconv.FormatBool(logging.redactable.Load())
}

func (redactableValue) Set(s string) error {
	v, err := strconv.ParseBool(s)
	if err != nil {
		return err
	}
	SetRedactable(v)
	return nil
}

func (redactableValue) Type() string { return "bool" }
