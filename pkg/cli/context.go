// Copyright 2026 The Cockroach Authors.
//
// Use of this software is governed by the CockroachDB Software License
// included in the /LICENSE file.

package cli

import (
	"github.com/cockroachdb/errors"
	"github.com/cockroachdb/stl/pkg/util/container/unorderedmap"
	"github.com/spf13/pflag"
)

// cliContext captures the command-line parameters common to all
// commands.
type cliContext struct {
	// isInteractive indicates whether the output is a terminal.
	isInteractive bool

	// tableDisplayFormat indicates how to format result tables.
	tableDisplayFormat tableDisplayFormat

	// configFile is the path to the optional YAML defaults file.
	configFile string
}

// cliCtx captures the command-line parameters common to all commands.
// See below for defaults.
var cliCtx = cliContext{}

// vectorCtx captures the command-line parameters of the `vector` commands.
var vectorCtx struct {
	n int
}

// mapCtx captures the command-line parameters of the `map` commands.
var mapCtx struct {
	keys          []string
	capacity      int
	maxLoadFactor float64
	dump          bool
}

// benchCtx captures the command-line parameters of the `bench` command.
var benchCtx struct {
	n int
}

// initCLIDefaults serves as the single point of truth for configuration
// defaults. It is suitable for calling between tests of the CLI utilities
// inside a single package test, e.g. to reset defaults after the flag
// logic or a configuration file has overridden them.
func initCLIDefaults() {
	cliCtx.isInteractive = isInteractive
	cliCtx.tableDisplayFormat = tableDisplayTSV
	if isInteractive {
		cliCtx.tableDisplayFormat = tableDisplayTable
	}
	cliCtx.configFile = ""

	vectorCtx.n = 16

	mapCtx.keys = []string{"apple", "banana", "cherry", "date", "elderberry", "fig", "grape"}
	mapCtx.capacity = unorderedmap.DefaultCapacity
	mapCtx.maxLoadFactor = unorderedmap.DefaultMaxLoadFactor
	mapCtx.dump = false

	benchCtx.n = 100000
}

// tableDisplayFormat identifies the format with which result tables are
// rendered.
type tableDisplayFormat int

// The following constants identify the supported table formats.
const (
	tableDisplayTSV tableDisplayFormat = iota
	tableDisplayCSV
	tableDisplayTable
	tableDisplayRecords
	// tableDisplayLastFormat must remain last.
	tableDisplayLastFormat
)

var _ pflag.Value = (*tableDisplayFormat)(nil)

// Type implements the pflag.Value interface.
func (f *tableDisplayFormat) Type() string { return "string" }

// String implements the pflag.Value interface.
func (f *tableDisplayFormat) String() string {
	switch *f {
	case tableDisplayTSV:
		return "tsv"
	case tableDisplayCSV:
		return "csv"
	case tableDisplayTable:
		return "table"
	case tableDisplayRecords:
		return "records"
	}
	return ""
}

// Set implements the pflag.Value interface.
func (f *tableDisplayFormat) Set(s string) error {
	switch s {
	case "tsv":
		*f = tableDisplayTSV
	case "csv":
		*f = tableDisplayCSV
	case "table":
		*f = tableDisplayTable
	case "records":
		*f = tableDisplayRecords
	default:
		return errors.Newf("invalid table display format: %s "+
			"(possible values: tsv, csv, table, records)", s)
	}
	return nil
}
