// Copyright 2026 The Cockroach Authors.
//
// Use of this software is governed by the CockroachDB Software License
// included in the /LICENSE file.

package cliflags

// Flags shared by every stl command.
var (
	Config = FlagInfo{
		Name:   "config",
		EnvVar: "STL_CONFIG",
		Description: `
Path to a YAML file providing defaults for the container parameters. Values
given on the command line take precedence over the file.
<PRE>

  vector:
    n: 16
  map:
    capacity: 1
    max-load-factor: 1.5
    keys: [a, b, c]
  bench:
    n: 100000
</PRE>`,
	}

	Verbosity = FlagInfo{
		Name:        "v",
		EnvVar:      "STL_VERBOSITY",
		Description: `Log level for V logs. Level 1 traces rehashes and reallocations.`,
	}
)

// Flags of the container commands.
var (
	N = FlagInfo{
		Name:        "n",
		Description: `Number of elements to process.`,
	}

	TableDisplayFormat = FlagInfo{
		Name: "format",
		Description: `
Selects how to display table rows in results. Possible values: tsv, csv,
table, records. If left unspecified, defaults to tsv for non-interactive
sessions and table for interactive sessions.`,
	}

	Keys = FlagInfo{
		Name:        "keys",
		Description: `Comma-separated list of keys to insert, in order.`,
	}

	Capacity = FlagInfo{
		Name:        "capacity",
		Description: `Initial number of buckets of the map.`,
	}

	MaxLoadFactor = FlagInfo{
		Name: "max-load-factor",
		Description: `
Maximum ratio of entries to buckets. An insertion that exceeds it doubles the
bucket count.`,
	}

	Dump = FlagInfo{
		Name:        "dump",
		Description: `Print the contents of every bucket once all keys are inserted.`,
	}
)

// BuildDeps is a flag of the version command.
var BuildDeps = FlagInfo{
	Name:        "build-deps",
	Description: `When specified, also output the version of the Go dependencies.`,
}
