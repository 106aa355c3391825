// Copyright 2026 The Cockroach Authors.
//
// Use of this software is governed by the CockroachDB Software License
// included in the /LICENSE file.

package cli

import (
	"os"
	"strconv"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/cockroachdb/stl/pkg/cli/clierror"
	"github.com/cockroachdb/stl/pkg/cli/cliflags"
	"github.com/cockroachdb/stl/pkg/cli/exit"
	"github.com/cockroachdb/stl/pkg/util/log"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v2"
)

// stlConfig is the layout of the file named by --config. Every field is
// optional; absent fields keep the built-in defaults.
type stlConfig struct {
	Format string `yaml:"format"`

	Vector struct {
		N *int `yaml:"n"`
	} `yaml:"vector"`

	Map struct {
		Keys          []string `yaml:"keys"`
		Capacity      *int     `yaml:"capacity"`
		MaxLoadFactor *float64 `yaml:"max-load-factor"`
		Dump          *bool    `yaml:"dump"`
	} `yaml:"map"`

	Bench struct {
		N *int `yaml:"n"`
	} `yaml:"bench"`
}

// loadConfig reads and parses a configuration file. Unknown fields are
// rejected.
func loadConfig(path string) (*stlConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "reading configuration")
	}
	var c stlConfig
	if err := yaml.UnmarshalStrict(data, &c); err != nil {
		return nil, errors.WithHint(
			errors.Wrapf(err, "parsing configuration %s", path),
			"The accepted fields are listed in the help text of --config.")
	}
	return &c, nil
}

// flagValues returns, keyed by flag name, the values the configuration
// supplies for the flags of cmd.
func (c *stlConfig) flagValues(cmd *cobra.Command) map[string]string {
	vals := make(map[string]string)
	if c.Format != "" {
		vals[cliflags.TableDisplayFormat.Name] = c.Format
	}
	setInt := func(name string, v *int) {
		if v != nil {
			vals[name] = strconv.Itoa(*v)
		}
	}
	switch cmd {
	case vectorGrowthCmd:
		setInt(cliflags.N.Name, c.Vector.N)
	case mapTraceCmd:
		if c.Map.Keys != nil {
			vals[cliflags.Keys.Name] = strings.Join(c.Map.Keys, ",")
		}
		setInt(cliflags.Capacity.Name, c.Map.Capacity)
		if c.Map.MaxLoadFactor != nil {
			vals[cliflags.MaxLoadFactor.Name] = strconv.FormatFloat(*c.Map.MaxLoadFactor, 'g', -1, 64)
		}
		if c.Map.Dump != nil {
			vals[cliflags.Dump.Name] = strconv.FormatBool(*c.Map.Dump)
		}
	case benchCmd:
		setInt(cliflags.N.Name, c.Bench.N)
	}
	return vals
}

// applyConfig loads the file named by --config, if any, and assigns its
// values to the flags of cmd that were not given on the command line or
// through the environment. Errors are reported at WARNING: the command did
// not run, but nothing failed internally.
func applyConfig(cmd *cobra.Command) error {
	if cliCtx.configFile == "" {
		return nil
	}
	c, err := loadConfig(cliCtx.configFile)
	if err != nil {
		return clierror.NewErrorWithSeverity(err, exit.CommandLineFlagError(), log.Severity_WARNING)
	}
	for name, val := range c.flagValues(cmd) {
		f := cmd.Flags().Lookup(name)
		if f == nil || f.Changed {
			continue
		}
		if err := f.Value.Set(val); err != nil {
			return clierror.NewErrorWithSeverity(
				errors.Wrapf(err, "configuration %s: invalid value for %s", cliCtx.configFile, name),
				exit.CommandLineFlagError(), log.Severity_WARNING)
		}
	}
	return nil
}
