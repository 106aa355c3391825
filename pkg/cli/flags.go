// Copyright 2015 The Cockroach Authors.
//
// Use of this software is governed by the CockroachDB Software License
// included in the /LICENSE file.

package cli

import (
	"os"
	"strings"

	"github.com/cockroachdb/stl/pkg/cli/cliflags"
	"github.com/cockroachdb/stl/pkg/util/log"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// AddPersistentPreRunE add 'fn' as a persistent pre-run function to 'cmd'.
// If the command has an existing pre-run function, it is saved and will be called
// at the beginning of 'fn'.
// This allows an arbitrary number of pre-run functions with ordering based
// on the order in which AddPersistentPreRunE is called (usually package init order).
func AddPersistentPreRunE(cmd *cobra.Command, fn func(*cobra.Command, []string) error) {
	// Save any existing hooks.
	wrapped := cmd.PersistentPreRunE

	cmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		// Run the previous hook if it exists.
		if wrapped != nil {
			if err := wrapped(cmd, args); err != nil {
				return err
			}
		}

		// Now we can call the new function.
		return fn(cmd, args)
	}
}

func setFlagFromEnv(f *pflag.FlagSet, flagInfo cliflags.FlagInfo) {
	if flagInfo.EnvVar != "" {
		if value, set := os.LookupEnv(flagInfo.EnvVar); set {
			if err := f.Set(flagInfo.Name, value); err != nil {
				panic(err)
			}
		}
	}
}

// StringFlag creates a string flag and registers it with the FlagSet.
func StringFlag(f *pflag.FlagSet, valPtr *string, flagInfo cliflags.FlagInfo, defaultVal string) {
	f.StringVarP(valPtr, flagInfo.Name, flagInfo.Shorthand, defaultVal, flagInfo.Usage())

	setFlagFromEnv(f, flagInfo)
}

// IntFlag creates an int flag and registers it with the FlagSet.
func IntFlag(f *pflag.FlagSet, valPtr *int, flagInfo cliflags.FlagInfo, defaultVal int) {
	f.IntVarP(valPtr, flagInfo.Name, flagInfo.Shorthand, defaultVal, flagInfo.Usage())

	setFlagFromEnv(f, flagInfo)
}

// Float64Flag creates a float64 flag and registers it with the FlagSet.
func Float64Flag(
	f *pflag.FlagSet, valPtr *float64, flagInfo cliflags.FlagInfo, defaultVal float64,
) {
	f.Float64VarP(valPtr, flagInfo.Name, flagInfo.Shorthand, defaultVal, flagInfo.Usage())

	setFlagFromEnv(f, flagInfo)
}

// BoolFlag creates a bool flag and registers it with the FlagSet.
func BoolFlag(f *pflag.FlagSet, valPtr *bool, flagInfo cliflags.FlagInfo, defaultVal bool) {
	f.BoolVarP(valPtr, flagInfo.Name, flagInfo.Shorthand, defaultVal, flagInfo.Usage())

	setFlagFromEnv(f, flagInfo)
}

// VarFlag creates a custom-variable flag and registers it with the FlagSet.
func VarFlag(f *pflag.FlagSet, value pflag.Value, flagInfo cliflags.FlagInfo) {
	f.VarP(value, flagInfo.Name, flagInfo.Shorthand, flagInfo.Usage())

	setFlagFromEnv(f, flagInfo)
}

// keyList is a pflag.Value holding a comma-separated list of keys. Unlike
// pflag's string slices, every Set replaces the previous contents.
type keyList []string

var _ pflag.Value = (*keyList)(nil)

func (k *keyList) Type() string { return "strings" }

func (k *keyList) String() string { return strings.Join(*k, ",") }

func (k *keyList) Set(s string) error {
	if s == "" {
		*k = nil
		return nil
	}
	*k = strings.Split(s, ",")
	return nil
}

func init() {
	initCLIDefaults()

	// Every command reads the configuration file, if any, once its flags
	// are parsed.
	AddPersistentPreRunE(stlCmd, func(cmd *cobra.Command, _ []string) error {
		return applyConfig(cmd)
	})

	{
		pf := stlCmd.PersistentFlags()
		StringFlag(pf, &cliCtx.configFile, cliflags.Config, cliCtx.configFile)

		log.AddFlags(pf)
		pf.Lookup(log.VerbosityFlagName).Usage = cliflags.Verbosity.Usage()
		setFlagFromEnv(pf, cliflags.Verbosity)
		// Redaction markers are only useful when logs are collected for
		// later processing.
		_ = pf.MarkHidden(log.RedactableFlagName)
	}

	BoolFlag(versionCmd.Flags(), &versionIncludesDeps, cliflags.BuildDeps, false)

	IntFlag(vectorGrowthCmd.Flags(), &vectorCtx.n, cliflags.N, vectorCtx.n)

	{
		f := mapTraceCmd.Flags()
		VarFlag(f, (*keyList)(&mapCtx.keys), cliflags.Keys)
		IntFlag(f, &mapCtx.capacity, cliflags.Capacity, mapCtx.capacity)
		Float64Flag(f, &mapCtx.maxLoadFactor, cliflags.MaxLoadFactor, mapCtx.maxLoadFactor)
		BoolFlag(f, &mapCtx.dump, cliflags.Dump, mapCtx.dump)
	}

	IntFlag(benchCmd.Flags(), &benchCtx.n, cliflags.N, benchCtx.n)

	// Commands that print tables.
	//
	// By default, these commands print their output as pretty-formatted
	// tables on terminals, and TSV when redirected to a file. The user
	// can override with --format.
	tableOutputCommands := []*cobra.Command{vectorGrowthCmd, mapTraceCmd, benchCmd}
	for _, cmd := range tableOutputCommands {
		f := cmd.Flags()
		VarFlag(f, &cliCtx.tableDisplayFormat, cliflags.TableDisplayFormat)
	}
}
