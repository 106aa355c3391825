// Copyright 2015 The Cockroach Authors.
//
// Use of this software is governed by the CockroachDB Software License
// included in the /LICENSE file.

// Package cli implements the stl command, which exercises the containers
// from the command line: it traces vector growth and map rehashes, and
// times the containers against the built-in types.
package cli

import (
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/cockroachdb/errors"
	"github.com/cockroachdb/stl/pkg/build"
	"github.com/cockroachdb/stl/pkg/cli/clierror"
	"github.com/cockroachdb/stl/pkg/cli/exit"
	"github.com/cockroachdb/stl/pkg/util/log"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
)

// Main is the entry point for the stl binary.
func Main() {
	errCode := exit.Success()
	if err := Run(os.Args[1:]); err != nil {
		_ = clierror.CheckAndMaybeLog(err, log.Logf)
		errCode = clierror.ExitCode(err)
	}
	exit.WithCode(errCode)
}

var versionIncludesDeps bool

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "output version information",
	Long: `
Output build version information.
`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		info := build.GetInfo()
		tw := tabwriter.NewWriter(cmd.OutOrStdout(), 2, 1, 2, ' ', 0)
		fmt.Fprintf(tw, "Build Tag:   %s\n", info.Tag)
		fmt.Fprintf(tw, "Build Time:  %s\n", info.Time)
		fmt.Fprintf(tw, "Revision:    %s\n", info.Revision)
		fmt.Fprintf(tw, "Platform:    %s\n", info.Platform)
		fmt.Fprintf(tw, "Go Version:  %s\n", info.GoVersion)
		if versionIncludesDeps {
			fmt.Fprintf(tw, "Build Deps:\n\t%s\n",
				strings.Replace(strings.Replace(info.Dependencies, " ", "\n\t", -1), ":", "\t", -1))
		}
		return tw.Flush()
	},
}

var stlCmd = &cobra.Command{
	Use:   "stl [command] (flags)",
	Short: "container library command-line interface",
	Long: `
Traces and benchmarks the vector, list and unordered map containers.
`,
	SilenceErrors: true,
	SilenceUsage:  true,
}

// isInteractive indicates whether both stdin and stdout refer to the
// terminal.
var isInteractive = isatty.IsTerminal(os.Stdout.Fd()) &&
	isatty.IsTerminal(os.Stdin.Fd())

func init() {
	cobra.EnableCommandSorting = false

	stlCmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return clierror.NewError(err, exit.CommandLineFlagError())
	})

	stlCmd.AddCommand(
		vectorCmd,
		mapCmd,
		benchCmd,

		// Miscellaneous commands.
		versionCmd,
	)
}

// Run runs the stl command with the given arguments.
func Run(args []string) error {
	stlCmd.SetArgs(args)
	return stlCmd.Execute()
}

// UsageAndErr informs the user about the usage of the command
// and returns an error. This ensures that the top-level command
// has a suitable exit status.
func UsageAndErr(cmd *cobra.Command, args []string) error {
	if err := cmd.Usage(); err != nil {
		return err
	}
	return clierror.NewError(
		errors.Newf("unknown sub-command: %q", strings.Join(args, " ")),
		exit.CommandLineFlagError())
}
