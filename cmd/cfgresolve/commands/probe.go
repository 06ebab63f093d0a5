// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package commands

import (
	"context"
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"github.com/spf13/pflag"

	"github.com/bureau-foundation/cfgresolve/cmd/cfgresolve/cli"
	"github.com/bureau-foundation/cfgresolve/lib/configfile"
	"github.com/bureau-foundation/cfgresolve/lib/configresolve"
)

func probeCommand(stdout io.Writer) *cli.Command {
	var flags resolverFlags
	return &cli.Command{
		Name:    "probe",
		Summary: "Locate a config without executing it",
		Description: `Show which file a config name resolves to, its format, and, for
scripts, whether it runs as an ES module or as CommonJS. Nothing is
bundled or executed.`,
		Usage: "cfgresolve probe NAME [flags]",
		Flags: func() *pflag.FlagSet {
			flagSet := pflag.NewFlagSet("probe", pflag.ContinueOnError)
			flags.register(flagSet, false)
			return flagSet
		},
		Run: func(_ context.Context, args []string) error {
			name, err := requireName("probe", args)
			if err != nil {
				return err
			}
			resolver, err := flags.resolver()
			if err != nil {
				return err
			}
			path, err := resolver.Locate(name, flags.inline())
			if err != nil {
				return err
			}
			if path == "" {
				return notFound(os.Stderr, name, resolver, flags.inline())
			}
			return writeProbe(stdout, resolver, path)
		},
	}
}

// writeProbe prints what the resolver knows about path before running it.
func writeProbe(w io.Writer, resolver *configresolve.Resolver, path string) error {
	format := configfile.Classify(path)
	tw := tabwriter.NewWriter(w, 2, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "file:\t%s\n", path)
	fmt.Fprintf(tw, "format:\t%s\n", format)
	if !format.IsStatic() {
		style := "commonjs"
		if resolver.IsModule(path) {
			style = "module"
		}
		fmt.Fprintf(tw, "style:\t%s\n", style)
	}
	return tw.Flush()
}
