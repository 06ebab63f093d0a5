// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package commands

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/pflag"

	"github.com/bureau-foundation/cfgresolve/cmd/cfgresolve/cli"
	"github.com/bureau-foundation/cfgresolve/lib/configresolve"
)

func depsCommand(stdout io.Writer) *cli.Command {
	var flags resolverFlags
	return &cli.Command{
		Name:    "deps",
		Summary: "List the files a config is built from",
		Description: `Resolve the named config and print every file it depends on, one per
line, followed by a digest of their names and contents. The digest
changes whenever any of the files is added, removed, renamed, or
edited, so scripts can compare it to decide when to re-resolve.`,
		Usage: "cfgresolve deps NAME [flags]",
		Examples: []cli.Example{
			{
				Description: "Print dependencies and digest",
				Command:     "cfgresolve deps vite.config --root ./web",
			},
		},
		Flags: func() *pflag.FlagSet {
			flagSet := pflag.NewFlagSet("deps", pflag.ContinueOnError)
			flags.register(flagSet, true)
			return flagSet
		},
		Run: func(ctx context.Context, args []string) error {
			name, err := requireName("deps", args)
			if err != nil {
				return err
			}
			resolver, err := flags.resolver()
			if err != nil {
				return err
			}
			result, err := configresolve.Resolve[map[string]any](ctx, resolver, name, flags.inline())
			if err != nil {
				return err
			}
			if result == nil {
				return notFound(os.Stderr, name, resolver, flags.inline())
			}
			return writeDependencies(stdout, result)
		},
	}
}

// writeDependencies prints the files of result and their digest.
func writeDependencies(w io.Writer, result *configresolve.Result[map[string]any]) error {
	digest, err := result.Digest()
	if err != nil {
		return fmt.Errorf("computing dependency digest: %w", err)
	}
	for _, file := range result.Files() {
		if _, err := fmt.Fprintln(w, file); err != nil {
			return err
		}
	}
	_, err = fmt.Fprintf(w, "digest %s\n", digest)
	return err
}
