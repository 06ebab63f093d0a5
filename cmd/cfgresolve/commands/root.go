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
	"github.com/bureau-foundation/cfgresolve/lib/version"
)

// Root builds the complete command tree.
func Root() *cli.Command {
	return &cli.Command{
		Name: "cfgresolve",
		Description: `cfgresolve: inspect how a configuration module resolves.

A configuration module is a JSON, YAML, JavaScript, or TypeScript file
found by name under a root directory. Scripts are bundled and executed
with their mode, exactly as a program embedding cfgresolve would see
them.`,
		Subcommands: []*cli.Command{
			resolveCommand(os.Stdout),
			depsCommand(os.Stdout),
			probeCommand(os.Stdout),
			{
				Name:    "version",
				Summary: "Print version information",
				Run: func(context.Context, []string) error {
					fmt.Printf("cfgresolve %s\n", version.Full())
					return nil
				},
			},
		},
	}
}

// resolverFlags are shared by every command that locates a config.
type resolverFlags struct {
	root    string
	mode    string
	verbose bool
}

func (f *resolverFlags) register(flagSet *pflag.FlagSet, withMode bool) {
	flagSet.StringVar(&f.root, "root", "", "directory to search (default: the working directory)")
	if withMode {
		flagSet.StringVarP(&f.mode, "mode", "m", "", "mode passed to function configs (default: "+configresolve.DefaultMode+")")
	}
	flagSet.BoolVarP(&f.verbose, "verbose", "v", false, "log resolution stages to stderr")
}

func (f *resolverFlags) inline() configresolve.InlineConfig {
	return configresolve.InlineConfig{Root: f.root, Mode: f.mode}
}

func (f *resolverFlags) resolver() (*configresolve.Resolver, error) {
	return configresolve.New(configresolve.WithLogger(cli.NewCommandLogger(f.verbose)))
}

// requireName checks that exactly one config name was given.
func requireName(command string, args []string) (string, error) {
	switch len(args) {
	case 0:
		return "", fmt.Errorf("%s: config name required (e.g. app.config)", command)
	case 1:
		return args[0], nil
	default:
		return "", fmt.Errorf("%s: expected one config name, got %d arguments", command, len(args))
	}
}

// notFound reports a missing config and returns the exit status for it.
func notFound(w io.Writer, name string, resolver *configresolve.Resolver, inline configresolve.InlineConfig) error {
	root := inline.Root
	if root == "" {
		root = resolver.WorkingDir()
	}
	fmt.Fprintf(w, "no config named %q under %s\n", name, root)
	return &cli.ExitError{Code: 1}
}
