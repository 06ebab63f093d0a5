// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package commands

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"reflect"

	"github.com/spf13/pflag"
	"gopkg.in/yaml.v3"

	"github.com/bureau-foundation/cfgresolve/cmd/cfgresolve/cli"
	"github.com/bureau-foundation/cfgresolve/lib/codec"
	"github.com/bureau-foundation/cfgresolve/lib/configresolve"
)

// resolution is the printed form of a result.
type resolution struct {
	ConfigFile   string         `json:"configFile" yaml:"configFile"`
	Config       map[string]any `json:"config" yaml:"config"`
	Dependencies []string       `json:"dependencies" yaml:"dependencies"`
}

func resolveCommand(stdout io.Writer) *cli.Command {
	var (
		flags  resolverFlags
		format string
		color  string
	)
	return &cli.Command{
		Name:    "resolve",
		Summary: "Resolve a config and print it",
		Description: `Locate the named config, resolve it, and print the config file, the
resolved config, and the files it was built from.

Formats:
  json   indented JSON (default)
  yaml   YAML
  cbor   deterministic CBOR bytes
  diag   CBOR diagnostic notation (RFC 8949), for inspecting the CBOR form`,
		Usage: "cfgresolve resolve NAME [flags]",
		Examples: []cli.Example{
			{
				Description: "Resolve app.config.* in the current directory",
				Command:     "cfgresolve resolve app.config",
			},
			{
				Description: "Resolve for production as YAML",
				Command:     "cfgresolve resolve app.config --root ./web --mode production --format yaml",
			},
		},
		Flags: func() *pflag.FlagSet {
			flagSet := pflag.NewFlagSet("resolve", pflag.ContinueOnError)
			flags.register(flagSet, true)
			flagSet.StringVarP(&format, "format", "f", "json", "output format: json, yaml, cbor, or diag")
			flagSet.StringVar(&color, "color", string(cli.ColorAuto), "highlight output: auto, always, or never")
			return flagSet
		},
		Run: func(ctx context.Context, args []string) error {
			name, err := requireName("resolve", args)
			if err != nil {
				return err
			}
			colorMode, err := cli.ParseColorMode(color)
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
			return writeResolution(stdout, result, format, colorMode.Enabled(stdout))
		},
	}
}

// writeResolution renders result in format.
func writeResolution(w io.Writer, result *configresolve.Result[map[string]any], format string, color bool) error {
	printed := resolution{
		ConfigFile:   result.ConfigFile,
		Config:       printableMap(result.Config),
		Dependencies: result.Dependencies,
	}
	switch format {
	case "json":
		data, err := json.MarshalIndent(printed, "", "  ")
		if err != nil {
			return fmt.Errorf("encoding JSON: %w", err)
		}
		return cli.WriteHighlighted(w, string(data)+"\n", "json", color)
	case "yaml":
		data, err := yaml.Marshal(printed)
		if err != nil {
			return fmt.Errorf("encoding YAML: %w", err)
		}
		return cli.WriteHighlighted(w, string(data), "yaml", color)
	case "cbor":
		data, err := codec.Marshal(printed)
		if err != nil {
			return fmt.Errorf("encoding CBOR: %w", err)
		}
		_, err = w.Write(data)
		return err
	case "diag":
		data, err := codec.Marshal(printed)
		if err != nil {
			return fmt.Errorf("encoding CBOR: %w", err)
		}
		notation, err := codec.Diagnose(data)
		if err != nil {
			return fmt.Errorf("diagnosing CBOR: %w", err)
		}
		_, err = fmt.Fprintln(w, notation)
		return err
	default:
		return fmt.Errorf("unknown --format %q (want json, yaml, cbor, or diag)", format)
	}
}

// functionPlaceholder stands in for function values, which no output
// format can encode.
const functionPlaceholder = "[Function]"

func printableMap(config map[string]any) map[string]any {
	if config == nil {
		return nil
	}
	printed := make(map[string]any, len(config))
	for key, value := range config {
		printed[key] = printable(value)
	}
	return printed
}

// printable returns value with functions replaced by a placeholder
// and every map keyed by strings, recursively.
func printable(value any) any {
	switch typed := value.(type) {
	case nil, string, bool, float64, int64, int, []byte:
		return value
	case map[string]any:
		return printableMap(typed)
	case []any:
		printed := make([]any, len(typed))
		for index, element := range typed {
			printed[index] = printable(element)
		}
		return printed
	}

	reflected := reflect.ValueOf(value)
	switch reflected.Kind() {
	case reflect.Func:
		return functionPlaceholder
	case reflect.Map:
		printed := make(map[string]any, reflected.Len())
		iterator := reflected.MapRange()
		for iterator.Next() {
			printed[fmt.Sprint(iterator.Key().Interface())] = printable(iterator.Value().Interface())
		}
		return printed
	case reflect.Slice, reflect.Array:
		printed := make([]any, reflected.Len())
		for index := range printed {
			printed[index] = printable(reflected.Index(index).Interface())
		}
		return printed
	}
	return value
}
