// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package bundle

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/evanw/esbuild/pkg/api"
)

// Identifiers substituted for the file-scope globals. Each inlined
// file declares its own copy; esbuild renames the per-file copies apart
// when it hoists them into the shared output scope.
const (
	InjectedDirname       = "__cfgresolve_injected_dirname"
	InjectedFilename      = "__cfgresolve_injected_filename"
	InjectedImportMetaURL = "__cfgresolve_injected_import_meta_url"
)

// Target is the language level the bundle is lowered to. The embedded
// host runs ES2017 comfortably; newer syntax is rewritten by esbuild.
const Target = api.ES2017

// scriptFilter matches the files that receive injected constants:
// .js, .ts, .mjs, .cjs, .mts, .cts.
const scriptFilter = `\.[cm]?[jt]s$`

// Artifact is the output of one bundling run.
type Artifact struct {
	// Code is the generated JavaScript, ESM or CommonJS depending on the
	// module style requested.
	Code []byte

	// Inputs holds the absolute path of every file esbuild read to
	// produce Code, entry included, sorted and without duplicates.
	Inputs []string
}

// Options configures a bundling run.
type Options struct {
	// WorkingDirectory is esbuild's absolute working directory. Relative
	// metafile paths are resolved against it. Defaults to the process
	// working directory.
	WorkingDirectory string

	// Logger receives debug output. Defaults to slog.Default().
	Logger *slog.Logger
}

// Bundle compiles entry and its local imports. When moduleStyle is true
// the output is an ES module, otherwise CommonJS, so the executor never
// needs to re-detect the format. Compile failures (syntax errors, an
// unresolvable local import) return a [*Error].
func Bundle(ctx context.Context, entry string, moduleStyle bool, options Options) (*Artifact, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	logger := options.Logger
	if logger == nil {
		logger = slog.Default()
	}
	workingDirectory := options.WorkingDirectory
	if workingDirectory == "" {
		var err error
		workingDirectory, err = os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("getting working directory: %w", err)
		}
	}

	format := api.FormatCommonJS
	if moduleStyle {
		format = api.FormatESModule
	}

	result := api.Build(api.BuildOptions{
		AbsWorkingDir: workingDirectory,
		EntryPoints:   []string{entry},
		Write:         false,
		Target:        Target,
		Platform:      api.PlatformNode,
		Bundle:        true,
		Format:        format,
		Sourcemap:     api.SourceMapNone,
		Metafile:      true,
		LogLevel:      api.LogLevelSilent,
		Define: map[string]string{
			"__dirname":       InjectedDirname,
			"__filename":      InjectedFilename,
			"import.meta.url": InjectedImportMetaURL,
		},
		Plugins: []api.Plugin{
			externalizeDependencies(),
			injectFileScopeVariables(),
		},
	})
	if len(result.Errors) > 0 {
		return nil, &Error{Entry: entry, Messages: result.Errors}
	}
	if len(result.OutputFiles) == 0 {
		return nil, fmt.Errorf("bundling %s: esbuild produced no output", entry)
	}

	inputs, err := metafileInputs(result.Metafile, workingDirectory)
	if err != nil {
		return nil, fmt.Errorf("bundling %s: %w", entry, err)
	}

	logger.Debug("bundled config",
		"entry", entry,
		"module_style", moduleStyle,
		"inputs", len(inputs),
		"bytes", len(result.OutputFiles[0].Contents),
	)
	return &Artifact{
		Code:   result.OutputFiles[0].Contents,
		Inputs: inputs,
	}, nil
}

// externalizeDependencies leaves built-ins and bare package specifiers
// as live imports. Only "./x", "../x" and absolute paths are followed.
func externalizeDependencies() api.Plugin {
	return api.Plugin{
		Name: "externalize-deps",
		Setup: func(build api.PluginBuild) {
			build.OnResolve(api.OnResolveOptions{Filter: `.*`},
				func(args api.OnResolveArgs) (api.OnResolveResult, error) {
					if IsExternal(args.Path) {
						return api.OnResolveResult{Path: args.Path, External: true}, nil
					}
					// Zero result: fall through to esbuild's resolver.
					return api.OnResolveResult{}, nil
				})
		},
	}
}

// IsExternal reports whether an import specifier is left unbundled.
func IsExternal(specifier string) bool {
	if IsBuiltin(specifier) {
		return true
	}
	return !strings.HasPrefix(specifier, ".") && !filepath.IsAbs(specifier)
}

// injectFileScopeVariables prepends each script's own location
// constants to its source.
func injectFileScopeVariables() api.Plugin {
	return api.Plugin{
		Name: "inject-file-scope-variables",
		Setup: func(build api.PluginBuild) {
			build.OnLoad(api.OnLoadOptions{Filter: scriptFilter},
				func(args api.OnLoadArgs) (api.OnLoadResult, error) {
					source, err := os.ReadFile(args.Path)
					if err != nil {
						return api.OnLoadResult{}, err
					}
					contents, err := InjectFileScope(args.Path, string(source))
					if err != nil {
						return api.OnLoadResult{}, err
					}
					loader := api.LoaderJS
					if strings.HasSuffix(args.Path, "ts") {
						loader = api.LoaderTS
					}
					return api.OnLoadResult{Contents: &contents, Loader: loader}, nil
				})
		},
	}
}

// InjectFileScope returns source with the three location constants for
// path declared on its first line. The declarations share the line
// with the original first line so reported line numbers stay put.
func InjectFileScope(path, source string) (string, error) {
	dirname, err := json.Marshal(filepath.Dir(path))
	if err != nil {
		return "", err
	}
	filename, err := json.Marshal(path)
	if err != nil {
		return "", err
	}
	fileURL, err := json.Marshal(FileURL(path))
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("const %s = %s;const %s = %s;const %s = %s;",
		InjectedDirname, dirname,
		InjectedFilename, filename,
		InjectedImportMetaURL, fileURL,
	) + source, nil
}
