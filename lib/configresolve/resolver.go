// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package configresolve

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sync"

	"github.com/bureau-foundation/cfgresolve/lib/bundle"
	"github.com/bureau-foundation/cfgresolve/lib/clock"
	"github.com/bureau-foundation/cfgresolve/lib/configfile"
	"github.com/bureau-foundation/cfgresolve/lib/jshost"
	"github.com/bureau-foundation/cfgresolve/lib/staticconfig"
)

// DefaultMode is the mode used when neither the call nor the resolver
// names one.
const DefaultMode = "development"

// Env is the environment descriptor a function export receives.
type Env = jshost.Env

// InlineConfig carries per-call overrides.
type InlineConfig struct {
	// Root is the directory probed for the config. Relative roots are
	// resolved against the resolver's working directory; empty means
	// the working directory itself.
	Root string

	// Mode overrides the resolver's default mode.
	Mode string
}

// Resolver resolves config modules. Its zero value is not usable; call
// [New].
type Resolver struct {
	logger           *slog.Logger
	defaultMode      string
	workingDirectory string
	clock            clock.Clock
	processEnv       bool

	classifier *configfile.Classifier
}

// New builds a Resolver.
func New(options ...Option) (*Resolver, error) {
	r := &Resolver{defaultMode: DefaultMode}
	for _, option := range options {
		option(r)
	}
	if r.logger == nil {
		r.logger = slog.Default()
	}
	if r.clock == nil {
		r.clock = clock.Real()
	}
	if r.defaultMode == "" {
		r.defaultMode = DefaultMode
	}

	if r.workingDirectory == "" {
		workingDirectory, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("determining working directory: %w", err)
		}
		r.workingDirectory = workingDirectory
	}
	workingDirectory, err := filepath.Abs(r.workingDirectory)
	if err != nil {
		return nil, fmt.Errorf("resolving working directory %s: %w", r.workingDirectory, err)
	}
	r.workingDirectory = workingDirectory

	r.classifier = configfile.NewClassifier(r.workingDirectory, r.logger)
	return r, nil
}

// WorkingDir returns the resolver's absolute working directory.
func (r *Resolver) WorkingDir() string {
	return r.workingDirectory
}

// Env returns the environment descriptor a call with inline would use.
func (r *Resolver) Env(inline InlineConfig) Env {
	if inline.Mode != "" {
		return Env{Mode: inline.Mode}
	}
	return Env{Mode: r.defaultMode}
}

// Locate probes for name under inline's root and returns the config
// path, or "" when there is none.
func (r *Resolver) Locate(name string, inline InlineConfig) (string, error) {
	path, err := configfile.Probe(name, r.root(inline))
	if err != nil {
		return "", fmt.Errorf("probing for %s: %w", name, err)
	}
	return path, nil
}

// IsModule reports whether the script at path runs with ES module
// semantics.
func (r *Resolver) IsModule(path string) bool {
	return r.classifier.IsModule(path)
}

func (r *Resolver) root(inline InlineConfig) string {
	switch {
	case inline.Root == "":
		return r.workingDirectory
	case filepath.IsAbs(inline.Root):
		return inline.Root
	default:
		return filepath.Join(r.workingDirectory, inline.Root)
	}
}

// Resolve finds the config module name under inline.Root and resolves
// it to a T. It returns (nil, nil) when no config file exists.
//
// T is typically a struct or map[string]any. Struct fields match config
// keys by json tag, or by the field name with a lowercase first letter
// when untagged.
func Resolve[T any](ctx context.Context, r *Resolver, name string, inline InlineConfig) (*Result[T], error) {
	env := r.Env(inline)
	if r.processEnv {
		if err := os.Setenv("NODE_ENV", env.Mode); err != nil {
			return nil, fmt.Errorf("setting NODE_ENV: %w", err)
		}
	}

	path, err := r.Locate(name, inline)
	if err != nil {
		return nil, err
	}
	if path == "" {
		r.logger.Debug("no config file found", "name", name, "root", r.root(inline))
		return nil, nil
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	format := configfile.Classify(path)
	r.logger.Debug("resolving config", "path", path, "format", format.String(), "mode", env.Mode)

	if format.IsStatic() {
		config, err := loadStatic[T](path, format)
		if err != nil {
			return nil, err
		}
		return &Result[T]{
			ConfigFile:   normalizePath(path),
			Config:       config,
			Dependencies: []string{},
		}, nil
	}
	return resolveScript[T](ctx, r, path, env)
}

func loadStatic[T any](path string, format configfile.Format) (T, error) {
	var (
		config T
		value  any
		err    error
	)
	switch format {
	case configfile.FormatJSON:
		value, err = staticconfig.LoadStructured(path)
	case configfile.FormatYAML:
		value, err = staticconfig.LoadKeyValue(path)
	default:
		return config, fmt.Errorf("%s is not a static config format", format)
	}
	if err != nil {
		return config, err
	}

	object, ok := value.(map[string]any)
	if !ok {
		return config, &ShapeError{Path: path, Kind: describe(value)}
	}
	if typed, ok := any(object).(T); ok {
		return typed, nil
	}

	// Other targets take the JSON route so struct tags apply the same
	// way they do for script configs.
	encoded, err := json.Marshal(object)
	if err != nil {
		return config, fmt.Errorf("re-encoding %s: %w", path, err)
	}
	if err := json.Unmarshal(encoded, &config); err != nil {
		return config, fmt.Errorf("decoding %s into %T: %w", path, config, err)
	}
	return config, nil
}

// describe names the kind of a parsed static value.
func describe(value any) string {
	switch value.(type) {
	case nil:
		return "null"
	case []any:
		return "array"
	case string:
		return "string"
	case bool:
		return "boolean"
	case int, int64, uint64, float64:
		return "number"
	case map[any]any:
		return "mapping with non-string keys"
	default:
		return fmt.Sprintf("%T", value)
	}
}

func resolveScript[T any](ctx context.Context, r *Resolver, path string, env Env) (*Result[T], error) {
	moduleStyle := r.classifier.IsModule(path)
	artifact, err := bundle.Bundle(ctx, path, moduleStyle, bundle.Options{
		WorkingDirectory: r.workingDirectory,
		Logger:           r.logger,
	})
	if err != nil {
		return nil, err
	}

	host := jshost.New(jshost.Options{
		Mode:   env.Mode,
		Logger: r.logger,
		Clock:  r.clock,
	})
	strategy := jshost.StrategyFor(moduleStyle)
	export, err := host.Execute(ctx, path, artifact.Code, strategy)
	if err != nil {
		return nil, err
	}
	value, err := export.Resolve(ctx, env)
	if err != nil {
		return nil, err
	}
	if !value.IsPlainObject() {
		return nil, &ShapeError{Path: path, Kind: value.Kind()}
	}

	var config T
	if err := value.Decode(&config); err != nil {
		return nil, fmt.Errorf("resolving %s: %w", path, err)
	}

	r.logger.Debug("resolved script config",
		"path", path,
		"strategy", strategy.String(),
		"dependencies", len(artifact.Inputs),
	)
	return &Result[T]{
		ConfigFile:   normalizePath(path),
		Config:       config,
		Dependencies: normalizePaths(artifact.Inputs),
	}, nil
}

// defaultResolvers caches one Resolver per working directory and
// default mode for ResolveConfig, so package.json is read once per
// directory for the life of the process.
var defaultResolvers sync.Map

type defaultResolverKey struct {
	workingDirectory string
	defaultMode      string
}

// ResolveConfig resolves name with a resolver rooted at the process
// working directory. defaultMode, when given, replaces [DefaultMode].
//
// Like the classic Node API it mirrors, ResolveConfig sets the
// process's NODE_ENV to the resolved mode on every call, before
// looking for the file, whatever its format and even when none exists (see
// [WithProcessEnv]). Build a Resolver with [New] to avoid that.
func ResolveConfig[T any](ctx context.Context, name string, inline InlineConfig, defaultMode ...string) (*Result[T], error) {
	mode := DefaultMode
	if len(defaultMode) > 0 && defaultMode[0] != "" {
		mode = defaultMode[0]
	}
	workingDirectory, err := os.Getwd()
	if err != nil {
		return nil, fmt.Errorf("determining working directory: %w", err)
	}

	key := defaultResolverKey{workingDirectory: workingDirectory, defaultMode: mode}
	cached, ok := defaultResolvers.Load(key)
	if !ok {
		resolver, err := New(
			WithWorkingDir(workingDirectory),
			WithDefaultMode(mode),
			WithProcessEnv(true),
		)
		if err != nil {
			return nil, err
		}
		cached, _ = defaultResolvers.LoadOrStore(key, resolver)
	}
	return Resolve[T](ctx, cached.(*Resolver), name, inline)
}

// DefineConfig returns export unchanged. It lets Go callers build
// configs with the same helper name scripts import from "cfgresolve".
func DefineConfig[T any](export T) T {
	return export
}
