// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package configresolve

import (
	"log/slog"

	"github.com/bureau-foundation/cfgresolve/lib/clock"
)

// Option configures a Resolver.
type Option func(*Resolver)

// WithLogger sets the logger for resolution diagnostics and for
// console output from config scripts. The default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(r *Resolver) {
		r.logger = logger
	}
}

// WithDefaultMode sets the mode used when InlineConfig.Mode is empty.
// The default is [DefaultMode].
func WithDefaultMode(mode string) Option {
	return func(r *Resolver) {
		r.defaultMode = mode
	}
}

// WithWorkingDir sets the directory relative roots are resolved
// against, where package.json lookup starts, and esbuild's working
// directory. The default is the process working directory.
func WithWorkingDir(dir string) Option {
	return func(r *Resolver) {
		r.workingDirectory = dir
	}
}

// WithClock sets the clock used to name temporary bundle files. The
// default is clock.Real().
func WithClock(c clock.Clock) Option {
	return func(r *Resolver) {
		r.clock = c
	}
}

// WithProcessEnv makes every call to [Resolve] set the NODE_ENV
// variable of the Go process to the call's mode, and leave it set. The
// variable is set before the config file is looked up, so static
// configs and missing configs set it too. Config scripts always see their mode as process.env.NODE_ENV
// regardless; this option is for code outside the script that reads
// the variable. Concurrent resolutions with different modes race on
// the variable.
func WithProcessEnv(enabled bool) Option {
	return func(r *Resolver) {
		r.processEnv = enabled
	}
}
