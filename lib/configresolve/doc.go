// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package configresolve resolves a named configuration module into a
// typed Go value plus the files it was built from.
//
// A configuration module is found by probing a root directory for the
// name with each recognized extension (see [configfile.Extensions]).
// JSON (with comments) and YAML files are parsed directly. JavaScript
// and TypeScript files are bundled with esbuild, executed in an
// embedded runtime, and their export resolved: a function export is
// called once with {mode}, and a promise is awaited. Scripts are
// compiled for ES2017, so top-level await is not supported in any
// module style; await inside an async function export instead.
//
//	resolver, err := configresolve.New(configresolve.WithDefaultMode("production"))
//	...
//	result, err := configresolve.Resolve[AppConfig](ctx, resolver, "app.config",
//		configresolve.InlineConfig{Root: projectDir})
//	if result == nil {
//		// no app.config.* in projectDir
//	}
//
// The resolved value must be a plain object. Anything else fails with
// a [*ShapeError]. Parse, bundle, and execution failures surface as
// [*staticconfig.ParseError], [*bundle.Error], and
// [*jshost.ExecutionError] respectively.
//
// A [Resolver] is safe for concurrent use. Each script resolution runs
// in its own runtime, so module caches are never shared and edits to a
// config are seen on the next call.
package configresolve
