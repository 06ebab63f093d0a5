// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package configfile locates configuration files on disk and decides
// how they must be loaded.
//
// [Probe] turns a bare name ("app.config") or an extensioned name
// ("app.config.yaml") into an absolute path by trying [Extensions] in
// priority order. A missing file is not an error: Probe returns an
// empty path and a nil error, and the caller decides whether absence is
// fatal.
//
// [Classify] maps a path to a [Format]: JSON and YAML files are static
// data, everything else is a script. For scripts, [Classifier.IsModule]
// decides between module-style (ESM) and classic-style (CommonJS)
// execution using the same precedence as Node: explicit .mjs/.mts/.ts
// and .cjs/.cts extensions first, then the "type" field of the nearest
// package.json.
//
// The package.json lookup is cached for the lifetime of a Classifier
// and never invalidated. Edits to package.json during the life of a
// long-running resolver are not observed.
package configfile
