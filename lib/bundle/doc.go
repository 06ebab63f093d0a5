// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package bundle compiles a script configuration file and its local
// imports into one self-contained unit of JavaScript using esbuild.
//
// Only relative and absolute imports are inlined. Every other
// specifier (Node built-ins, "node:" URLs, third-party packages) is
// marked external and survives as a live import, resolved later by the
// JavaScript host that executes the bundle. Third-party packages are
// usually pre-built and may ship native artifacts, so inlining them is
// wasteful at best.
//
// Because every inlined file ends up in a single output, the built-in
// file-scope globals __dirname, __filename and import.meta.url would
// all report the bundle's location. Before compiling, each script file
// gets three constants prepended that hold its own directory, path and
// file URL, and esbuild's define feature rewrites references to the
// globals to those constants.
//
// The [Artifact] carries the generated code and the absolute paths of
// every input esbuild read (from the build metafile). Callers use the
// inputs as cache-invalidation metadata. No source maps are produced.
package bundle
