// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package version reports build version information for the cfgresolve
// binary. Values are injected at build time via -ldflags:
//
//	go build -ldflags "-X github.com/bureau-foundation/cfgresolve/lib/version.GitCommit=$(git rev-parse --short HEAD)"
//
// Builds without ldflags fall back to the module version recorded by
// the Go toolchain, so "go install ...@v1.2.3" still reports v1.2.3.
package version
