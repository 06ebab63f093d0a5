// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package commands builds the cfgresolve command tree. Each command
// is a thin layer over lib/configresolve: it parses flags, builds a
// Resolver, and renders the result.
package commands
