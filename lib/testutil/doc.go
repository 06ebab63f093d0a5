// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package testutil provides shared test helpers for cfgresolve packages.
//
// [WriteTree] lays out a directory of configuration files from a map of
// relative paths to contents, creating parent directories as needed.
// Most resolver tests build a small project on disk this way and then
// resolve against it.
//
// [Chdir] switches the process working directory for one test and
// restores it on cleanup.
//
// [RequireReceive] reads one value from a channel or fails the test
// after a timeout. It is the only place in the test suite that waits on
// real wall-clock time.
//
// All helpers call t.Fatalf on failure rather than returning errors,
// since test setup failures are not recoverable.
//
// This package has no cfgresolve-internal dependencies.
package testutil
