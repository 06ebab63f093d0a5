// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package cli is the small command framework behind the cfgresolve
// binary: a tree of [Command] values with pflag flag sets, typo
// suggestions for unknown commands and flags, structured help output,
// and helpers for logging and colored output.
//
// Commands return errors rather than exiting. A command that has
// already reported a failure to the user returns an [ExitError] so the
// binary exits non-zero without printing a second message.
package cli
