// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package jshost

import "fmt"

// ExecutionError reports an error raised while importing or requiring
// a bundled config, or while invoking a function export. Err is the
// runtime's error (usually a *goja.Exception) and is never recovered
// locally.
type ExecutionError struct {
	// Path is the original config file.
	Path string
	// Err is the underlying error.
	Err error
}

func (e *ExecutionError) Error() string {
	return fmt.Sprintf("executing %s: %v", e.Path, e.Err)
}

func (e *ExecutionError) Unwrap() error { return e.Err }
