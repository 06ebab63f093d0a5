// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package staticconfig

import (
	"fmt"
	"os"
	"path/filepath"
)

// ParseError reports a static configuration file that could not be
// decoded.
type ParseError struct {
	// Path is the absolute path of the file.
	Path string
	// Err is the underlying parser error.
	Err error
	// Display is the path as it appears in the message, relative to
	// the working directory at the time of the failure. Empty means
	// Path.
	Display string
}

func newParseError(path string, err error) *ParseError {
	return &ParseError{Path: path, Err: err, Display: relativeToWorkingDirectory(path)}
}

func (e *ParseError) Error() string {
	display := e.Display
	if display == "" {
		display = e.Path
	}
	return fmt.Sprintf("failed to parse %s: %v", display, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// relativeToWorkingDirectory shortens path for messages. Falls back to
// the path itself when no relative form exists (different volume, or
// the working directory is gone).
func relativeToWorkingDirectory(path string) string {
	workingDirectory, err := os.Getwd()
	if err != nil {
		return path
	}
	relative, err := filepath.Rel(workingDirectory, path)
	if err != nil {
		return path
	}
	return relative
}
