// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package configfile

import (
	"log/slog"
	"path/filepath"
	"strings"
	"sync"
)

// Format identifies how a configuration file is loaded.
type Format int

const (
	// FormatScript is a JavaScript or TypeScript module that must be
	// bundled and executed.
	FormatScript Format = iota
	// FormatJSON is a JSON file, comments and trailing commas allowed.
	FormatJSON
	// FormatYAML is a YAML file (.yml or .yaml).
	FormatYAML
)

// String returns the lowercase name of the format.
func (f Format) String() string {
	switch f {
	case FormatJSON:
		return "json"
	case FormatYAML:
		return "yaml"
	case FormatScript:
		return "script"
	default:
		return "unknown"
	}
}

// IsStatic reports whether the format is plain data with no imports.
func (f Format) IsStatic() bool {
	return f == FormatJSON || f == FormatYAML
}

// Classify returns the format of path, decided by extension alone.
func Classify(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return FormatJSON
	case ".yml", ".yaml":
		return FormatYAML
	default:
		return FormatScript
	}
}

// Classifier decides module-style versus classic-style execution for
// script configs. The zero value is not usable; construct with
// [NewClassifier].
type Classifier struct {
	workingDirectory string
	logger           *slog.Logger

	packageOnce     sync.Once
	packageMetadata *PackageMetadata
	packageError    error
}

// NewClassifier returns a Classifier that consults the package.json
// nearest to workingDirectory. The lookup happens on first need and is
// cached for the Classifier's lifetime.
func NewClassifier(workingDirectory string, logger *slog.Logger) *Classifier {
	if logger == nil {
		logger = slog.Default()
	}
	return &Classifier{workingDirectory: workingDirectory, logger: logger}
}

// IsModule reports whether the script at path runs with module (ESM)
// semantics. Rules, in order:
//
//   - .mjs, .mts and .ts are module-style.
//   - .cjs and .cts are classic-style.
//   - otherwise the nearest package.json decides: "type": "module" is
//     module-style, anything else (including a missing file or field)
//     is classic-style.
func (c *Classifier) IsModule(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".mjs", ".mts", ".ts":
		return true
	case ".cjs", ".cts":
		return false
	}
	metadata := c.Package()
	return metadata != nil && metadata.Type == PackageTypeModule
}

// Package returns the cached package metadata, loading it on first
// call. A missing or unreadable package.json yields nil; read errors
// are logged once and otherwise treated as absence, matching the
// host ecosystem's fallback to classic semantics.
func (c *Classifier) Package() *PackageMetadata {
	c.packageOnce.Do(func() {
		c.packageMetadata, c.packageError = FindPackage(c.workingDirectory)
		if c.packageError != nil {
			c.logger.Warn("ignoring unreadable package descriptor",
				"working_directory", c.workingDirectory,
				"error", c.packageError,
			)
		}
	})
	if c.packageError != nil {
		return nil
	}
	return c.packageMetadata
}
