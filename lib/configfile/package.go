// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package configfile

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/tidwall/jsonc"
)

// PackageDescriptorName is the file consulted for the module-type marker.
const PackageDescriptorName = "package.json"

// Package type markers as written in the "type" field.
const (
	PackageTypeModule   = "module"
	PackageTypeCommonJS = "commonjs"
)

// PackageMetadata is the subset of package.json the resolver reads.
type PackageMetadata struct {
	// Path is the absolute path of the package.json this was read from.
	Path string `json:"-"`

	// Main is the package entry point, if declared.
	Main string `json:"main,omitempty"`

	// Type is "module", "commonjs", or empty when absent.
	Type string `json:"type,omitempty"`

	// Dependencies maps package names to version ranges.
	Dependencies map[string]string `json:"dependencies,omitempty"`
}

// FindPackage walks from dir towards the filesystem root and parses the
// first package.json it finds. Returns (nil, nil) when none exists.
func FindPackage(dir string) (*PackageMetadata, error) {
	current, err := filepath.Abs(dir)
	if err != nil {
		return nil, fmt.Errorf("resolving %s: %w", dir, err)
	}
	for {
		candidate := filepath.Join(current, PackageDescriptorName)
		metadata, err := ReadPackage(candidate)
		if err == nil {
			return metadata, nil
		}
		if !errors.Is(err, fs.ErrNotExist) {
			return nil, err
		}
		parent := filepath.Dir(current)
		if parent == current {
			return nil, nil
		}
		current = parent
	}
}

// ReadPackage parses the package.json at path. Comments and trailing
// commas are tolerated. A missing file returns an error matching
// fs.ErrNotExist.
func ReadPackage(path string) (*PackageMetadata, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var metadata PackageMetadata
	if err := json.Unmarshal(jsonc.ToJSON(data), &metadata); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	metadata.Path = path
	return &metadata, nil
}
