// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package configresolve

import (
	"path/filepath"
	"slices"

	"github.com/bureau-foundation/cfgresolve/lib/depdigest"
)

// Result is a resolved config and the files it came from.
type Result[T any] struct {
	// ConfigFile is the absolute, forward-slash path of the config.
	ConfigFile string `json:"configFile"`

	// Config is the resolved value.
	Config T `json:"config"`

	// Dependencies lists the absolute, forward-slash paths of every
	// file bundled into a script config, the config itself included.
	// It is empty for JSON and YAML configs.
	Dependencies []string `json:"dependencies"`
}

// Files returns ConfigFile and Dependencies as one sorted,
// duplicate-free list.
func (r *Result[T]) Files() []string {
	files := append([]string{r.ConfigFile}, r.Dependencies...)
	slices.Sort(files)
	return slices.Compact(files)
}

// Digest fingerprints the names and current contents of Files. Two
// calls return the same digest exactly when no file was added,
// removed, renamed, or edited in between.
func (r *Result[T]) Digest() (depdigest.Digest, error) {
	return depdigest.Compute(r.Files(), filepath.FromSlash)
}

// normalizePath returns path as a clean forward-slash path.
func normalizePath(path string) string {
	return filepath.ToSlash(filepath.Clean(path))
}

func normalizePaths(paths []string) []string {
	normalized := make([]string, 0, len(paths))
	for _, path := range paths {
		normalized = append(normalized, normalizePath(path))
	}
	return normalized
}
