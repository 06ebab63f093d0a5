// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package bundle

import (
	"encoding/json"
	"fmt"
	"path/filepath"
	"sort"
	"strings"
)

// Metafile is the subset of esbuild's metafile JSON read here.
type Metafile struct {
	Inputs map[string]MetafileInput `json:"inputs"`
}

// MetafileInput describes one file esbuild read.
type MetafileInput struct {
	Bytes   int              `json:"bytes"`
	Imports []MetafileImport `json:"imports"`
	Format  string           `json:"format,omitempty"` // "cjs" or "esm"
}

// MetafileImport is one import statement of an input.
type MetafileImport struct {
	Path     string `json:"path"`
	Kind     string `json:"kind"`
	External bool   `json:"external,omitempty"`
	Original string `json:"original,omitempty"`
}

// metafileInputs decodes the metafile and returns its input paths made
// absolute against workingDirectory. Keys carrying a namespace prefix
// ("ns:path") are not files on disk and are skipped.
func metafileInputs(metafile string, workingDirectory string) ([]string, error) {
	if metafile == "" {
		return nil, fmt.Errorf("esbuild returned no metafile")
	}
	var decoded Metafile
	if err := json.Unmarshal([]byte(metafile), &decoded); err != nil {
		return nil, fmt.Errorf("decoding metafile: %w", err)
	}

	seen := make(map[string]struct{}, len(decoded.Inputs))
	inputs := make([]string, 0, len(decoded.Inputs))
	for key := range decoded.Inputs {
		if hasNamespace(key) {
			continue
		}
		path := filepath.FromSlash(key)
		if !filepath.IsAbs(path) {
			path = filepath.Join(workingDirectory, path)
		}
		path = filepath.Clean(path)
		if _, duplicate := seen[path]; duplicate {
			continue
		}
		seen[path] = struct{}{}
		inputs = append(inputs, path)
	}
	sort.Strings(inputs)
	return inputs, nil
}

// hasNamespace reports whether a metafile key is "namespace:path".
// Windows drive letters ("C:...") are single characters and do not
// count.
func hasNamespace(key string) bool {
	index := strings.IndexByte(key, ':')
	return index > 1 && !strings.ContainsAny(key[:index], `/\`)
}
