// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package configfile

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
)

// Extensions lists every recognized configuration file extension in
// probing priority order. JSON wins over scripts, scripts over YAML.
// Among scripts, TypeScript and the explicit module/classic variants
// come before plain .js so that an explicit choice of semantics is
// preferred when several files share a name.
var Extensions = []string{
	".json",
	".ts",
	".mjs",
	".cjs",
	".mts",
	".cts",
	".js",
	".yml",
	".yaml",
}

// IsRecognized reports whether ext (including the leading dot) is one
// of [Extensions].
func IsRecognized(ext string) bool {
	return slices.Contains(Extensions, ext)
}

// Probe finds the configuration file for name under root. If name
// already carries a recognized extension and root/name exists, that
// file is returned. Otherwise each extension in [Extensions] is
// appended to name in order and the first existing file wins.
//
// The returned path is absolute. When no candidate exists Probe returns
// ("", nil). Errors other than "does not exist" (permission denied on
// root, for example) are returned.
func Probe(name, root string) (string, error) {
	if name == "" {
		return "", errors.New("configfile: empty config name")
	}
	absoluteRoot, err := filepath.Abs(root)
	if err != nil {
		return "", fmt.Errorf("resolving config root %s: %w", root, err)
	}

	if IsRecognized(filepath.Ext(name)) {
		candidate := filepath.Join(absoluteRoot, name)
		found, err := isFile(candidate)
		if err != nil {
			return "", err
		}
		if found {
			return candidate, nil
		}
	}

	for _, extension := range Extensions {
		candidate := filepath.Join(absoluteRoot, name+extension)
		found, err := isFile(candidate)
		if err != nil {
			return "", err
		}
		if found {
			return candidate, nil
		}
	}
	return "", nil
}

// isFile reports whether path exists and is not a directory.
func isFile(path string) (bool, error) {
	info, err := os.Stat(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return false, nil
		}
		return false, fmt.Errorf("probing %s: %w", path, err)
	}
	return !info.IsDir(), nil
}
