// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package testutil

import (
	"os"
	"path/filepath"
	"testing"
)

// WriteTree creates every file in files under root. Keys are
// slash-separated paths relative to root; values are file contents.
// Returns root for chaining.
//
//	root := testutil.WriteTree(t, t.TempDir(), map[string]string{
//	    "app.config.ts":  `export default { a: 1 }`,
//	    "lib/helper.ts":  `export const name = "helper"`,
//	})
func WriteTree(t testing.TB, root string, files map[string]string) string {
	t.Helper()
	for relative, content := range files {
		path := filepath.Join(root, filepath.FromSlash(relative))
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			t.Fatalf("creating directory for %s: %v", relative, err)
		}
		if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
			t.Fatalf("writing %s: %v", relative, err)
		}
	}
	return root
}

// Chdir switches the working directory to dir for the rest of the
// test and restores it on cleanup. Tests using it must not call
// t.Parallel.
func Chdir(t testing.TB, dir string) {
	t.Helper()
	previous, err := os.Getwd()
	if err != nil {
		t.Fatalf("getting working directory: %v", err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatalf("changing directory to %s: %v", dir, err)
	}
	t.Cleanup(func() {
		_ = os.Chdir(previous)
	})
}
