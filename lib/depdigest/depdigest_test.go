// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package depdigest

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/zeebo/blake3"

	"github.com/bureau-foundation/cfgresolve/lib/testutil"
)

func TestHashFileMatchesKeyedBLAKE3(t *testing.T) {
	content := []byte("export default { a: 1 }")
	path := filepath.Join(t.TempDir(), "app.config.ts")
	if err := os.WriteFile(path, content, 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	got, err := HashFile(path)
	if err != nil {
		t.Fatalf("HashFile: %v", err)
	}

	hasher, err := blake3.NewKeyed(fileDomainKey[:])
	if err != nil {
		t.Fatalf("NewKeyed: %v", err)
	}
	hasher.Write(content)
	var want Digest
	copy(want[:], hasher.Sum(nil))
	if got != want {
		t.Errorf("HashFile = %s, want %s", got, want)
	}
}

func TestHashFileNonexistent(t *testing.T) {
	if _, err := HashFile(filepath.Join(t.TempDir(), "missing")); err == nil {
		t.Fatal("HashFile should fail for a nonexistent file")
	}
}

func TestComputeSensitivity(t *testing.T) {
	root := testutil.WriteTree(t, t.TempDir(), map[string]string{
		"app.config.ts": "import { x } from './shared'",
		"shared.ts":     "export const x = 1",
		"other.ts":      "export const x = 1",
	})
	at := func(name string) string { return filepath.Join(root, name) }

	base, err := Compute([]string{"app.config.ts", "shared.ts"}, at)
	if err != nil {
		t.Fatalf("Compute: %v", err)
	}

	again, err := Compute([]string{"app.config.ts", "shared.ts"}, at)
	if err != nil {
		t.Fatalf("Compute: %v", err)
	}
	if base != again {
		t.Errorf("Compute is not deterministic: %s != %s", base, again)
	}

	// Same contents under a different name.
	renamed, err := Compute([]string{"app.config.ts", "other.ts"}, at)
	if err != nil {
		t.Fatalf("Compute: %v", err)
	}
	if renamed == base {
		t.Error("renaming a dependency did not change the digest")
	}

	reordered, err := Compute([]string{"shared.ts", "app.config.ts"}, at)
	if err != nil {
		t.Fatalf("Compute: %v", err)
	}
	if reordered == base {
		t.Error("reordering dependencies did not change the digest")
	}

	if err := os.WriteFile(at("shared.ts"), []byte("export const x = 2"), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	edited, err := Compute([]string{"app.config.ts", "shared.ts"}, at)
	if err != nil {
		t.Fatalf("Compute: %v", err)
	}
	if edited == base {
		t.Error("editing a dependency did not change the digest")
	}
}

func TestComputeEmptyAndMissing(t *testing.T) {
	empty, err := Compute(nil, nil)
	if err != nil {
		t.Fatalf("Compute(nil): %v", err)
	}
	if empty == (Digest{}) {
		t.Error("digest of the empty set is all zeros")
	}

	if _, err := Compute([]string{filepath.Join(t.TempDir(), "gone.ts")}, nil); err == nil {
		t.Error("Compute should fail when a dependency is missing")
	}
}

func TestDomainKeysDiffer(t *testing.T) {
	if fileDomainKey == setDomainKey {
		t.Fatal("file and set domain keys are identical")
	}
}

func TestParseDigestRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	if err := os.WriteFile(path, []byte(`{"a":1}`), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	digest, err := HashFile(path)
	if err != nil {
		t.Fatalf("HashFile: %v", err)
	}
	parsed, err := ParseDigest(FormatDigest(digest))
	if err != nil {
		t.Fatalf("ParseDigest: %v", err)
	}
	if parsed != digest {
		t.Errorf("ParseDigest(FormatDigest(d)) = %s, want %s", parsed, digest)
	}
}

func TestParseDigestInvalid(t *testing.T) {
	for _, input := range []string{"not-hex", "abcd", ""} {
		if _, err := ParseDigest(input); err == nil {
			t.Errorf("ParseDigest(%q) succeeded, want error", input)
		}
	}
}
