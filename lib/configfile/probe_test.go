// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package configfile

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/bureau-foundation/cfgresolve/lib/testutil"
)

func TestProbeExplicitExtension(t *testing.T) {
	for _, extension := range Extensions {
		t.Run(extension, func(t *testing.T) {
			root := testutil.WriteTree(t, t.TempDir(), map[string]string{
				"app.config" + extension: "x",
			})

			got, err := Probe("app.config"+extension, root)
			if err != nil {
				t.Fatalf("Probe: %v", err)
			}
			want := filepath.Join(root, "app.config"+extension)
			if got != want {
				t.Errorf("Probe = %q, want %q", got, want)
			}
		})
	}
}

func TestProbeBareNameUsesPriorityOrder(t *testing.T) {
	// Present every extension, then remove them from the front of the
	// priority list one by one. The winner must always be the first
	// extension still present.
	files := make(map[string]string)
	for _, extension := range Extensions {
		files["app.config"+extension] = "x"
	}
	root := testutil.WriteTree(t, t.TempDir(), files)

	for index, extension := range Extensions {
		got, err := Probe("app.config", root)
		if err != nil {
			t.Fatalf("Probe: %v", err)
		}
		want := filepath.Join(root, "app.config"+extension)
		if got != want {
			t.Fatalf("with %v present: Probe = %q, want %q", Extensions[index:], got, want)
		}
		if err := os.Remove(want); err != nil {
			t.Fatalf("Remove: %v", err)
		}
	}

	got, err := Probe("app.config", root)
	if err != nil {
		t.Fatalf("Probe: %v", err)
	}
	if got != "" {
		t.Errorf("Probe with no files = %q, want empty", got)
	}
}

func TestProbeJSONBeatsScriptsBeatsYAML(t *testing.T) {
	root := testutil.WriteTree(t, t.TempDir(), map[string]string{
		"app.config.yaml": "a: 1",
		"app.config.js":   "module.exports = {}",
	})
	got, err := Probe("app.config", root)
	if err != nil {
		t.Fatalf("Probe: %v", err)
	}
	if want := filepath.Join(root, "app.config.js"); got != want {
		t.Errorf("Probe = %q, want %q", got, want)
	}

	testutil.WriteTree(t, root, map[string]string{"app.config.json": "{}"})
	got, err = Probe("app.config", root)
	if err != nil {
		t.Fatalf("Probe: %v", err)
	}
	if want := filepath.Join(root, "app.config.json"); got != want {
		t.Errorf("Probe = %q, want %q", got, want)
	}
}

func TestProbeMissing(t *testing.T) {
	root := t.TempDir()
	got, err := Probe("missing", root)
	if err != nil {
		t.Fatalf("Probe: %v", err)
	}
	if got != "" {
		t.Errorf("Probe = %q, want empty", got)
	}
}

func TestProbeExtensionedNameFallsBackToAppending(t *testing.T) {
	// "settings.json" does not exist, but "settings.json.yaml" does:
	// the explicit check fails and the append loop finds the file.
	root := testutil.WriteTree(t, t.TempDir(), map[string]string{
		"settings.json.yaml": "a: 1",
	})
	got, err := Probe("settings.json", root)
	if err != nil {
		t.Fatalf("Probe: %v", err)
	}
	if want := filepath.Join(root, "settings.json.yaml"); got != want {
		t.Errorf("Probe = %q, want %q", got, want)
	}
}

func TestProbeIgnoresDirectories(t *testing.T) {
	root := t.TempDir()
	if err := os.Mkdir(filepath.Join(root, "app.config.json"), 0o755); err != nil {
		t.Fatalf("Mkdir: %v", err)
	}
	testutil.WriteTree(t, root, map[string]string{"app.config.yml": "a: 1"})

	got, err := Probe("app.config", root)
	if err != nil {
		t.Fatalf("Probe: %v", err)
	}
	if want := filepath.Join(root, "app.config.yml"); got != want {
		t.Errorf("Probe = %q, want %q", got, want)
	}
}

func TestProbeRelativeRootIsMadeAbsolute(t *testing.T) {
	root := testutil.WriteTree(t, t.TempDir(), map[string]string{
		"conf/app.config.json": "{}",
	})
	testutil.Chdir(t, root)

	got, err := Probe("app.config", "conf")
	if err != nil {
		t.Fatalf("Probe: %v", err)
	}
	if !filepath.IsAbs(got) {
		t.Fatalf("Probe = %q, want an absolute path", got)
	}
	if filepath.Base(got) != "app.config.json" {
		t.Errorf("Probe = %q, want app.config.json", got)
	}
}

func TestProbeEmptyName(t *testing.T) {
	if _, err := Probe("", t.TempDir()); err == nil {
		t.Fatal("Probe with empty name should fail")
	}
}
