// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package staticconfig

import (
	"encoding/json"
	"errors"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"gopkg.in/yaml.v3"

	"github.com/bureau-foundation/cfgresolve/lib/testutil"
)

func TestLoadStructuredJSONC(t *testing.T) {
	root := testutil.WriteTree(t, t.TempDir(), map[string]string{
		"app.config.json": `
// Top-level comment.
{
	"name": "app", /* inline */
	"entry": ["index.ts",],
	"minify": true,
}
`,
	})

	got, err := LoadStructured(filepath.Join(root, "app.config.json"))
	if err != nil {
		t.Fatalf("LoadStructured: %v", err)
	}
	want := map[string]any{
		"name":   "app",
		"entry":  []any{"index.ts"},
		"minify": true,
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("LoadStructured = %#v, want %#v", got, want)
	}
}

func TestLoadKeyValueYAML(t *testing.T) {
	root := testutil.WriteTree(t, t.TempDir(), map[string]string{
		"app.config.yml": `
# comment
name: app
entry:
  - index.ts
minify: true
workers: 4
`,
	})

	got, err := LoadKeyValue(filepath.Join(root, "app.config.yml"))
	if err != nil {
		t.Fatalf("LoadKeyValue: %v", err)
	}
	want := map[string]any{
		"name":    "app",
		"entry":   []any{"index.ts"},
		"minify":  true,
		"workers": 4,
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("LoadKeyValue = %#v, want %#v", got, want)
	}
}

func TestLoadRoundTrip(t *testing.T) {
	// A serializer followed by the matching loader reproduces the
	// original record.
	jsonRecord := map[string]any{
		"name":    "app",
		"ratio":   0.5,
		"count":   float64(3),
		"nested":  map[string]any{"list": []any{"a", float64(1), false, nil}},
		"enabled": true,
	}
	yamlRecord := map[string]any{
		"name":    "app",
		"ratio":   0.5,
		"count":   3,
		"nested":  map[string]any{"list": []any{"a", 1, false, nil}},
		"enabled": true,
	}

	root := t.TempDir()
	jsonData, err := json.Marshal(jsonRecord)
	if err != nil {
		t.Fatalf("json.Marshal: %v", err)
	}
	yamlData, err := yaml.Marshal(yamlRecord)
	if err != nil {
		t.Fatalf("yaml.Marshal: %v", err)
	}
	testutil.WriteTree(t, root, map[string]string{
		"c.json": string(jsonData),
		"c.yaml": string(yamlData),
	})

	gotJSON, err := LoadStructured(filepath.Join(root, "c.json"))
	if err != nil {
		t.Fatalf("LoadStructured: %v", err)
	}
	if !reflect.DeepEqual(gotJSON, jsonRecord) {
		t.Errorf("JSON round trip = %#v, want %#v", gotJSON, jsonRecord)
	}

	gotYAML, err := LoadKeyValue(filepath.Join(root, "c.yaml"))
	if err != nil {
		t.Fatalf("LoadKeyValue: %v", err)
	}
	if !reflect.DeepEqual(gotYAML, yamlRecord) {
		t.Errorf("YAML round trip = %#v, want %#v", gotYAML, yamlRecord)
	}
}

func TestLoadParseErrors(t *testing.T) {
	root := testutil.WriteTree(t, t.TempDir(), map[string]string{
		"broken.json": `{"a": }`,
		"broken.yaml": "a: [1, 2\nb: c",
		"empty.json":  "   ",
	})
	root, err := filepath.EvalSymlinks(root)
	if err != nil {
		t.Fatalf("EvalSymlinks: %v", err)
	}
	testutil.Chdir(t, root)

	tests := []struct {
		file string
		load func(string) (any, error)
	}{
		{"broken.json", LoadStructured},
		{"broken.yaml", LoadKeyValue},
		{"empty.json", LoadStructured},
	}
	for _, test := range tests {
		t.Run(test.file, func(t *testing.T) {
			value, err := test.load(filepath.Join(root, test.file))
			if err == nil {
				t.Fatalf("load succeeded with %#v, want error", value)
			}
			if value != nil {
				t.Errorf("partial result %#v returned with error", value)
			}
			var parseError *ParseError
			if !errors.As(err, &parseError) {
				t.Fatalf("error %T is not *ParseError: %v", err, err)
			}
			// The message names the file relative to the working directory.
			if !strings.HasPrefix(err.Error(), "failed to parse "+test.file+": ") {
				t.Errorf("error = %q, want prefix %q", err.Error(), "failed to parse "+test.file+": ")
			}
			if parseError.Unwrap() == nil {
				t.Error("ParseError.Unwrap() = nil, want parser error")
			}
		})
	}
}

func TestLoadMissingFileIsNotParseError(t *testing.T) {
	_, err := LoadStructured(filepath.Join(t.TempDir(), "absent.json"))
	if err == nil {
		t.Fatal("LoadStructured should fail for a missing file")
	}
	var parseError *ParseError
	if errors.As(err, &parseError) {
		t.Errorf("missing file reported as ParseError: %v", err)
	}
}

func TestParseErrorMessageFixedAtFailure(t *testing.T) {
	root := testutil.WriteTree(t, t.TempDir(), map[string]string{
		"broken.json": `{"a": }`,
	})
	root, err := filepath.EvalSymlinks(root)
	if err != nil {
		t.Fatalf("EvalSymlinks: %v", err)
	}
	testutil.Chdir(t, root)

	_, err = LoadStructured(filepath.Join(root, "broken.json"))
	if err == nil {
		t.Fatal("LoadStructured should fail for malformed JSON")
	}
	before := err.Error()

	testutil.Chdir(t, t.TempDir())
	if after := err.Error(); after != before {
		t.Errorf("message after chdir = %q, want %q", after, before)
	}
	if want := "failed to parse broken.json: "; !strings.HasPrefix(before, want) {
		t.Errorf("error = %q, want prefix %q", before, want)
	}
}

func TestParseErrorWithoutDisplayUsesPath(t *testing.T) {
	err := &ParseError{Path: "/etc/app.config.json", Err: errors.New("bad")}
	if got, want := err.Error(), "failed to parse /etc/app.config.json: bad"; got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
}
