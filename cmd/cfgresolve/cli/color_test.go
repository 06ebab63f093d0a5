// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package cli

import (
	"bytes"
	"strings"
	"testing"
)

func TestParseColorMode(t *testing.T) {
	for _, value := range []string{"auto", "always", "never"} {
		mode, err := ParseColorMode(value)
		if err != nil {
			t.Errorf("ParseColorMode(%q): %v", value, err)
		}
		if string(mode) != value {
			t.Errorf("ParseColorMode(%q) = %q", value, mode)
		}
	}
	if _, err := ParseColorMode("sometimes"); err == nil {
		t.Error("ParseColorMode accepted an invalid value")
	}
}

func TestColorModeEnabled(t *testing.T) {
	var buffer bytes.Buffer
	if !ColorAlways.Enabled(&buffer) {
		t.Error("always: Enabled = false")
	}
	if ColorNever.Enabled(&buffer) {
		t.Error("never: Enabled = true")
	}
	if ColorAuto.Enabled(&buffer) {
		t.Error("auto: Enabled = true for a non-terminal writer")
	}
}

func TestWriteHighlighted(t *testing.T) {
	source := `{"mode": "test"}` + "\n"

	var plain bytes.Buffer
	if err := WriteHighlighted(&plain, source, "json", false); err != nil {
		t.Fatalf("WriteHighlighted: %v", err)
	}
	if plain.String() != source {
		t.Errorf("uncolored output = %q, want %q", plain.String(), source)
	}

	var colored bytes.Buffer
	if err := WriteHighlighted(&colored, source, "json", true); err != nil {
		t.Fatalf("WriteHighlighted: %v", err)
	}
	if !strings.Contains(colored.String(), "\x1b[") {
		t.Errorf("colored output has no ANSI escapes: %q", colored.String())
	}
	if !strings.Contains(colored.String(), "mode") {
		t.Errorf("colored output lost content: %q", colored.String())
	}
}

func TestNewLogger(t *testing.T) {
	var buffer bytes.Buffer
	newLogger(&buffer, false, false).Debug("hidden")
	newLogger(&buffer, false, false).Info("shown")
	if strings.Contains(buffer.String(), "hidden") {
		t.Error("debug message logged without verbose")
	}
	if !strings.Contains(buffer.String(), `"msg":"shown"`) {
		t.Errorf("non-terminal logger did not write JSON: %q", buffer.String())
	}

	buffer.Reset()
	newLogger(&buffer, true, true).Debug("detail")
	if !strings.Contains(buffer.String(), "msg=detail") {
		t.Errorf("verbose terminal logger output = %q, want text with debug", buffer.String())
	}
}
