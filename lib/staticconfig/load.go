// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package staticconfig

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"

	"github.com/tidwall/jsonc"
	"gopkg.in/yaml.v3"
)

// LoadStructured reads the JSONC file at path and decodes it. Objects
// decode to map[string]any, arrays to []any, numbers to float64.
func LoadStructured(path string) (any, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	value, err := ParseStructured(data)
	if err != nil {
		return nil, newParseError(path, err)
	}
	return value, nil
}

// ParseStructured strips JSONC comments and trailing commas from data
// and decodes the remaining JSON. Empty input is an error, as it is for
// a strict JSON parser.
func ParseStructured(data []byte) (any, error) {
	stripped := bytes.TrimSpace(jsonc.ToJSON(data))
	var value any
	if err := json.Unmarshal(stripped, &value); err != nil {
		return nil, err
	}
	return value, nil
}

// LoadKeyValue reads the YAML file at path and decodes it. Mappings
// with string keys decode to map[string]any; integers stay int.
func LoadKeyValue(path string) (any, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	value, err := ParseKeyValue(data)
	if err != nil {
		return nil, newParseError(path, err)
	}
	return value, nil
}

// ParseKeyValue decodes a single YAML document. An empty document
// decodes to nil.
func ParseKeyValue(data []byte) (any, error) {
	var value any
	if err := yaml.Unmarshal(data, &value); err != nil {
		return nil, err
	}
	return value, nil
}
