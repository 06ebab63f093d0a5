// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package staticconfig loads configuration files that are plain data.
//
// [LoadStructured] reads JSON extended with // line comments,
// /* block comments */ and trailing commas (the same JSONC dialect
// used elsewhere for hand-authored JSON). [LoadKeyValue] reads YAML;
// the YAML parser handles its own # comments.
//
// Both return the decoded document as an untyped value (normally a
// map[string]any). Shape checks belong to the caller. A parse failure
// is reported as a [*ParseError] naming the file relative to the
// current working directory; no partial result is ever returned.
package staticconfig
