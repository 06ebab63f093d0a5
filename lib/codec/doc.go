// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package codec encodes resolved configs and resolution results as
// CBOR for tools that consume cfgresolve output programmatically.
//
// Encoding uses Core Deterministic Encoding (RFC 8949 §4.2), so two
// resolutions producing the same config produce identical bytes and
// can be compared or hashed directly. Types that serve both JSON and
// CBOR carry json struct tags only; fxamacker/cbor falls back to them.
package codec
