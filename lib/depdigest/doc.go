// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package depdigest fingerprints the set of files a resolved config
// was built from. Watchers and caches compare digests to decide when a
// config must be resolved again.
//
// A digest covers both the file names and their contents, so renaming
// a dependency changes it as surely as editing one. Hashes are BLAKE3
// in keyed mode with fixed domain keys, which keeps them distinct from
// any other BLAKE3 hash of the same bytes.
package depdigest
