// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package depdigest

import (
	"encoding/binary"
	"encoding/hex"
	"fmt"
	"io"
	"os"

	"github.com/zeebo/blake3"
)

// Digest is a 32-byte BLAKE3 fingerprint.
type Digest [32]byte

// domainKey is a 32-byte key for BLAKE3 keyed hashing. The byte values
// are the ASCII domain name, zero-padded. Changing a key invalidates
// every digest in its domain.
type domainKey [32]byte

var (
	fileDomainKey = domainKey{
		'c', 'f', 'g', 'r', 'e', 's', 'o', 'l', 'v', 'e', '.', 'd', 'e', 'p', 's', '.',
		'f', 'i', 'l', 'e', 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
	}

	setDomainKey = domainKey{
		'c', 'f', 'g', 'r', 'e', 's', 'o', 'l', 'v', 'e', '.', 'd', 'e', 'p', 's', '.',
		's', 'e', 't', 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
	}
)

func newHasher(key domainKey) *blake3.Hasher {
	hasher, err := blake3.NewKeyed(key[:])
	if err != nil {
		panic("depdigest: BLAKE3 keyed hash initialization failed: " + err.Error())
	}
	return hasher
}

// HashFile computes the file-domain digest of the file at path,
// streaming its contents.
func HashFile(path string) (Digest, error) {
	file, err := os.Open(path)
	if err != nil {
		return Digest{}, fmt.Errorf("opening %s for hashing: %w", path, err)
	}
	defer file.Close()

	hasher := newHasher(fileDomainKey)
	if _, err := io.Copy(hasher, file); err != nil {
		return Digest{}, fmt.Errorf("hashing %s: %w", path, err)
	}
	var digest Digest
	copy(digest[:], hasher.Sum(nil))
	return digest, nil
}

// Compute returns the set-domain digest over names, in order. Each
// entry contributes its length-prefixed name followed by the
// file-domain digest of the file it names. open maps a name to the
// path to read, letting callers hash portable names while reading
// native paths; a nil open reads names as given.
func Compute(names []string, open func(name string) string) (Digest, error) {
	if open == nil {
		open = func(name string) string { return name }
	}
	set := newHasher(setDomainKey)
	var length [8]byte
	for _, name := range names {
		fileDigest, err := HashFile(open(name))
		if err != nil {
			return Digest{}, err
		}
		binary.BigEndian.PutUint64(length[:], uint64(len(name)))
		set.Write(length[:])
		set.Write([]byte(name))
		set.Write(fileDigest[:])
	}
	var digest Digest
	copy(digest[:], set.Sum(nil))
	return digest, nil
}

// String returns the hex encoding of the digest.
func (d Digest) String() string {
	return FormatDigest(d)
}

// FormatDigest returns the hex-encoded form used in CLI output and
// logs.
func FormatDigest(digest Digest) string {
	return hex.EncodeToString(digest[:])
}

// ParseDigest parses a 64-character hex digest.
func ParseDigest(hexString string) (Digest, error) {
	var digest Digest
	decoded, err := hex.DecodeString(hexString)
	if err != nil {
		return digest, fmt.Errorf("parsing dependency digest: %w", err)
	}
	if len(decoded) != len(digest) {
		return digest, fmt.Errorf("dependency digest is %d bytes, want %d", len(decoded), len(digest))
	}
	copy(digest[:], decoded)
	return digest, nil
}
