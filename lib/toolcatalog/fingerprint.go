// Copyright 2026 The Concord Authors
// SPDX-License-Identifier: Apache-2.0

package toolcatalog

import (
	"encoding/hex"
	"fmt"

	"github.com/zeebo/blake3"

	"github.com/concord-foundation/concord/lib/codec"
)

// Fingerprint is a 32-byte BLAKE3 digest of a catalog's tool list.
// Two catalogs with the same tools in the same order have the same
// fingerprint; any change to a tool, or to the order, changes it.
// The reload path compares fingerprints to decide whether the
// selection engine needs a rebuild.
type Fingerprint [32]byte

// catalogDomainKey is the BLAKE3 keyed-hash domain for catalog
// fingerprints. The bytes are the ASCII domain name zero-padded to
// 32 bytes: readable in hex dumps, opaque to the hash. Changing the
// key invalidates all existing fingerprints.
var catalogDomainKey = [32]byte{
	'c', 'o', 'n', 'c', 'o', 'r', 'd', '.', 'c', 'a', 't', 'a', 'l', 'o', 'g', '.',
	'f', 'i', 'n', 'g', 'e', 'r', 'p', 'r', 'i', 'n', 't', 0, 0, 0, 0, 0,
}

// Fingerprint computes the catalog's fingerprint: the keyed BLAKE3
// hash of the deterministic CBOR encoding of the tool list. The
// deterministic encoding is what makes the digest comparable across
// processes and machines.
func (catalog *Catalog) Fingerprint() (Fingerprint, error) {
	var fingerprint Fingerprint

	encoded, err := codec.Marshal(catalog.Tools)
	if err != nil {
		return fingerprint, fmt.Errorf("encoding catalog for fingerprint: %w", err)
	}

	hasher, err := blake3.NewKeyed(catalogDomainKey[:])
	if err != nil {
		panic("toolcatalog: BLAKE3 keyed hash initialization failed: " + err.Error())
	}
	hasher.Write(encoded)
	copy(fingerprint[:], hasher.Sum(nil))
	return fingerprint, nil
}

// String returns the hex-encoded fingerprint, the canonical format
// for logs and CLI output.
func (fingerprint Fingerprint) String() string {
	return hex.EncodeToString(fingerprint[:])
}

// ParseFingerprint parses a 64-character hex string into a
// Fingerprint.
func ParseFingerprint(hexString string) (Fingerprint, error) {
	var fingerprint Fingerprint
	decoded, err := hex.DecodeString(hexString)
	if err != nil {
		return fingerprint, fmt.Errorf("parsing fingerprint: %w", err)
	}
	if len(decoded) != len(fingerprint) {
		return fingerprint, fmt.Errorf("fingerprint is %d bytes, want %d", len(decoded), len(fingerprint))
	}
	copy(fingerprint[:], decoded)
	return fingerprint, nil
}
