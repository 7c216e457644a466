// Copyright 2026 The Concord Authors
// SPDX-License-Identifier: Apache-2.0

package toolcatalog

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"

	"github.com/klauspost/compress/zstd"

	"github.com/concord-foundation/concord/lib/codec"
)

// Snapshot format: a fixed magic, a one-byte format version, the
// 32-byte catalog fingerprint, then the zstd-compressed deterministic
// CBOR encoding of the Catalog. The fingerprint in the header lets a
// reader check staleness against a live catalog file without
// decompressing the payload.
var snapshotMagic = []byte("CCSNAP")

// snapshotVersion is the snapshot framing version. Bumped when the
// header layout or payload encoding changes; readers reject
// snapshots from other versions rather than guessing.
const snapshotVersion = 1

// EncodeSnapshot serializes a catalog into the snapshot format.
func EncodeSnapshot(catalog *Catalog) ([]byte, error) {
	fingerprint, err := catalog.Fingerprint()
	if err != nil {
		return nil, err
	}

	payload, err := codec.Marshal(catalog)
	if err != nil {
		return nil, fmt.Errorf("encoding catalog snapshot: %w", err)
	}

	encoder, err := zstd.NewWriter(nil)
	if err != nil {
		return nil, fmt.Errorf("initializing zstd encoder: %w", err)
	}
	compressed := encoder.EncodeAll(payload, nil)
	encoder.Close()

	var buffer bytes.Buffer
	buffer.Grow(len(snapshotMagic) + 1 + len(fingerprint) + len(compressed))
	buffer.Write(snapshotMagic)
	buffer.WriteByte(snapshotVersion)
	buffer.Write(fingerprint[:])
	buffer.Write(compressed)
	return buffer.Bytes(), nil
}

// DecodeSnapshot parses snapshot bytes back into a catalog. The
// embedded fingerprint is recomputed from the decoded tool list and
// must match — a mismatch means the snapshot is corrupt or was
// produced by an incompatible encoder.
func DecodeSnapshot(data []byte) (*Catalog, Fingerprint, error) {
	var fingerprint Fingerprint

	headerLength := len(snapshotMagic) + 1 + len(fingerprint)
	if len(data) < headerLength {
		return nil, fingerprint, fmt.Errorf("snapshot is %d bytes, shorter than the %d-byte header", len(data), headerLength)
	}
	if !bytes.Equal(data[:len(snapshotMagic)], snapshotMagic) {
		return nil, fingerprint, fmt.Errorf("snapshot has wrong magic %q", data[:len(snapshotMagic)])
	}
	if version := data[len(snapshotMagic)]; version != snapshotVersion {
		return nil, fingerprint, fmt.Errorf("snapshot version %d is not supported (want %d)", version, snapshotVersion)
	}
	copy(fingerprint[:], data[len(snapshotMagic)+1:headerLength])

	decoder, err := zstd.NewReader(nil)
	if err != nil {
		return nil, fingerprint, fmt.Errorf("initializing zstd decoder: %w", err)
	}
	defer decoder.Close()

	payload, err := decoder.DecodeAll(data[headerLength:], nil)
	if err != nil {
		return nil, fingerprint, fmt.Errorf("decompressing snapshot: %w", err)
	}

	var catalog Catalog
	if err := codec.Unmarshal(payload, &catalog); err != nil {
		return nil, fingerprint, fmt.Errorf("decoding snapshot: %w", err)
	}
	if err := catalog.Validate(); err != nil {
		return nil, fingerprint, fmt.Errorf("snapshot catalog invalid: %w", err)
	}

	actual, err := catalog.Fingerprint()
	if err != nil {
		return nil, fingerprint, err
	}
	if actual != fingerprint {
		return nil, fingerprint, fmt.Errorf("snapshot fingerprint mismatch: header %s, content %s", fingerprint, actual)
	}

	return &catalog, fingerprint, nil
}

// WriteSnapshot writes a catalog snapshot to path. The write goes
// through a temporary file in the same directory followed by a
// rename, so readers never observe a partial snapshot.
func WriteSnapshot(path string, catalog *Catalog) error {
	data, err := EncodeSnapshot(catalog)
	if err != nil {
		return err
	}

	temporary, err := os.CreateTemp(filepath.Dir(path), ".snapshot-*")
	if err != nil {
		return fmt.Errorf("creating snapshot temp file: %w", err)
	}
	temporaryPath := temporary.Name()

	if _, err := temporary.Write(data); err != nil {
		temporary.Close()
		os.Remove(temporaryPath)
		return fmt.Errorf("writing snapshot: %w", err)
	}
	if err := temporary.Close(); err != nil {
		os.Remove(temporaryPath)
		return fmt.Errorf("closing snapshot: %w", err)
	}
	if err := os.Rename(temporaryPath, path); err != nil {
		os.Remove(temporaryPath)
		return fmt.Errorf("publishing snapshot: %w", err)
	}
	return nil
}

// ReadSnapshot reads and decodes a catalog snapshot from path.
func ReadSnapshot(path string) (*Catalog, Fingerprint, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, Fingerprint{}, fmt.Errorf("reading %s: %w", path, err)
	}

	catalog, fingerprint, err := DecodeSnapshot(data)
	if err != nil {
		return nil, fingerprint, fmt.Errorf("%s: %w", path, err)
	}
	return catalog, fingerprint, nil
}
