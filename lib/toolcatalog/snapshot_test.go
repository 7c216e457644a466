// Copyright 2026 The Concord Authors
// SPDX-License-Identifier: Apache-2.0

package toolcatalog

import (
	"path/filepath"
	"testing"
)

func TestSnapshotRoundtrip(t *testing.T) {
	original := testCatalog()
	path := filepath.Join(t.TempDir(), "catalog.snap")

	if err := WriteSnapshot(path, original); err != nil {
		t.Fatalf("WriteSnapshot: %v", err)
	}

	decoded, fingerprint, err := ReadSnapshot(path)
	if err != nil {
		t.Fatalf("ReadSnapshot: %v", err)
	}

	if fingerprint != mustFingerprint(t, original) {
		t.Errorf("snapshot fingerprint %s does not match catalog", fingerprint)
	}
	if len(decoded.Tools) != len(original.Tools) {
		t.Fatalf("decoded %d tools, want %d", len(decoded.Tools), len(original.Tools))
	}
	for i, tool := range decoded.Tools {
		if tool.ID != original.Tools[i].ID {
			t.Errorf("tool[%d].ID = %q, want %q", i, tool.ID, original.Tools[i].ID)
		}
	}
}

func TestDecodeSnapshot_Rejections(t *testing.T) {
	good, err := EncodeSnapshot(testCatalog())
	if err != nil {
		t.Fatalf("EncodeSnapshot: %v", err)
	}

	t.Run("truncated header", func(t *testing.T) {
		if _, _, err := DecodeSnapshot(good[:10]); err == nil {
			t.Error("expected error for truncated snapshot")
		}
	})

	t.Run("wrong magic", func(t *testing.T) {
		bad := append([]byte(nil), good...)
		bad[0] = 'X'
		if _, _, err := DecodeSnapshot(bad); err == nil {
			t.Error("expected error for wrong magic")
		}
	})

	t.Run("unsupported version", func(t *testing.T) {
		bad := append([]byte(nil), good...)
		bad[len(snapshotMagic)] = snapshotVersion + 1
		if _, _, err := DecodeSnapshot(bad); err == nil {
			t.Error("expected error for unsupported version")
		}
	})

	t.Run("tampered header fingerprint", func(t *testing.T) {
		bad := append([]byte(nil), good...)
		bad[len(snapshotMagic)+1] ^= 0xFF
		if _, _, err := DecodeSnapshot(bad); err == nil {
			t.Error("expected fingerprint mismatch error")
		}
	})

	t.Run("corrupt payload", func(t *testing.T) {
		bad := append([]byte(nil), good...)
		bad[len(bad)-1] ^= 0xFF
		if _, _, err := DecodeSnapshot(bad); err == nil {
			t.Error("expected error for corrupt payload")
		}
	})
}

func TestReadSnapshot_Missing(t *testing.T) {
	if _, _, err := ReadSnapshot(filepath.Join(t.TempDir(), "absent.snap")); err == nil {
		t.Fatal("expected error for missing file")
	}
}
