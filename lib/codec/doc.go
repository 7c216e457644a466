// Copyright 2026 The Concord Authors
// SPDX-License-Identifier: Apache-2.0

// Package codec provides Concord's standard CBOR encoding
// configuration.
//
// The catalog boundary uses two formats: JSONC for files operators
// author by hand, CBOR for machine artifacts (catalog snapshots,
// fingerprint input). This package provides the shared CBOR modes so
// every package encodes identically. The encoder uses Core
// Deterministic Encoding (RFC 8949 §4.2): sorted map keys, smallest
// integer encoding, no indefinite-length items. Same logical data
// always produces identical bytes — which is what makes catalog
// fingerprints comparable across processes and machines.
package codec
