// Copyright 2026 The Concord Authors
// SPDX-License-Identifier: Apache-2.0

// Package toolcatalog loads the tool registry from disk. Catalogs
// are authored as JSONC files (JSON extended with comments and
// trailing commas) listing one entry per tool capability; this
// package parses and validates them into the document list the
// selection engine indexes.
//
// The typical flow:
//
//  1. ReadFile or Parse: JSONC bytes → Catalog
//  2. Documents: hand the validated tool list to toolselect
//  3. Fingerprint: detect registry changes without re-parsing
//
// ReadSnapshot and WriteSnapshot maintain a compressed binary cache
// of a parsed catalog so the bot can skip JSONC parsing on restart
// and detect staleness via the embedded fingerprint.
package toolcatalog
