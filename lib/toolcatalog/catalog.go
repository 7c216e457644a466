// Copyright 2026 The Concord Authors
// SPDX-License-Identifier: Apache-2.0

package toolcatalog

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/tidwall/jsonc"

	"github.com/concord-foundation/concord/lib/toolselect"
)

// SupportedVersion is the catalog format version this package reads.
const SupportedVersion = 1

// Catalog is the on-disk tool registry: a format version plus one
// entry per tool capability in canonical order. The entry order is
// load-bearing — it is the ranking tie-break order of the selection
// engine.
type Catalog struct {
	Version int                   `json:"version"`
	Tools   []toolselect.Document `json:"tools"`
}

// Parse strips JSONC comments and trailing commas from data, then
// unmarshals and validates the result. The input format is standard
// JSON extended with // line comments, /* block comments */, and
// trailing commas.
func Parse(data []byte) (*Catalog, error) {
	stripped := jsonc.ToJSON(data)

	var catalog Catalog
	if err := json.Unmarshal(stripped, &catalog); err != nil {
		return nil, fmt.Errorf("parsing catalog: %w", err)
	}

	if err := catalog.Validate(); err != nil {
		return nil, err
	}
	return &catalog, nil
}

// ReadFile reads a JSONC catalog file from disk and parses it.
// Returns a descriptive error if the file cannot be read or the
// catalog is malformed.
func ReadFile(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}

	catalog, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return catalog, nil
}

// Validate checks structural catalog invariants: a supported format
// version and non-empty, unique tool IDs. Empty descriptive fields
// are fine — they simply contribute nothing to ranking.
func (catalog *Catalog) Validate() error {
	if catalog.Version != SupportedVersion {
		return fmt.Errorf("catalog version %d is not supported (want %d)", catalog.Version, SupportedVersion)
	}

	seen := make(map[string]bool, len(catalog.Tools))
	for i, tool := range catalog.Tools {
		if tool.ID == "" {
			return fmt.Errorf("catalog entry %d has an empty id", i)
		}
		if seen[tool.ID] {
			return fmt.Errorf("catalog has duplicate tool id %q", tool.ID)
		}
		seen[tool.ID] = true
	}
	return nil
}

// Documents returns the tool list in catalog order, ready to hand to
// toolselect. The returned slice is a copy; mutating it does not
// affect the catalog.
func (catalog *Catalog) Documents() []toolselect.Document {
	documents := make([]toolselect.Document, len(catalog.Tools))
	copy(documents, catalog.Tools)
	return documents
}
