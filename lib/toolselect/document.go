// Copyright 2026 The Concord Authors
// SPDX-License-Identifier: Apache-2.0

package toolselect

// Document describes one tool capability for indexing. The registry
// supplies one Document per tool; the order of the registry's list
// is canonical and is used as the final ranking tie-break.
type Document struct {
	// ID is the tool's unique identifier (e.g. "web_search"),
	// stable across rebuilds.
	ID string `json:"id"`

	// Name is the short human label (e.g. "Web Search").
	Name string `json:"name"`

	// Description is a one-sentence summary of what the tool does.
	Description string `json:"description"`

	// Keywords are search terms associated with the tool.
	// Duplicates are permitted; order is irrelevant for scoring.
	Keywords []string `json:"keywords,omitempty"`

	// Tags are short classification strings.
	Tags []string `json:"tags,omitempty"`

	// Examples are natural-language queries a user might type when
	// they need this tool.
	Examples []string `json:"examples,omitempty"`

	// Category is the tool's single classification string. It is
	// not scored; it exists for catalog organization and CLI
	// filtering.
	Category string `json:"category,omitempty"`

	// Core marks tools that must always be selected, regardless of
	// their relevance score.
	Core bool `json:"core,omitempty"`
}
