// Copyright 2026 The Concord Authors
// SPDX-License-Identifier: Apache-2.0

// Package bm25 provides relevance-ranked full-text search using the
// Okapi BM25 algorithm. The index accepts documents with weighted
// text fields and scores weighted term queries against them using
// term-frequency and inverse-document-frequency weighting.
//
// Field weighting is fractional: each occurrence of a token in a
// field contributes the field's weight to that term's frequency and
// to the document's length. This keeps term-frequency saturation
// consistent for non-integer weights, unlike token repetition.
//
// The index is built at construction time and is immutable
// thereafter. It is safe for concurrent read access.
package bm25
