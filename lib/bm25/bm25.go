// Copyright 2026 The Concord Authors
// SPDX-License-Identifier: Apache-2.0

package bm25

import (
	"fmt"
	"math"
	"regexp"
	"strings"
)

// Params are the BM25 tunables (Okapi variant). K1 controls term
// frequency saturation; B controls document length normalization.
type Params struct {
	K1 float64
	B  float64
}

// DefaultParams returns the standard Okapi values (k1=1.2, b=0.75).
func DefaultParams() Params {
	return Params{K1: 1.2, B: 0.75}
}

// tokenPattern splits text into alphanumeric runs.
var tokenPattern = regexp.MustCompile(`[a-z0-9]+`)

// Field is a weighted text field for BM25 indexing. Each token
// occurrence in the field contributes Weight to the term's frequency
// in the document and to the document's length. Weight must be
// positive; New rejects anything else.
type Field struct {
	Text   string
	Weight float64
}

// Document is a named collection of weighted text fields. Name is
// used for result identification and must be unique across the
// corpus — it is not scored unless explicitly included as a Field.
type Document struct {
	Name   string
	Fields []Field
}

// QueryTerm is a single weighted query token. The term's BM25
// contribution is multiplied by Weight, which is linear: a term
// listed twice scores the same as one listed once at double weight.
type QueryTerm struct {
	Term   string
	Weight float64
}

// Index is a BM25 (Okapi) index over documents. The index is built
// at construction time and is immutable thereafter. It is safe for
// concurrent read access.
type Index struct {
	// names[i] is the name of document i, in construction order.
	names []string

	// documentTermFrequencies[i][term] is the field-weighted term
	// frequency for document i.
	documentTermFrequencies []map[string]float64

	// documentLengths[i] is the field-weighted token count for
	// document i.
	documentLengths []float64

	// averageDocumentLength is the mean of documentLengths.
	averageDocumentLength float64

	// inverseDocumentFrequency[term] is the precomputed IDF score
	// for each term in the corpus.
	inverseDocumentFrequency map[string]float64

	params Params
}

// New creates a BM25 index from the given documents. It fails only
// for structurally invalid input: a duplicate document name or a
// field with a non-positive weight. Empty field text contributes
// nothing and is not an error.
//
// Construction is O(total tokens across all documents) and takes
// sub-millisecond for typical corpora (hundreds of documents).
func New(documents []Document, params Params) (*Index, error) {
	index := &Index{
		names:                    make([]string, len(documents)),
		documentTermFrequencies:  make([]map[string]float64, len(documents)),
		documentLengths:          make([]float64, len(documents)),
		inverseDocumentFrequency: make(map[string]float64),
		params:                   params,
	}

	// Track how many documents contain each term (for IDF).
	documentFrequency := make(map[string]int)

	seenNames := make(map[string]bool, len(documents))
	var totalLength float64

	for i, document := range documents {
		if seenNames[document.Name] {
			return nil, fmt.Errorf("bm25: duplicate document name %q", document.Name)
		}
		seenNames[document.Name] = true
		index.names[i] = document.Name

		termFrequency := make(map[string]float64)
		var length float64

		for _, field := range document.Fields {
			if field.Weight <= 0 {
				return nil, fmt.Errorf("bm25: document %q: field weight %v is not positive", document.Name, field.Weight)
			}
			for _, token := range Tokenize(field.Text) {
				termFrequency[token] += field.Weight
				length += field.Weight
			}
		}

		for term := range termFrequency {
			documentFrequency[term]++
		}

		index.documentTermFrequencies[i] = termFrequency
		index.documentLengths[i] = length
		totalLength += length
	}

	if len(documents) > 0 {
		index.averageDocumentLength = totalLength / float64(len(documents))
	}

	// Precompute IDF for each term. The ln(1 + x) variant is
	// strictly positive even for terms that appear in every
	// document, so very common terms still contribute a small
	// amount to ranking rather than going negative.
	documentCount := float64(len(documents))
	for term, frequency := range documentFrequency {
		index.inverseDocumentFrequency[term] = math.Log(1 + (documentCount-float64(frequency)+0.5)/(float64(frequency)+0.5))
	}

	return index, nil
}

// Len returns the number of documents in the index.
func (index *Index) Len() int {
	return len(index.names)
}

// Name returns the name of the document at the given construction
// index.
func (index *Index) Name(documentIndex int) string {
	return index.names[documentIndex]
}

// Score computes the BM25 score of a single document against the
// weighted query terms. Terms absent from the corpus contribute
// zero; a document sharing no terms with the query scores exactly 0.
func (index *Index) Score(documentIndex int, query []QueryTerm) float64 {
	termFrequency := index.documentTermFrequencies[documentIndex]

	// Length normalization degenerates when every document is
	// empty; treat the corpus as uniform-length in that case.
	lengthRatio := 1.0
	if index.averageDocumentLength > 0 {
		lengthRatio = index.documentLengths[documentIndex] / index.averageDocumentLength
	}

	var score float64
	for _, queryTerm := range query {
		idf, exists := index.inverseDocumentFrequency[queryTerm.Term]
		if !exists {
			continue
		}

		frequency := termFrequency[queryTerm.Term]
		if frequency == 0 {
			continue
		}

		// BM25 term score: IDF * (tf * (k1 + 1)) / (tf + k1 * (1 - b + b * dl/avgdl)),
		// scaled by the query-side term weight.
		numerator := frequency * (index.params.K1 + 1)
		denominator := frequency + index.params.K1*(1-index.params.B+index.params.B*lengthRatio)
		score += queryTerm.Weight * idf * numerator / denominator
	}

	return score
}

// ScoreAll computes the BM25 score of every document against the
// weighted query terms, in construction order. A zero-term query
// yields all zeros.
func (index *Index) ScoreAll(query []QueryTerm) []float64 {
	scores := make([]float64, len(index.names))
	for i := range index.names {
		scores[i] = index.Score(i, query)
	}
	return scores
}

// Tokenize splits text into lowercase alphanumeric tokens, discarding
// tokens shorter than 2 characters. This catches "a", "I", and other
// noise words that don't contribute to relevance ranking. The same
// tokenizer is used for indexing and for queries; the two must never
// diverge.
func Tokenize(text string) []string {
	lower := strings.ToLower(text)
	matches := tokenPattern.FindAllString(lower, -1)

	// Filter short tokens in place.
	tokens := matches[:0]
	for _, match := range matches {
		if len(match) >= 2 {
			tokens = append(tokens, match)
		}
	}
	return tokens
}
