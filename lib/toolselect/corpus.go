// Copyright 2026 The Concord Authors
// SPDX-License-Identifier: Apache-2.0

package toolselect

import (
	"fmt"
	"strings"

	"github.com/concord-foundation/concord/lib/bm25"
)

// Corpus is an indexed snapshot of the tool registry. It is built
// wholesale by BuildCorpus and never mutated afterwards, so any
// number of selection calls may read it concurrently without
// locking. Registry changes produce a replacement Corpus; they never
// touch an existing one.
type Corpus struct {
	// documents holds the registry snapshot in canonical order.
	documents []Document

	// index is the BM25 index over the documents, in the same
	// order.
	index *bm25.Index

	// coreIDs are the IDs of documents with Core set, in registry
	// order.
	coreIDs []string

	// byID maps a tool ID to its registry position.
	byID map[string]int
}

// BuildCorpus indexes a registry snapshot under the given
// configuration. It fails only for structurally invalid input: a
// duplicate tool ID, a non-positive field weight, or an otherwise
// invalid configuration. Missing or empty document fields contribute
// nothing and are never an error.
//
// The input slice is copied; the caller may reuse or mutate it after
// BuildCorpus returns.
func BuildCorpus(documents []Document, config Config) (*Corpus, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}

	snapshot := make([]Document, len(documents))
	copy(snapshot, documents)

	indexDocuments := make([]bm25.Document, len(snapshot))
	for i, document := range snapshot {
		indexDocuments[i] = indexDocument(document, config.FieldWeights)
	}

	index, err := bm25.New(indexDocuments, config.Params)
	if err != nil {
		// The only bm25 document-level error is a duplicate name,
		// and names here are tool IDs.
		return nil, fmt.Errorf("toolselect: building index: %w", err)
	}

	corpus := &Corpus{
		documents: snapshot,
		index:     index,
		byID:      make(map[string]int, len(snapshot)),
	}
	for i, document := range snapshot {
		corpus.byID[document.ID] = i
		if document.Core {
			corpus.coreIDs = append(corpus.coreIDs, document.ID)
		}
	}
	return corpus, nil
}

// indexDocument maps a tool document onto weighted BM25 fields. List
// fields are joined with spaces; the tokenizer discards the joins.
func indexDocument(document Document, weights FieldWeights) bm25.Document {
	return bm25.Document{
		Name: document.ID,
		Fields: []bm25.Field{
			{Text: document.Name, Weight: weights.Name},
			{Text: document.Description, Weight: weights.Description},
			{Text: strings.Join(document.Keywords, " "), Weight: weights.Keywords},
			{Text: strings.Join(document.Tags, " "), Weight: weights.Tags},
			{Text: strings.Join(document.Examples, " "), Weight: weights.Examples},
		},
	}
}

// Len returns the number of documents in the corpus.
func (corpus *Corpus) Len() int {
	return len(corpus.documents)
}

// CoreIDs returns the IDs of core documents in registry order.
func (corpus *Corpus) CoreIDs() []string {
	ids := make([]string, len(corpus.coreIDs))
	copy(ids, corpus.coreIDs)
	return ids
}

// Lookup returns the document with the given tool ID.
func (corpus *Corpus) Lookup(id string) (Document, bool) {
	position, exists := corpus.byID[id]
	if !exists {
		return Document{}, false
	}
	return corpus.documents[position], true
}
