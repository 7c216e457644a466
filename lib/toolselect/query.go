// Copyright 2026 The Concord Authors
// SPDX-License-Identifier: Apache-2.0

package toolselect

import (
	"strings"

	"github.com/concord-foundation/concord/lib/bm25"
)

// BuildQuery assembles the weighted query for one conversational
// turn. Tokens from the current message carry currentWeight; tokens
// from the trailing contextWindow entries of recentMessages (which
// is oldest-first) carry contextWeight. A token present in both
// contributes under both weights — BM25 query weighting is linear,
// so the boosts add.
//
// An empty or whitespace-only current message still yields the
// context tokens. Only a turn with no tokens at all produces a
// zero-term query.
func BuildQuery(currentMessage string, recentMessages []string, contextWindow int, currentWeight, contextWeight float64) []bm25.QueryTerm {
	var query []bm25.QueryTerm

	for _, token := range bm25.Tokenize(currentMessage) {
		query = append(query, bm25.QueryTerm{Term: token, Weight: currentWeight})
	}

	if contextWindow > 0 && len(recentMessages) > 0 {
		window := recentMessages
		if len(window) > contextWindow {
			window = window[len(window)-contextWindow:]
		}
		for _, token := range bm25.Tokenize(strings.Join(window, " ")) {
			query = append(query, bm25.QueryTerm{Term: token, Weight: contextWeight})
		}
	}

	return query
}
