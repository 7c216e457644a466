// Copyright 2026 The Concord Authors
// SPDX-License-Identifier: Apache-2.0

package toolselect

import (
	"sort"

	"github.com/concord-foundation/concord/lib/bm25"
)

// Select returns the ordered tool IDs for one turn: first the given
// core IDs in registry order, then up to maxNonCore non-core
// documents ranked by descending BM25 score. Core documents never
// spend the ranked budget, and a tool never appears twice.
//
// Ties are broken by registry position (lower wins), so repeated
// calls with identical inputs return identical output, across
// process restarts included. Documents sharing no terms with the
// query score zero and are never ranked; a zero-term query therefore
// yields exactly the core IDs. Select is total: an empty corpus, an
// empty query, and a zero budget are all well-defined.
func Select(query []bm25.QueryTerm, corpus *Corpus, maxNonCore int, coreIDs []string) []string {
	scores := corpus.index.ScoreAll(query)

	ranked := make([]int, len(scores))
	for i := range ranked {
		ranked[i] = i
	}
	sort.Slice(ranked, func(a, b int) bool {
		if scores[ranked[a]] != scores[ranked[b]] {
			return scores[ranked[a]] > scores[ranked[b]]
		}
		return ranked[a] < ranked[b]
	})

	selected := make([]string, 0, len(coreIDs)+maxNonCore)
	seen := make(map[string]bool, len(coreIDs)+maxNonCore)

	for _, id := range coreIDs {
		if seen[id] {
			continue
		}
		seen[id] = true
		selected = append(selected, id)
	}

	taken := 0
	for _, position := range ranked {
		if taken >= maxNonCore {
			break
		}
		if scores[position] <= 0 {
			break
		}
		document := corpus.documents[position]
		if document.Core || seen[document.ID] {
			continue
		}
		seen[document.ID] = true
		selected = append(selected, document.ID)
		taken++
	}

	return selected
}
