// Copyright 2026 The Concord Authors
// SPDX-License-Identifier: Apache-2.0

package toolselect

import (
	"fmt"
	"sync/atomic"
)

// Engine is the selection engine: a Config plus the current Corpus,
// published through an atomic pointer. SelectTools is a pure
// function of the loaded corpus and may run from any number of
// goroutines; Rebuild swaps in a replacement corpus with a single
// pointer store, so in-flight selections see either the old corpus
// or the new one in its entirety, never a mixture.
type Engine struct {
	config Config
	corpus atomic.Pointer[Corpus]
}

// NewEngine indexes the registry snapshot and returns a ready
// engine. Fails for the same structural reasons as BuildCorpus.
func NewEngine(documents []Document, config Config) (*Engine, error) {
	corpus, err := BuildCorpus(documents, config)
	if err != nil {
		return nil, err
	}
	engine := &Engine{config: config}
	engine.corpus.Store(corpus)
	return engine, nil
}

// SelectTools is the public entry point: given the current message
// and the recent conversation (oldest-first), it returns the ordered
// tool IDs for this turn — core tools first in registry order, then
// ranked non-core tools up to the configured budget.
func (engine *Engine) SelectTools(currentMessage string, recentMessages []string) []string {
	corpus := engine.corpus.Load()
	query := BuildQuery(currentMessage, recentMessages,
		engine.config.ContextWindow, engine.config.CurrentWeight, engine.config.ContextWeight)
	return Select(query, corpus, engine.config.MaxNonCore, corpus.coreIDs)
}

// Rebuild indexes a changed registry snapshot and atomically
// replaces the serving corpus. On error the previous corpus remains
// in service — a failed rebuild never tears down the live index.
func (engine *Engine) Rebuild(documents []Document) error {
	corpus, err := BuildCorpus(documents, engine.config)
	if err != nil {
		return fmt.Errorf("rebuilding tool corpus: %w", err)
	}
	engine.corpus.Store(corpus)
	return nil
}

// Corpus returns the currently serving corpus snapshot.
func (engine *Engine) Corpus() *Corpus {
	return engine.corpus.Load()
}

// Config returns the engine's configuration.
func (engine *Engine) Config() Config {
	return engine.config
}
