// Copyright 2026 The Concord Authors
// SPDX-License-Identifier: Apache-2.0

// Package toolselect picks the subset of the tool catalog that is
// relevant to a conversational turn. Every tool's schema and
// description costs context-window tokens, so the agent orchestrator
// cannot send the full catalog with each LLM request; instead it asks
// this package for a small ranked subset plus the core tools that
// must always be available.
//
// Selection is lexical: the current message (weighted higher) and a
// trailing window of recent conversation (weighted lower) are
// tokenized into a weighted query, scored against a BM25 index over
// the catalog, and truncated to a configured budget. Core tools are
// merged in regardless of rank.
//
// The Engine owns an immutable Corpus published through an atomic
// pointer: selection calls are pure, lock-free reads, and a catalog
// reload builds a replacement corpus fully aside before swapping it
// in. A failed rebuild leaves the previous corpus in service.
//
// Two consumers share this package:
//   - The Discord agent orchestrator, which calls SelectTools once
//     per turn before assembling the LLM request.
//   - The concord-tools CLI, which runs ad hoc queries against a
//     catalog for tuning and debugging.
package toolselect
