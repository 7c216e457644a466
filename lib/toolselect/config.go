// Copyright 2026 The Concord Authors
// SPDX-License-Identifier: Apache-2.0

package toolselect

import (
	"fmt"

	"github.com/concord-foundation/concord/lib/bm25"
)

// FieldWeights control how much each document field contributes to
// ranking. All weights must be positive.
type FieldWeights struct {
	Name        float64
	Description float64
	Keywords    float64
	Tags        float64
	Examples    float64
}

// DefaultFieldWeights returns the standard field weighting: name
// matches carry three times the influence of example text.
func DefaultFieldWeights() FieldWeights {
	return FieldWeights{
		Name:        3.0,
		Description: 2.0,
		Keywords:    2.0,
		Tags:        1.5,
		Examples:    1.0,
	}
}

// Config is the full selection configuration. Engines are
// constructed from an explicit Config; there is no package-level
// state, so independent engines (e.g. in tests) can coexist.
type Config struct {
	// MaxNonCore is the selection budget for ranked tools. Core
	// tools are never counted against it. A budget of zero is
	// valid and yields exactly the core tools.
	MaxNonCore int

	// ContextWindow is the number of trailing recent messages
	// folded into the query.
	ContextWindow int

	// CurrentWeight is the query weight of tokens from the current
	// message. ContextWeight applies to tokens from the context
	// window and must be strictly less than CurrentWeight.
	CurrentWeight float64
	ContextWeight float64

	// FieldWeights control per-field ranking influence.
	FieldWeights FieldWeights

	// Params are the BM25 tunables (k1, b).
	Params bm25.Params
}

// DefaultConfig returns the documented defaults: 20 ranked tools,
// a 2-message context window with the current message counted
// double, and standard Okapi parameters.
func DefaultConfig() Config {
	return Config{
		MaxNonCore:    20,
		ContextWindow: 2,
		CurrentWeight: 2.0,
		ContextWeight: 1.0,
		FieldWeights:  DefaultFieldWeights(),
		Params:        bm25.DefaultParams(),
	}
}

// Validate checks the configuration for structural validity. It is
// called by BuildCorpus, so an invalid configuration surfaces as an
// index-build error and never reaches the query path.
func (config Config) Validate() error {
	if config.MaxNonCore < 0 {
		return fmt.Errorf("toolselect: MaxNonCore %d is negative", config.MaxNonCore)
	}
	if config.ContextWindow < 0 {
		return fmt.Errorf("toolselect: ContextWindow %d is negative", config.ContextWindow)
	}
	if config.CurrentWeight <= 0 {
		return fmt.Errorf("toolselect: CurrentWeight %v is not positive", config.CurrentWeight)
	}
	if config.ContextWeight <= 0 {
		return fmt.Errorf("toolselect: ContextWeight %v is not positive", config.ContextWeight)
	}
	if config.ContextWeight >= config.CurrentWeight {
		return fmt.Errorf("toolselect: ContextWeight %v must be less than CurrentWeight %v",
			config.ContextWeight, config.CurrentWeight)
	}

	weights := map[string]float64{
		"name":        config.FieldWeights.Name,
		"description": config.FieldWeights.Description,
		"keywords":    config.FieldWeights.Keywords,
		"tags":        config.FieldWeights.Tags,
		"examples":    config.FieldWeights.Examples,
	}
	for field, weight := range weights {
		if weight <= 0 {
			return fmt.Errorf("toolselect: field weight %q = %v is not positive", field, weight)
		}
	}

	if config.Params.K1 <= 0 {
		return fmt.Errorf("toolselect: k1 %v is not positive", config.Params.K1)
	}
	if config.Params.B < 0 || config.Params.B > 1 {
		return fmt.Errorf("toolselect: b %v is outside [0, 1]", config.Params.B)
	}
	return nil
}
