// Copyright 2026 The Concord Authors
// SPDX-License-Identifier: Apache-2.0

package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/concord-foundation/concord/lib/toolselect"
)

// EnvVar names the environment variable that points at the config
// file when no --config flag is given.
const EnvVar = "CONCORD_CONFIG"

// Config is the configuration for the tool selection engine and the
// catalog paths it loads from.
type Config struct {
	// Catalog is the path to the JSONC tool catalog.
	Catalog string `yaml:"catalog"`

	// Snapshot is an optional path to the binary catalog snapshot
	// cache. When set, loaders prefer a fresh snapshot over
	// re-parsing the catalog.
	Snapshot string `yaml:"snapshot,omitempty"`

	// Selection overrides the engine's selection tunables. Absent
	// fields take the defaults from toolselect.DefaultConfig.
	Selection SelectionConfig `yaml:"selection,omitempty"`
}

// SelectionConfig mirrors toolselect.Config with optional fields.
// Pointers distinguish "not set" from legitimate zero values (b: 0
// disables length normalization and must stay expressible).
type SelectionConfig struct {
	MaxTools        *int                `yaml:"max_tools,omitempty"`
	ContextMessages *int                `yaml:"context_messages,omitempty"`
	CurrentWeight   *float64            `yaml:"current_weight,omitempty"`
	ContextWeight   *float64            `yaml:"context_weight,omitempty"`
	FieldWeights    *FieldWeightsConfig `yaml:"field_weights,omitempty"`
	K1              *float64            `yaml:"k1,omitempty"`
	B               *float64            `yaml:"b,omitempty"`
}

// FieldWeightsConfig mirrors toolselect.FieldWeights with optional
// fields.
type FieldWeightsConfig struct {
	Name        *float64 `yaml:"name,omitempty"`
	Description *float64 `yaml:"description,omitempty"`
	Keywords    *float64 `yaml:"keywords,omitempty"`
	Tags        *float64 `yaml:"tags,omitempty"`
	Examples    *float64 `yaml:"examples,omitempty"`
}

// Load reads and validates the config file at path. If path is
// empty, the CONCORD_CONFIG environment variable is consulted; if
// that is also empty, Load fails — there is no default location.
func Load(path string) (*Config, error) {
	if path == "" {
		path = os.Getenv(EnvVar)
	}
	if path == "" {
		return nil, fmt.Errorf("no config file: pass --config or set %s", EnvVar)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}

	var config Config
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}

	if config.Catalog == "" {
		return nil, fmt.Errorf("%s: catalog path is required", path)
	}
	if err := config.SelectionSettings().Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return &config, nil
}

// SelectionSettings resolves the selection overrides against the
// documented defaults and returns the engine configuration.
func (config *Config) SelectionSettings() toolselect.Config {
	settings := toolselect.DefaultConfig()
	selection := config.Selection

	if selection.MaxTools != nil {
		settings.MaxNonCore = *selection.MaxTools
	}
	if selection.ContextMessages != nil {
		settings.ContextWindow = *selection.ContextMessages
	}
	if selection.CurrentWeight != nil {
		settings.CurrentWeight = *selection.CurrentWeight
	}
	if selection.ContextWeight != nil {
		settings.ContextWeight = *selection.ContextWeight
	}
	if selection.K1 != nil {
		settings.Params.K1 = *selection.K1
	}
	if selection.B != nil {
		settings.Params.B = *selection.B
	}

	if weights := selection.FieldWeights; weights != nil {
		if weights.Name != nil {
			settings.FieldWeights.Name = *weights.Name
		}
		if weights.Description != nil {
			settings.FieldWeights.Description = *weights.Description
		}
		if weights.Keywords != nil {
			settings.FieldWeights.Keywords = *weights.Keywords
		}
		if weights.Tags != nil {
			settings.FieldWeights.Tags = *weights.Tags
		}
		if weights.Examples != nil {
			settings.FieldWeights.Examples = *weights.Examples
		}
	}

	return settings
}
