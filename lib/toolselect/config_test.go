// Copyright 2026 The Concord Authors
// SPDX-License-Identifier: Apache-2.0

package toolselect

import "testing"

func TestDefaultConfigIsValid(t *testing.T) {
	if err := DefaultConfig().Validate(); err != nil {
		t.Errorf("DefaultConfig().Validate() = %v", err)
	}
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"negative budget", func(c *Config) { c.MaxNonCore = -1 }},
		{"negative window", func(c *Config) { c.ContextWindow = -1 }},
		{"zero current weight", func(c *Config) { c.CurrentWeight = 0 }},
		{"zero context weight", func(c *Config) { c.ContextWeight = 0 }},
		{"context >= current", func(c *Config) { c.ContextWeight = c.CurrentWeight }},
		{"zero name weight", func(c *Config) { c.FieldWeights.Name = 0 }},
		{"negative examples weight", func(c *Config) { c.FieldWeights.Examples = -1 }},
		{"zero k1", func(c *Config) { c.Params.K1 = 0 }},
		{"b above one", func(c *Config) { c.Params.B = 1.5 }},
		{"negative b", func(c *Config) { c.Params.B = -0.1 }},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			config := DefaultConfig()
			test.mutate(&config)
			if err := config.Validate(); err == nil {
				t.Error("Validate() = nil, want error")
			}
		})
	}
}

func TestConfigValidate_ZeroBudgetAndWindowAllowed(t *testing.T) {
	config := DefaultConfig()
	config.MaxNonCore = 0
	config.ContextWindow = 0
	if err := config.Validate(); err != nil {
		t.Errorf("Validate() = %v, want nil", err)
	}
}
