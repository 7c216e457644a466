// Copyright 2026 The Concord Authors
// SPDX-License-Identifier: Apache-2.0

package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "concord.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoad_DefaultsApplied(t *testing.T) {
	path := writeConfig(t, "catalog: /etc/concord/tools.jsonc\n")

	config, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	settings := config.SelectionSettings()
	if settings.MaxNonCore != 20 {
		t.Errorf("MaxNonCore = %d, want default 20", settings.MaxNonCore)
	}
	if settings.ContextWindow != 2 {
		t.Errorf("ContextWindow = %d, want default 2", settings.ContextWindow)
	}
	if settings.CurrentWeight != 2.0 || settings.ContextWeight != 1.0 {
		t.Errorf("weights = %v/%v, want 2.0/1.0", settings.CurrentWeight, settings.ContextWeight)
	}
	if settings.Params.K1 != 1.2 || settings.Params.B != 0.75 {
		t.Errorf("params = %+v, want k1=1.2 b=0.75", settings.Params)
	}
}

func TestLoad_Overrides(t *testing.T) {
	path := writeConfig(t, `catalog: tools.jsonc
snapshot: catalog.snap
selection:
  max_tools: 8
  context_messages: 4
  current_weight: 3.0
  context_weight: 0.5
  k1: 1.5
  b: 0
  field_weights:
    name: 5.0
    examples: 0.5
`)

	config, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	settings := config.SelectionSettings()
	if settings.MaxNonCore != 8 || settings.ContextWindow != 4 {
		t.Errorf("budget/window = %d/%d, want 8/4", settings.MaxNonCore, settings.ContextWindow)
	}
	if settings.Params.B != 0 {
		t.Errorf("b = %v, want explicit 0", settings.Params.B)
	}
	if settings.FieldWeights.Name != 5.0 {
		t.Errorf("name weight = %v, want 5.0", settings.FieldWeights.Name)
	}
	// Unset field weights keep their defaults.
	if settings.FieldWeights.Description != 2.0 {
		t.Errorf("description weight = %v, want default 2.0", settings.FieldWeights.Description)
	}
	if config.Snapshot != "catalog.snap" {
		t.Errorf("Snapshot = %q", config.Snapshot)
	}
}

func TestLoad_InvalidSelection(t *testing.T) {
	path := writeConfig(t, `catalog: tools.jsonc
selection:
  context_weight: 5.0
`)
	// context_weight above the default current_weight of 2.0.
	if _, err := Load(path); err == nil {
		t.Fatal("expected validation error")
	}
}

func TestLoad_MissingCatalog(t *testing.T) {
	path := writeConfig(t, "selection:\n  max_tools: 5\n")
	_, err := Load(path)
	if err == nil || !strings.Contains(err.Error(), "catalog") {
		t.Fatalf("Load = %v, want catalog-required error", err)
	}
}

func TestLoad_NoPathAnywhere(t *testing.T) {
	t.Setenv(EnvVar, "")
	if _, err := Load(""); err == nil {
		t.Fatal("expected error when no path is available")
	}
}

func TestLoad_EnvVarPath(t *testing.T) {
	path := writeConfig(t, "catalog: tools.jsonc\n")
	t.Setenv(EnvVar, path)

	config, err := Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if config.Catalog != "tools.jsonc" {
		t.Errorf("Catalog = %q", config.Catalog)
	}
}
