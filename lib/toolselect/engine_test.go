// Copyright 2026 The Concord Authors
// SPDX-License-Identifier: Apache-2.0

package toolselect

import (
	"sync"
	"testing"
)

func newTestEngine(t *testing.T, documents []Document) *Engine {
	t.Helper()
	engine, err := NewEngine(documents, DefaultConfig())
	if err != nil {
		t.Fatalf("NewEngine: %v", err)
	}
	return engine
}

func TestEngine_SelectTools(t *testing.T) {
	engine := newTestEngine(t, sampleRegistry())

	got := engine.SelectTools("can you calculate the tip", nil)
	if len(got) < 2 || got[0] != "memory" || got[1] != "calculator" {
		t.Errorf("SelectTools = %v, want [memory calculator ...]", got)
	}
}

func TestEngine_ContextInfluencesSelection(t *testing.T) {
	engine := newTestEngine(t, sampleRegistry())

	without := engine.SelectTools("what do you think", nil)
	with := engine.SelectTools("what do you think", []string{"will it rain tomorrow", "checking the forecast"})

	if equalIDs(without, with) {
		t.Fatal("context messages had no effect on selection")
	}
	found := false
	for _, id := range with {
		if id == "weather" {
			found = true
		}
	}
	if !found {
		t.Errorf("SelectTools with forecast context = %v, want weather included", with)
	}
}

func TestEngine_RebuildSwapsCorpus(t *testing.T) {
	engine := newTestEngine(t, []Document{
		{ID: "old_tool", Name: "Old", Keywords: []string{"legacy"}},
	})

	if err := engine.Rebuild([]Document{
		{ID: "new_tool", Name: "New", Keywords: []string{"legacy"}},
	}); err != nil {
		t.Fatalf("Rebuild: %v", err)
	}

	got := engine.SelectTools("legacy", nil)
	if !equalIDs(got, []string{"new_tool"}) {
		t.Errorf("SelectTools after rebuild = %v, want [new_tool]", got)
	}
}

func TestEngine_FailedRebuildKeepsOldCorpus(t *testing.T) {
	engine := newTestEngine(t, sampleRegistry())

	err := engine.Rebuild([]Document{
		{ID: "dup"},
		{ID: "dup"},
	})
	if err == nil {
		t.Fatal("expected rebuild error for duplicate IDs")
	}

	// The previous corpus must still serve.
	got := engine.SelectTools("forecast", nil)
	if !equalIDs(got, []string{"memory", "weather"}) {
		t.Errorf("SelectTools after failed rebuild = %v, want [memory weather]", got)
	}
}

func TestEngine_RebuildAtomicity(t *testing.T) {
	before := []Document{
		{ID: "core", Name: "Core", Core: true},
		{ID: "before_tool", Name: "Probe", Keywords: []string{"probe"}},
	}
	after := []Document{
		{ID: "core", Name: "Core", Core: true},
		{ID: "after_tool", Name: "Probe", Keywords: []string{"probe"}},
	}

	engine := newTestEngine(t, before)

	wantBefore := []string{"core", "before_tool"}
	wantAfter := []string{"core", "after_tool"}

	var waitGroup sync.WaitGroup
	stop := make(chan struct{})

	// Readers: every observed selection must match exactly one full
	// registry generation, never a mixture.
	for reader := 0; reader < 4; reader++ {
		waitGroup.Add(1)
		go func() {
			defer waitGroup.Done()
			for {
				select {
				case <-stop:
					return
				default:
				}
				got := engine.SelectTools("probe", nil)
				if !equalIDs(got, wantBefore) && !equalIDs(got, wantAfter) {
					t.Errorf("mixed-generation selection: %v", got)
					return
				}
			}
		}()
	}

	for i := 0; i < 100; i++ {
		registry := before
		if i%2 == 0 {
			registry = after
		}
		if err := engine.Rebuild(registry); err != nil {
			t.Errorf("Rebuild: %v", err)
			break
		}
	}

	close(stop)
	waitGroup.Wait()
}
