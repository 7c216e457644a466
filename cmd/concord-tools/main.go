// Copyright 2026 The Concord Authors
// SPDX-License-Identifier: Apache-2.0

// concord-tools is an operator CLI for the Concord tool selection
// engine. It loads a tool catalog, builds a selection engine, and
// answers the question the bot asks at every turn: which tools would
// be handed to the model for this message?
//
// Query mode (default): rank the catalog against a query.
//
//	concord-tools --catalog tools.jsonc "what's the weather in lisbon"
//	concord-tools --config concord.yaml --context "earlier message" "current message"
//
// Maintenance modes:
//
//	concord-tools --catalog tools.jsonc --fingerprint
//	concord-tools --catalog tools.jsonc --write-snapshot catalog.snap
package main

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/spf13/pflag"

	"github.com/concord-foundation/concord/lib/config"
	"github.com/concord-foundation/concord/lib/toolcatalog"
	"github.com/concord-foundation/concord/lib/toolselect"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	var (
		configPath       string
		catalogPath      string
		snapshotPath     string
		contextMessages  []string
		limit            int
		jsonOutput       bool
		printFingerprint bool
		writeSnapshot    string
		verbose          bool
	)

	flagSet := pflag.NewFlagSet("concord-tools", pflag.ContinueOnError)
	flagSet.StringVar(&configPath, "config", "", "path to concord YAML config (default: $"+config.EnvVar+")")
	flagSet.StringVar(&catalogPath, "catalog", "", "path to JSONC tool catalog (overrides config)")
	flagSet.StringVar(&snapshotPath, "snapshot", "", "path to catalog snapshot cache (overrides config)")
	flagSet.StringArrayVar(&contextMessages, "context", nil, "recent conversation message, oldest first (repeatable)")
	flagSet.IntVar(&limit, "limit", -1, "ranked tool budget (overrides config)")
	flagSet.BoolVar(&jsonOutput, "json", false, "emit the selection as JSON")
	flagSet.BoolVar(&printFingerprint, "fingerprint", false, "print the catalog fingerprint and exit")
	flagSet.StringVar(&writeSnapshot, "write-snapshot", "", "write a catalog snapshot to this path and exit")
	flagSet.BoolVar(&verbose, "verbose", false, "enable debug logging")
	flagSet.BoolP("help", "h", false, "show help")

	if err := flagSet.Parse(os.Args[1:]); err != nil {
		if err == pflag.ErrHelp {
			printHelp(flagSet)
			return nil
		}
		return err
	}
	if help, _ := flagSet.GetBool("help"); help {
		printHelp(flagSet)
		return nil
	}

	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	// Flags override config; config is only required when the flags
	// don't fully specify the inputs.
	settings := toolselect.DefaultConfig()
	if configPath != "" || (catalogPath == "" && snapshotPath == "") {
		loaded, err := config.Load(configPath)
		if err != nil {
			return err
		}
		settings = loaded.SelectionSettings()
		if catalogPath == "" {
			catalogPath = loaded.Catalog
		}
		if snapshotPath == "" {
			snapshotPath = loaded.Snapshot
		}
	}
	if limit >= 0 {
		settings.MaxNonCore = limit
	}

	catalog, err := loadCatalog(logger, catalogPath, snapshotPath)
	if err != nil {
		return err
	}

	if printFingerprint {
		fingerprint, err := catalog.Fingerprint()
		if err != nil {
			return err
		}
		fmt.Println(fingerprint)
		return nil
	}

	if writeSnapshot != "" {
		if err := toolcatalog.WriteSnapshot(writeSnapshot, catalog); err != nil {
			return err
		}
		logger.Info("snapshot written", "path", writeSnapshot, "tools", len(catalog.Tools))
		return nil
	}

	if flagSet.NArg() == 0 {
		printHelp(flagSet)
		return fmt.Errorf("query required")
	}
	query := strings.Join(flagSet.Args(), " ")

	engine, err := toolselect.NewEngine(catalog.Documents(), settings)
	if err != nil {
		return err
	}

	logger.Debug("selecting tools",
		"query", query,
		"context_messages", len(contextMessages),
		"catalog_size", len(catalog.Tools),
		"budget", settings.MaxNonCore)

	selected := engine.SelectTools(query, contextMessages)
	return printSelection(engine.Corpus(), selected, jsonOutput)
}

// loadCatalog reads the catalog from the JSONC file when available,
// falling back to the snapshot cache. When both are present the
// snapshot's fingerprint is checked against the parsed catalog so a
// stale cache gets noticed.
func loadCatalog(logger *slog.Logger, catalogPath, snapshotPath string) (*toolcatalog.Catalog, error) {
	if catalogPath != "" {
		catalog, err := toolcatalog.ReadFile(catalogPath)
		if err != nil {
			return nil, err
		}

		if snapshotPath != "" {
			if _, cached, err := toolcatalog.ReadSnapshot(snapshotPath); err != nil {
				logger.Debug("snapshot unreadable", "path", snapshotPath, "error", err)
			} else if current, err := catalog.Fingerprint(); err == nil && cached != current {
				logger.Warn("snapshot is stale", "path", snapshotPath,
					"snapshot", cached, "catalog", current)
			}
		}
		return catalog, nil
	}

	if snapshotPath == "" {
		return nil, fmt.Errorf("no catalog: pass --catalog or configure one")
	}
	catalog, fingerprint, err := toolcatalog.ReadSnapshot(snapshotPath)
	if err != nil {
		return nil, err
	}
	logger.Debug("catalog loaded from snapshot", "path", snapshotPath, "fingerprint", fingerprint)
	return catalog, nil
}

// selectionEntry is one row of --json output.
type selectionEntry struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Category string `json:"category,omitempty"`
	Core     bool   `json:"core,omitempty"`
}

func printSelection(corpus *toolselect.Corpus, selected []string, jsonOutput bool) error {
	entries := make([]selectionEntry, 0, len(selected))
	for _, id := range selected {
		document, exists := corpus.Lookup(id)
		if !exists {
			// Core IDs always come from the corpus; this indicates
			// a bug, not bad input.
			return fmt.Errorf("selected tool %q not in corpus", id)
		}
		entries = append(entries, selectionEntry{
			ID:       document.ID,
			Name:     document.Name,
			Category: document.Category,
			Core:     document.Core,
		})
	}

	if jsonOutput {
		encoder := json.NewEncoder(os.Stdout)
		encoder.SetIndent("", "  ")
		return encoder.Encode(entries)
	}

	writer := tabwriter.NewWriter(os.Stdout, 2, 0, 2, ' ', 0)
	for _, entry := range entries {
		marker := ""
		if entry.Core {
			marker = "core"
		}
		fmt.Fprintf(writer, "  %s\t%s\t%s\t%s\n", entry.ID, entry.Name, entry.Category, marker)
	}
	return writer.Flush()
}

func printHelp(flagSet *pflag.FlagSet) {
	fmt.Print(`concord-tools - query the Concord tool selection engine

Usage:
  concord-tools [flags] <query...>

Flags:
`)
	fmt.Print(flagSet.FlagUsages())
}
