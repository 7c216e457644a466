// Copyright 2026 The Concord Authors
// SPDX-License-Identifier: Apache-2.0

// Package config provides configuration loading for Concord
// components.
//
// Configuration is loaded from a single YAML file specified by:
//   - CONCORD_CONFIG environment variable, or
//   - --config flag passed to the command
//
// There are no fallbacks or automatic discovery. This ensures
// deterministic, auditable configuration with no hidden overrides.
// Selection tunables left out of the file take the documented
// defaults from lib/toolselect.
package config
