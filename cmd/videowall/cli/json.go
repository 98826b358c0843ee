// Copyright 2026 The VideoWall Authors
// SPDX-License-Identifier: Apache-2.0

package cli

import (
	"encoding/json"
	"os"
)

// WriteJSON marshals value as indented JSON and writes it to stdout.
// Commands with a --json flag route their machine-readable output
// through here so indentation stays uniform across the CLI.
func WriteJSON(value any) error {
	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	return encoder.Encode(value)
}
