// Copyright 2026 The VideoWall Authors
// SPDX-License-Identifier: Apache-2.0

package cli

import (
	"log/slog"
	"os"

	"golang.org/x/term"
)

// NewCommandLogger creates a structured logger for CLI command
// operations. When stderr is a terminal, uses slog.TextHandler for
// human-readable output. When stderr is piped or redirected (scripts,
// systemd journal), uses slog.JSONHandler for machine-parseable output
// matching the daemon's log format.
//
// Callers scope the logger with command-specific context via With():
//
//	logger := cli.NewCommandLogger(settings.SlogLevel()).With(
//	    "command", "run",
//	    "profile", entry.ID,
//	)
func NewCommandLogger(level slog.Level) *slog.Logger {
	var handler slog.Handler
	options := &slog.HandlerOptions{Level: level}
	if term.IsTerminal(int(os.Stderr.Fd())) {
		handler = slog.NewTextHandler(os.Stderr, options)
	} else {
		handler = slog.NewJSONHandler(os.Stderr, options)
	}
	return slog.New(handler)
}
