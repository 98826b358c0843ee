// Copyright 2026 The VideoWall Authors
// SPDX-License-Identifier: Apache-2.0

// Package message rotates operator-supplied text lines onto the
// display as transient messages, layered above the persistent HUD.
package message

import (
	"log/slog"
	"math/rand"
	"os"
	"strings"
	"time"
)

// Rotator holds one profile session's message list and picks entries
// pseudo-randomly, on a timer or on demand.
type Rotator struct {
	logger   *slog.Logger
	random   *rand.Rand
	messages []string
}

// NewRotator returns an empty Rotator. Load populates it.
func NewRotator(logger *slog.Logger) *Rotator {
	return &Rotator{
		logger: logger,
		random: rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// Load replaces the message list with the contents of the file at
// path. An empty path means no messages; an unreadable file logs a
// warning and leaves the list empty. Neither is an error — rotation
// simply has nothing to show.
func (r *Rotator) Load(path string) {
	r.messages = nil
	if path == "" {
		return
	}
	data, err := os.ReadFile(path)
	if err != nil {
		r.logger.Warn("message file not readable, rotation disabled",
			"path", path, "error", err)
		return
	}
	r.messages = Parse(data)
}

// Parse extracts the usable lines of a message file: trimmed, blank
// lines and #-comments skipped.
func Parse(data []byte) []string {
	var messages []string
	for _, line := range strings.Split(string(data), "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		messages = append(messages, line)
	}
	return messages
}

// Pick selects a message uniformly at random. The second return is
// false when the list is empty; callers show nothing in that case.
func (r *Rotator) Pick() (string, bool) {
	if len(r.messages) == 0 {
		return "", false
	}
	return r.messages[r.random.Intn(len(r.messages))], true
}

// Count returns the number of loaded messages, for status reporting.
func (r *Rotator) Count() int { return len(r.messages) }
