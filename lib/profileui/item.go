// Copyright 2026 The VideoWall Authors
// SPDX-License-Identifier: Apache-2.0

package profileui

import (
	"log/slog"

	"github.com/videowall-foundation/videowall/lib/effect"
	"github.com/videowall-foundation/videowall/lib/profile"
)

// Item is one selectable profile with everything the preview pane
// needs already resolved. Items are immutable once loaded — the
// picker never re-reads profile files while running.
type Item struct {
	// Entry identifies the profile file (id, display name, path).
	Entry profile.Entry

	// Profile is the resolved configuration. Resolution is lenient,
	// so a broken file still produces a complete Profile built from
	// defaults; the resolver logs what it skipped.
	Profile profile.Profile

	// Chain is the combined video filter expression for the
	// profile's effects, empty when no effect contributes one.
	Chain string

	// Scheme is the display palette the profile's effects select.
	Scheme effect.Scheme
}

// LoadItems reads and resolves every profile in dir, sorted by id.
// An unreadable directory is an error; individual broken profiles are
// not — they list with default-filled fields, matching how the wall
// itself treats them at load time.
func LoadItems(logger *slog.Logger, dir string) ([]Item, error) {
	entries, err := profile.List(dir)
	if err != nil {
		return nil, err
	}

	resolver := profile.NewResolver(logger)
	items := make([]Item, 0, len(entries))
	for _, entry := range entries {
		resolved := resolver.Resolve(entry.Path)
		chain, scheme := effect.Resolve(resolved.Effects)
		items = append(items, Item{
			Entry:   entry,
			Profile: resolved,
			Chain:   chain,
			Scheme:  scheme,
		})
	}
	return items, nil
}
