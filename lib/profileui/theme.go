// Copyright 2026 The VideoWall Authors
// SPDX-License-Identifier: Apache-2.0

package profileui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/videowall-foundation/videowall/lib/effect"
)

// Theme defines the color palette for the picker chrome. Per-profile
// colors in the preview pane come from the profile's own effect
// scheme, not from the theme — the theme only covers the parts of the
// screen that stay constant while browsing.
type Theme struct {
	// HeaderForeground colors the title bar and the selection cursor.
	HeaderForeground lipgloss.Color

	// NormalText is the default row and preview body color.
	NormalText lipgloss.Color

	// FaintText dims secondary row content (profile file ids).
	FaintText lipgloss.Color

	// HelpText colors the key hint bar at the bottom.
	HelpText lipgloss.Color

	// MatchForeground colors runes matched by the fuzzy filter.
	MatchForeground lipgloss.Color

	// SelectedBackground and SelectedForeground style the row under
	// the cursor.
	SelectedBackground lipgloss.Color
	SelectedForeground lipgloss.Color

	// BorderColor colors the pane divider and separator rules.
	BorderColor lipgloss.Color
}

// DefaultTheme is the built-in picker palette. The accent colors
// follow the neon display scheme so the launcher reads as part of the
// wall rather than a generic terminal tool; the grays are launcher
// chrome with no on-wall counterpart.
var DefaultTheme = Theme{
	HeaderForeground:   effect.Neon.Primary,
	NormalText:         effect.Neon.Text,
	FaintText:          lipgloss.Color("#626E7A"),
	HelpText:           lipgloss.Color("#4E5A66"),
	MatchForeground:    effect.Neon.Accent,
	SelectedBackground: lipgloss.Color("#1C2430"),
	SelectedForeground: effect.Neon.Primary,
	BorderColor:        lipgloss.Color("#2D3640"),
}
