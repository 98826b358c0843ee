// Copyright 2026 The VideoWall Authors
// SPDX-License-Identifier: Apache-2.0

package effect

import "github.com/charmbracelet/lipgloss"

// Scheme is the display palette selected by the active effect family.
// The overlay renderer converts these to ASS color tags for the
// player; the launcher uses them directly for its preview styling.
type Scheme struct {
	Primary    lipgloss.Color // HUD lines, top group in distributed layout
	Secondary  lipgloss.Color // bottom group in distributed layout
	Accent     lipgloss.Color // transient message text
	Background lipgloss.Color // OSD box fill
	Text       lipgloss.Color // launcher body text
}

// Neon is the default palette: high-saturation cyan/magenta over near
// black.
var Neon = Scheme{
	Primary:    lipgloss.Color("#00F3FF"),
	Secondary:  lipgloss.Color("#FF00E6"),
	Accent:     lipgloss.Color("#AAFF00"),
	Background: lipgloss.Color("#0A0E14"),
	Text:       lipgloss.Color("#D6F6FF"),
}

// Vintage is the tape-era palette selected when any active effect is
// in the VHS/vintage family: warm amber over brown.
var Vintage = Scheme{
	Primary:    lipgloss.Color("#E8C170"),
	Secondary:  lipgloss.Color("#C77D3F"),
	Accent:     lipgloss.Color("#8FBF9F"),
	Background: lipgloss.Color("#1A120B"),
	Text:       lipgloss.Color("#EDE3D1"),
}
