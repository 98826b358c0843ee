// Copyright 2026 The VideoWall Authors
// SPDX-License-Identifier: Apache-2.0

// Package overlay composes telemetry module outputs into the anchored
// text blocks the player displays as the persistent HUD. Rendering is
// pure: the same state always produces the same blocks, and a
// disabled overlay produces none regardless of what the modules say.
package overlay

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/videowall-foundation/videowall/lib/effect"
	"github.com/videowall-foundation/videowall/lib/profile"
	"github.com/videowall-foundation/videowall/lib/telemetry"
)

// Separator joins module outputs on horizontal layouts.
const Separator = "  |  "

// Block is one anchored run of styled HUD text. Multi-line text (the
// left/right vertical stacks) uses "\n"; the ASS assembler converts
// line breaks for the player.
type Block struct {
	Anchor string // top, bottom, left, right
	Text   string
	Color  lipgloss.Color
}

// Render composes the HUD blocks for one refresh. Outputs is the
// telemetry refresh result; modules missing from it render as the
// degraded form rather than failing the frame. A disabled overlay
// renders no blocks — the caller clears the display.
func Render(enabled bool, hud profile.HUD, outputs map[string]string, scheme effect.Scheme) []Block {
	if !enabled || len(hud.Modules) == 0 {
		return nil
	}

	lines := make([]string, len(hud.Modules))
	for i, name := range hud.Modules {
		output, ok := outputs[name]
		if !ok {
			output = telemetry.Degraded(name)
		}
		lines[i] = output
	}

	switch hud.Position {
	case profile.PositionLeft, profile.PositionRight:
		return []Block{{
			Anchor: hud.Position,
			Text:   strings.Join(lines, "\n"),
			Color:  scheme.Primary,
		}}
	case profile.PositionDistributed:
		return renderDistributed(lines, scheme)
	default:
		// Top and bottom share the single-line join; an
		// unrecognized position lands here as bottom, matching the
		// profile default.
		anchor := hud.Position
		if anchor != profile.PositionTop {
			anchor = profile.PositionBottom
		}
		return []Block{{
			Anchor: anchor,
			Text:   strings.Join(lines, Separator),
			Color:  scheme.Primary,
		}}
	}
}

// renderDistributed splits outputs by position parity: the 1st, 3rd,
// 5th… module outputs form the top group in the primary color, the
// 2nd, 4th… form the bottom group in the secondary color.
func renderDistributed(lines []string, scheme effect.Scheme) []Block {
	var top, bottom []string
	for i, line := range lines {
		if i%2 == 0 {
			top = append(top, line)
		} else {
			bottom = append(bottom, line)
		}
	}

	var blocks []Block
	if len(top) > 0 {
		blocks = append(blocks, Block{
			Anchor: profile.PositionTop,
			Text:   strings.Join(top, Separator),
			Color:  scheme.Primary,
		})
	}
	if len(bottom) > 0 {
		blocks = append(blocks, Block{
			Anchor: profile.PositionBottom,
			Text:   strings.Join(bottom, Separator),
			Color:  scheme.Secondary,
		})
	}
	return blocks
}
