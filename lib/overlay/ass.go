// Copyright 2026 The VideoWall Authors
// SPDX-License-Identifier: Apache-2.0

package overlay

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Presentation constants for the persistent HUD, in ASS script units
// (the player's default 720-line playfield). Profile-level, not
// computed.
const (
	hudFontSize    = 26
	hudBorderWidth = 2
)

// anchorCodes maps block anchors to ASS numpad alignment codes:
// middle of the named edge.
var anchorCodes = map[string]int{
	"top":    8,
	"bottom": 2,
	"left":   4,
	"right":  6,
}

// ASS renders blocks as one ASS event per block, newline-separated,
// ready for the player's overlay property. An empty block list yields
// the empty string, which clears any prior overlay.
func ASS(blocks []Block) string {
	events := make([]string, 0, len(blocks))
	for _, block := range blocks {
		code, ok := anchorCodes[block.Anchor]
		if !ok {
			code = anchorCodes["bottom"]
		}
		events = append(events, fmt.Sprintf(`{\an%d}{\fs%d}{\bord%d}{\shad0}{\1c%s}%s`,
			code, hudFontSize, hudBorderWidth, assColor(block.Color), escapeASS(block.Text)))
	}
	return strings.Join(events, "\n")
}

// assColor converts a "#RRGGBB" color to the ASS "&HBBGGRR&" form.
// Unparseable colors fall back to white.
func assColor(color lipgloss.Color) string {
	hex := strings.TrimPrefix(string(color), "#")
	if len(hex) != 6 {
		return "&HFFFFFF&"
	}
	red, green, blue := hex[0:2], hex[2:4], hex[4:6]
	return "&H" + strings.ToUpper(blue+green+red) + "&"
}

// escapeASS makes arbitrary module/message text safe inside an ASS
// event: braces would open override blocks, so they become
// parentheses, and line breaks become ASS hard breaks.
func escapeASS(text string) string {
	text = strings.ReplaceAll(text, "{", "(")
	text = strings.ReplaceAll(text, "}", ")")
	return strings.ReplaceAll(text, "\n", `\N`)
}
