// Copyright 2026 The VideoWall Authors
// SPDX-License-Identifier: Apache-2.0

package profileui

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/muesli/termenv"

	"github.com/videowall-foundation/videowall/lib/effect"
	"github.com/videowall-foundation/videowall/lib/profile"
)

// PreviewRenderer renders the right pane: a summary of the selected
// profile painted with that profile's own effect scheme, so browsing
// to a vintage profile turns the preview amber before anything is
// launched.
type PreviewRenderer struct {
	theme    Theme
	renderer *lipgloss.Renderer
}

// NewPreviewRenderer creates a renderer pinned to the ANSI256 color
// profile. Scheme colors are truecolor hexes; pinning the profile
// keeps their downsampling identical whether the launcher runs on the
// wall console, over SSH, or inside a multiplexer.
func NewPreviewRenderer(theme Theme) PreviewRenderer {
	renderer := lipgloss.NewRenderer(os.Stderr, termenv.WithProfile(termenv.ANSI256))
	renderer.SetColorProfile(termenv.ANSI256)
	return PreviewRenderer{theme: theme, renderer: renderer}
}

// Render returns the preview for one profile as exactly height lines,
// each at most width cells wide.
func (preview PreviewRenderer) Render(item Item, width, height int) string {
	nameStyle := preview.renderer.NewStyle().Foreground(item.Scheme.Primary).Bold(true)
	labelStyle := preview.renderer.NewStyle().Foreground(preview.theme.FaintText)
	valueStyle := preview.renderer.NewStyle().Foreground(preview.theme.NormalText)
	faintStyle := preview.renderer.NewStyle().Foreground(preview.theme.FaintText)

	field := func(label, value string) string {
		return labelStyle.Render(fmt.Sprintf(" %-9s", label)) + valueStyle.Render(value)
	}

	resolved := item.Profile
	lines := []string{
		nameStyle.Render(" " + resolved.Name),
		faintStyle.Render(" " + filepath.Base(item.Entry.Path)),
		"",
		labelStyle.Render(fmt.Sprintf(" %-9s", "palette")) +
			preview.renderSwatches(item.Scheme) +
			faintStyle.Render("  "+paletteName(item.Scheme)),
		field("effects", formatValues(resolved.Effects)),
		field("chain", chainSummary(item.Chain)),
		"",
		field("hud", hudSummary(resolved)),
		field("messages", messageSummary(resolved)),
		field("playlist", playlistSummary(resolved)),
	}
	for _, dir := range resolved.VideoDirs {
		lines = append(lines, faintStyle.Render("           "+dir))
	}
	lines = append(lines,
		field("fonts", fontSummary(resolved)),
		field("aspect", resolved.Aspect),
	)

	return clipLines(lines, width, height)
}

// RenderEmpty fills the preview pane when nothing is selected (the
// filter matched no profiles).
func (preview PreviewRenderer) RenderEmpty(width, height int) string {
	message := preview.renderer.NewStyle().
		Foreground(preview.theme.FaintText).
		Render(" no profile selected")
	return clipLines([]string{"", message}, width, height)
}

// renderSwatches paints one block per scheme color in display order:
// primary, secondary, accent, background, text.
func (preview PreviewRenderer) renderSwatches(scheme effect.Scheme) string {
	colors := []lipgloss.Color{
		scheme.Primary,
		scheme.Secondary,
		scheme.Accent,
		scheme.Background,
		scheme.Text,
	}
	blocks := make([]string, len(colors))
	for i, color := range colors {
		blocks[i] = preview.renderer.NewStyle().Foreground(color).Render("██")
	}
	return strings.Join(blocks, " ")
}

// clipLines truncates each line to the pane width and pads or clips
// the line count to exactly height.
func clipLines(lines []string, width, height int) string {
	out := make([]string, 0, height)
	for _, line := range lines {
		if len(out) == height {
			break
		}
		out = append(out, ansi.Truncate(line, width, "…"))
	}
	for len(out) < height {
		out = append(out, "")
	}
	return strings.Join(out, "\n")
}

// paletteName labels a scheme for display.
func paletteName(scheme effect.Scheme) string {
	if scheme == effect.Vintage {
		return "vintage"
	}
	return "neon"
}

func formatValues(values []string) string {
	if len(values) == 0 {
		return "none"
	}
	return strings.Join(values, ", ")
}

func chainSummary(chain string) string {
	if chain == "" {
		return "none"
	}
	return chain
}

func hudSummary(resolved profile.Profile) string {
	if len(resolved.HUD.Modules) == 0 {
		return resolved.HUD.Position + " · no modules"
	}
	return resolved.HUD.Position + " · " + strings.Join(resolved.HUD.Modules, ", ")
}

func messageSummary(resolved profile.Profile) string {
	if resolved.Messages.MessageFile == "" {
		return "none"
	}
	hold := time.Duration(resolved.Messages.DurationSeconds) * time.Second
	file := filepath.Base(resolved.Messages.MessageFile)
	if resolved.Messages.IntervalSeconds <= 0 {
		return fmt.Sprintf("on demand · %s hold · %s", hold, file)
	}
	interval := time.Duration(resolved.Messages.IntervalSeconds) * time.Second
	return fmt.Sprintf("every %s · %s hold · %s", interval, hold, file)
}

func playlistSummary(resolved profile.Profile) string {
	switch len(resolved.VideoDirs) {
	case 0:
		return resolved.PlaylistMode + " · no directories"
	case 1:
		return resolved.PlaylistMode + " · 1 directory"
	default:
		return fmt.Sprintf("%s · %d directories", resolved.PlaylistMode, len(resolved.VideoDirs))
	}
}

func fontSummary(resolved profile.Profile) string {
	if len(resolved.Fonts.Fallback) == 0 {
		return resolved.Fonts.Primary
	}
	return resolved.Fonts.Primary + " · fallback " + strings.Join(resolved.Fonts.Fallback, ", ")
}
