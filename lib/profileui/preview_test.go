// Copyright 2026 The VideoWall Authors
// SPDX-License-Identifier: Apache-2.0

package profileui

import (
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"

	"github.com/videowall-foundation/videowall/lib/effect"
	"github.com/videowall-foundation/videowall/lib/profile"
)

// previewItem builds a fully-populated vintage profile for preview
// assertions.
func previewItem() Item {
	resolved := profile.Default()
	resolved.Name = "Pure VHS"
	resolved.VideoDirs = []string{"/srv/walls/tapes", "/srv/walls/loops"}
	resolved.PlaylistMode = profile.PlaylistOrdered
	resolved.Effects = []string{"vhs-clean", "vintage-fade"}
	resolved.HUD.Position = profile.PositionTop
	resolved.HUD.Modules = []string{"clock", "cpu"}
	resolved.Messages.IntervalSeconds = 300
	resolved.Messages.DurationSeconds = 5
	resolved.Messages.MessageFile = "/etc/videowall/messages/default.txt"
	resolved.Fonts.Primary = "VCR OSD Mono"
	resolved.Fonts.Fallback = []string{"monospace"}
	resolved.Aspect = "4:3"

	chain, scheme := effect.Resolve(resolved.Effects)
	return Item{
		Entry:   profile.Entry{ID: "pure_vhs", Name: "Pure VHS", Path: "/etc/videowall/profiles/pure_vhs.json"},
		Profile: resolved,
		Chain:   chain,
		Scheme:  scheme,
	}
}

func TestPreviewShowsResolvedFields(t *testing.T) {
	preview := NewPreviewRenderer(DefaultTheme)
	rendered := ansi.Strip(preview.Render(previewItem(), 72, 20))

	for _, want := range []string{
		"Pure VHS",
		"pure_vhs.json",
		"vintage",
		"vhs-clean, vintage-fade",
		"top · clock, cpu",
		"every 5m0s · 5s hold · default.txt",
		"ordered · 2 directories",
		"/srv/walls/tapes",
		"VCR OSD Mono · fallback monospace",
		"4:3",
	} {
		if !strings.Contains(rendered, want) {
			t.Errorf("preview should contain %q\nrendered:\n%s", want, rendered)
		}
	}
}

func TestPreviewPaletteLabels(t *testing.T) {
	preview := NewPreviewRenderer(DefaultTheme)

	neon := makeItem("cyberpunk_hud", "Cyberpunk HUD", []string{"cyberpunk-glow"})
	rendered := ansi.Strip(preview.Render(neon, 72, 20))
	if !strings.Contains(rendered, "neon") {
		t.Error("neon-family profile should label its palette neon")
	}

	vintage := ansi.Strip(preview.Render(previewItem(), 72, 20))
	if !strings.Contains(vintage, "vintage") {
		t.Error("vhs-family profile should label its palette vintage")
	}
}

func TestPreviewEffectlessProfile(t *testing.T) {
	preview := NewPreviewRenderer(DefaultTheme)
	item := makeItem("static_wall", "Static Wall", nil)
	rendered := ansi.Strip(preview.Render(item, 72, 20))

	if !strings.Contains(rendered, "effects  none") {
		t.Error("profile without effects should render 'none'")
	}
	if !strings.Contains(rendered, "chain    none") {
		t.Error("profile without effects should have no filter chain")
	}
}

func TestPreviewRespectsDimensions(t *testing.T) {
	preview := NewPreviewRenderer(DefaultTheme)
	rendered := preview.Render(previewItem(), 30, 10)

	lines := strings.Split(rendered, "\n")
	if len(lines) != 10 {
		t.Fatalf("preview should be exactly 10 lines, got %d", len(lines))
	}
	for number, line := range lines {
		if width := ansi.StringWidth(line); width > 30 {
			t.Errorf("line %d is %d cells wide, should be at most 30", number, width)
		}
	}
}

func TestPreviewEmpty(t *testing.T) {
	preview := NewPreviewRenderer(DefaultTheme)
	rendered := preview.RenderEmpty(40, 5)

	lines := strings.Split(rendered, "\n")
	if len(lines) != 5 {
		t.Fatalf("empty preview should be exactly 5 lines, got %d", len(lines))
	}
	if !strings.Contains(ansi.Strip(rendered), "no profile selected") {
		t.Error("empty preview should say no profile is selected")
	}
}
