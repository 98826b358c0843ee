// Copyright 2026 The VideoWall Authors
// SPDX-License-Identifier: Apache-2.0

package profileui

import (
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"
)

func TestFilterHandleRune(t *testing.T) {
	filter := FilterModel{}
	if !filter.HandleRune('v') {
		t.Error("HandleRune should report a change")
	}
	filter.HandleRune('h')
	filter.HandleRune('s')
	if filter.Input != "vhs" {
		t.Errorf("input should accumulate runes, got %q", filter.Input)
	}
}

func TestFilterHandleBackspace(t *testing.T) {
	filter := FilterModel{Input: "vhs"}
	if !filter.HandleBackspace() {
		t.Error("backspace on non-empty input should report a change")
	}
	if filter.Input != "vh" {
		t.Errorf("backspace should drop the last rune, got %q", filter.Input)
	}

	filter.Input = ""
	if filter.HandleBackspace() {
		t.Error("backspace on empty input should report no change")
	}
}

func TestFilterHandleBackspaceMultibyte(t *testing.T) {
	filter := FilterModel{Input: "né"}
	filter.HandleBackspace()
	if filter.Input != "n" {
		t.Errorf("backspace should remove one rune, not one byte, got %q", filter.Input)
	}
}

func TestFilterClear(t *testing.T) {
	filter := FilterModel{Input: "vhs", Active: true}
	filter.Clear()
	if filter.Input != "" {
		t.Errorf("clear should empty the input, got %q", filter.Input)
	}
	if filter.Active {
		t.Error("clear should deactivate the filter")
	}
}

func TestFilterViewHiddenWhenInactiveAndEmpty(t *testing.T) {
	filter := FilterModel{}
	if view := filter.View(DefaultTheme, 80); view != "" {
		t.Errorf("inactive empty filter should render nothing, got %q", view)
	}
}

func TestFilterViewActiveShowsCursor(t *testing.T) {
	filter := FilterModel{Input: "vhs", Active: true}
	view := ansi.Strip(filter.View(DefaultTheme, 80))

	if !strings.Contains(view, " / vhs") {
		t.Errorf("active filter should show the slash prompt and input, got %q", view)
	}
	if !strings.Contains(view, "▎") {
		t.Error("active filter should render the input cursor")
	}
}

func TestFilterViewInactiveShowsIndicator(t *testing.T) {
	filter := FilterModel{Input: "vhs", Active: false}
	view := ansi.Strip(filter.View(DefaultTheme, 80))

	if !strings.Contains(view, "filter: vhs") {
		t.Errorf("inactive filter with text should show the indicator, got %q", view)
	}
	if strings.Contains(view, "▎") {
		t.Error("inactive filter should not render a cursor")
	}
}
