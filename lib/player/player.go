// Copyright 2026 The VideoWall Authors
// SPDX-License-Identifier: Apache-2.0

package player

// EventKind classifies player events.
type EventKind string

const (
	// MediaLoaded fires when the player finishes loading a playlist
	// entry. The controller re-applies overlays and filters on this,
	// since some per-file state resets across loads.
	MediaLoaded EventKind = "media-loaded"

	// HotkeyPressed fires when a key bound via Bind is pressed in the
	// player window. Event.Hotkey carries the binding name.
	HotkeyPressed EventKind = "hotkey"

	// Disconnected fires once when the IPC connection is lost, whether
	// the player exited or the socket broke. The events channel is
	// closed afterwards.
	Disconnected EventKind = "disconnected"
)

// Event is one unsolicited notification from the player.
type Event struct {
	Kind   EventKind
	Hotkey string
}

// Player is the control surface the daemon drives. Implemented by
// [MPV] for real use and by in-process fakes in controller tests.
type Player interface {
	// SetOverlay installs or replaces the ASS overlay with the given
	// id. Overlay ids are stable across calls, so re-rendering the HUD
	// replaces content in place without flicker.
	SetOverlay(id int, data string) error

	// ClearOverlay removes the overlay with the given id.
	ClearOverlay(id int) error

	// ShowText displays transient OSD text for duration milliseconds.
	ShowText(text string, duration int) error

	// SetFilterChain replaces the video filter chain. An empty chain
	// clears all filters.
	SetFilterChain(chain string) error

	// SetAspect applies an aspect policy: "4:3", "16:9", or "stretch".
	SetAspect(aspect string) error

	// SetOSDFont sets the font used for overlays and OSD text.
	SetOSDFont(name string) error

	// Bind maps a key in the player window to a named hotkey event.
	Bind(key, name string) error

	// LoadPlaylist replaces the current playlist with the M3U at path.
	LoadPlaylist(path string) error

	// Events returns the channel of unsolicited player events. It is
	// closed after Disconnected is delivered.
	Events() <-chan Event

	// Close tears down the IPC connection.
	Close() error
}
