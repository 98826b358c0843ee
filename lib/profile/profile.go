// Copyright 2026 The VideoWall Authors
// SPDX-License-Identifier: Apache-2.0

package profile

// Position anchors the HUD on screen. Distributed splits the module
// list across the top and bottom edges by position parity.
const (
	PositionTop         = "top"
	PositionBottom      = "bottom"
	PositionLeft        = "left"
	PositionRight       = "right"
	PositionDistributed = "distributed"
)

// Playlist modes.
const (
	PlaylistRandom  = "random"
	PlaylistOrdered = "ordered"
)

// Profile is the resolved configuration for one playback session. It
// is created by Resolve, owned by the controller, and replaced
// wholesale on reload — nothing mutates a Profile in place.
//
// The json tags mirror the profile file schema, so a serialized
// Profile (videowall profile show) reads like a fully-populated
// profile file.
type Profile struct {
	// Name is the display name shown in the launcher and in reload
	// confirmations.
	Name string `json:"name"`

	// VideoDirs are the directories scanned for playable files.
	VideoDirs []string `json:"video_dirs"`

	// PlaylistMode is "random" (shuffled) or "ordered" (lexical).
	PlaylistMode string `json:"playlist_mode"`

	// Effects are effect ids applied in order. Unknown ids are
	// skipped by the effect resolver.
	Effects []string `json:"effects"`

	// HUD controls the persistent telemetry overlay.
	HUD HUD `json:"hud"`

	// Messages controls rotation of operator-supplied text.
	Messages Messages `json:"messages"`

	// Fonts name the OSD typeface and its fallbacks.
	Fonts Fonts `json:"fonts"`

	// Aspect is "4:3", "16:9", or "stretch".
	Aspect string `json:"aspect"`
}

// HUD is the telemetry overlay layout.
type HUD struct {
	// Position is one of the Position constants.
	Position string `json:"position"`

	// Modules are telemetry module names rendered in order.
	Modules []string `json:"modules"`
}

// Messages configures the message rotator.
type Messages struct {
	// IntervalSeconds is the rotation period. Zero disables the
	// rotation timer; on-demand picks still work.
	IntervalSeconds int `json:"interval"`

	// DurationSeconds is how long a picked message stays on screen.
	DurationSeconds int `json:"duration"`

	// MessageFile is the line-oriented message list path, ~-expanded.
	// Empty means no messages.
	MessageFile string `json:"message_file"`
}

// Fonts selects the overlay typeface.
type Fonts struct {
	Primary  string   `json:"primary"`
	Fallback []string `json:"fallback"`
}

// Default returns the total-default Profile. Every scalar field is
// populated and every array is empty; resolution falls back to these
// values field by field, so a Profile is always structurally complete
// even from empty input.
func Default() Profile {
	return Profile{
		Name:         "default",
		PlaylistMode: PlaylistRandom,
		HUD: HUD{
			Position: PositionBottom,
		},
		Messages: Messages{
			IntervalSeconds: 300,
			DurationSeconds: 5,
		},
		Fonts: Fonts{
			Primary: "monospace",
		},
		Aspect: "16:9",
	}
}

// validPositions and validation sets for enum-shaped fields. A value
// outside the set is treated like a missing field.
var (
	validPositions = map[string]bool{
		PositionTop: true, PositionBottom: true, PositionLeft: true,
		PositionRight: true, PositionDistributed: true,
	}
	validPlaylistModes = map[string]bool{
		PlaylistRandom: true, PlaylistOrdered: true,
	}
	validAspects = map[string]bool{
		"4:3": true, "16:9": true, "stretch": true,
	}
)
