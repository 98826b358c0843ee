// Copyright 2026 The VideoWall Authors
// SPDX-License-Identifier: Apache-2.0

package control

// Control verbs. These are the wire values; the CLI maps subcommands
// onto them one to one.
const (
	// VerbStatus reports the daemon's current state.
	VerbStatus = "status"

	// VerbToggle flips HUD visibility.
	VerbToggle = "toggle"

	// VerbReload re-resolves the active profile from disk and applies
	// it.
	VerbReload = "reload"

	// VerbMessage displays one rotation message immediately.
	VerbMessage = "message"

	// VerbSetProfile switches to a different profile by id.
	VerbSetProfile = "set-profile"
)

// Request is one control command.
type Request struct {
	Verb string `cbor:"verb"`

	// Profile is the profile id for VerbSetProfile.
	Profile string `cbor:"profile,omitempty"`
}

// Response answers one Request. Every successful response carries the
// post-command status, so the CLI can report the new state without a
// second round trip.
type Response struct {
	OK     bool    `cbor:"ok"`
	Error  string  `cbor:"error,omitempty"`
	Status *Status `cbor:"status,omitempty"`
}

// Status is the daemon state report. It travels over the control
// socket as CBOR and is printed by the CLI as JSON, so it carries json
// tags per the codec tag rules.
type Status struct {
	ProfileID   string   `json:"profile_id"`
	ProfileName string   `json:"profile_name"`
	Fingerprint string   `json:"fingerprint"`
	HUDEnabled  bool     `json:"hud_enabled"`
	Modules     []string `json:"modules"`
	Effects     []string `json:"effects"`
	Messages    int      `json:"messages"`
	Videos      int      `json:"videos"`
	UptimeSecs  int64    `json:"uptime_seconds"`
}
