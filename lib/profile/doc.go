// Copyright 2026 The VideoWall Authors
// SPDX-License-Identifier: Apache-2.0

// Package profile defines the configuration bundle governing one
// playback session — active effects, HUD layout, message rotation,
// playlist sources — and the lenient resolver that extracts it from an
// operator-edited JSON file.
//
// Resolution never fails. Profiles are hand-written and hot-reloaded
// mid-session; a typo must degrade one field to its default, not take
// the wall down. Every field is extracted independently from the
// parsed document: a missing or wrong-typed field falls back to its
// own default without affecting its siblings, an unreadable file
// yields the all-defaults profile, and comments and trailing commas
// are tolerated. The one thing a profile file can never do is produce
// an error.
package profile
