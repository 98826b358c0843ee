// Copyright 2026 The VideoWall Authors
// SPDX-License-Identifier: Apache-2.0

// Package player is the boundary to the external video player.
//
// The daemon never renders video itself: it launches mpv with a
// generated playlist and drives everything else — overlays, filter
// chains, key bindings — over mpv's JSON IPC socket. Requests carry an
// integer request_id that mpv echoes back, so responses are correlated
// to callers while unsolicited events (file loads, key presses) flow
// out on a separate channel.
//
// The controller consumes the [Player] interface rather than the
// concrete [MPV] client, so its tests substitute an in-process fake
// and never need a real player binary.
package player
