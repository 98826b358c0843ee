// Copyright 2026 The VideoWall Authors
// SPDX-License-Identifier: Apache-2.0

// Package controller owns the daemon's runtime state and event loop.
//
// Everything that can change state — player events, hotkeys, timer
// callbacks, control socket commands, profile file changes — funnels
// into one goroutine. The loop owns all mutable state outright: there
// are no locks, and a command observes every prior command's effects.
// Work arriving from other goroutines (the scheduler, the control
// server) is posted to the loop's task queue and executed in arrival
// order.
//
// Profile-derived state lives in a session value that is built
// complete and swapped as a unit on reload, so concurrent-looking
// operations (a refresh tick racing a reload) still see either the
// old configuration or the new one in its entirety, never a blend.
package controller
