// Copyright 2026 The VideoWall Authors
// SPDX-License-Identifier: Apache-2.0

// Package telemetry provides the HUD's status modules: small named
// probes that each produce one formatted string from a host resource
// (CPU usage, memory, network rates, uptime, wall clock).
//
// Modules never fail upward. A module that cannot read its source
// reports the degraded form "<name> N/A"; a module that panics is
// caught at the per-module call site in Refresh and reported the same
// way. One broken module never affects another's output — the HUD
// keeps rendering whatever still works.
//
// Modules are looked up by name in a static compile-time table. A
// module may keep private sampling state between calls (the cpu and
// net modules hold previous counter readings for rate computation);
// that state lives for one profile session and is discarded when the
// controller rebuilds the module set on reload.
package telemetry
