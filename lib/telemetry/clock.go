// Copyright 2026 The VideoWall Authors
// SPDX-License-Identifier: Apache-2.0

package telemetry

import "github.com/videowall-foundation/videowall/lib/clock"

// clockModule reports local wall time as HH:MM:SS. It reads through
// the injected clock so HUD snapshots are reproducible in tests.
type clockModule struct {
	clock clock.Clock
}

func (m *clockModule) Name() string { return "clock" }

func (m *clockModule) Get() string {
	return m.clock.Now().Local().Format("15:04:05")
}
