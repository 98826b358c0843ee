// Copyright 2026 The VideoWall Authors
// SPDX-License-Identifier: Apache-2.0

package telemetry

import (
	"os"
	"path/filepath"
	"testing"
)

func writeUptime(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "uptime")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestUptimeFloorsToMinutes(t *testing.T) {
	tests := []struct {
		content string
		want    string
	}{
		// 1d 1h 2m 5s: seconds are dropped, not rounded.
		{"90125.53 180250.10\n", "uptime 1d 1h 2m"},
		{"59.9 100.0\n", "uptime 0d 0h 0m"},
		{"86400.0 90000.0\n", "uptime 1d 0h 0m"},
		{"3725.0 4000.0\n", "uptime 0d 1h 2m"},
	}
	for _, test := range tests {
		module := &uptimeModule{uptimePath: writeUptime(t, test.content)}
		if got := module.Get(); got != test.want {
			t.Errorf("uptime of %q = %q, want %q", test.content, got, test.want)
		}
	}
}

func TestUptimeUnreadableDegrades(t *testing.T) {
	module := &uptimeModule{uptimePath: filepath.Join(t.TempDir(), "missing")}
	if got := module.Get(); got != "uptime N/A" {
		t.Fatalf("Get() = %q, want %q", got, "uptime N/A")
	}
}

func TestUptimeMalformedDegrades(t *testing.T) {
	for _, content := range []string{"", "forever\n", "-5.0 1.0\n"} {
		module := &uptimeModule{uptimePath: writeUptime(t, content)}
		if got := module.Get(); got != "uptime N/A" {
			t.Errorf("uptime of %q = %q, want %q", content, got, "uptime N/A")
		}
	}
}
