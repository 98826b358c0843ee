// Copyright 2026 The VideoWall Authors
// SPDX-License-Identifier: Apache-2.0

package telemetry

import (
	"os"
	"path/filepath"
	"testing"
)

func writeMeminfo(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "meminfo")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestMemUsedPercent(t *testing.T) {
	path := writeMeminfo(t, `MemTotal:       1000 kB
MemFree:         100 kB
MemAvailable:    250 kB
Buffers:          50 kB
`)
	module := &memModule{meminfoPath: path}
	if got := module.Get(); got != "mem 75.0%" {
		t.Fatalf("Get() = %q, want %q", got, "mem 75.0%")
	}
}

func TestMemMissingAvailableDegrades(t *testing.T) {
	path := writeMeminfo(t, "MemTotal:       1000 kB\nMemFree:         100 kB\n")
	module := &memModule{meminfoPath: path}
	if got := module.Get(); got != "mem N/A" {
		t.Fatalf("Get() = %q, want %q", got, "mem N/A")
	}
}

func TestMemMissingTotalDegrades(t *testing.T) {
	path := writeMeminfo(t, "MemAvailable:    250 kB\n")
	module := &memModule{meminfoPath: path}
	if got := module.Get(); got != "mem N/A" {
		t.Fatalf("Get() = %q, want %q", got, "mem N/A")
	}
}

func TestMemUnreadableDegrades(t *testing.T) {
	module := &memModule{meminfoPath: filepath.Join(t.TempDir(), "missing")}
	if got := module.Get(); got != "mem N/A" {
		t.Fatalf("Get() = %q, want %q", got, "mem N/A")
	}
}

func TestMemZeroTotalDegrades(t *testing.T) {
	path := writeMeminfo(t, "MemTotal:       0 kB\nMemAvailable:    0 kB\n")
	module := &memModule{meminfoPath: path}
	if got := module.Get(); got != "mem N/A" {
		t.Fatalf("Get() = %q, want %q", got, "mem N/A")
	}
}
