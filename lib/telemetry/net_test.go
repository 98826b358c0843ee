// Copyright 2026 The VideoWall Authors
// SPDX-License-Identifier: Apache-2.0

package telemetry

import (
	"os"
	"path/filepath"
	"testing"
)

const netDevHeader = `Inter-|   Receive                                                |  Transmit
 face |bytes    packets errs drop fifo frame compressed multicast|bytes    packets errs drop fifo colls carrier compressed
`

func writeNetDev(t *testing.T, path, body string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(netDevHeader+body), 0o644); err != nil {
		t.Fatal(err)
	}
}

func TestNetFirstSampleIsZeroRate(t *testing.T) {
	devPath := filepath.Join(t.TempDir(), "dev")
	writeNetDev(t, devPath, `    lo: 9999999 100 0 0 0 0 0 0 9999999 100 0 0 0 0 0 0
  eth0: 1048576 500 0 0 0 0 0 0  524288 250 0 0 0 0 0 0
`)

	module := &netModule{devPath: devPath}
	if got := module.Get(); got != "eth0 0.0/0.0 KB/s" {
		t.Fatalf("first sample = %q, want %q", got, "eth0 0.0/0.0 KB/s")
	}
}

func TestNetDeltaPerInterfaceInFileOrder(t *testing.T) {
	devPath := filepath.Join(t.TempDir(), "dev")
	module := &netModule{devPath: devPath}

	writeNetDev(t, devPath, `  eth0: 0 0 0 0 0 0 0 0 0 0 0 0 0 0 0 0
 wlan0: 1024 1 0 0 0 0 0 0 2048 2 0 0 0 0 0 0
`)
	module.Get()

	// eth0 gains 2048 rx / 1024 tx bytes; wlan0 gains 512 rx and
	// nothing tx.
	writeNetDev(t, devPath, `  eth0: 2048 2 0 0 0 0 0 0 1024 1 0 0 0 0 0 0
 wlan0: 1536 2 0 0 0 0 0 0 2048 2 0 0 0 0 0 0
`)
	want := "eth0 2.0/1.0 KB/s, wlan0 0.5/0.0 KB/s"
	if got := module.Get(); got != want {
		t.Fatalf("delta sample = %q, want %q", got, want)
	}
}

func TestNetSkipsLoopback(t *testing.T) {
	devPath := filepath.Join(t.TempDir(), "dev")
	writeNetDev(t, devPath, "    lo: 1 0 0 0 0 0 0 0 1 0 0 0 0 0 0 0\n")

	module := &netModule{devPath: devPath}
	if got := module.Get(); got != "net N/A" {
		t.Fatalf("loopback-only sample = %q, want %q", got, "net N/A")
	}
}

func TestNetUnreadableDegrades(t *testing.T) {
	module := &netModule{devPath: filepath.Join(t.TempDir(), "missing")}
	if got := module.Get(); got != "net N/A" {
		t.Fatalf("unreadable source = %q, want %q", got, "net N/A")
	}
}

func TestNetNewInterfaceAppearsWithZeroRate(t *testing.T) {
	devPath := filepath.Join(t.TempDir(), "dev")
	module := &netModule{devPath: devPath}

	writeNetDev(t, devPath, "  eth0: 1024 1 0 0 0 0 0 0 1024 1 0 0 0 0 0 0\n")
	module.Get()

	writeNetDev(t, devPath, `  eth0: 2048 2 0 0 0 0 0 0 1024 1 0 0 0 0 0 0
 wlan0: 5000 5 0 0 0 0 0 0 6000 6 0 0 0 0 0 0
`)
	want := "eth0 1.0/0.0 KB/s, wlan0 0.0/0.0 KB/s"
	if got := module.Get(); got != want {
		t.Fatalf("sample with new interface = %q, want %q", got, want)
	}
}
