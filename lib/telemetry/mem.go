// Copyright 2026 The VideoWall Authors
// SPDX-License-Identifier: Apache-2.0

package telemetry

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

// memModule reports used memory percent from the kernel's meminfo
// counters: (MemTotal - MemAvailable) / MemTotal. MemAvailable is the
// kernel's own estimate of allocatable memory, which counts
// reclaimable cache correctly where free/used arithmetic does not.
type memModule struct {
	meminfoPath string
}

func (m *memModule) Name() string { return "mem" }

func (m *memModule) Get() string {
	total, available, ok := readMeminfo(m.meminfoPath)
	if !ok || total == 0 {
		return Degraded("mem")
	}
	used := float64(total-available) / float64(total) * 100
	return fmt.Sprintf("mem %.1f%%", used)
}

// readMeminfo extracts the MemTotal and MemAvailable values (in kB)
// from a /proc/meminfo-format file. ok is false unless both fields
// are present and parse.
func readMeminfo(path string) (total, available uint64, ok bool) {
	data, err := os.ReadFile(path)
	if err != nil {
		return 0, 0, false
	}

	var haveTotal, haveAvailable bool
	for _, line := range strings.Split(string(data), "\n") {
		fields := strings.Fields(line)
		if len(fields) < 2 {
			continue
		}
		value, err := strconv.ParseUint(fields[1], 10, 64)
		if err != nil {
			continue
		}
		switch fields[0] {
		case "MemTotal:":
			total, haveTotal = value, true
		case "MemAvailable:":
			available, haveAvailable = value, true
		}
		if haveTotal && haveAvailable {
			break
		}
	}
	return total, available, haveTotal && haveAvailable
}
