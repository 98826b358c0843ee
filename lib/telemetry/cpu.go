// Copyright 2026 The VideoWall Authors
// SPDX-License-Identifier: Apache-2.0

package telemetry

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

// cpuModule reports aggregate CPU usage as a delta between successive
// readings of the kernel's cumulative time counters. The first call
// has no previous reading and reports 0.0%; a reading that fails, or a
// non-positive counter delta (counter reset), reports the degraded
// form.
type cpuModule struct {
	statPath string
	previous *cpuReading
}

func (m *cpuModule) Name() string { return "cpu" }

func (m *cpuModule) Get() string {
	current := readCPUStat(m.statPath)
	if current == nil {
		return Degraded("cpu")
	}

	previous := m.previous
	m.previous = current

	if previous == nil {
		return "cpu 0.0%"
	}

	deltaBusy := float64(current.busy - previous.busy)
	deltaIdle := float64(current.idle - previous.idle)
	deltaTotal := deltaBusy + deltaIdle
	if deltaTotal <= 0 {
		return Degraded("cpu")
	}
	return fmt.Sprintf("cpu %.1f%%", deltaBusy/deltaTotal*100)
}

// cpuReading holds cumulative jiffies split into busy and idle time.
// Busy is user+nice+system+irq+softirq+steal; idle is idle+iowait
// (time waiting on disk is not time the CPU was working).
type cpuReading struct {
	busy uint64
	idle uint64
}

// readCPUStat parses the aggregate "cpu" line of a /proc/stat-format
// file. Returns nil if the file or the line is unreadable.
func readCPUStat(path string) *cpuReading {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil
	}

	for _, line := range strings.Split(string(data), "\n") {
		fields := strings.Fields(line)
		if len(fields) < 9 || fields[0] != "cpu" {
			continue
		}

		// cpu user nice system idle iowait irq softirq steal ...
		values := make([]uint64, 8)
		for i := range values {
			value, err := strconv.ParseUint(fields[i+1], 10, 64)
			if err != nil {
				return nil
			}
			values[i] = value
		}

		user, nice, system, idle := values[0], values[1], values[2], values[3]
		iowait, irq, softirq, steal := values[4], values[5], values[6], values[7]
		return &cpuReading{
			busy: user + nice + system + irq + softirq + steal,
			idle: idle + iowait,
		}
	}
	return nil
}
