// Copyright 2026 The VideoWall Authors
// SPDX-License-Identifier: Apache-2.0

package telemetry

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

// uptimeModule reports seconds-since-boot decomposed into whole days,
// hours, and minutes. Floor division throughout: 90125 seconds is
// "uptime 1d 1h 2m", the trailing 5 seconds are dropped.
type uptimeModule struct {
	uptimePath string
}

func (m *uptimeModule) Name() string { return "uptime" }

func (m *uptimeModule) Get() string {
	data, err := os.ReadFile(m.uptimePath)
	if err != nil {
		return Degraded("uptime")
	}

	fields := strings.Fields(string(data))
	if len(fields) == 0 {
		return Degraded("uptime")
	}
	seconds, err := strconv.ParseFloat(fields[0], 64)
	if err != nil || seconds < 0 {
		return Degraded("uptime")
	}

	total := int64(seconds)
	days := total / 86400
	hours := (total % 86400) / 3600
	minutes := (total % 3600) / 60
	return fmt.Sprintf("uptime %dd %dh %dm", days, hours, minutes)
}
