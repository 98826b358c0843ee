// Copyright 2026 The VideoWall Authors
// SPDX-License-Identifier: Apache-2.0

package telemetry

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

// netModule reports receive/transmit rates per interface, skipping the
// loopback. Rates are the byte delta since the previous call divided
// by 1024, so the displayed figure is KB per refresh interval. An
// interface seen for the first time uses its own reading as the
// previous value and shows a zero rate instead of a spike.
type netModule struct {
	devPath  string
	previous map[string]netCounters
}

type netCounters struct {
	rxBytes uint64
	txBytes uint64
}

func (m *netModule) Name() string { return "net" }

func (m *netModule) Get() string {
	interfaces, counters := readNetDev(m.devPath)
	if len(interfaces) == 0 {
		return Degraded("net")
	}

	if m.previous == nil {
		m.previous = make(map[string]netCounters, len(interfaces))
	}

	tokens := make([]string, 0, len(interfaces))
	for _, name := range interfaces {
		current := counters[name]
		previous, seen := m.previous[name]
		if !seen {
			previous = current
		}
		m.previous[name] = current

		rx := float64(current.rxBytes-previous.rxBytes) / 1024
		tx := float64(current.txBytes-previous.txBytes) / 1024
		tokens = append(tokens, fmt.Sprintf("%s %.1f/%.1f KB/s", name, rx, tx))
	}
	return strings.Join(tokens, ", ")
}

// readNetDev parses a /proc/net/dev-format file. Returns interface
// names in file order (excluding the loopback) and their cumulative
// byte counters. Malformed lines are skipped, not fatal.
func readNetDev(path string) ([]string, map[string]netCounters) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, nil
	}

	var order []string
	counters := make(map[string]netCounters)

	for _, line := range strings.Split(string(data), "\n") {
		name, fields, ok := strings.Cut(line, ":")
		if !ok {
			continue
		}
		name = strings.TrimSpace(name)
		if name == "" || name == "lo" {
			continue
		}

		// bytes packets errs drop fifo frame compressed multicast,
		// first for receive then for transmit.
		values := strings.Fields(fields)
		if len(values) < 9 {
			continue
		}
		rx, errRx := strconv.ParseUint(values[0], 10, 64)
		tx, errTx := strconv.ParseUint(values[8], 10, 64)
		if errRx != nil || errTx != nil {
			continue
		}

		order = append(order, name)
		counters[name] = netCounters{rxBytes: rx, txBytes: tx}
	}
	return order, counters
}
