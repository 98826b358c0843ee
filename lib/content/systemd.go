// Copyright 2026 The VideoWall Authors
// SPDX-License-Identifier: Apache-2.0

package content

import "embed"

//go:embed systemd/videowall.service
var systemdFiles embed.FS

// ServiceUnit returns the canonical content of the videowall.service
// systemd user unit. "videowall setup --systemd" installs it and
// compares an existing installed unit against this content.
func ServiceUnit() string {
	data, err := systemdFiles.ReadFile("systemd/videowall.service")
	if err != nil {
		// Embedded at compile time; a read failure here is a build bug.
		panic("embedded videowall.service missing: " + err.Error())
	}
	return string(data)
}
