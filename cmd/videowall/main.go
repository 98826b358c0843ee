// Copyright 2026 The VideoWall Authors
// SPDX-License-Identifier: Apache-2.0

// The videowall command runs and controls the video wall: an external
// player looping a video library fullscreen, with a telemetry HUD,
// analog video effects, and rotating messages layered on top.
//
// "videowall run" starts the wall and stays in the foreground;
// everything else either inspects local configuration or talks to a
// running wall over its control socket.
package main

import (
	"os"

	"github.com/videowall-foundation/videowall/lib/process"
)

func main() {
	if err := run(); err != nil {
		// Commands that print their own output return an ExitError
		// with the desired exit code. Don't print a redundant
		// "error:" line for those.
		if coder, ok := err.(interface{ ExitCode() int }); ok {
			os.Exit(coder.ExitCode())
		}
		process.Fatal(err)
	}
}

func run() error {
	return rootCommand().Execute(os.Args[1:])
}
