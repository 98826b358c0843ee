// Copyright 2026 The VideoWall Authors
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"fmt"

	"github.com/videowall-foundation/videowall/cmd/videowall/cli"
	"github.com/videowall-foundation/videowall/lib/version"
)

// rootCommand builds the videowall command tree.
func rootCommand() *cli.Command {
	return &cli.Command{
		Name: "videowall",
		Description: `VideoWall: ambient video wall with a live telemetry HUD.

Loops a video library fullscreen through mpv and layers system
telemetry, analog effects, and rotating messages on top. Appearance is
driven by hot-reloadable profiles.`,
		Subcommands: []*cli.Command{
			runCommand(),
			profileCommand(),
			effectsCommand(),
			statusCommand(),
			toggleCommand(),
			reloadCommand(),
			messageCommand(),
			setProfileCommand(),
			setupCommand(),
			{
				Name:    "version",
				Summary: "Print version information",
				Run: func(args []string) error {
					fmt.Printf("videowall %s\n", version.Full())
					return nil
				},
			},
		},
		Examples: []cli.Example{
			{
				Description: "Install default profiles and messages, then start",
				Command:     "videowall setup && videowall run",
			},
			{
				Description: "Start with a specific profile",
				Command:     "videowall run --profile pure_vhs",
			},
			{
				Description: "See what the wall is doing",
				Command:     "videowall status",
			},
			{
				Description: "Hide or show the HUD on a running wall",
				Command:     "videowall toggle",
			},
			{
				Description: "Switch the running wall to another profile",
				Command:     "videowall set-profile cyberpunk_hud",
			},
			{
				Description: "Inspect a profile as the daemon would resolve it",
				Command:     "videowall profile show cyberpunk_hud",
			},
		},
	}
}
