// Copyright 2026 The VideoWall Authors
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"context"
	"fmt"
	"os"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/spf13/pflag"

	"github.com/videowall-foundation/videowall/cmd/videowall/cli"
	"github.com/videowall-foundation/videowall/lib/config"
	"github.com/videowall-foundation/videowall/lib/control"
)

// controlSocketFlags returns a FlagSet with the shared --socket
// override every daemon-talking command accepts.
func controlSocketFlags(name string, socketPath *string) func() *pflag.FlagSet {
	return func() *pflag.FlagSet {
		flagSet := pflag.NewFlagSet(name, pflag.ContinueOnError)
		flagSet.StringVar(socketPath, "socket", "", "control socket path (default from settings)")
		return flagSet
	}
}

// sendControl sends one request to the running wall and returns its
// status snapshot. Any daemon-side rejection surfaces as an error.
func sendControl(socketOverride string, request control.Request) (*control.Status, error) {
	settings, err := config.Load()
	if err != nil {
		return nil, err
	}
	socketPath := socketOverride
	if socketPath == "" {
		socketPath = settings.Control.Socket
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	response, err := control.Send(ctx, socketPath, request)
	if err != nil {
		return nil, fmt.Errorf("connecting to %s (is the wall running?): %w", socketPath, err)
	}
	if !response.OK {
		return nil, fmt.Errorf("wall rejected request: %s", response.Error)
	}
	return response.Status, nil
}

func statusCommand() *cli.Command {
	var socketPath string
	var asJSON bool
	return &cli.Command{
		Name:    "status",
		Summary: "Query the running wall",
		Usage:   "videowall status [flags]",
		Flags: func() *pflag.FlagSet {
			flagSet := pflag.NewFlagSet("status", pflag.ContinueOnError)
			flagSet.StringVar(&socketPath, "socket", "", "control socket path (default from settings)")
			flagSet.BoolVar(&asJSON, "json", false, "output as JSON")
			return flagSet
		},
		Examples: []cli.Example{
			{Command: "videowall status"},
			{Command: "videowall status --json"},
		},
		Run: func(args []string) error {
			status, err := sendControl(socketPath, control.Request{Verb: control.VerbStatus})
			if err != nil {
				return err
			}
			if asJSON {
				return cli.WriteJSON(status)
			}
			printStatus(status)
			return nil
		},
	}
}

func printStatus(status *control.Status) {
	hud := "hidden"
	if status.HUDEnabled {
		hud = "visible"
	}

	tw := tabwriter.NewWriter(os.Stdout, 2, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "Profile:\t%s (%s)\n", status.ProfileName, status.ProfileID)
	fmt.Fprintf(tw, "Fingerprint:\t%s\n", status.Fingerprint)
	fmt.Fprintf(tw, "HUD:\t%s (%s)\n", hud, formatList(status.Modules))
	fmt.Fprintf(tw, "Effects:\t%s\n", formatList(status.Effects))
	fmt.Fprintf(tw, "Messages:\t%d loaded\n", status.Messages)
	fmt.Fprintf(tw, "Videos:\t%d\n", status.Videos)
	fmt.Fprintf(tw, "Uptime:\t%s\n", time.Duration(status.UptimeSecs)*time.Second)
	tw.Flush()
}

func formatList(items []string) string {
	if len(items) == 0 {
		return "none"
	}
	return strings.Join(items, ", ")
}

func toggleCommand() *cli.Command {
	var socketPath string
	return &cli.Command{
		Name:    "toggle",
		Summary: "Toggle the HUD on the running wall",
		Usage:   "videowall toggle [flags]",
		Flags:   controlSocketFlags("toggle", &socketPath),
		Run: func(args []string) error {
			status, err := sendControl(socketPath, control.Request{Verb: control.VerbToggle})
			if err != nil {
				return err
			}
			if status.HUDEnabled {
				fmt.Println("HUD visible")
			} else {
				fmt.Println("HUD hidden")
			}
			return nil
		},
	}
}

func reloadCommand() *cli.Command {
	var socketPath string
	return &cli.Command{
		Name:    "reload",
		Summary: "Re-resolve the active profile from disk",
		Usage:   "videowall reload [flags]",
		Flags:   controlSocketFlags("reload", &socketPath),
		Run: func(args []string) error {
			status, err := sendControl(socketPath, control.Request{Verb: control.VerbReload})
			if err != nil {
				return err
			}
			fmt.Printf("reloaded %s (%s)\n", status.ProfileName, status.ProfileID)
			return nil
		},
	}
}

func messageCommand() *cli.Command {
	var socketPath string
	return &cli.Command{
		Name:    "message",
		Summary: "Show a rotation message on the wall now",
		Usage:   "videowall message [flags]",
		Flags:   controlSocketFlags("message", &socketPath),
		Run: func(args []string) error {
			status, err := sendControl(socketPath, control.Request{Verb: control.VerbMessage})
			if err != nil {
				return err
			}
			if status.Messages == 0 {
				fmt.Println("no messages loaded; nothing shown")
				return nil
			}
			fmt.Println("message shown")
			return nil
		},
	}
}

func setProfileCommand() *cli.Command {
	var socketPath string
	return &cli.Command{
		Name:    "set-profile",
		Summary: "Switch the running wall to another profile",
		Usage:   "videowall set-profile <id> [flags]",
		Flags:   controlSocketFlags("set-profile", &socketPath),
		Examples: []cli.Example{
			{Command: "videowall set-profile pure_vhs"},
		},
		Run: func(args []string) error {
			if len(args) != 1 {
				return fmt.Errorf("usage: videowall set-profile <id>")
			}
			status, err := sendControl(socketPath, control.Request{
				Verb:    control.VerbSetProfile,
				Profile: args[0],
			})
			if err != nil {
				return err
			}
			fmt.Printf("switched to %s (%s)\n", status.ProfileName, status.ProfileID)
			return nil
		},
	}
}
