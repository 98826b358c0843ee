// Copyright 2026 The VideoWall Authors
// SPDX-License-Identifier: Apache-2.0

// videowall-launcher is the interactive profile picker for the wall.
//
// It lists the profiles from the configured profiles directory in a
// full-screen picker with fuzzy filtering and a live preview of each
// profile's effects, palette, HUD layout, and playlist sources.
// Choosing a profile replaces the launcher process with
// "videowall run --profile <id>", so the terminal session flows
// straight into the running wall with no intermediate process.
//
// Quitting without choosing exits 0. An empty profiles directory
// exits 1 after pointing at "videowall setup".
package main

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/pflag"

	"github.com/videowall-foundation/videowall/cmd/videowall/cli"
	"github.com/videowall-foundation/videowall/lib/config"
	"github.com/videowall-foundation/videowall/lib/process"
	"github.com/videowall-foundation/videowall/lib/profileui"
	"github.com/videowall-foundation/videowall/lib/version"
)

func main() {
	if err := run(); err != nil {
		if coder, ok := err.(interface{ ExitCode() int }); ok {
			os.Exit(coder.ExitCode())
		}
		process.Fatal(err)
	}
}

func run() error {
	var profilesDir string

	flagSet := pflag.NewFlagSet("videowall-launcher", pflag.ContinueOnError)
	flagSet.StringVar(&profilesDir, "profiles", "", "profiles directory (default: from settings)")
	flagSet.BoolP("help", "h", false, "show help")

	// Handle --version before flag parsing to match the other
	// VideoWall binaries.
	if len(os.Args) > 1 && os.Args[1] == "--version" {
		fmt.Printf("videowall-launcher %s\n", version.Full())
		return nil
	}

	if err := flagSet.Parse(os.Args[1:]); err != nil {
		if err == pflag.ErrHelp {
			printHelp(flagSet)
			return nil
		}
		return err
	}

	if help, _ := flagSet.GetBool("help"); help {
		printHelp(flagSet)
		return nil
	}

	if args := flagSet.Args(); len(args) > 0 {
		return fmt.Errorf("unexpected argument: %s", args[0])
	}

	settings, err := config.Load()
	if err != nil {
		return err
	}
	if profilesDir == "" {
		profilesDir = settings.Paths.Profiles
	}

	// Resolver warnings about broken profile fields print before the
	// alternate screen takes over, so they stay readable.
	logger := cli.NewCommandLogger(settings.SlogLevel()).With("command", "launcher")
	items, err := profileui.LoadItems(logger, profilesDir)
	if err != nil {
		return fmt.Errorf("reading profiles from %s: %w", profilesDir, err)
	}
	if len(items) == 0 {
		fmt.Fprintf(os.Stderr, "no profiles found in %s; run 'videowall setup' to install the defaults\n", profilesDir)
		return &cli.ExitError{Code: 1}
	}

	program := tea.NewProgram(profileui.NewModel(items), tea.WithAltScreen())
	final, err := program.Run()
	if err != nil {
		return err
	}

	choice := final.(profileui.Model).Choice()
	if choice == "" {
		return nil
	}

	binary, err := findWallBinary()
	if err != nil {
		return fmt.Errorf("locating the videowall binary: %w", err)
	}
	return launchWall(binary, choice)
}

// execFunction replaces the process image. Overridable for testing —
// the test captures the arguments without actually exec'ing.
var execFunction = syscall.Exec

// launchWall replaces the launcher process with the wall itself. On
// success this never returns.
func launchWall(binary, profileID string) error {
	argv := []string{binary, "run", "--profile", profileID}
	if err := execFunction(binary, argv, os.Environ()); err != nil {
		return fmt.Errorf("exec %s: %w", binary, err)
	}
	return nil
}

// findWallBinary locates the videowall binary: first as a sibling of
// the launcher (the normal install layout), then on PATH.
func findWallBinary() (string, error) {
	if self, err := os.Executable(); err == nil {
		if sibling, ok := siblingWallBinary(self); ok {
			return sibling, nil
		}
	}
	path, err := exec.LookPath("videowall")
	if err != nil {
		return "", fmt.Errorf("videowall not found next to the launcher or on PATH: %w", err)
	}
	return path, nil
}

// siblingWallBinary checks for an executable videowall next to the
// given launcher path.
func siblingWallBinary(selfPath string) (string, bool) {
	sibling := filepath.Join(filepath.Dir(selfPath), "videowall")
	info, err := os.Stat(sibling)
	if err != nil || info.IsDir() || info.Mode()&0111 == 0 {
		return "", false
	}
	return sibling, true
}

func printHelp(flagSet *pflag.FlagSet) {
	fmt.Fprintf(os.Stderr, `VideoWall launcher — interactive profile picker.

Lists the profiles from the profiles directory with a live preview of
each one's effects, palette, HUD layout, and playlist sources. Typing
/ filters the list with fuzzy matching; enter launches the selected
profile by replacing this process with "videowall run".

Usage:
  videowall-launcher [flags]

Examples:
  # Pick from the configured profiles directory
  videowall-launcher

  # Pick from an alternate directory
  videowall-launcher --profiles ~/walls/profiles

Flags:
`)
	flagSet.SetOutput(os.Stderr)
	flagSet.PrintDefaults()
}
