// Copyright 2026 The VideoWall Authors
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/spf13/pflag"

	"github.com/videowall-foundation/videowall/cmd/videowall/cli"
	"github.com/videowall-foundation/videowall/lib/config"
	"github.com/videowall-foundation/videowall/lib/content"
)

func setupCommand() *cli.Command {
	var withSystemd bool
	return &cli.Command{
		Name:    "setup",
		Summary: "Install default profiles, messages, and presets",
		Usage:   "videowall setup [flags]",
		Description: `Create the configuration tree and install the embedded defaults:
starter profiles, the default message file, filter preset notes, and
shader sources. Files you have edited are never overwritten.`,
		Flags: func() *pflag.FlagSet {
			flagSet := pflag.NewFlagSet("setup", pflag.ContinueOnError)
			flagSet.BoolVar(&withSystemd, "systemd", false, "also install the systemd user unit")
			return flagSet
		},
		Examples: []cli.Example{
			{Command: "videowall setup"},
			{
				Description: "Install and run the wall as a user service",
				Command:     "videowall setup --systemd",
			},
		},
		Run: func(args []string) error {
			return runSetup(withSystemd)
		},
	}
}

func runSetup(withSystemd bool) error {
	settings, err := config.Load()
	if err != nil {
		return err
	}
	if err := settings.Validate(); err != nil {
		return err
	}
	logger := cli.NewCommandLogger(settings.SlogLevel()).With("command", "setup")

	if err := settings.EnsurePaths(); err != nil {
		return err
	}
	if err := content.Extract(logger, settings.Paths.Profiles, settings.Paths.Messages); err != nil {
		return err
	}
	if err := content.ExtractExtras(logger, settings.Paths.Root); err != nil {
		return err
	}
	fmt.Printf("configuration ready in %s\n", settings.Paths.Root)

	if withSystemd {
		if err := installUserUnit(logger); err != nil {
			return err
		}
	}

	fmt.Println("start the wall with: videowall run")
	return nil
}

// installUserUnit writes the videowall.service user unit, comparing an
// existing installed unit against the shipped content rather than
// overwriting: an operator-edited unit wins until removed.
func installUserUnit(logger *slog.Logger) error {
	home, err := os.UserHomeDir()
	if err != nil {
		return fmt.Errorf("resolving home directory: %w", err)
	}
	unitDir := filepath.Join(home, ".config", "systemd", "user")
	if err := os.MkdirAll(unitDir, 0o755); err != nil {
		return fmt.Errorf("creating %s: %w", unitDir, err)
	}

	target := filepath.Join(unitDir, "videowall.service")
	canonical := content.ServiceUnit()

	existing, err := os.ReadFile(target)
	switch {
	case err == nil && string(existing) == canonical:
		fmt.Printf("systemd unit up to date: %s\n", target)
	case err == nil:
		logger.Warn("installed unit differs from the shipped version, keeping yours", "path", target)
		fmt.Printf("systemd unit differs from the shipped version; remove %s and re-run setup to replace it\n", target)
	case os.IsNotExist(err):
		if err := os.WriteFile(target, []byte(canonical), 0o644); err != nil {
			return fmt.Errorf("installing %s: %w", target, err)
		}
		fmt.Printf("systemd unit installed: %s\n", target)
	default:
		return fmt.Errorf("reading %s: %w", target, err)
	}

	fmt.Println("enable with: systemctl --user enable --now videowall")
	return nil
}
