// Copyright 2026 The VideoWall Authors
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/exec"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/spf13/pflag"

	"github.com/videowall-foundation/videowall/cmd/videowall/cli"
	"github.com/videowall-foundation/videowall/lib/clock"
	"github.com/videowall-foundation/videowall/lib/config"
	"github.com/videowall-foundation/videowall/lib/control"
	"github.com/videowall-foundation/videowall/lib/controller"
	"github.com/videowall-foundation/videowall/lib/player"
	"github.com/videowall-foundation/videowall/lib/playlist"
	"github.com/videowall-foundation/videowall/lib/profile"
	"github.com/videowall-foundation/videowall/lib/telemetry"
)

func runCommand() *cli.Command {
	var (
		profileID string
		noWatch   bool
	)
	return &cli.Command{
		Name:    "run",
		Summary: "Start the wall and stay in the foreground",
		Usage:   "videowall run [--profile <id>] [--no-watch]",
		Description: `Start the video wall.

Launches the player over the profile's video directories, connects to
its IPC socket, applies the profile (HUD, effects, fonts, aspect), and
serves the control socket until interrupted. Exits non-zero when the
player dies, so a service manager restarts the wall.`,
		Flags: func() *pflag.FlagSet {
			flagSet := pflag.NewFlagSet("run", pflag.ContinueOnError)
			flagSet.StringVar(&profileID, "profile", "", "profile id (default: settings default_profile)")
			flagSet.BoolVar(&noWatch, "no-watch", false, "do not watch the profile file for edits")
			return flagSet
		},
		Examples: []cli.Example{
			{Command: "videowall run"},
			{Command: "videowall run --profile pure_vhs"},
		},
		Run: func(args []string) error {
			return runWall(profileID, noWatch)
		},
	}
}

func runWall(profileID string, noWatch bool) error {
	settings, err := config.Load()
	if err != nil {
		return err
	}
	if err := settings.Validate(); err != nil {
		return err
	}
	if noWatch {
		settings.Watch = false
	}

	logger := cli.NewCommandLogger(settings.SlogLevel()).With("command", "run")

	if err := settings.EnsurePaths(); err != nil {
		return err
	}

	if profileID == "" {
		profileID = settings.DefaultProfile
	}
	available, err := profile.List(settings.Paths.Profiles)
	if err != nil {
		return fmt.Errorf("listing profiles: %w", err)
	}
	if len(available) == 0 {
		return fmt.Errorf("no profiles in %s; run 'videowall setup' to install the defaults",
			settings.Paths.Profiles)
	}
	entry, err := profile.Find(settings.Paths.Profiles, profileID)
	if err != nil {
		return err
	}

	resolver := profile.NewResolver(logger)
	resolved := resolver.Resolve(entry.Path)

	builder := playlist.NewBuilder(logger)
	videos, err := builder.Build(resolved.VideoDirs, resolved.PlaylistMode)
	if err != nil {
		return fmt.Errorf("building playlist for profile %q: %w", entry.ID, err)
	}
	playlistPath := filepath.Join(settings.Paths.State, "playlist.m3u")
	if err := playlist.WriteM3U(playlistPath, videos); err != nil {
		return err
	}
	logger.Info("playlist written", "path", playlistPath, "videos", len(videos))

	binary, err := settings.PlayerPath()
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	playerCmd, err := player.Launch(logger, player.LaunchSpec{
		Binary:       binary,
		Socket:       settings.Player.Socket,
		PlaylistPath: playlistPath,
		ExtraArgs:    settings.Player.ExtraArgs,
	})
	if err != nil {
		return err
	}

	if err := player.WaitForSocket(ctx, settings.Player.Socket, settings.PlayerStartupTimeout()); err != nil {
		terminatePlayer(logger, playerCmd)
		return err
	}
	mpv, err := player.Dial(logger, settings.Player.Socket)
	if err != nil {
		terminatePlayer(logger, playerCmd)
		return err
	}

	ctrl := controller.New(controller.Options{
		Logger:       logger,
		Clock:        clock.Real(),
		Player:       mpv,
		Registry:     telemetry.NewRegistry(logger, clock.Real()),
		Resolver:     resolver,
		Builder:      builder,
		Settings:     settings,
		Entry:        entry,
		PlaylistPath: playlistPath,
		Videos:       len(videos),
	})

	server, err := control.NewServer(logger, settings.Control.Socket, ctrl.HandleControl)
	if err != nil {
		mpv.Close()
		terminatePlayer(logger, playerCmd)
		return err
	}
	defer server.Close()

	runErr := ctrl.Run(ctx)

	mpv.Close()
	terminatePlayer(logger, playerCmd)
	logger.Info("wall stopped")
	return runErr
}

// terminatePlayer asks the player to exit and reaps it, escalating to
// SIGKILL if it lingers. Safe when the player already died — the
// signal fails silently and Wait returns immediately.
func terminatePlayer(logger *slog.Logger, cmd *exec.Cmd) {
	if cmd.Process == nil {
		return
	}
	_ = cmd.Process.Signal(syscall.SIGTERM)

	done := make(chan error, 1)
	go func() { done <- cmd.Wait() }()
	select {
	case <-done:
	case <-time.After(5 * time.Second):
		logger.Warn("player did not exit, killing", "pid", cmd.Process.Pid)
		_ = cmd.Process.Kill()
		<-done
	}
}
