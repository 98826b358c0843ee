// Copyright 2026 The VideoWall Authors
// SPDX-License-Identifier: Apache-2.0

package player

import (
	"context"
	"io"
	"log/slog"
	"net"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestBuildArgs(t *testing.T) {
	spec := LaunchSpec{
		Binary:       "mpv",
		Socket:       "/run/videowall/mpv.sock",
		PlaylistPath: "/cache/playlist.m3u",
		ExtraArgs:    []string{"--no-fullscreen", "--volume=0"},
	}

	args := BuildArgs(spec)

	for _, want := range []string{
		"--input-ipc-server=/run/videowall/mpv.sock",
		"--playlist=/cache/playlist.m3u",
		"--loop-playlist=inf",
		"--fullscreen",
	} {
		found := false
		for _, arg := range args {
			if arg == want {
				found = true
				break
			}
		}
		if !found {
			t.Errorf("args missing %q: %v", want, args)
		}
	}

	// Extra args come last so they can override generated ones.
	if args[len(args)-2] != "--no-fullscreen" || args[len(args)-1] != "--volume=0" {
		t.Errorf("extra args not appended last: %v", args)
	}
}

func TestLaunchMissingBinary(t *testing.T) {
	dir := t.TempDir()
	spec := LaunchSpec{
		Binary:       filepath.Join(dir, "no-such-player"),
		Socket:       filepath.Join(dir, "mpv.sock"),
		PlaylistPath: filepath.Join(dir, "playlist.m3u"),
	}

	if _, err := Launch(slog.New(slog.NewTextHandler(io.Discard, nil)), spec); err == nil {
		t.Fatal("expected error for missing binary")
	}
}

func TestLaunchRemovesStaleSocket(t *testing.T) {
	dir := t.TempDir()
	socketPath := filepath.Join(dir, "mpv.sock")
	if err := os.WriteFile(socketPath, []byte("stale"), 0o644); err != nil {
		t.Fatal(err)
	}

	spec := LaunchSpec{
		Binary:       "true",
		Socket:       socketPath,
		PlaylistPath: filepath.Join(dir, "playlist.m3u"),
	}
	cmd, err := Launch(slog.New(slog.NewTextHandler(io.Discard, nil)), spec)
	if err != nil {
		t.Fatalf("Launch: %v", err)
	}
	cmd.Wait()

	if _, err := os.Stat(socketPath); !os.IsNotExist(err) {
		t.Error("stale socket file not removed")
	}
}

func TestWaitForSocketReady(t *testing.T) {
	socketPath := filepath.Join(t.TempDir(), "mpv.sock")
	listener, err := net.Listen("unix", socketPath)
	if err != nil {
		t.Fatal(err)
	}
	defer listener.Close()

	if err := WaitForSocket(context.Background(), socketPath, time.Second); err != nil {
		t.Fatalf("WaitForSocket: %v", err)
	}
}

func TestWaitForSocketTimeout(t *testing.T) {
	socketPath := filepath.Join(t.TempDir(), "absent.sock")

	start := time.Now()
	err := WaitForSocket(context.Background(), socketPath, 200*time.Millisecond)
	if err == nil {
		t.Fatal("expected timeout error")
	}
	if !strings.Contains(err.Error(), "not ready") {
		t.Fatalf("unexpected error: %v", err)
	}
	if elapsed := time.Since(start); elapsed > 5*time.Second {
		t.Fatalf("timeout took %v", elapsed)
	}
}

func TestWaitForSocketContextCancel(t *testing.T) {
	socketPath := filepath.Join(t.TempDir(), "absent.sock")
	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		time.Sleep(20 * time.Millisecond)
		cancel()
	}()

	if err := WaitForSocket(ctx, socketPath, time.Minute); err != context.Canceled {
		t.Fatalf("err = %v, want context.Canceled", err)
	}
}
