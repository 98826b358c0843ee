// Copyright 2026 The VideoWall Authors
// SPDX-License-Identifier: Apache-2.0

package player

import (
	"context"
	"fmt"
	"log/slog"
	"net"
	"os"
	"os/exec"
	"time"
)

// LaunchSpec describes the player process to start.
type LaunchSpec struct {
	// Binary is the resolved player executable path.
	Binary string

	// Socket is where the player should create its IPC socket.
	Socket string

	// PlaylistPath is the M3U file the player loops over.
	PlaylistPath string

	// ExtraArgs come from settings and are appended after the
	// generated arguments, so operators can override any of them.
	ExtraArgs []string
}

// BuildArgs returns the player's argument list. The wall is a
// fullscreen loop with no terminal and no on-screen controller; idle
// keeps the player alive across playlist edge cases instead of
// exiting to a dead screen.
func BuildArgs(spec LaunchSpec) []string {
	args := []string{
		"--input-ipc-server=" + spec.Socket,
		"--playlist=" + spec.PlaylistPath,
		"--loop-playlist=inf",
		"--fullscreen",
		"--force-window=yes",
		"--no-terminal",
		"--idle=yes",
		"--no-osc",
	}
	return append(args, spec.ExtraArgs...)
}

// Launch starts the player process. A stale socket file from a
// previous run is removed first so the new player can bind it. The
// caller owns the returned process and must Wait on it.
func Launch(logger *slog.Logger, spec LaunchSpec) (*exec.Cmd, error) {
	if err := os.Remove(spec.Socket); err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("removing stale player socket %s: %w", spec.Socket, err)
	}

	cmd := exec.Command(spec.Binary, BuildArgs(spec)...)
	if err := cmd.Start(); err != nil {
		return nil, fmt.Errorf("starting player %s: %w", spec.Binary, err)
	}

	logger.Info("player started", "binary", spec.Binary, "pid", cmd.Process.Pid)
	return cmd, nil
}

// WaitForSocket polls until the player's IPC socket accepts
// connections, the timeout elapses, or ctx is cancelled. The player
// creates the socket shortly after startup; polling beats racing it.
func WaitForSocket(ctx context.Context, path string, timeout time.Duration) error {
	deadline := time.Now().Add(timeout)
	for {
		conn, err := net.Dial("unix", path)
		if err == nil {
			conn.Close()
			return nil
		}
		if time.Now().After(deadline) {
			return fmt.Errorf("player socket %s not ready after %v", path, timeout)
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(50 * time.Millisecond):
		}
	}
}
