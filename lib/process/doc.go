// Copyright 2026 The VideoWall Authors
// SPDX-License-Identifier: Apache-2.0

// Package process provides binary entrypoint helpers for VideoWall
// binaries. It centralizes the one legitimate raw-stderr pattern that
// exists before the structured logger is initialized: fatal error
// reporting from main() when run() returns an error.
//
// Everything after logger initialization goes through log/slog; the
// overlay core itself never terminates the process (degraded output and
// defaults are always preferred over exit).
package process
