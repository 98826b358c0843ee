// Copyright 2026 The VideoWall Authors
// SPDX-License-Identifier: Apache-2.0

// Package control implements the daemon's local control socket.
//
// The daemon listens on a Unix socket for single-shot commands from
// the CLI: query status, toggle the HUD, reload the profile, show a
// message, switch profiles. Each connection carries exactly one CBOR
// request and one CBOR response; the CLI dials per command.
//
// Requests are not handled on the accepting goroutine. The server
// hands each request to a handler function supplied by the daemon,
// which posts it onto the controller's event loop and waits for the
// answer, so control commands are serialized with hotkeys and timer
// callbacks.
package control
