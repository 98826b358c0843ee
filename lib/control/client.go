// Copyright 2026 The VideoWall Authors
// SPDX-License-Identifier: Apache-2.0

package control

import (
	"context"
	"fmt"
	"net"
	"time"

	"github.com/videowall-foundation/videowall/lib/codec"
)

// Send dials the control socket, performs one request/response
// exchange, and closes the connection. The deadline comes from ctx
// when set, otherwise a 5 second default applies.
func Send(ctx context.Context, socketPath string, request Request) (*Response, error) {
	var dialer net.Dialer
	conn, err := dialer.DialContext(ctx, "unix", socketPath)
	if err != nil {
		return nil, fmt.Errorf("connecting to control socket %s (is the daemon running?): %w", socketPath, err)
	}
	defer conn.Close()

	deadline, ok := ctx.Deadline()
	if !ok {
		deadline = time.Now().Add(connTimeout)
	}
	conn.SetDeadline(deadline)

	if err := codec.NewEncoder(conn).Encode(request); err != nil {
		return nil, fmt.Errorf("sending %s request: %w", request.Verb, err)
	}

	var response Response
	if err := codec.NewDecoder(conn).Decode(&response); err != nil {
		return nil, fmt.Errorf("reading %s response: %w", request.Verb, err)
	}
	return &response, nil
}
