// Copyright 2026 The VideoWall Authors
// SPDX-License-Identifier: Apache-2.0

package control

import (
	"errors"
	"fmt"
	"log/slog"
	"net"
	"os"
	"time"

	"github.com/videowall-foundation/videowall/lib/codec"
)

// connTimeout bounds one request/response exchange. A client that
// dials and goes silent must not pin a goroutine forever.
const connTimeout = 5 * time.Second

// Server accepts control connections and dispatches requests to a
// handler.
type Server struct {
	logger   *slog.Logger
	listener net.Listener
	handle   func(Request) Response
}

// NewServer listens on socketPath and serves control requests through
// handle. A stale socket file from a crashed daemon is replaced. The
// socket is owner-only: control of the wall is control of the screen.
func NewServer(logger *slog.Logger, socketPath string, handle func(Request) Response) (*Server, error) {
	if err := os.Remove(socketPath); err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("removing stale control socket %s: %w", socketPath, err)
	}

	listener, err := net.Listen("unix", socketPath)
	if err != nil {
		return nil, fmt.Errorf("listening on control socket %s: %w", socketPath, err)
	}
	if err := os.Chmod(socketPath, 0o600); err != nil {
		listener.Close()
		return nil, fmt.Errorf("restricting control socket %s: %w", socketPath, err)
	}

	server := &Server{logger: logger, listener: listener, handle: handle}
	go server.acceptLoop()

	logger.Info("control socket ready", "path", socketPath)
	return server, nil
}

func (s *Server) acceptLoop() {
	for {
		conn, err := s.listener.Accept()
		if err != nil {
			if !errors.Is(err, net.ErrClosed) {
				s.logger.Error("control accept failed", "error", err)
			}
			return
		}
		go s.serveConn(conn)
	}
}

// serveConn handles one request/response exchange and closes the
// connection.
func (s *Server) serveConn(conn net.Conn) {
	defer conn.Close()
	conn.SetDeadline(time.Now().Add(connTimeout))

	var request Request
	if err := codec.NewDecoder(conn).Decode(&request); err != nil {
		s.logger.Warn("discarding malformed control request", "error", err)
		return
	}

	response := s.handle(request)
	if err := codec.NewEncoder(conn).Encode(response); err != nil {
		s.logger.Warn("writing control response failed", "verb", request.Verb, "error", err)
	}
}

// Close stops accepting connections and removes the socket file.
func (s *Server) Close() error {
	return s.listener.Close()
}
