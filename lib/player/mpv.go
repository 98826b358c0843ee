// Copyright 2026 The VideoWall Authors
// SPDX-License-Identifier: Apache-2.0

package player

import (
	"bufio"
	"bytes"
	"encoding/json"
	"fmt"
	"log/slog"
	"net"
	"strings"
	"sync"
	"time"
)

// commandTimeout bounds how long a command waits for its response.
// mpv answers in microseconds; hitting this means the player is wedged
// and the caller should treat the connection as dead.
const commandTimeout = 5 * time.Second

// hotkeyPrefix namespaces our key bindings inside mpv's script-message
// bus so bindings from user scripts pass through untouched.
const hotkeyPrefix = "videowall/"

// MPV is a client for mpv's JSON IPC socket.
type MPV struct {
	logger *slog.Logger
	conn   net.Conn

	mu      sync.Mutex
	nextID  int64
	pending map[int64]chan mpvMessage
	closed  bool

	events    chan Event
	done      chan struct{}
	closeOnce sync.Once
}

var _ Player = (*MPV)(nil)

// mpvRequest is one command line sent to the player.
type mpvRequest struct {
	Command   []any `json:"command"`
	RequestID int64 `json:"request_id"`
}

// mpvMessage is one line received from the player: a command response
// when RequestID is set, an event when Event is set.
type mpvMessage struct {
	Error     string          `json:"error,omitempty"`
	Data      json.RawMessage `json:"data,omitempty"`
	RequestID int64           `json:"request_id,omitempty"`
	Event     string          `json:"event,omitempty"`
	Args      []string        `json:"args,omitempty"`
}

// Dial connects to the player's IPC socket and starts the read loop.
func Dial(logger *slog.Logger, socketPath string) (*MPV, error) {
	conn, err := net.Dial("unix", socketPath)
	if err != nil {
		return nil, fmt.Errorf("connecting to player socket %s: %w", socketPath, err)
	}

	m := &MPV{
		logger:  logger,
		conn:    conn,
		pending: make(map[int64]chan mpvMessage),
		events:  make(chan Event, 16),
		done:    make(chan struct{}),
	}
	go m.readLoop()
	return m, nil
}

// readLoop decodes newline-delimited JSON from the socket, routing
// responses to their waiting commands and events to the events
// channel. On connection loss it fails all in-flight commands,
// delivers Disconnected, and closes the events channel.
func (m *MPV) readLoop() {
	scanner := bufio.NewScanner(m.conn)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	for scanner.Scan() {
		line := scanner.Bytes()
		if len(bytes.TrimSpace(line)) == 0 {
			continue
		}

		var message mpvMessage
		if err := json.Unmarshal(line, &message); err != nil {
			m.logger.Warn("discarding malformed player message", "error", err)
			continue
		}

		if message.Event != "" {
			m.handleEvent(message)
			continue
		}
		m.deliver(message)
	}

	m.failPending()

	select {
	case m.events <- Event{Kind: Disconnected}:
	case <-m.done:
	}
	close(m.events)
}

func (m *MPV) handleEvent(message mpvMessage) {
	switch message.Event {
	case "file-loaded":
		m.emit(Event{Kind: MediaLoaded})
	case "client-message":
		if len(message.Args) == 0 {
			return
		}
		name, ok := strings.CutPrefix(message.Args[0], hotkeyPrefix)
		if !ok {
			return
		}
		m.emit(Event{Kind: HotkeyPressed, Hotkey: name})
	}
}

func (m *MPV) emit(event Event) {
	select {
	case m.events <- event:
	case <-m.done:
	}
}

func (m *MPV) deliver(message mpvMessage) {
	m.mu.Lock()
	ch, ok := m.pending[message.RequestID]
	if ok {
		delete(m.pending, message.RequestID)
	}
	m.mu.Unlock()

	if !ok {
		m.logger.Warn("unmatched player response", "request_id", message.RequestID)
		return
	}
	ch <- message
}

// failPending closes the channels of all in-flight commands so their
// callers return an error instead of waiting out the timeout.
func (m *MPV) failPending() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.closed = true
	for id, ch := range m.pending {
		close(ch)
		delete(m.pending, id)
	}
}

// command sends one command and waits for the correlated response.
func (m *MPV) command(args ...any) (json.RawMessage, error) {
	ch := make(chan mpvMessage, 1)

	m.mu.Lock()
	if m.closed {
		m.mu.Unlock()
		return nil, fmt.Errorf("player connection closed")
	}
	m.nextID++
	id := m.nextID
	m.pending[id] = ch

	payload, err := json.Marshal(mpvRequest{Command: args, RequestID: id})
	if err != nil {
		delete(m.pending, id)
		m.mu.Unlock()
		return nil, fmt.Errorf("encoding player command: %w", err)
	}
	_, err = m.conn.Write(append(payload, '\n'))
	m.mu.Unlock()
	if err != nil {
		m.forget(id)
		return nil, fmt.Errorf("writing player command: %w", err)
	}

	select {
	case response, ok := <-ch:
		if !ok {
			return nil, fmt.Errorf("player connection closed")
		}
		if response.Error != "" && response.Error != "success" {
			return nil, fmt.Errorf("player rejected %v: %s", args[0], response.Error)
		}
		return response.Data, nil
	case <-time.After(commandTimeout):
		m.forget(id)
		return nil, fmt.Errorf("player command %v timed out after %v", args[0], commandTimeout)
	}
}

func (m *MPV) forget(id int64) {
	m.mu.Lock()
	delete(m.pending, id)
	m.mu.Unlock()
}

// SetOverlay installs or replaces an ASS overlay.
func (m *MPV) SetOverlay(id int, data string) error {
	_, err := m.command("osd-overlay", id, "ass-events", data)
	return err
}

// ClearOverlay removes an overlay.
func (m *MPV) ClearOverlay(id int) error {
	_, err := m.command("osd-overlay", id, "none", "")
	return err
}

// ShowText displays transient OSD text for duration milliseconds.
func (m *MPV) ShowText(text string, duration int) error {
	_, err := m.command("show-text", text, duration)
	return err
}

// SetFilterChain replaces the video filter chain; empty clears it.
func (m *MPV) SetFilterChain(chain string) error {
	if chain == "" {
		_, err := m.command("vf", "clr", "")
		return err
	}
	_, err := m.command("vf", "set", chain)
	return err
}

// SetAspect applies an aspect policy. "stretch" disables aspect
// preservation entirely; ratio values override the source aspect.
func (m *MPV) SetAspect(aspect string) error {
	if aspect == "stretch" {
		_, err := m.command("set_property", "keepaspect", false)
		return err
	}
	if _, err := m.command("set_property", "keepaspect", true); err != nil {
		return err
	}
	_, err := m.command("set_property", "video-aspect-override", aspect)
	return err
}

// SetOSDFont sets the overlay and OSD font.
func (m *MPV) SetOSDFont(name string) error {
	_, err := m.command("set_property", "osd-font", name)
	return err
}

// Bind maps a key to a named hotkey event routed back over IPC.
func (m *MPV) Bind(key, name string) error {
	_, err := m.command("keybind", key, "script-message "+hotkeyPrefix+name)
	return err
}

// LoadPlaylist replaces the current playlist. Playback jumps to the
// new list's first entry.
func (m *MPV) LoadPlaylist(path string) error {
	_, err := m.command("loadlist", path, "replace")
	return err
}

// Events returns the player event channel.
func (m *MPV) Events() <-chan Event {
	return m.events
}

// Close tears down the connection. Safe to call multiple times.
func (m *MPV) Close() error {
	var err error
	m.closeOnce.Do(func() {
		close(m.done)
		err = m.conn.Close()
	})
	return err
}
