// Copyright 2026 The VideoWall Authors
// SPDX-License-Identifier: Apache-2.0

package controller

import (
	"fmt"
	"slices"
	"time"

	"github.com/videowall-foundation/videowall/lib/control"
	"github.com/videowall-foundation/videowall/lib/overlay"
	"github.com/videowall-foundation/videowall/lib/player"
	"github.com/videowall-foundation/videowall/lib/playlist"
	"github.com/videowall-foundation/videowall/lib/profile"
)

func (c *Controller) handlePlayerEvent(event player.Event) {
	switch event.Kind {
	case player.MediaLoaded:
		c.onMediaLoaded()
	case player.HotkeyPressed:
		c.onHotkey(event.Hotkey)
	}
}

// onMediaLoaded rebuilds the runtime state for the file that just
// started. Every playlist transition re-resolves the profile and
// rebuilds modules and messages, so edits land at the next file change
// even without the watcher, and player properties dropped across loads
// (filter chain, overlay) are pushed fresh. The HUD toggle survives
// transitions; only session-derived state is replaced.
func (c *Controller) onMediaLoaded() {
	c.logger.Debug("media loaded, rebuilding session")
	c.state = c.buildSession(c.state.entry)
	c.applySession(c.state)
	c.scheduleMessages()
}

func (c *Controller) onHotkey(name string) {
	c.logger.Debug("hotkey", "name", name)
	switch name {
	case hotkeyToggle:
		c.toggleHUD()
	case hotkeyReload:
		c.reloadProfile()
	case hotkeyMessage:
		c.showMessage()
	default:
		c.logger.Warn("unknown hotkey message", "name", name)
	}
}

// onRefreshTick redraws the HUD with fresh telemetry. While the HUD is
// toggled off the tick does nothing; the timer keeps running so
// re-enabling needs no rescheduling.
func (c *Controller) onRefreshTick() {
	if !c.hudEnabled {
		return
	}
	c.renderHUD()
}

func (c *Controller) onMessageTick() {
	c.showMessage()
}

// renderHUD pushes the current HUD state to the player: a full redraw
// while enabled, a clear while disabled.
func (c *Controller) renderHUD() {
	if !c.hudEnabled {
		if err := c.player.ClearOverlay(hudOverlayID); err != nil {
			c.logger.Warn("clearing hud overlay failed", "error", err)
		}
		return
	}
	outputs := c.registry.Refresh(c.state.modules, c.state.profile.HUD.Modules)
	blocks := overlay.Render(true, c.state.profile.HUD, outputs, c.state.scheme)
	if err := c.player.SetOverlay(hudOverlayID, overlay.ASS(blocks)); err != nil {
		c.logger.Warn("updating hud overlay failed", "error", err)
	}
}

func (c *Controller) toggleHUD() {
	c.hudEnabled = !c.hudEnabled
	c.logger.Info("hud toggled", "enabled", c.hudEnabled)
	c.renderHUD()
}

func (c *Controller) showMessage() {
	text, ok := c.state.rotator.Pick()
	if !ok {
		c.logger.Debug("no messages loaded, nothing to show")
		return
	}
	duration := c.state.profile.Messages.DurationSeconds * 1000
	if err := c.player.ShowText(text, duration); err != nil {
		c.logger.Warn("showing message failed", "error", err)
	}
}

// reloadProfile re-resolves the active profile file and swaps in the
// resulting session. The playlist is rebuilt only when the video
// sources changed: replacing the player playlist restarts playback,
// which a HUD-only edit should not do.
func (c *Controller) reloadProfile() {
	previous := c.state
	next := c.buildSession(previous.entry)
	c.reloadPlaylistIfNeeded(previous, next)
	c.state = next
	c.applySession(next)
	c.scheduleMessages()
	c.confirm("profile reloaded: " + next.profile.Name)
	c.logger.Info("profile reloaded",
		"id", next.entry.ID,
		"name", next.profile.Name,
		"fingerprint", next.fingerprint)
}

func (c *Controller) reloadPlaylistIfNeeded(previous, next *session) {
	if slices.Equal(previous.profile.VideoDirs, next.profile.VideoDirs) &&
		previous.profile.PlaylistMode == next.profile.PlaylistMode {
		return
	}
	c.rebuildPlaylist(next)
}

// rebuildPlaylist scans the session's video directories and hands the
// player the new list. Any failure keeps the wall on the playlist it
// already has.
func (c *Controller) rebuildPlaylist(s *session) {
	entries, err := c.builder.Build(s.profile.VideoDirs, s.profile.PlaylistMode)
	if err != nil {
		c.logger.Warn("playlist rebuild failed, keeping current playlist", "error", err)
		return
	}
	if err := playlist.WriteM3U(c.playlistPath, entries); err != nil {
		c.logger.Warn("writing playlist failed, keeping current playlist", "error", err)
		return
	}
	if err := c.player.LoadPlaylist(c.playlistPath); err != nil {
		c.logger.Warn("loading playlist failed", "error", err)
		return
	}
	c.videos = len(entries)
	c.logger.Info("playlist rebuilt", "videos", c.videos)
}

// setProfile switches the wall to another profile from the profiles
// directory. Unlike reload this changes which file is active, so the
// watcher moves to the new path as well.
func (c *Controller) setProfile(id string) error {
	entry, err := profile.Find(c.settings.Paths.Profiles, id)
	if err != nil {
		return err
	}
	previous := c.state
	next := c.buildSession(entry)
	c.reloadPlaylistIfNeeded(previous, next)
	c.state = next
	c.applySession(next)
	c.scheduleMessages()
	c.rewireWatcher()
	c.confirm("profile: " + next.profile.Name)
	c.logger.Info("profile switched",
		"id", next.entry.ID,
		"name", next.profile.Name,
		"fingerprint", next.fingerprint)
	return nil
}

func (c *Controller) confirm(text string) {
	if err := c.player.ShowText(text, confirmationMillis); err != nil {
		c.logger.Warn("showing confirmation failed", "error", err)
	}
}

// HandleControl serves one control request. It is the only Controller
// method safe to call from other goroutines: the work is posted onto
// the event loop and the response awaited here, so control traffic
// observes the same single-threaded state as everything else.
func (c *Controller) HandleControl(request control.Request) control.Response {
	reply := make(chan control.Response, 1)
	task := func() {
		reply <- c.controlOnLoop(request)
	}
	select {
	case c.tasks <- task:
	case <-c.done:
		return control.Response{Error: "controller is shutting down"}
	}
	select {
	case response := <-reply:
		return response
	case <-c.done:
		return control.Response{Error: "controller is shutting down"}
	}
}

func (c *Controller) controlOnLoop(request control.Request) control.Response {
	switch request.Verb {
	case control.VerbStatus:
	case control.VerbToggle:
		c.toggleHUD()
	case control.VerbReload:
		c.reloadProfile()
	case control.VerbMessage:
		c.showMessage()
	case control.VerbSetProfile:
		if err := c.setProfile(request.Profile); err != nil {
			return control.Response{Error: err.Error()}
		}
	default:
		return control.Response{Error: fmt.Sprintf("unknown verb %q", request.Verb)}
	}
	return control.Response{OK: true, Status: c.statusReport()}
}

func (c *Controller) statusReport() *control.Status {
	return &control.Status{
		ProfileID:   c.state.entry.ID,
		ProfileName: c.state.profile.Name,
		Fingerprint: c.state.fingerprint,
		HUDEnabled:  c.hudEnabled,
		Modules:     slices.Clone(c.state.active),
		Effects:     slices.Clone(c.state.profile.Effects),
		Messages:    c.state.rotator.Count(),
		Videos:      c.videos,
		UptimeSecs:  int64(c.clock.Now().Sub(c.startedAt) / time.Second),
	}
}
