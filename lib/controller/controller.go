// Copyright 2026 The VideoWall Authors
// SPDX-License-Identifier: Apache-2.0

package controller

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/videowall-foundation/videowall/lib/clock"
	"github.com/videowall-foundation/videowall/lib/config"
	"github.com/videowall-foundation/videowall/lib/effect"
	"github.com/videowall-foundation/videowall/lib/message"
	"github.com/videowall-foundation/videowall/lib/player"
	"github.com/videowall-foundation/videowall/lib/playlist"
	"github.com/videowall-foundation/videowall/lib/profile"
	"github.com/videowall-foundation/videowall/lib/sched"
	"github.com/videowall-foundation/videowall/lib/telemetry"
	"github.com/videowall-foundation/videowall/lib/watchfile"
)

// hudOverlayID is the player overlay slot holding the HUD. All HUD
// blocks ride one overlay as separate ASS events, so a re-render
// replaces the whole HUD in place without flicker.
const hudOverlayID = 1

// Hotkey bindings installed in the player window.
const (
	keyToggleHUD = "h"
	keyReload    = "r"
	keyMessage   = "m"

	hotkeyToggle  = "toggle-hud"
	hotkeyReload  = "reload-profile"
	hotkeyMessage = "show-message"
)

// confirmationMillis is how long reload and profile-switch
// confirmations stay on screen.
const confirmationMillis = 2000

// Options wires a Controller.
type Options struct {
	Logger   *slog.Logger
	Clock    clock.Clock
	Player   player.Player
	Registry *telemetry.Registry
	Resolver *profile.Resolver
	Builder  *playlist.Builder
	Settings *config.Settings

	// Entry is the initially active profile.
	Entry profile.Entry

	// PlaylistPath is the M3U file the player was launched with; the
	// controller rewrites it when the playlist changes.
	PlaylistPath string

	// Videos is the entry count of the launch playlist.
	Videos int
}

// Controller runs the daemon event loop.
type Controller struct {
	logger   *slog.Logger
	clock    clock.Clock
	player   player.Player
	registry *telemetry.Registry
	resolver *profile.Resolver
	builder  *playlist.Builder
	settings *config.Settings

	tasks     chan func()
	scheduler *sched.Scheduler
	done      chan struct{}

	initialEntry profile.Entry
	playlistPath string

	// Loop-owned state. Only the Run goroutine touches these.
	state         *session
	hudEnabled    bool
	startedAt     time.Time
	videos        int
	watcher       *watchfile.Watcher
	watchChanges  <-chan struct{}
	refreshHandle sched.Handle
	messageHandle sched.Handle
}

// session is everything derived from one resolution of the profile
// file. Reload builds a complete replacement and swaps the pointer;
// nothing is mutated in place, so a refresh tick interleaved with a
// reload sees either the old configuration or the new one, never a
// mixture.
type session struct {
	entry       profile.Entry
	profile     profile.Profile
	fingerprint string
	modules     map[string]telemetry.Module
	active      []string
	rotator     *message.Rotator
	filterChain string
	scheme      effect.Scheme
}

// New wires a Controller. Call Run to start it.
func New(options Options) *Controller {
	tasks := make(chan func(), 64)
	return &Controller{
		logger:       options.Logger,
		clock:        options.Clock,
		player:       options.Player,
		registry:     options.Registry,
		resolver:     options.Resolver,
		builder:      options.Builder,
		settings:     options.Settings,
		tasks:        tasks,
		scheduler:    sched.New(options.Clock, tasks),
		done:         make(chan struct{}),
		initialEntry: options.Entry,
		playlistPath: options.PlaylistPath,
		videos:       options.Videos,
	}
}

// Run applies the initial profile and serves the event loop until ctx
// is cancelled (clean shutdown, returns nil) or the player connection
// is lost (returns an error).
func (c *Controller) Run(ctx context.Context) error {
	defer close(c.done)
	defer c.teardown()

	c.startedAt = c.clock.Now()
	c.hudEnabled = true

	bindings := []struct{ key, name string }{
		{keyToggleHUD, hotkeyToggle},
		{keyReload, hotkeyReload},
		{keyMessage, hotkeyMessage},
	}
	for _, binding := range bindings {
		if err := c.player.Bind(binding.key, binding.name); err != nil {
			return fmt.Errorf("binding hotkey %q: %w", binding.key, err)
		}
	}

	c.state = c.buildSession(c.initialEntry)
	c.applySession(c.state)
	c.logger.Info("profile active",
		"id", c.state.entry.ID,
		"name", c.state.profile.Name,
		"fingerprint", c.state.fingerprint,
		"videos", c.videos)

	c.refreshHandle = c.scheduler.Every(c.settings.RefreshInterval(), c.onRefreshTick)
	c.scheduleMessages()
	c.startWatcher()

	events := c.player.Events()
	for {
		select {
		case <-ctx.Done():
			c.logger.Info("shutting down")
			return nil
		case event, ok := <-events:
			if !ok || event.Kind == player.Disconnected {
				return fmt.Errorf("player connection lost")
			}
			c.handlePlayerEvent(event)
		case task := <-c.tasks:
			task()
		case <-c.watchChanges:
			c.logger.Info("profile file changed on disk, reloading")
			c.reloadProfile()
		}
	}
}

func (c *Controller) teardown() {
	c.scheduler.Cancel(c.refreshHandle)
	c.scheduler.Cancel(c.messageHandle)
	if c.watcher != nil {
		c.watcher.Close()
	}
}

// buildSession resolves the profile file and derives the complete
// runtime state for it. Resolution never fails; a broken file yields
// a session over the profile defaults.
func (c *Controller) buildSession(entry profile.Entry) *session {
	resolved := c.resolver.Resolve(entry.Path)

	filterChain, scheme := effect.Resolve(resolved.Effects)
	modules := c.registry.Build(resolved.HUD.Modules)
	active := make([]string, 0, len(modules))
	for _, name := range resolved.HUD.Modules {
		if _, ok := modules[name]; ok {
			active = append(active, name)
		}
	}

	rotator := message.NewRotator(c.logger)
	rotator.Load(resolved.Messages.MessageFile)

	return &session{
		entry:       entry,
		profile:     resolved,
		fingerprint: profile.Fingerprint(entry.Path),
		modules:     modules,
		active:      active,
		rotator:     rotator,
		filterChain: filterChain,
		scheme:      scheme,
	}
}

// applySession pushes a session's presentation to the player. Player
// rejections are logged and skipped: a bad font name or filter must
// not take down the wall, and connection loss surfaces through the
// event channel instead.
func (c *Controller) applySession(s *session) {
	if err := c.player.SetOSDFont(s.profile.Fonts.Primary); err != nil {
		c.logger.Warn("setting OSD font failed", "font", s.profile.Fonts.Primary, "error", err)
	}
	if err := c.player.SetAspect(s.profile.Aspect); err != nil {
		c.logger.Warn("setting aspect failed", "aspect", s.profile.Aspect, "error", err)
	}
	if err := c.player.SetFilterChain(s.filterChain); err != nil {
		c.logger.Warn("setting filter chain failed", "error", err)
	}
	c.renderHUD()
}

// scheduleMessages replaces the message rotation timer with one for
// the current session. Interval zero or an empty rotation disables
// the timer; the show-message hotkey still works either way.
func (c *Controller) scheduleMessages() {
	c.scheduler.Cancel(c.messageHandle)
	c.messageHandle = sched.Handle{}

	interval := c.state.profile.Messages.IntervalSeconds
	if interval <= 0 || c.state.rotator.Count() == 0 {
		return
	}
	c.messageHandle = c.scheduler.Every(time.Duration(interval)*time.Second, c.onMessageTick)
}

// startWatcher begins watching the active profile file when enabled
// in settings. Watch failure degrades to manual reload.
func (c *Controller) startWatcher() {
	if !c.settings.Watch {
		return
	}
	watcher, err := watchfile.Watch(c.logger, c.state.entry.Path)
	if err != nil {
		c.logger.Warn("profile watch unavailable, reload manually",
			"path", c.state.entry.Path, "error", err)
		return
	}
	c.watcher = watcher
	c.watchChanges = watcher.Changes()
}

func (c *Controller) rewireWatcher() {
	if c.watcher != nil {
		c.watcher.Close()
		c.watcher = nil
		c.watchChanges = nil
	}
	c.startWatcher()
}
