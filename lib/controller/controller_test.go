// Copyright 2026 The VideoWall Authors
// SPDX-License-Identifier: Apache-2.0

package controller

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
	"time"

	"github.com/videowall-foundation/videowall/lib/clock"
	"github.com/videowall-foundation/videowall/lib/config"
	"github.com/videowall-foundation/videowall/lib/control"
	"github.com/videowall-foundation/videowall/lib/effect"
	"github.com/videowall-foundation/videowall/lib/player"
	"github.com/videowall-foundation/videowall/lib/playlist"
	"github.com/videowall-foundation/videowall/lib/profile"
	"github.com/videowall-foundation/videowall/lib/telemetry"
	"github.com/videowall-foundation/videowall/lib/testutil"
)

type overlayCall struct {
	id   int
	data string
}

type textCall struct {
	text     string
	duration int
}

type bindCall struct {
	key  string
	name string
}

// fakePlayer records every player call on a buffered channel per
// method, so tests assert on ordering per concern without a mutex.
type fakePlayer struct {
	overlays  chan overlayCall
	clears    chan int
	texts     chan textCall
	filters   chan string
	aspects   chan string
	fonts     chan string
	binds     chan bindCall
	playlists chan string
	events    chan player.Event
}

var _ player.Player = (*fakePlayer)(nil)

func newFakePlayer() *fakePlayer {
	return &fakePlayer{
		overlays:  make(chan overlayCall, 64),
		clears:    make(chan int, 64),
		texts:     make(chan textCall, 64),
		filters:   make(chan string, 64),
		aspects:   make(chan string, 64),
		fonts:     make(chan string, 64),
		binds:     make(chan bindCall, 64),
		playlists: make(chan string, 64),
		events:    make(chan player.Event, 16),
	}
}

func (p *fakePlayer) SetOverlay(id int, data string) error {
	p.overlays <- overlayCall{id: id, data: data}
	return nil
}

func (p *fakePlayer) ClearOverlay(id int) error {
	p.clears <- id
	return nil
}

func (p *fakePlayer) ShowText(text string, duration int) error {
	p.texts <- textCall{text: text, duration: duration}
	return nil
}

func (p *fakePlayer) SetFilterChain(chain string) error {
	p.filters <- chain
	return nil
}

func (p *fakePlayer) SetAspect(aspect string) error {
	p.aspects <- aspect
	return nil
}

func (p *fakePlayer) SetOSDFont(name string) error {
	p.fonts <- name
	return nil
}

func (p *fakePlayer) Bind(key, name string) error {
	p.binds <- bindCall{key: key, name: name}
	return nil
}

func (p *fakePlayer) LoadPlaylist(path string) error {
	p.playlists <- path
	return nil
}

func (p *fakePlayer) Events() <-chan player.Event { return p.events }

func (p *fakePlayer) Close() error { return nil }

// defaultProfile is the harness profile: two HUD modules on the bottom
// edge, one effect, message rotation disabled so timers stay
// deterministic.
func defaultProfile(messageFile string) string {
	return fmt.Sprintf(`{
	"name": "Test Wall",
	"video_dirs": [],
	"playlist_mode": "ordered",
	"effects": ["vhs-clean"],
	"hud": {"position": "bottom", "modules": ["clock", "cpu"]},
	"messages": {"interval": 0, "duration": 3, "message_file": %q},
	"fonts": {"primary": "monospace"},
	"aspect": "16:9"
}`, messageFile)
}

type harness struct {
	t            *testing.T
	controller   *Controller
	player       *fakePlayer
	clk          *clock.FakeClock
	profilesDir  string
	profilePath  string
	messageFile  string
	playlistPath string
	runErr       chan error
	stopped      chan struct{}
}

// startController boots a controller over a temporary profile tree and
// a fake player, with a message file holding exactly one message so
// Pick is deterministic. The profile body comes from body(messageFile);
// nil means defaultProfile.
func startController(t *testing.T, body func(messageFile string) string, watch bool) *harness {
	t.Helper()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	dir := t.TempDir()

	profilesDir := filepath.Join(dir, "profiles")
	if err := os.MkdirAll(profilesDir, 0o755); err != nil {
		t.Fatalf("creating profiles dir: %v", err)
	}
	messageFile := filepath.Join(dir, "messages.txt")
	if err := os.WriteFile(messageFile, []byte("# test messages\nhello wall\n"), 0o644); err != nil {
		t.Fatalf("writing message file: %v", err)
	}

	if body == nil {
		body = defaultProfile
	}
	profilePath := filepath.Join(profilesDir, "test_wall.json")
	if err := os.WriteFile(profilePath, []byte(body(messageFile)), 0o644); err != nil {
		t.Fatalf("writing profile: %v", err)
	}

	settings := config.Default()
	settings.Paths.Profiles = profilesDir
	settings.Watch = watch

	entry, err := profile.Find(profilesDir, "test_wall")
	if err != nil {
		t.Fatalf("finding test profile: %v", err)
	}

	clk := clock.Fake(time.Unix(1000, 0))
	fake := newFakePlayer()
	playlistPath := filepath.Join(dir, "playlist.m3u")

	h := &harness{
		t:            t,
		player:       fake,
		clk:          clk,
		profilesDir:  profilesDir,
		profilePath:  profilePath,
		messageFile:  messageFile,
		playlistPath: playlistPath,
		runErr:       make(chan error, 1),
		stopped:      make(chan struct{}),
	}
	h.controller = New(Options{
		Logger:       logger,
		Clock:        clk,
		Player:       fake,
		Registry:     telemetry.NewRegistryWithProcRoot(logger, clk, filepath.Join(dir, "proc")),
		Resolver:     profile.NewResolver(logger),
		Builder:      playlist.NewBuilder(logger),
		Settings:     settings,
		Entry:        entry,
		PlaylistPath: playlistPath,
		Videos:       3,
	})

	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		h.runErr <- h.controller.Run(ctx)
		close(h.stopped)
	}()
	t.Cleanup(func() {
		cancel()
		testutil.RequireClosed(t, h.stopped, 5*time.Second, "controller did not stop")
	})
	return h
}

type startupCalls struct {
	binds  []bindCall
	font   string
	aspect string
	filter string
	hud    overlayCall
}

// awaitStartup drains the player calls the controller makes while
// applying the initial profile, then round-trips a status request so
// the event loop is known to be serving before the test proceeds.
func (h *harness) awaitStartup() startupCalls {
	h.t.Helper()
	var calls startupCalls
	for i := 0; i < 3; i++ {
		calls.binds = append(calls.binds,
			testutil.RequireReceive(h.t, h.player.binds, 5*time.Second, "bind %d", i))
	}
	calls.font = testutil.RequireReceive(h.t, h.player.fonts, 5*time.Second, "startup font")
	calls.aspect = testutil.RequireReceive(h.t, h.player.aspects, 5*time.Second, "startup aspect")
	calls.filter = testutil.RequireReceive(h.t, h.player.filters, 5*time.Second, "startup filter")
	calls.hud = testutil.RequireReceive(h.t, h.player.overlays, 5*time.Second, "startup overlay")
	h.status()
	return calls
}

// status round-trips a status request through the control handler. As
// a side effect it acts as a sync point: the task queue is FIFO, so by
// the time the response arrives every earlier task has run.
func (h *harness) status() *control.Status {
	h.t.Helper()
	response := h.controller.HandleControl(control.Request{Verb: control.VerbStatus})
	if !response.OK || response.Status == nil {
		h.t.Fatalf("status request failed: %+v", response)
	}
	return response.Status
}

func (h *harness) sendHotkey(name string) {
	h.t.Helper()
	event := player.Event{Kind: player.HotkeyPressed, Hotkey: name}
	testutil.RequireSend(h.t, h.player.events, event, 5*time.Second, "sending hotkey %q", name)
}

func (h *harness) rewriteProfile(body string) {
	h.t.Helper()
	if err := os.WriteFile(h.profilePath, []byte(body), 0o644); err != nil {
		h.t.Fatalf("rewriting profile: %v", err)
	}
}

func requireQuiet[T any](t *testing.T, ch <-chan T, wait time.Duration) {
	t.Helper()
	select {
	case v := <-ch:
		t.Fatalf("unexpected value: %v", v)
	case <-time.After(wait):
	}
}

func mustChain(t *testing.T, id string) string {
	t.Helper()
	chain, ok := effect.Chain(id)
	if !ok {
		t.Fatalf("unknown effect %q", id)
	}
	return chain
}

func TestRunAppliesProfileOnStartup(t *testing.T) {
	h := startController(t, nil, false)
	calls := h.awaitStartup()

	wantBinds := []bindCall{
		{key: "h", name: "toggle-hud"},
		{key: "r", name: "reload-profile"},
		{key: "m", name: "show-message"},
	}
	if !reflect.DeepEqual(calls.binds, wantBinds) {
		t.Fatalf("bindings = %+v, want %+v", calls.binds, wantBinds)
	}
	if calls.font != "monospace" {
		t.Fatalf("font = %q, want monospace", calls.font)
	}
	if calls.aspect != "16:9" {
		t.Fatalf("aspect = %q, want 16:9", calls.aspect)
	}
	if want := mustChain(t, "vhs-clean"); calls.filter != want {
		t.Fatalf("filter = %q, want %q", calls.filter, want)
	}
	if calls.hud.id != hudOverlayID {
		t.Fatalf("overlay id = %d, want %d", calls.hud.id, hudOverlayID)
	}
	if !strings.Contains(calls.hud.data, `{\an2}`) {
		t.Fatalf("overlay not anchored bottom: %q", calls.hud.data)
	}
	if !strings.Contains(calls.hud.data, "cpu N/A") {
		t.Fatalf("overlay missing degraded cpu module: %q", calls.hud.data)
	}

	// The player was launched with the playlist; startup must not
	// replace it.
	requireQuiet(t, h.player.playlists, 100*time.Millisecond)
}

func TestStatusReportsSession(t *testing.T) {
	h := startController(t, nil, false)
	h.awaitStartup()

	status := h.status()
	if status.ProfileID != "test_wall" {
		t.Fatalf("profile id = %q, want test_wall", status.ProfileID)
	}
	if status.ProfileName != "Test Wall" {
		t.Fatalf("profile name = %q, want Test Wall", status.ProfileName)
	}
	if status.Fingerprint == "" {
		t.Fatal("fingerprint is empty")
	}
	if !status.HUDEnabled {
		t.Fatal("hud should start enabled")
	}
	if want := []string{"clock", "cpu"}; !reflect.DeepEqual(status.Modules, want) {
		t.Fatalf("modules = %v, want %v", status.Modules, want)
	}
	if want := []string{"vhs-clean"}; !reflect.DeepEqual(status.Effects, want) {
		t.Fatalf("effects = %v, want %v", status.Effects, want)
	}
	if status.Messages != 1 {
		t.Fatalf("messages = %d, want 1", status.Messages)
	}
	if status.Videos != 3 {
		t.Fatalf("videos = %d, want 3", status.Videos)
	}
	if status.UptimeSecs != 0 {
		t.Fatalf("uptime = %d, want 0", status.UptimeSecs)
	}

	h.clk.WaitForTimers(1)
	h.clk.Advance(2 * time.Second)
	if got := h.status().UptimeSecs; got != 2 {
		t.Fatalf("uptime after advance = %d, want 2", got)
	}
}

func TestRefreshRedrawsOverlay(t *testing.T) {
	h := startController(t, nil, false)
	h.awaitStartup()

	h.clk.WaitForTimers(1)
	for tick := 0; tick < 3; tick++ {
		h.clk.Advance(2 * time.Second)
		redraw := testutil.RequireReceive(t, h.player.overlays, 5*time.Second, "refresh %d", tick)
		if redraw.id != hudOverlayID {
			t.Fatalf("refresh overlay id = %d, want %d", redraw.id, hudOverlayID)
		}
		if !strings.Contains(redraw.data, "cpu N/A") {
			t.Fatalf("refresh overlay missing module output: %q", redraw.data)
		}
	}
}

func TestToggleClearsAndRestoresOverlay(t *testing.T) {
	h := startController(t, nil, false)
	h.awaitStartup()

	h.sendHotkey("toggle-hud")
	if cleared := testutil.RequireReceive(t, h.player.clears, 5*time.Second, "clear on toggle"); cleared != hudOverlayID {
		t.Fatalf("cleared overlay %d, want %d", cleared, hudOverlayID)
	}
	if h.status().HUDEnabled {
		t.Fatal("hud still enabled after toggle")
	}

	// Refresh ticks while hidden must not redraw; the timer keeps
	// running regardless.
	h.clk.WaitForTimers(1)
	h.clk.Advance(2 * time.Second)
	h.status()
	requireQuiet(t, h.player.overlays, 100*time.Millisecond)

	response := h.controller.HandleControl(control.Request{Verb: control.VerbToggle})
	if !response.OK || !response.Status.HUDEnabled {
		t.Fatalf("toggle response = %+v, want re-enabled", response)
	}
	restored := testutil.RequireReceive(t, h.player.overlays, 5*time.Second, "redraw on re-enable")
	if restored.id != hudOverlayID {
		t.Fatalf("restored overlay id = %d, want %d", restored.id, hudOverlayID)
	}
}

func TestHotkeyReloadSwapsSession(t *testing.T) {
	h := startController(t, nil, false)
	h.awaitStartup()
	before := h.status().Fingerprint

	h.rewriteProfile(fmt.Sprintf(`{
	"name": "Reloaded Wall",
	"video_dirs": [],
	"playlist_mode": "ordered",
	"effects": ["glitch-storm"],
	"hud": {"position": "top", "modules": ["clock"]},
	"messages": {"interval": 0, "duration": 3, "message_file": %q},
	"fonts": {"primary": "monospace"},
	"aspect": "16:9"
}`, h.messageFile))
	h.sendHotkey("reload-profile")

	if got, want := testutil.RequireReceive(t, h.player.filters, 5*time.Second, "reload filter"), mustChain(t, "glitch-storm"); got != want {
		t.Fatalf("filter after reload = %q, want %q", got, want)
	}
	confirmation := testutil.RequireReceive(t, h.player.texts, 5*time.Second, "reload confirmation")
	if confirmation.text != "profile reloaded: Reloaded Wall" {
		t.Fatalf("confirmation = %q", confirmation.text)
	}
	if confirmation.duration != confirmationMillis {
		t.Fatalf("confirmation duration = %d, want %d", confirmation.duration, confirmationMillis)
	}

	status := h.status()
	if status.ProfileName != "Reloaded Wall" {
		t.Fatalf("profile name = %q, want Reloaded Wall", status.ProfileName)
	}
	if status.Fingerprint == before {
		t.Fatal("fingerprint unchanged after reload")
	}
	if want := []string{"clock"}; !reflect.DeepEqual(status.Modules, want) {
		t.Fatalf("modules = %v, want %v", status.Modules, want)
	}

	// Video sources did not change, so the running playlist survives.
	requireQuiet(t, h.player.playlists, 100*time.Millisecond)
}

func TestReloadRebuildsPlaylistWhenSourcesChange(t *testing.T) {
	h := startController(t, nil, false)
	h.awaitStartup()

	videos := filepath.Join(t.TempDir(), "videos")
	if err := os.MkdirAll(videos, 0o755); err != nil {
		t.Fatalf("creating videos dir: %v", err)
	}
	for _, name := range []string{"a.mkv", "b.mp4"} {
		if err := os.WriteFile(filepath.Join(videos, name), nil, 0o644); err != nil {
			t.Fatalf("writing video %s: %v", name, err)
		}
	}

	h.rewriteProfile(fmt.Sprintf(`{
	"name": "Test Wall",
	"video_dirs": [%q],
	"playlist_mode": "ordered",
	"effects": ["vhs-clean"],
	"hud": {"position": "bottom", "modules": ["clock", "cpu"]},
	"messages": {"interval": 0, "duration": 3, "message_file": %q},
	"fonts": {"primary": "monospace"},
	"aspect": "16:9"
}`, videos, h.messageFile))
	h.sendHotkey("reload-profile")

	if loaded := testutil.RequireReceive(t, h.player.playlists, 5*time.Second, "playlist reload"); loaded != h.playlistPath {
		t.Fatalf("player loaded %q, want %q", loaded, h.playlistPath)
	}
	data, err := os.ReadFile(h.playlistPath)
	if err != nil {
		t.Fatalf("reading playlist: %v", err)
	}
	for _, name := range []string{"a.mkv", "b.mp4"} {
		if !strings.Contains(string(data), name) {
			t.Fatalf("playlist missing %s:\n%s", name, data)
		}
	}
	if got := h.status().Videos; got != 2 {
		t.Fatalf("videos = %d, want 2", got)
	}
}

func TestSetProfileSwitchesSession(t *testing.T) {
	h := startController(t, nil, false)
	h.awaitStartup()

	other := filepath.Join(h.profilesDir, "other_wall.json")
	body := fmt.Sprintf(`{
	"name": "Other Wall",
	"video_dirs": [],
	"playlist_mode": "ordered",
	"effects": ["pixel-grid"],
	"hud": {"position": "top", "modules": ["clock"]},
	"messages": {"interval": 0, "duration": 2, "message_file": %q},
	"fonts": {"primary": "VCR OSD Mono"},
	"aspect": "4:3"
}`, h.messageFile)
	if err := os.WriteFile(other, []byte(body), 0o644); err != nil {
		t.Fatalf("writing other profile: %v", err)
	}

	response := h.controller.HandleControl(control.Request{
		Verb:    control.VerbSetProfile,
		Profile: "other_wall",
	})
	if !response.OK {
		t.Fatalf("set-profile failed: %+v", response)
	}
	if response.Status.ProfileID != "other_wall" {
		t.Fatalf("profile id = %q, want other_wall", response.Status.ProfileID)
	}

	if got := testutil.RequireReceive(t, h.player.fonts, 5*time.Second, "switched font"); got != "VCR OSD Mono" {
		t.Fatalf("font = %q, want VCR OSD Mono", got)
	}
	if got := testutil.RequireReceive(t, h.player.aspects, 5*time.Second, "switched aspect"); got != "4:3" {
		t.Fatalf("aspect = %q, want 4:3", got)
	}
	if got, want := testutil.RequireReceive(t, h.player.filters, 5*time.Second, "switched filter"), mustChain(t, "pixel-grid"); got != want {
		t.Fatalf("filter = %q, want %q", got, want)
	}
	confirmation := testutil.RequireReceive(t, h.player.texts, 5*time.Second, "switch confirmation")
	if confirmation.text != "profile: Other Wall" {
		t.Fatalf("confirmation = %q", confirmation.text)
	}

	missing := h.controller.HandleControl(control.Request{
		Verb:    control.VerbSetProfile,
		Profile: "no_such_wall",
	})
	if missing.OK || missing.Error == "" {
		t.Fatalf("missing profile response = %+v, want error", missing)
	}
	if got := h.status().ProfileID; got != "other_wall" {
		t.Fatalf("session changed after failed switch: %q", got)
	}
}

func TestMessageHotkeyShowsText(t *testing.T) {
	h := startController(t, nil, false)
	h.awaitStartup()

	h.sendHotkey("show-message")
	shown := testutil.RequireReceive(t, h.player.texts, 5*time.Second, "message text")
	if shown.text != "hello wall" {
		t.Fatalf("message = %q, want hello wall", shown.text)
	}
	if shown.duration != 3000 {
		t.Fatalf("duration = %d ms, want 3000", shown.duration)
	}
}

func TestMessageTimerShowsText(t *testing.T) {
	h := startController(t, func(messageFile string) string {
		return fmt.Sprintf(`{
	"name": "Test Wall",
	"video_dirs": [],
	"playlist_mode": "ordered",
	"effects": ["vhs-clean"],
	"hud": {"position": "bottom", "modules": ["clock", "cpu"]},
	"messages": {"interval": 60, "duration": 4, "message_file": %q},
	"fonts": {"primary": "monospace"},
	"aspect": "16:9"
}`, messageFile)
	}, false)
	h.awaitStartup()

	// Refresh ticker plus message ticker.
	h.clk.WaitForTimers(2)
	h.clk.Advance(60 * time.Second)

	shown := testutil.RequireReceive(t, h.player.texts, 5*time.Second, "rotated message")
	if shown.text != "hello wall" {
		t.Fatalf("message = %q, want hello wall", shown.text)
	}
	if shown.duration != 4000 {
		t.Fatalf("duration = %d ms, want 4000", shown.duration)
	}
}

func TestMediaLoadedRebuildsSession(t *testing.T) {
	h := startController(t, nil, false)
	h.awaitStartup()

	// A profile edit made between file changes lands at the next
	// media-loaded event even with the watcher off.
	h.rewriteProfile(fmt.Sprintf(`{
	"name": "Transitioned Wall",
	"video_dirs": [],
	"playlist_mode": "ordered",
	"effects": ["neon-pulse"],
	"hud": {"position": "top", "modules": ["clock"]},
	"messages": {"interval": 0, "duration": 3, "message_file": %q},
	"fonts": {"primary": "monospace"},
	"aspect": "16:9"
}`, h.messageFile))
	testutil.RequireSend(h.t, h.player.events, player.Event{Kind: player.MediaLoaded},
		5*time.Second, "media-loaded event")

	if got := testutil.RequireReceive(t, h.player.fonts, 5*time.Second, "rebuilt font"); got != "monospace" {
		t.Fatalf("font = %q, want monospace", got)
	}
	if got := testutil.RequireReceive(t, h.player.aspects, 5*time.Second, "rebuilt aspect"); got != "16:9" {
		t.Fatalf("aspect = %q, want 16:9", got)
	}
	if got, want := testutil.RequireReceive(t, h.player.filters, 5*time.Second, "rebuilt filter"), mustChain(t, "neon-pulse"); got != want {
		t.Fatalf("filter = %q, want %q", got, want)
	}
	redrawn := testutil.RequireReceive(t, h.player.overlays, 5*time.Second, "rebuilt overlay")
	if redrawn.id != hudOverlayID {
		t.Fatalf("overlay id = %d, want %d", redrawn.id, hudOverlayID)
	}
	if !strings.Contains(redrawn.data, `{\an8}`) {
		t.Fatalf("overlay not anchored top after rebuild: %q", redrawn.data)
	}
	if got := h.status().ProfileName; got != "Transitioned Wall" {
		t.Fatalf("profile name = %q, want Transitioned Wall", got)
	}

	// File transitions rebuild the session but never the playlist:
	// replacing the playlist would itself fire media-loaded.
	requireQuiet(t, h.player.playlists, 100*time.Millisecond)
}

func TestMediaLoadedKeepsHUDHidden(t *testing.T) {
	h := startController(t, nil, false)
	h.awaitStartup()

	h.sendHotkey("toggle-hud")
	testutil.RequireReceive(t, h.player.clears, 5*time.Second, "clear on toggle")
	if h.status().HUDEnabled {
		t.Fatal("hud still enabled after toggle")
	}

	testutil.RequireSend(h.t, h.player.events, player.Event{Kind: player.MediaLoaded},
		5*time.Second, "media-loaded event")

	// The rebuilt session applies with the HUD still hidden: the
	// overlay slot is cleared, not redrawn.
	if cleared := testutil.RequireReceive(t, h.player.clears, 5*time.Second, "clear on rebuild"); cleared != hudOverlayID {
		t.Fatalf("cleared overlay %d, want %d", cleared, hudOverlayID)
	}
	if h.status().HUDEnabled {
		t.Fatal("hud re-enabled by media transition")
	}
	requireQuiet(t, h.player.overlays, 100*time.Millisecond)
}

func TestDisconnectStopsRun(t *testing.T) {
	h := startController(t, nil, false)
	h.awaitStartup()

	testutil.RequireSend(h.t, h.player.events, player.Event{Kind: player.Disconnected},
		5*time.Second, "disconnect event")

	err := testutil.RequireReceive(t, h.runErr, 5*time.Second, "run result")
	if err == nil || !strings.Contains(err.Error(), "player connection lost") {
		t.Fatalf("run returned %v, want connection-lost error", err)
	}
}

func TestEventChannelCloseStopsRun(t *testing.T) {
	h := startController(t, nil, false)
	h.awaitStartup()

	close(h.player.events)

	err := testutil.RequireReceive(t, h.runErr, 5*time.Second, "run result")
	if err == nil || !strings.Contains(err.Error(), "player connection lost") {
		t.Fatalf("run returned %v, want connection-lost error", err)
	}
}

func TestFileWatchTriggersReload(t *testing.T) {
	h := startController(t, nil, true)
	h.awaitStartup()

	h.rewriteProfile(fmt.Sprintf(`{
	"name": "Watched Wall",
	"video_dirs": [],
	"playlist_mode": "ordered",
	"effects": ["glitch-storm"],
	"hud": {"position": "bottom", "modules": ["clock", "cpu"]},
	"messages": {"interval": 0, "duration": 3, "message_file": %q},
	"fonts": {"primary": "monospace"},
	"aspect": "16:9"
}`, h.messageFile))

	if got, want := testutil.RequireReceive(t, h.player.filters, 10*time.Second, "watch-triggered filter"), mustChain(t, "glitch-storm"); got != want {
		t.Fatalf("filter = %q, want %q", got, want)
	}
	if got := h.status().ProfileName; got != "Watched Wall" {
		t.Fatalf("profile name = %q, want Watched Wall", got)
	}
}
