// Copyright 2026 The VideoWall Authors
// SPDX-License-Identifier: Apache-2.0

package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/exec"
	"path/filepath"
	"regexp"
	"time"

	"gopkg.in/yaml.v3"
)

// Settings is the daemon configuration.
type Settings struct {
	// Paths configures directory locations.
	Paths PathsSettings `yaml:"paths"`

	// Player configures the external video player process.
	Player PlayerSettings `yaml:"player"`

	// HUD configures daemon-level HUD behavior that is independent of
	// the active profile.
	HUD HUDSettings `yaml:"hud"`

	// Control configures the local control socket.
	Control ControlSettings `yaml:"control"`

	// DefaultProfile is the profile loaded when none is named on the
	// command line.
	DefaultProfile string `yaml:"default_profile"`

	// Watch enables automatic reload when the active profile file
	// changes on disk.
	Watch bool `yaml:"watch"`

	// LogLevel is one of debug, info, warn, error.
	LogLevel string `yaml:"log_level"`
}

// PathsSettings configures directory locations.
type PathsSettings struct {
	// Root is the base directory for VideoWall configuration.
	Root string `yaml:"root"`

	// Profiles is the directory containing profile JSON files.
	Profiles string `yaml:"profiles"`

	// Messages is the directory containing message files.
	Messages string `yaml:"messages"`

	// State is where runtime artifacts (the generated playlist, the
	// last-profile marker) are written.
	State string `yaml:"state"`
}

// PlayerSettings configures the external video player.
type PlayerSettings struct {
	// Binary is the player executable, resolved via PATH unless
	// absolute. Default: mpv
	Binary string `yaml:"binary"`

	// Socket is the Unix socket path for the player's JSON IPC.
	Socket string `yaml:"socket"`

	// ExtraArgs are appended to the player command line after the
	// arguments the daemon generates.
	ExtraArgs []string `yaml:"extra_args"`

	// StartupTimeout is how long to wait for the player's IPC socket
	// to appear after launch. Default: 10s
	StartupTimeout string `yaml:"startup_timeout"`
}

// HUDSettings configures daemon-level HUD behavior.
type HUDSettings struct {
	// RefreshSeconds is the telemetry refresh cadence. Default: 2
	RefreshSeconds int `yaml:"refresh_seconds"`
}

// ControlSettings configures the local control socket.
type ControlSettings struct {
	// Socket is the Unix socket path the daemon listens on for
	// status/toggle/reload commands.
	Socket string `yaml:"socket"`
}

// Default returns the built-in settings. Unlike profiles, which are
// resolved leniently field by field, settings are strict: the file is
// merged over these defaults and then validated.
func Default() *Settings {
	homeDir, _ := os.UserHomeDir()
	defaultRoot := filepath.Join(homeDir, ".config", "videowall")

	return &Settings{
		Paths: PathsSettings{
			Root:     defaultRoot,
			Profiles: filepath.Join(defaultRoot, "profiles"),
			Messages: filepath.Join(defaultRoot, "messages"),
			State:    filepath.Join(homeDir, ".cache", "videowall"),
		},
		Player: PlayerSettings{
			Binary:         "mpv",
			Socket:         "${XDG_RUNTIME_DIR:-/tmp}/videowall/mpv.sock",
			StartupTimeout: "10s",
		},
		HUD: HUDSettings{
			RefreshSeconds: 2,
		},
		Control: ControlSettings{
			Socket: "${XDG_RUNTIME_DIR:-/tmp}/videowall/control.sock",
		},
		DefaultProfile: "cyberpunk_hud",
		Watch:          true,
		LogLevel:       "info",
	}
}

// Load loads settings from VIDEOWALL_CONFIG if set, otherwise from the
// default location. A missing file at the default location yields the
// defaults; a missing file named by VIDEOWALL_CONFIG is an error.
func Load() (*Settings, error) {
	if path := os.Getenv("VIDEOWALL_CONFIG"); path != "" {
		return LoadFile(path)
	}

	settings := Default()
	path := filepath.Join(settings.Paths.Root, "config.yaml")
	if err := settings.loadFile(path); err != nil && !os.IsNotExist(err) {
		return nil, err
	}
	settings.expandVariables()
	return settings, nil
}

// LoadFile loads settings from a specific file path, merging over the
// defaults. Environment variables do not override file values; the
// only expansion performed is ${VAR} and ${VAR:-default} inside the
// values themselves.
func LoadFile(path string) (*Settings, error) {
	settings := Default()
	if err := settings.loadFile(path); err != nil {
		return nil, err
	}
	settings.expandVariables()
	return settings, nil
}

func (s *Settings) loadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	if err := yaml.Unmarshal(data, s); err != nil {
		return fmt.Errorf("parsing %s: %w", path, err)
	}
	return nil
}

// expandVariables expands ${VAR} and ${VAR:-default} patterns in path
// values. VIDEOWALL_ROOT refers to Paths.Root so dependent paths can
// be declared relative to a relocated root.
func (s *Settings) expandVariables() {
	vars := map[string]string{
		"VIDEOWALL_ROOT": s.Paths.Root,
		"HOME":           os.Getenv("HOME"),
	}

	s.Paths.Root = expandVars(s.Paths.Root, vars)
	vars["VIDEOWALL_ROOT"] = s.Paths.Root

	s.Paths.Profiles = expandVars(s.Paths.Profiles, vars)
	s.Paths.Messages = expandVars(s.Paths.Messages, vars)
	s.Paths.State = expandVars(s.Paths.State, vars)
	s.Player.Socket = expandVars(s.Player.Socket, vars)
	s.Control.Socket = expandVars(s.Control.Socket, vars)
}

var varPattern = regexp.MustCompile(`\$\{([^}:]+)(?::-([^}]*))?\}`)

// expandVars expands ${VAR} and ${VAR:-default} patterns.
func expandVars(s string, vars map[string]string) string {
	return varPattern.ReplaceAllStringFunc(s, func(match string) string {
		parts := varPattern.FindStringSubmatch(match)
		if len(parts) < 2 {
			return match
		}

		name := parts[1]
		defaultValue := ""
		if len(parts) >= 3 {
			defaultValue = parts[2]
		}

		if value, ok := vars[name]; ok && value != "" {
			return value
		}
		if value := os.Getenv(name); value != "" {
			return value
		}
		return defaultValue
	})
}

// Validate checks the settings for errors, reporting all of them at
// once rather than stopping at the first.
func (s *Settings) Validate() error {
	var errs []error

	if s.Paths.Root == "" {
		errs = append(errs, fmt.Errorf("paths.root is required"))
	}
	if s.Paths.Profiles == "" {
		errs = append(errs, fmt.Errorf("paths.profiles is required"))
	}
	if s.Player.Binary == "" {
		errs = append(errs, fmt.Errorf("player.binary is required"))
	}
	if s.Player.Socket == "" {
		errs = append(errs, fmt.Errorf("player.socket is required"))
	}
	if s.Control.Socket == "" {
		errs = append(errs, fmt.Errorf("control.socket is required"))
	}
	if _, err := time.ParseDuration(s.Player.StartupTimeout); err != nil {
		errs = append(errs, fmt.Errorf("player.startup_timeout: %w", err))
	}
	if s.HUD.RefreshSeconds < 1 {
		errs = append(errs, fmt.Errorf("hud.refresh_seconds must be at least 1, got %d", s.HUD.RefreshSeconds))
	}
	if _, ok := logLevels[s.LogLevel]; !ok {
		errs = append(errs, fmt.Errorf("log_level must be one of debug, info, warn, error; got %q", s.LogLevel))
	}

	if len(errs) > 0 {
		return errors.Join(errs...)
	}
	return nil
}

var logLevels = map[string]slog.Level{
	"debug": slog.LevelDebug,
	"info":  slog.LevelInfo,
	"warn":  slog.LevelWarn,
	"error": slog.LevelError,
}

// SlogLevel maps LogLevel to a slog.Level. Unknown values (which
// Validate rejects) map to info.
func (s *Settings) SlogLevel() slog.Level {
	if level, ok := logLevels[s.LogLevel]; ok {
		return level
	}
	return slog.LevelInfo
}

// RefreshInterval returns the telemetry refresh cadence as a duration.
func (s *Settings) RefreshInterval() time.Duration {
	return time.Duration(s.HUD.RefreshSeconds) * time.Second
}

// PlayerStartupTimeout parses Player.StartupTimeout. Call Validate
// first; on a malformed value this falls back to 10 seconds.
func (s *Settings) PlayerStartupTimeout() time.Duration {
	d, err := time.ParseDuration(s.Player.StartupTimeout)
	if err != nil {
		return 10 * time.Second
	}
	return d
}

// EnsurePaths creates the configured directories, including the parent
// directories of both Unix sockets.
func (s *Settings) EnsurePaths() error {
	paths := []string{
		s.Paths.Root,
		s.Paths.Profiles,
		s.Paths.Messages,
		s.Paths.State,
		filepath.Dir(s.Player.Socket),
		filepath.Dir(s.Control.Socket),
	}

	for _, path := range paths {
		if path == "" {
			continue
		}
		if err := os.MkdirAll(path, 0o755); err != nil {
			return fmt.Errorf("creating %s: %w", path, err)
		}
	}
	return nil
}

// PlayerPath resolves the player binary: absolute paths are checked
// directly, bare names are looked up in PATH.
func (s *Settings) PlayerPath() (string, error) {
	if filepath.IsAbs(s.Player.Binary) {
		if _, err := os.Stat(s.Player.Binary); err != nil {
			return "", fmt.Errorf("player binary %s: %w", s.Player.Binary, err)
		}
		return s.Player.Binary, nil
	}

	path, err := exec.LookPath(s.Player.Binary)
	if err != nil {
		return "", fmt.Errorf("player binary %q not found in PATH", s.Player.Binary)
	}
	return path, nil
}
