// Copyright 2026 The VideoWall Authors
// SPDX-License-Identifier: Apache-2.0

package profile

import (
	"log/slog"
	"math"
	"os"
	"path/filepath"
	"strings"

	"github.com/tidwall/gjson"
	"github.com/tidwall/jsonc"
)

// Resolver extracts Profiles from operator-edited files.
type Resolver struct {
	logger *slog.Logger
}

// NewResolver returns a Resolver logging field fallbacks to logger.
func NewResolver(logger *slog.Logger) *Resolver {
	return &Resolver{logger: logger}
}

// Resolve reads the profile at path and returns it. It never fails:
// an unreadable file yields Default(), and each field is extracted
// independently so one malformed field falls back to its own default
// without affecting the rest. Comments and trailing commas in the
// file are tolerated.
func (r *Resolver) Resolve(path string) Profile {
	resolved := Default()

	data, err := os.ReadFile(ExpandHome(path))
	if err != nil {
		r.logger.Warn("profile not readable, using defaults",
			"path", path, "error", err)
		return resolved
	}
	document := string(jsonc.ToJSON(data))

	resolved.Name = r.stringField(document, "name", resolved.Name)
	resolved.VideoDirs = expandEach(r.stringArray(document, "video_dirs"))
	resolved.PlaylistMode = r.enumField(document, "playlist_mode", validPlaylistModes, resolved.PlaylistMode)
	resolved.Effects = r.stringArray(document, "effects")
	resolved.HUD.Position = r.enumField(document, "hud.position", validPositions, resolved.HUD.Position)
	resolved.HUD.Modules = r.stringArray(document, "hud.modules")
	resolved.Messages.IntervalSeconds = r.intField(document, "messages.interval", 0, resolved.Messages.IntervalSeconds)
	resolved.Messages.DurationSeconds = r.intField(document, "messages.duration", 1, resolved.Messages.DurationSeconds)
	resolved.Messages.MessageFile = ExpandHome(r.stringField(document, "messages.message_file", ""))
	resolved.Fonts.Primary = r.stringField(document, "fonts.primary", resolved.Fonts.Primary)
	resolved.Fonts.Fallback = r.stringArray(document, "fonts.fallback")
	resolved.Aspect = r.enumField(document, "aspect", validAspects, resolved.Aspect)

	return resolved
}

// stringField extracts a string value, falling back when the field is
// absent or not a string. Absence is normal (defaults are the
// mechanism, not an error); a present field with the wrong type is
// worth a warning.
func (r *Resolver) stringField(document, path, fallback string) string {
	result := gjson.Get(document, path)
	if !result.Exists() {
		return fallback
	}
	if result.Type != gjson.String {
		r.logger.Warn("profile field has wrong type, using default",
			"field", path, "default", fallback)
		return fallback
	}
	return result.String()
}

// enumField extracts a string restricted to a known value set. Values
// outside the set are treated like a wrong-typed field.
func (r *Resolver) enumField(document, path string, valid map[string]bool, fallback string) string {
	value := r.stringField(document, path, fallback)
	if !valid[value] {
		r.logger.Warn("profile field has unknown value, using default",
			"field", path, "value", value, "default", fallback)
		return fallback
	}
	return value
}

// intField extracts a non-fractional number no smaller than minimum.
func (r *Resolver) intField(document, path string, minimum, fallback int) int {
	result := gjson.Get(document, path)
	if !result.Exists() {
		return fallback
	}
	if result.Type != gjson.Number || result.Num != math.Trunc(result.Num) {
		r.logger.Warn("profile field is not an integer, using default",
			"field", path, "default", fallback)
		return fallback
	}
	value := int(result.Num)
	if value < minimum {
		r.logger.Warn("profile field below minimum, using default",
			"field", path, "value", value, "minimum", minimum, "default", fallback)
		return fallback
	}
	return value
}

// stringArray extracts the string elements of an array field. Absent
// or non-array fields yield an empty sequence; non-string elements
// are skipped individually.
func (r *Resolver) stringArray(document, path string) []string {
	result := gjson.Get(document, path)
	if !result.Exists() {
		return nil
	}
	if !result.IsArray() {
		r.logger.Warn("profile field is not an array, using empty list",
			"field", path)
		return nil
	}
	var values []string
	for _, element := range result.Array() {
		if element.Type != gjson.String {
			r.logger.Warn("skipping non-string array element", "field", path)
			continue
		}
		values = append(values, element.String())
	}
	return values
}

// ExpandHome expands a leading "~" or "$HOME" to the user's home
// directory. Unexpandable paths are returned unchanged — downstream
// readers degrade on open, which is the correct failure mode for
// every profile-supplied path.
func ExpandHome(path string) string {
	var rest string
	switch {
	case path == "~" || strings.HasPrefix(path, "~/"):
		rest = strings.TrimPrefix(path, "~")
	case path == "$HOME" || strings.HasPrefix(path, "$HOME/"):
		rest = strings.TrimPrefix(path, "$HOME")
	default:
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, strings.TrimPrefix(rest, "/"))
}

func expandEach(paths []string) []string {
	for i, path := range paths {
		paths[i] = ExpandHome(path)
	}
	return paths
}
