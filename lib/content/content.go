// Copyright 2026 The VideoWall Authors
// SPDX-License-Identifier: Apache-2.0

// Package content provides the embedded default content: starter
// profiles, a message file, filter preset notes, shader sources, and
// the systemd unit. Profile files are JSONC (JSON with comments and
// trailing commas), same as operator-edited profiles.
//
// Files are embedded at compile time via go:embed. The primary
// consumer is "videowall setup", which installs them into the config
// tree without overwriting operator edits.
package content

import (
	"embed"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/tidwall/gjson"
	"github.com/tidwall/jsonc"
)

//go:embed profiles/*.json
var profileFiles embed.FS

//go:embed messages/default.txt
var messageFiles embed.FS

//go:embed presets/*.conf shaders/*.glsl
var extraFiles embed.FS

// Profile is one embedded profile with its id (derived from the
// filename), display name, and raw JSONC source.
type Profile struct {
	// ID is the filename without extension, matching what --profile
	// accepts after extraction.
	ID string

	// Name is the display name from the file's name field, or the ID
	// when absent.
	Name string

	// Data is the raw JSONC source, written verbatim on extraction so
	// the installed file keeps its comments.
	Data []byte
}

// Profiles returns all embedded profiles. An error here indicates a
// bug in the embedded content, not a runtime condition.
func Profiles() ([]Profile, error) {
	entries, err := profileFiles.ReadDir("profiles")
	if err != nil {
		return nil, fmt.Errorf("reading embedded profiles directory: %w", err)
	}

	var profiles []Profile
	for _, entry := range entries {
		if entry.IsDir() || filepath.Ext(entry.Name()) != ".json" {
			continue
		}

		data, err := profileFiles.ReadFile("profiles/" + entry.Name())
		if err != nil {
			return nil, fmt.Errorf("reading embedded profile %s: %w", entry.Name(), err)
		}

		id := strings.TrimSuffix(entry.Name(), ".json")
		name := id
		if result := gjson.Get(string(jsonc.ToJSON(data)), "name"); result.Type == gjson.String {
			name = result.String()
		}

		profiles = append(profiles, Profile{ID: id, Name: name, Data: data})
	}
	return profiles, nil
}

// DefaultMessages returns the embedded default message file.
func DefaultMessages() string {
	data, err := messageFiles.ReadFile("messages/default.txt")
	if err != nil {
		// Embedded at compile time; a read failure here is a build bug.
		panic("embedded default.txt missing: " + err.Error())
	}
	return string(data)
}

// Extract installs the embedded profiles and message file into the
// given directories. Existing files are never overwritten: operator
// edits to an extracted default win over the shipped version.
func Extract(logger *slog.Logger, profilesDir, messagesDir string) error {
	if err := os.MkdirAll(profilesDir, 0o755); err != nil {
		return fmt.Errorf("creating %s: %w", profilesDir, err)
	}
	if err := os.MkdirAll(messagesDir, 0o755); err != nil {
		return fmt.Errorf("creating %s: %w", messagesDir, err)
	}

	profiles, err := Profiles()
	if err != nil {
		return err
	}
	for _, embedded := range profiles {
		target := filepath.Join(profilesDir, embedded.ID+".json")
		if _, err := os.Stat(target); err == nil {
			logger.Debug("keeping existing profile", "path", target)
			continue
		}
		if err := os.WriteFile(target, embedded.Data, 0o644); err != nil {
			return fmt.Errorf("installing profile %s: %w", embedded.ID, err)
		}
		logger.Info("installed default profile", "id", embedded.ID, "name", embedded.Name)
	}

	target := filepath.Join(messagesDir, "default.txt")
	if _, err := os.Stat(target); err == nil {
		logger.Debug("keeping existing message file", "path", target)
		return nil
	}
	if err := os.WriteFile(target, []byte(DefaultMessages()), 0o644); err != nil {
		return fmt.Errorf("installing default messages: %w", err)
	}
	logger.Info("installed default message file", "path", target)
	return nil
}

// ExtractExtras installs the filter preset notes and shader sources
// under rootDir (presets/ and shaders/ subdirectories). Same
// no-overwrite rule as Extract. These are operator reference material
// and raw material for player extra args; nothing in the daemon reads
// them.
func ExtractExtras(logger *slog.Logger, rootDir string) error {
	for _, subdir := range []string{"presets", "shaders"} {
		targetDir := filepath.Join(rootDir, subdir)
		if err := os.MkdirAll(targetDir, 0o755); err != nil {
			return fmt.Errorf("creating %s: %w", targetDir, err)
		}

		entries, err := extraFiles.ReadDir(subdir)
		if err != nil {
			return fmt.Errorf("reading embedded %s directory: %w", subdir, err)
		}
		for _, entry := range entries {
			if entry.IsDir() {
				continue
			}
			data, err := extraFiles.ReadFile(subdir + "/" + entry.Name())
			if err != nil {
				return fmt.Errorf("reading embedded %s/%s: %w", subdir, entry.Name(), err)
			}

			target := filepath.Join(targetDir, entry.Name())
			if _, err := os.Stat(target); err == nil {
				logger.Debug("keeping existing file", "path", target)
				continue
			}
			if err := os.WriteFile(target, data, 0o644); err != nil {
				return fmt.Errorf("installing %s/%s: %w", subdir, entry.Name(), err)
			}
			logger.Info("installed", "path", target)
		}
	}
	return nil
}
