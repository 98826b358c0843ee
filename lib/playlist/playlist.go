// Copyright 2026 The VideoWall Authors
// SPDX-License-Identifier: Apache-2.0

// Package playlist builds the video playlist handed to the player at
// launch. It walks the profile's video directories for playable files,
// orders them per the profile's playlist mode, and writes the M3U file
// the player is pointed at.
package playlist

import (
	"fmt"
	"io/fs"
	"log/slog"
	"math/rand"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/videowall-foundation/videowall/lib/profile"
)

// videoExtensions lists the container formats considered playable.
// Matching is case-insensitive.
var videoExtensions = map[string]bool{
	".mkv":  true,
	".mp4":  true,
	".webm": true,
	".avi":  true,
	".mov":  true,
	".m2ts": true,
}

// Builder collects video files into playlists.
type Builder struct {
	logger *slog.Logger
	random *rand.Rand
}

// NewBuilder returns a Builder. Shuffle order is seeded from the wall
// clock so each launch of a random-mode profile plays differently.
func NewBuilder(logger *slog.Logger) *Builder {
	return &Builder{
		logger: logger,
		random: rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// Build walks dirs for playable video files and returns their absolute
// paths ordered per mode: profile.PlaylistOrdered sorts lexically,
// profile.PlaylistRandom shuffles. Directories that cannot be read are
// logged and skipped; dot-entries are ignored. Duplicate paths reached
// through overlapping directories appear once. An empty result is an
// error: the player would sit on a black screen with nothing to loop.
func (b *Builder) Build(dirs []string, mode string) ([]string, error) {
	if len(dirs) == 0 {
		return nil, fmt.Errorf("no video directories configured")
	}

	seen := make(map[string]bool)
	var files []string

	for _, dir := range dirs {
		err := filepath.WalkDir(dir, func(path string, entry fs.DirEntry, err error) error {
			if err != nil {
				b.logger.Warn("skipping unreadable path", "path", path, "error", err)
				if entry != nil && entry.IsDir() {
					return fs.SkipDir
				}
				return nil
			}
			if strings.HasPrefix(entry.Name(), ".") {
				if entry.IsDir() {
					return fs.SkipDir
				}
				return nil
			}
			if entry.IsDir() {
				return nil
			}
			if !videoExtensions[strings.ToLower(filepath.Ext(path))] {
				return nil
			}
			absolute, err := filepath.Abs(path)
			if err != nil {
				return fmt.Errorf("resolving %s: %w", path, err)
			}
			if seen[absolute] {
				return nil
			}
			seen[absolute] = true
			files = append(files, absolute)
			return nil
		})
		if err != nil {
			return nil, fmt.Errorf("walking %s: %w", dir, err)
		}
	}

	if len(files) == 0 {
		return nil, fmt.Errorf("no playable video files under %s", strings.Join(dirs, ", "))
	}

	switch mode {
	case profile.PlaylistRandom:
		b.random.Shuffle(len(files), func(i, j int) {
			files[i], files[j] = files[j], files[i]
		})
	default:
		sort.Strings(files)
	}

	return files, nil
}

// WriteM3U writes entries as an extended M3U playlist at path.
func WriteM3U(path string, entries []string) error {
	var builder strings.Builder
	builder.WriteString("#EXTM3U\n")
	for _, entry := range entries {
		builder.WriteString(entry)
		builder.WriteByte('\n')
	}
	if err := os.WriteFile(path, []byte(builder.String()), 0o644); err != nil {
		return fmt.Errorf("writing playlist: %w", err)
	}
	return nil
}
