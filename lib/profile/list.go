// Copyright 2026 The VideoWall Authors
// SPDX-License-Identifier: Apache-2.0

package profile

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/tidwall/gjson"
	"github.com/tidwall/jsonc"
)

// Entry is one profile file in the profiles directory.
type Entry struct {
	// ID is the filename without extension; it is what --profile and
	// the control socket's set-profile verb accept.
	ID string

	// Name is the display name from the file, or the ID when the
	// file does not carry one.
	Name string

	// Path is the absolute file path.
	Path string
}

// List enumerates the *.json profiles in dir, sorted by ID. Display
// names are extracted leniently: a file whose name field is missing
// or broken still lists under its ID. An unreadable directory is an
// error — unlike a broken profile, it means there is nothing to
// choose from at all.
func List(dir string) ([]Entry, error) {
	expanded := ExpandHome(dir)
	dirEntries, err := os.ReadDir(expanded)
	if err != nil {
		return nil, fmt.Errorf("reading profiles directory: %w", err)
	}

	var entries []Entry
	for _, dirEntry := range dirEntries {
		if dirEntry.IsDir() || !strings.HasSuffix(dirEntry.Name(), ".json") {
			continue
		}
		path := filepath.Join(expanded, dirEntry.Name())
		id := strings.TrimSuffix(dirEntry.Name(), ".json")

		name := id
		if data, err := os.ReadFile(path); err == nil {
			if result := gjson.Get(string(jsonc.ToJSON(data)), "name"); result.Type == gjson.String {
				name = result.String()
			}
		}
		entries = append(entries, Entry{ID: id, Name: name, Path: path})
	}

	sort.Slice(entries, func(i, j int) bool { return entries[i].ID < entries[j].ID })
	return entries, nil
}

// Find returns the entry whose ID matches id.
func Find(dir, id string) (Entry, error) {
	entries, err := List(dir)
	if err != nil {
		return Entry{}, err
	}
	for _, entry := range entries {
		if entry.ID == id {
			return entry, nil
		}
	}
	return Entry{}, fmt.Errorf("profile %q not found in %s", id, dir)
}
