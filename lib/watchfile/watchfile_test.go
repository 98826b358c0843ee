// Copyright 2026 The VideoWall Authors
// SPDX-License-Identifier: Apache-2.0

package watchfile

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/videowall-foundation/videowall/lib/testutil"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func startWatcher(t *testing.T, path string) *Watcher {
	t.Helper()
	watcher, err := Watch(testLogger(), path)
	if err != nil {
		t.Fatalf("Watch: %v", err)
	}
	t.Cleanup(watcher.Close)
	return watcher
}

func requireQuiet(t *testing.T, watcher *Watcher) {
	t.Helper()
	select {
	case <-watcher.Changes():
		t.Fatal("unexpected change notification")
	case <-time.After(300 * time.Millisecond):
	}
}

func TestContentChangeNotifies(t *testing.T) {
	path := filepath.Join(t.TempDir(), "profile.json")
	if err := os.WriteFile(path, []byte(`{"name": "one"}`), 0o644); err != nil {
		t.Fatal(err)
	}
	watcher := startWatcher(t, path)

	if err := os.WriteFile(path, []byte(`{"name": "two"}`), 0o644); err != nil {
		t.Fatal(err)
	}
	testutil.RequireReceive(t, watcher.Changes(), 5*time.Second, "waiting for change notification")
}

func TestIdenticalContentIgnored(t *testing.T) {
	path := filepath.Join(t.TempDir(), "profile.json")
	content := []byte(`{"name": "same"}`)
	if err := os.WriteFile(path, content, 0o644); err != nil {
		t.Fatal(err)
	}
	watcher := startWatcher(t, path)

	// Rewriting identical bytes fires inotify but must not notify.
	if err := os.WriteFile(path, content, 0o644); err != nil {
		t.Fatal(err)
	}
	requireQuiet(t, watcher)

	// A real change afterwards still comes through.
	if err := os.WriteFile(path, []byte(`{"name": "different"}`), 0o644); err != nil {
		t.Fatal(err)
	}
	testutil.RequireReceive(t, watcher.Changes(), 5*time.Second, "waiting for change after identical write")
}

func TestEditorStyleRenameNotifies(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "profile.json")
	if err := os.WriteFile(path, []byte("v1"), 0o644); err != nil {
		t.Fatal(err)
	}
	watcher := startWatcher(t, path)

	// Editors write a temp file and rename it over the target.
	temp := filepath.Join(dir, ".profile.json.swp")
	if err := os.WriteFile(temp, []byte("v2"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.Rename(temp, path); err != nil {
		t.Fatal(err)
	}
	testutil.RequireReceive(t, watcher.Changes(), 5*time.Second, "waiting for rename notification")
}

func TestSiblingFilesIgnored(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "profile.json")
	if err := os.WriteFile(path, []byte("v1"), 0o644); err != nil {
		t.Fatal(err)
	}
	watcher := startWatcher(t, path)

	if err := os.WriteFile(filepath.Join(dir, "other.json"), []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}
	requireQuiet(t, watcher)
}

func TestFileCreatedAfterWatch(t *testing.T) {
	path := filepath.Join(t.TempDir(), "profile.json")
	watcher := startWatcher(t, path)

	if err := os.WriteFile(path, []byte(`{"name": "born"}`), 0o644); err != nil {
		t.Fatal(err)
	}
	testutil.RequireReceive(t, watcher.Changes(), 5*time.Second, "waiting for creation notification")
}

func TestCloseIsIdempotent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "profile.json")
	if err := os.WriteFile(path, []byte("v1"), 0o644); err != nil {
		t.Fatal(err)
	}
	watcher := startWatcher(t, path)

	watcher.Close()
	watcher.Close()
}
