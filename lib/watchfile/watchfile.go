// Copyright 2026 The VideoWall Authors
// SPDX-License-Identifier: Apache-2.0

// Package watchfile watches a single file for content changes via
// inotify.
//
// The watch is installed on the parent directory rather than the file
// itself: editors save by writing a temporary file and renaming it
// over the target, which replaces the inode a file-level watch would
// be pinned to. Directory events (create, moved-to, close-write) are
// filtered by name, then deduplicated by content digest, so the
// multiple events one editor save produces collapse into a single
// notification — and a save that does not change bytes produces none.
package watchfile

import (
	"encoding/binary"
	"encoding/hex"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sync"

	"github.com/zeebo/blake3"
	"golang.org/x/sys/unix"
)

// Watcher reports content changes to one file.
type Watcher struct {
	logger *slog.Logger
	path   string
	target string

	changes  chan struct{}
	stop     chan struct{}
	stopOnce sync.Once

	lastDigest string
}

// Watch starts watching path. The file may not exist yet; its later
// creation counts as a change.
func Watch(logger *slog.Logger, path string) (*Watcher, error) {
	absolute, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("resolving %s: %w", path, err)
	}

	fd, err := unix.InotifyInit1(unix.IN_NONBLOCK | unix.IN_CLOEXEC)
	if err != nil {
		return nil, fmt.Errorf("inotify_init1: %w", err)
	}

	directory := filepath.Dir(absolute)
	_, err = unix.InotifyAddWatch(fd, directory, unix.IN_CREATE|unix.IN_MOVED_TO|unix.IN_CLOSE_WRITE)
	if err != nil {
		unix.Close(fd)
		return nil, fmt.Errorf("inotify_add_watch on %s: %w", directory, err)
	}

	watcher := &Watcher{
		logger:  logger,
		path:    absolute,
		target:  filepath.Base(absolute),
		changes: make(chan struct{}, 1),
		stop:    make(chan struct{}),
	}
	watcher.lastDigest, _ = fileDigest(absolute)

	go watcher.readLoop(fd)
	return watcher, nil
}

// Changes returns the notification channel. Sends are coalesced: a
// burst of edits while the consumer is busy yields one pending
// notification, and the consumer re-reads the file when it gets to it.
func (w *Watcher) Changes() <-chan struct{} {
	return w.changes
}

// Close stops the watcher. Safe to call multiple times.
func (w *Watcher) Close() {
	w.stopOnce.Do(func() { close(w.stop) })
}

// readLoop polls the inotify fd for directory events naming the
// target file. Uses poll(2) with a 100ms timeout so the goroutine
// remains responsive to Close without burning CPU on a tight loop.
func (w *Watcher) readLoop(fd int) {
	defer unix.Close(fd)

	buffer := make([]byte, 4096)
	for {
		select {
		case <-w.stop:
			return
		default:
		}

		pollDescriptors := []unix.PollFd{{Fd: int32(fd), Events: unix.POLLIN}}
		count, err := unix.Poll(pollDescriptors, 100)
		if err != nil {
			if err == unix.EINTR {
				continue
			}
			w.logger.Error("profile watch poll failed", "path", w.path, "error", err)
			return
		}
		if count == 0 {
			continue
		}

		bytesRead, err := unix.Read(fd, buffer)
		if err != nil {
			if err == unix.EAGAIN || err == unix.EINTR {
				continue
			}
			w.logger.Error("profile watch read failed", "path", w.path, "error", err)
			return
		}

		if eventsContainName(buffer[:bytesRead], w.target) {
			w.checkContent()
		}
	}
}

// checkContent compares the file's digest against the last seen one
// and posts a notification when it differs. A missing file (mid-
// rename, or deleted) is ignored; the replacing event follows.
func (w *Watcher) checkContent() {
	digest, ok := fileDigest(w.path)
	if !ok || digest == w.lastDigest {
		return
	}
	w.lastDigest = digest

	select {
	case w.changes <- struct{}{}:
	default:
	}
}

// fileDigest returns the content digest of path, or ok=false when the
// file cannot be read.
func fileDigest(path string) (string, bool) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", false
	}
	sum := blake3.Sum256(data)
	return hex.EncodeToString(sum[:]), true
}

// eventsContainName scans a buffer of raw inotify events for one whose
// name matches target.
//
// Inotify event layout (from inotify(7)):
//
//	struct inotify_event {
//	    int32_t  wd;     // offset 0
//	    uint32_t mask;   // offset 4
//	    uint32_t cookie; // offset 8
//	    uint32_t len;    // offset 12
//	    char     name[]; // offset 16, padded to alignment
//	};
func eventsContainName(buffer []byte, target string) bool {
	offset := 0
	for offset+unix.SizeofInotifyEvent <= len(buffer) {
		nameLength := int(binary.NativeEndian.Uint32(buffer[offset+12 : offset+16]))
		eventSize := unix.SizeofInotifyEvent + nameLength
		if offset+eventSize > len(buffer) {
			break
		}

		if nameLength > 0 {
			nameBytes := buffer[offset+unix.SizeofInotifyEvent : offset+eventSize]
			if nullTerminatedString(nameBytes) == target {
				return true
			}
		}

		offset += eventSize
	}
	return false
}

// nullTerminatedString extracts a string from a null-padded byte
// slice, stopping at the first null byte.
func nullTerminatedString(data []byte) string {
	for i, b := range data {
		if b == 0 {
			return string(data[:i])
		}
	}
	return string(data)
}
