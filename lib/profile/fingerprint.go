// Copyright 2026 The VideoWall Authors
// SPDX-License-Identifier: Apache-2.0

package profile

import (
	"encoding/hex"
	"os"

	"github.com/zeebo/blake3"
)

// Fingerprint returns a short hex digest of the file's raw bytes, or
// "" if the file is unreadable. The controller stores the active
// profile's fingerprint for status reporting, and the change watcher
// compares fingerprints to ignore editor save events that did not
// change content.
func Fingerprint(path string) string {
	data, err := os.ReadFile(ExpandHome(path))
	if err != nil {
		return ""
	}
	return FingerprintBytes(data)
}

// FingerprintBytes digests raw content. Eight bytes of BLAKE3 is
// plenty for change detection and keeps status output readable.
func FingerprintBytes(data []byte) string {
	sum := blake3.Sum256(data)
	return hex.EncodeToString(sum[:8])
}
