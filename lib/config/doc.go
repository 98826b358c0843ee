// Copyright 2026 The VideoWall Authors
// SPDX-License-Identifier: Apache-2.0

// Package config loads the daemon-level settings file.
//
// Settings are distinct from display profiles: a profile describes what
// one wall looks like (HUD layout, effects, video directories) and is
// hot-reloadable, while settings describe how the daemon itself runs
// (player binary, socket paths, log level) and are read once at startup.
//
// The settings file is YAML, located via:
//   - VIDEOWALL_CONFIG environment variable, or
//   - ~/.config/videowall/config.yaml
//
// A missing file at the default location is not an error; the built-in
// defaults apply. A VIDEOWALL_CONFIG pointing at a missing file is an
// error, since the operator asked for that file explicitly.
//
// Values may reference environment variables with ${VAR} or
// ${VAR:-default}; expansion happens after the file is merged over the
// defaults, so defaults themselves can use it (the socket paths default
// under ${XDG_RUNTIME_DIR:-/tmp}).
package config
