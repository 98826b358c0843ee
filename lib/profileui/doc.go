// Copyright 2026 The VideoWall Authors
// SPDX-License-Identifier: Apache-2.0

// Package profileui implements the full-screen profile picker used by
// the videowall-launcher binary.
//
// The picker is a bubbletea program with two panes: a fuzzy-filterable
// list of the profiles found in the profiles directory on the left,
// and a preview of the selected profile on the right. The preview
// shows the fully resolved profile — display name, palette swatches,
// effect chain, HUD layout, message rotation, playlist sources — so
// an operator can see what a profile does before launching it.
//
// Selection ends the program: the launcher reads Model.Choice after
// tea.Program.Run returns and exec()s `videowall run --profile <id>`
// in place. Quitting without a selection leaves Choice empty.
//
// Filtering uses the fzf match algorithm (FuzzyMatchV2) over the
// profile display name, the file id, and the effect ids, so typing
// "vhs" surfaces every tape-era profile regardless of its name.
package profileui
