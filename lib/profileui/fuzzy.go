// Copyright 2026 The VideoWall Authors
// SPDX-License-Identifier: Apache-2.0

package profileui

import (
	"slices"
	"unicode"

	"github.com/junegunn/fzf/src/algo"
	"github.com/junegunn/fzf/src/util"
)

// Slab sizes for the fzf scoring matrix, matching the allocation fzf
// itself uses per worker. One slab serves a whole ApplyFuzzy pass.
const (
	slab16Size = 100 * 1024
	slab32Size = 2048
)

// The fzf matcher keeps its case-folding and bonus tables in package
// state that algo.Init populates; until it runs, uppercase text never
// matches a lowercased pattern. "default" is the scheme whose
// word-boundary bonuses the FuzzyMatch contract describes.
func init() {
	algo.Init("default")
}

// FuzzyResult is the outcome of matching a pattern against one text.
// A zero result means no match: Score is always positive when the
// pattern matched.
type FuzzyResult struct {
	// Score is the fzf match quality. Higher is better; contiguous
	// matches at word boundaries score above scattered ones.
	Score int

	// Positions are the matched rune indices into the text, in
	// ascending order.
	Positions []int
}

// FuzzyMatch runs the fzf FuzzyMatchV2 algorithm case-insensitively.
// The pattern is lowercased here and the algorithm folds the text, so
// callers can pass user input verbatim. A nil slab is allowed; pass a
// shared slab when matching many texts in a loop.
func FuzzyMatch(text string, pattern []rune, slab *util.Slab) FuzzyResult {
	if len(pattern) == 0 {
		return FuzzyResult{}
	}

	lowered := make([]rune, len(pattern))
	for i, r := range pattern {
		lowered[i] = unicode.ToLower(r)
	}

	chars := util.ToChars([]byte(text))
	result, positions := algo.FuzzyMatchV2(false, false, true, &chars, lowered, true, slab)
	if result.Score <= 0 {
		return FuzzyResult{}
	}

	match := FuzzyResult{Score: result.Score}
	if positions != nil {
		// The algorithm reports positions from its backward pass;
		// sort them so highlighting can walk the text forward.
		match.Positions = slices.Clone(*positions)
		slices.Sort(match.Positions)
	}
	return match
}
