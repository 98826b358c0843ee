// Copyright 2026 The VideoWall Authors
// SPDX-License-Identifier: Apache-2.0

package profileui

import (
	"sort"

	"github.com/charmbracelet/lipgloss"
	"github.com/junegunn/fzf/src/util"
)

// FilterModel holds the fuzzy filter input state. The filter narrows
// the profile list client-side; the item set itself never changes
// while the picker runs.
type FilterModel struct {
	// Input is the current filter query text.
	Input string

	// Active is true when the filter input has keyboard focus
	// (the user pressed / to start typing).
	Active bool
}

// FilterResult is one profile that survived the filter, with its
// match quality and the rune positions to highlight in the display
// name. NamePositions is nil when the match came from the id or an
// effect rather than the name.
type FilterResult struct {
	Item          Item
	Score         int
	NamePositions []int
}

// ApplyFuzzy matches the current input against each item's display
// name, file id, and effect ids, keeping items where any field
// matches. Results are ordered best match first; ties keep the
// original (id-sorted) order. An empty input returns every item with
// a zero score.
func (filter *FilterModel) ApplyFuzzy(items []Item) []FilterResult {
	results := make([]FilterResult, 0, len(items))
	if filter.Input == "" {
		for _, item := range items {
			results = append(results, FilterResult{Item: item})
		}
		return results
	}

	pattern := []rune(filter.Input)
	slab := util.MakeSlab(slab16Size, slab32Size)

	for _, item := range items {
		nameMatch := FuzzyMatch(item.Profile.Name, pattern, slab)
		best := nameMatch.Score

		if idMatch := FuzzyMatch(item.Entry.ID, pattern, slab); idMatch.Score > best {
			best = idMatch.Score
		}
		for _, id := range item.Profile.Effects {
			if effectMatch := FuzzyMatch(id, pattern, slab); effectMatch.Score > best {
				best = effectMatch.Score
			}
		}

		if best <= 0 {
			continue
		}
		results = append(results, FilterResult{
			Item:          item,
			Score:         best,
			NamePositions: nameMatch.Positions,
		})
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Score > results[j].Score
	})
	return results
}

// HandleRune processes a character typed while the filter is active.
// Returns true if the input changed.
func (filter *FilterModel) HandleRune(character rune) bool {
	filter.Input += string(character)
	return true
}

// HandleBackspace removes the last character from the filter input.
// Returns true if the input changed.
func (filter *FilterModel) HandleBackspace() bool {
	if len(filter.Input) == 0 {
		return false
	}
	runes := []rune(filter.Input)
	filter.Input = string(runes[:len(runes)-1])
	return true
}

// Clear resets the filter input and deactivates it.
func (filter *FilterModel) Clear() {
	filter.Input = ""
	filter.Active = false
}

// View renders the filter bar. When active, shows the input with a
// cursor. When inactive with text, shows the filter text. When
// inactive with no text, returns empty string (hidden).
func (filter *FilterModel) View(theme Theme, width int) string {
	if !filter.Active && filter.Input == "" {
		return ""
	}

	style := lipgloss.NewStyle().
		Foreground(theme.NormalText).
		Width(width)

	if filter.Active {
		cursor := lipgloss.NewStyle().
			Foreground(theme.HeaderForeground).
			Bold(true).
			Render("▎")
		return style.Render(" / " + filter.Input + cursor)
	}

	// Inactive but has text — show the filter as a subtle indicator.
	dimStyle := lipgloss.NewStyle().
		Foreground(theme.FaintText).
		Width(width)
	return dimStyle.Render(" filter: " + filter.Input)
}
