// Copyright 2026 The VideoWall Authors
// SPDX-License-Identifier: Apache-2.0

package profileui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// Model is the top-level bubbletea model for the profile picker.
type Model struct {
	items   []Item
	theme   Theme
	keys    KeyMap
	preview PreviewRenderer

	// Terminal dimensions (set by WindowSizeMsg).
	width  int
	height int
	ready  bool

	// Filter state and the filtered view of items. visible always
	// reflects the current filter input; with an empty filter it
	// holds every item in id order.
	filter  FilterModel
	visible []FilterResult

	cursor       int
	scrollOffset int

	// choice is the id of the profile selected with enter, empty
	// until then. The launcher reads it via Choice after the
	// program exits.
	choice string
}

// NewModel creates a picker over the given items. Items are shown in
// the order given (LoadItems sorts by id).
func NewModel(items []Item) Model {
	model := Model{
		items:   items,
		theme:   DefaultTheme,
		keys:    DefaultKeyMap,
		preview: NewPreviewRenderer(DefaultTheme),
	}
	model.visible = model.filter.ApplyFuzzy(items)
	return model
}

// Choice returns the id of the profile chosen with enter, or empty
// when the picker was quit without choosing.
func (model Model) Choice() string {
	return model.choice
}

// Init implements tea.Model. The picker has no background work.
func (model Model) Init() tea.Cmd {
	return nil
}

func (model Model) Update(message tea.Msg) (tea.Model, tea.Cmd) {
	switch message := message.(type) {
	case tea.KeyMsg:
		// When filter is active, route all input to the filter first,
		// except for Esc (clear) and Enter (confirm and return to list).
		if model.filter.Active {
			return model.handleFilterKeys(message)
		}

		switch {
		case key.Matches(message, model.keys.Quit):
			return model, tea.Quit

		case key.Matches(message, model.keys.Choose):
			if len(model.visible) > 0 {
				model.choice = model.visible[model.cursor].Item.Entry.ID
				return model, tea.Quit
			}

		case key.Matches(message, model.keys.Up):
			model.moveCursor(-1)

		case key.Matches(message, model.keys.Down):
			model.moveCursor(1)

		case key.Matches(message, model.keys.PageUp):
			model.moveCursor(-model.listHeight())

		case key.Matches(message, model.keys.PageDown):
			model.moveCursor(model.listHeight())

		case key.Matches(message, model.keys.Home):
			model.cursor = 0
			model.scrollOffset = 0

		case key.Matches(message, model.keys.End):
			model.moveCursor(len(model.visible))

		case key.Matches(message, model.keys.FilterActivate):
			model.filter.Active = true
			// Reset list position to the top so the user sees
			// results from the beginning as they type.
			model.cursor = 0
			model.scrollOffset = 0

		case key.Matches(message, model.keys.FilterClear):
			if model.filter.Input != "" {
				model.filter.Clear()
				model.applyFilter()
			}
		}

	case tea.WindowSizeMsg:
		model.width = message.Width
		model.height = message.Height
		model.ready = true
		model.ensureCursorVisible()
	}
	return model, nil
}

// handleFilterKeys processes keystrokes while the filter input has
// focus.
func (model Model) handleFilterKeys(message tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(message, model.keys.Quit):
		// ctrl+c always quits, even in filter mode.
		if message.Type == tea.KeyCtrlC {
			return model, tea.Quit
		}
		// 'q' is a regular character in filter mode.
		model.filter.HandleRune('q')
		model.applyFilter()
		return model, nil

	case key.Matches(message, model.keys.FilterClear):
		// Esc: if there's filter text, clear it; if already empty,
		// exit filter mode.
		if model.filter.Input != "" {
			model.filter.Clear()
			model.applyFilter()
		} else {
			model.filter.Active = false
		}
		return model, nil

	case message.Type == tea.KeyEnter:
		// Confirm filter and return focus to the list.
		model.filter.Active = false
		return model, nil

	case message.Type == tea.KeyBackspace:
		if model.filter.HandleBackspace() {
			model.applyFilter()
		}
		return model, nil

	case message.Type == tea.KeyRunes || message.Type == tea.KeySpace:
		for _, r := range message.Runes {
			model.filter.HandleRune(r)
		}
		model.applyFilter()
		return model, nil
	}

	return model, nil
}

// applyFilter recomputes the visible list and snaps the cursor to the
// top so the best match is selected as the user types.
func (model *Model) applyFilter() {
	model.visible = model.filter.ApplyFuzzy(model.items)
	model.cursor = 0
	model.scrollOffset = 0
}

func (model *Model) moveCursor(delta int) {
	model.cursor += delta
	if model.cursor < 0 {
		model.cursor = 0
	}
	if model.cursor >= len(model.visible) {
		model.cursor = len(model.visible) - 1
	}
	if model.cursor < 0 {
		model.cursor = 0
	}
	model.ensureCursorVisible()
}

func (model *Model) ensureCursorVisible() {
	visibleRows := model.listHeight()
	if model.cursor < model.scrollOffset {
		model.scrollOffset = model.cursor
	}
	if model.cursor >= model.scrollOffset+visibleRows {
		model.scrollOffset = model.cursor - visibleRows + 1
	}
	if model.scrollOffset < 0 {
		model.scrollOffset = 0
	}
}

// listHeight is the number of rows available for profile entries:
// total height minus the header, separator, and help lines.
func (model Model) listHeight() int {
	rows := model.height - 3
	if rows < 1 {
		return 1
	}
	return rows
}

// listWidth is the left pane width. The preview takes the rest, less
// one column for the divider. Narrow terminals drop the preview
// entirely rather than squeezing both panes into unreadability.
func (model Model) listWidth() int {
	if !model.hasPreview() {
		return model.width
	}
	return model.width * 2 / 5
}

func (model Model) hasPreview() bool {
	return model.width-(model.width*2/5)-1 >= 24
}

func (model Model) View() string {
	if !model.ready {
		return "Loading..."
	}

	var sections []string

	// Top chrome line: either the header or the filter bar. The
	// filter bar replaces the header so the layout doesn't shift.
	filterView := model.filter.View(model.theme, model.width)
	if filterView != "" {
		sections = append(sections, filterView)
	} else {
		sections = append(sections, model.renderHeader())
	}

	contentHeight := model.listHeight()
	listView := model.renderList(contentHeight)
	if model.hasPreview() {
		previewWidth := model.width - model.listWidth() - 1
		divider := model.renderDivider(contentHeight)
		var previewView string
		if len(model.visible) > 0 {
			previewView = model.preview.Render(model.visible[model.cursor].Item, previewWidth, contentHeight)
		} else {
			previewView = model.preview.RenderEmpty(previewWidth, contentHeight)
		}
		sections = append(sections, lipgloss.JoinHorizontal(lipgloss.Top, listView, divider, previewView))
	} else {
		sections = append(sections, listView)
	}

	separator := lipgloss.NewStyle().
		Foreground(model.theme.BorderColor).
		Render(strings.Repeat("─", model.width))
	sections = append(sections, separator)
	sections = append(sections, model.renderHelp())

	return strings.Join(sections, "\n")
}

// renderHeader shows the picker title and the profile count,
// right-aligned. The header only appears with no filter in play (the
// filter bar replaces it otherwise), so the count is always the total.
func (model Model) renderHeader() string {
	title := lipgloss.NewStyle().
		Foreground(model.theme.HeaderForeground).
		Bold(true).
		Render(" VideoWall profiles")

	countView := lipgloss.NewStyle().
		Foreground(model.theme.FaintText).
		Render(fmt.Sprintf("%d profiles ", len(model.items)))

	padding := model.width - ansi.StringWidth(title) - ansi.StringWidth(countView)
	if padding < 1 {
		padding = 1
	}
	return title + strings.Repeat(" ", padding) + countView
}

// renderList renders the left pane as exactly contentHeight lines.
func (model Model) renderList(contentHeight int) string {
	width := model.listWidth()

	lines := make([]string, 0, contentHeight)
	if len(model.visible) == 0 {
		empty := lipgloss.NewStyle().
			Foreground(model.theme.FaintText).
			Render(" no profiles match the filter")
		lines = append(lines, ansi.Truncate(empty, width, "…"))
	}

	end := model.scrollOffset + contentHeight
	if end > len(model.visible) {
		end = len(model.visible)
	}
	for index := model.scrollOffset; index < end; index++ {
		lines = append(lines, model.renderRow(model.visible[index], index == model.cursor, width))
	}
	for len(lines) < contentHeight {
		lines = append(lines, strings.Repeat(" ", width))
	}
	return strings.Join(lines, "\n")
}

// renderRow renders one profile row: selection marker, display name
// with fuzzy-match highlighting, then the file id dimmed.
func (model Model) renderRow(result FilterResult, selected bool, width int) string {
	baseStyle := lipgloss.NewStyle().Foreground(model.theme.NormalText)
	matchStyle := lipgloss.NewStyle().Foreground(model.theme.MatchForeground).Bold(true)
	idStyle := lipgloss.NewStyle().Foreground(model.theme.FaintText)
	markerStyle := lipgloss.NewStyle().Foreground(model.theme.HeaderForeground)
	padStyle := lipgloss.NewStyle()

	marker := "  "
	if selected {
		marker = "▸ "
		baseStyle = baseStyle.
			Foreground(model.theme.SelectedForeground).
			Background(model.theme.SelectedBackground)
		matchStyle = matchStyle.Background(model.theme.SelectedBackground)
		idStyle = idStyle.Background(model.theme.SelectedBackground)
		markerStyle = markerStyle.Background(model.theme.SelectedBackground)
		padStyle = padStyle.Background(model.theme.SelectedBackground)
	}

	name := highlightName(result.Item.Profile.Name, result.NamePositions, baseStyle, matchStyle)
	row := markerStyle.Render(marker) + name + idStyle.Render("  "+result.Item.Entry.ID)
	row = ansi.Truncate(row, width, "…")

	if padding := width - ansi.StringWidth(row); padding > 0 {
		row += padStyle.Render(strings.Repeat(" ", padding))
	}
	return row
}

// renderDivider draws the vertical rule between the panes.
func (model Model) renderDivider(contentHeight int) string {
	column := make([]string, contentHeight)
	rule := lipgloss.NewStyle().Foreground(model.theme.BorderColor).Render("│")
	for i := range column {
		column[i] = rule
	}
	return strings.Join(column, "\n")
}

// renderHelp shows the key hints, plus matched/total while a filter
// narrows the list.
func (model Model) renderHelp() string {
	help := " enter launch · / filter · j/k move · q quit"
	if model.filter.Active {
		help = " type to filter · esc clear · enter confirm · ctrl+c quit"
	}
	if model.filter.Input != "" {
		help += fmt.Sprintf(" · %d/%d", len(model.visible), len(model.items))
	}
	return lipgloss.NewStyle().
		Foreground(model.theme.HelpText).
		Render(ansi.Truncate(help, model.width, "…"))
}

// highlightName renders a display name with character-level
// highlighting at the given rune positions. Consecutive runs of
// same-style characters are batched into a single Render call to keep
// ANSI output compact.
func highlightName(name string, positions []int, baseStyle, matchStyle lipgloss.Style) string {
	if len(positions) == 0 {
		return baseStyle.Render(name)
	}

	positionSet := make(map[int]bool, len(positions))
	for _, position := range positions {
		positionSet[position] = true
	}

	runes := []rune(name)
	var result strings.Builder
	runStart := 0
	highlighted := positionSet[0]

	for index := 1; index <= len(runes); index++ {
		current := index < len(runes) && positionSet[index]
		if current != highlighted || index == len(runes) {
			chunk := string(runes[runStart:index])
			if highlighted {
				result.WriteString(matchStyle.Render(chunk))
			} else {
				result.WriteString(baseStyle.Render(chunk))
			}
			runStart = index
			highlighted = current
		}
	}
	return result.String()
}
