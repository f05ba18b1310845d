// Package app implements the interactive palette preview: a scrollable list
// of every theme definition with its light and dark swatches.
package app

import (
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/sahilm/fuzzy"

	"github.com/diverger/gh-holiday/internal/themes"
	"github.com/diverger/gh-holiday/internal/ui/theme"
)

// Model is the bubbletea model for the preview.
type Model struct {
	keys      KeyMap
	filter    textinput.Model
	filtering bool

	defs    []themes.Definition
	visible []int // indices into defs, in display order
	cursor  int

	mode   theme.Mode
	status string

	width  int
	height int
}

// New creates the preview model over the full definitions table.
func New() Model {
	filter := textinput.New()
	filter.Placeholder = "filter themes"
	filter.Prompt = "/ "
	filter.CharLimit = 40

	m := Model{
		keys:   DefaultKeyMap(),
		filter: filter,
		defs:   themes.All(),
		mode:   theme.Detect(),
	}

	m.applyFilter()

	return m
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

		return m, nil

	case tea.KeyMsg:
		if m.filtering {
			return m.updateFiltering(msg)
		}

		return m.updateBrowsing(msg)
	}

	return m, nil
}

func (m Model) updateFiltering(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.filtering = false
		m.filter.SetValue("")
		m.filter.Blur()
		m.applyFilter()

		return m, nil

	case "enter":
		m.filtering = false
		m.filter.Blur()

		return m, nil

	case "ctrl+c":
		return m, tea.Quit
	}

	var cmd tea.Cmd
	m.filter, cmd = m.filter.Update(msg)
	m.applyFilter()

	return m, cmd
}

func (m Model) updateBrowsing(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}

	case key.Matches(msg, m.keys.Down):
		if m.cursor < len(m.visible)-1 {
			m.cursor++
		}

	case key.Matches(msg, m.keys.Filter):
		m.filtering = true
		m.status = ""

		return m, m.filter.Focus()

	case key.Matches(msg, m.keys.Escape):
		m.filter.SetValue("")
		m.applyFilter()

	case key.Matches(msg, m.keys.Mode):
		m.mode = m.mode.Toggle()

	case key.Matches(msg, m.keys.Copy):
		m.status = m.copySelected()
	}

	return m, nil
}

// applyFilter recomputes the visible definitions from the filter text and
// clamps the cursor.
func (m *Model) applyFilter() {
	pattern := strings.TrimSpace(m.filter.Value())

	if pattern == "" {
		m.visible = make([]int, len(m.defs))
		for i := range m.defs {
			m.visible[i] = i
		}
	} else {
		names := make([]string, len(m.defs))
		for i, def := range m.defs {
			names[i] = def.Key + " " + def.Description
		}

		matches := fuzzy.Find(pattern, names)

		m.visible = make([]int, 0, len(matches))
		for _, match := range matches {
			m.visible = append(m.visible, match.Index)
		}
	}

	if m.cursor >= len(m.visible) {
		m.cursor = len(m.visible) - 1
	}

	if m.cursor < 0 {
		m.cursor = 0
	}
}

// Selected returns the definition under the cursor.
func (m Model) Selected() (themes.Definition, bool) {
	if len(m.visible) == 0 {
		return themes.Definition{}, false
	}

	return m.defs[m.visible[m.cursor]], true
}

func (m Model) copySelected() string {
	def, ok := m.Selected()
	if !ok {
		return "nothing to copy"
	}

	dots := def.LightDots
	if m.mode == theme.Dark {
		dots = def.DarkDots
	}

	if err := clipboard.WriteAll(strings.Join(dots, ", ")); err != nil {
		return "copy failed: " + err.Error()
	}

	return "copied " + def.Key + " " + m.mode.String() + " palette"
}
