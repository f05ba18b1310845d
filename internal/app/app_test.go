package app

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/diverger/gh-holiday/internal/themes"
	"github.com/diverger/gh-holiday/internal/ui/theme"
)

func keyMsg(s string) tea.KeyMsg {
	switch s {
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	}

	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func press(t *testing.T, m Model, keys ...string) Model {
	t.Helper()

	for _, k := range keys {
		next, _ := m.Update(keyMsg(k))

		var ok bool
		m, ok = next.(Model)
		if !ok {
			t.Fatalf("Update returned %T, want app.Model", next)
		}
	}

	return m
}

func TestNewShowsAllThemes(t *testing.T) {
	m := New()

	if len(m.visible) != len(themes.All()) {
		t.Fatalf("visible = %d, want %d", len(m.visible), len(themes.All()))
	}
	if m.cursor != 0 {
		t.Fatalf("cursor = %d, want 0", m.cursor)
	}

	def, ok := m.Selected()
	if !ok {
		t.Fatal("Selected() reported no selection")
	}
	if def.Key != themes.All()[0].Key {
		t.Fatalf("Selected() = %q, want %q", def.Key, themes.All()[0].Key)
	}
}

func TestCursorMovement(t *testing.T) {
	m := New()

	m = press(t, m, "j", "down")
	if m.cursor != 2 {
		t.Fatalf("cursor after two downs = %d, want 2", m.cursor)
	}

	m = press(t, m, "k")
	if m.cursor != 1 {
		t.Fatalf("cursor after up = %d, want 1", m.cursor)
	}

	// Never moves above the first row.
	m = press(t, m, "up", "up", "up")
	if m.cursor != 0 {
		t.Fatalf("cursor clamped = %d, want 0", m.cursor)
	}
}

func TestCursorStopsAtLastRow(t *testing.T) {
	m := New()

	for range m.defs {
		m = press(t, m, "j")
	}

	if m.cursor != len(m.visible)-1 {
		t.Fatalf("cursor = %d, want %d", m.cursor, len(m.visible)-1)
	}
}

func TestFilterNarrowsList(t *testing.T) {
	m := New()

	m = press(t, m, "/")
	if !m.filtering {
		t.Fatal("expected filtering after '/'")
	}

	m = press(t, m, "h", "a", "l", "l", "o")
	if len(m.visible) == 0 {
		t.Fatal("filter 'hallo' matched nothing")
	}

	def, ok := m.Selected()
	if !ok {
		t.Fatal("Selected() reported no selection")
	}
	if def.Key != "halloween" {
		t.Fatalf("Selected() = %q, want halloween", def.Key)
	}

	// Enter commits the filter and returns to browsing.
	m = press(t, m, "enter")
	if m.filtering {
		t.Fatal("still filtering after enter")
	}
	if def, _ := m.Selected(); def.Key != "halloween" {
		t.Fatalf("filter lost on commit, Selected() = %q", def.Key)
	}
}

func TestEscapeClearsFilter(t *testing.T) {
	m := New()

	m = press(t, m, "/", "p", "r", "i", "d", "e")
	if len(m.visible) == len(m.defs) {
		t.Fatal("filter had no effect")
	}

	m = press(t, m, "esc")
	if m.filtering {
		t.Fatal("still filtering after esc")
	}
	if len(m.visible) != len(m.defs) {
		t.Fatalf("visible = %d after esc, want %d", len(m.visible), len(m.defs))
	}
}

func TestModeToggle(t *testing.T) {
	m := New()
	start := m.mode

	m = press(t, m, "d")
	if m.mode != start.Toggle() {
		t.Fatalf("mode = %v after toggle, want %v", m.mode, start.Toggle())
	}

	m = press(t, m, "d")
	if m.mode != start {
		t.Fatalf("mode = %v after double toggle, want %v", m.mode, start)
	}
}

func TestViewListsThemes(t *testing.T) {
	m := New()
	m.mode = theme.Light

	view := m.View()

	for _, def := range themes.All() {
		if !strings.Contains(view, def.Key) {
			t.Errorf("view missing theme %q", def.Key)
		}
	}

	if !strings.Contains(view, "quit") {
		t.Error("view missing help footer")
	}
}
