package app

import (
	"fmt"
	"strings"

	"github.com/diverger/gh-holiday/internal/ui"
	"github.com/diverger/gh-holiday/internal/ui/theme"
)

func (m Model) View() string {
	var b strings.Builder

	b.WriteString(ui.TitleStyle.Render("gh-holiday palettes"))
	b.WriteString(ui.SubtitleStyle.Render(fmt.Sprintf("  (%s mode)", m.mode)))
	b.WriteString("\n\n")

	if m.filtering || m.filter.Value() != "" {
		b.WriteString(m.filter.View())
		b.WriteString("\n\n")
	}

	if len(m.visible) == 0 {
		b.WriteString(ui.SubtitleStyle.Render("no themes match the filter"))
		b.WriteString("\n")
	}

	for pos, idx := range m.visible {
		def := m.defs[idx]

		dots := def.LightDots
		primary := def.LightColor
		if m.mode == theme.Dark {
			dots = def.DarkDots
			primary = def.DarkColor
		}

		marker := "  "
		nameStyle := ui.NormalStyle
		if pos == m.cursor {
			marker = "> "
			nameStyle = ui.SelectedStyle
		}

		b.WriteString(marker)
		b.WriteString(nameStyle.Render(fmt.Sprintf("%-15s", def.Key)))
		b.WriteString(" ")
		b.WriteString(ui.SwatchRow(dots))
		b.WriteString(ui.Swatch(primary))
		b.WriteString(" ")
		b.WriteString(ui.SubtitleStyle.Render(def.Description))
		b.WriteString("\n")
	}

	if m.status != "" {
		b.WriteString("\n")
		b.WriteString(ui.StatusStyle.Render(m.status))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(m.helpView())

	return b.String()
}

func (m Model) helpView() string {
	parts := make([]string, 0, len(m.keys.ShortHelp()))
	for _, binding := range m.keys.ShortHelp() {
		parts = append(parts, fmt.Sprintf("%s %s", binding.Help().Key, binding.Help().Desc))
	}

	return ui.HelpStyle.Render(strings.Join(parts, " • "))
}
