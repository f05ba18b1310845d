// Package testutil provides fixture builders and assertion helpers shared by
// tests across the module.
package testutil

import (
	"fmt"
	"sort"
	"strings"
)

// GraphHTML builds a contribution graph snippet with one cell per level,
// using inline fill styles the way github.com renders them.
func GraphHTML(levels map[int]string) string {
	keys := make([]int, 0, len(levels))
	for level := range levels {
		keys = append(keys, level)
	}
	sort.Ints(keys)

	var b strings.Builder
	b.WriteString("<svg>\n")
	for _, level := range keys {
		fmt.Fprintf(&b, "  <rect data-level=%q style=\"fill: %s\"></rect>\n", fmt.Sprint(level), levels[level])
	}
	b.WriteString("</svg>")

	return b.String()
}

// GraphWithHint wraps GraphHTML in a container carrying the data-holiday
// attribute GitHub sets during themed events.
func GraphWithHint(key string, levels map[int]string) string {
	return fmt.Sprintf("<div data-holiday=%q>\n%s\n</div>", key, GraphHTML(levels))
}

// ProfilePage embeds a contribution graph in a minimal profile document.
func ProfilePage(graph string) string {
	return "<html><body><div class=\"js-yearly-contributions\">" + graph + "</div></body></html>"
}
