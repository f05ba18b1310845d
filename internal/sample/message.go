package sample

import "strings"

// messagePatterns associates seasonal greeting phrases with theme keys.
// github.com has shown banners like "Happy Halloween!" above the graph during
// events; the phrase is a stronger signal than color sampling. Entries are
// scanned in order and the first matching phrase wins, so the more specific
// greetings are listed before the generic new-year ones.
var messagePatterns = []struct {
	theme    string
	patterns []string
}{
	{"halloween", []string{"happy halloween", "trick or treat", "🎃"}},
	{"christmas", []string{"merry christmas", "happy holidays", "season's greetings", "🎄"}},
	{"valentines", []string{"happy valentine", "valentine's day", "💝"}},
	{"pride", []string{"happy pride", "pride month", "🏳️‍🌈"}},
	{"thanksgiving", []string{"happy thanksgiving", "🦃"}},
	{"lunar_new_year", []string{"happy lunar new year", "lunar new year", "🧧"}},
	{"new_year", []string{"happy new year", "🎆"}},
}

// Message scans raw markup for a holiday greeting and returns the associated
// theme key. Matching is case-insensitive over the whole document.
func Message(html string) (string, bool) {
	lower := strings.ToLower(html)

	for _, entry := range messagePatterns {
		for _, pattern := range entry.patterns {
			if strings.Contains(lower, pattern) {
				return entry.theme, true
			}
		}
	}

	return "", false
}
