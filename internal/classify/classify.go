// Package classify matches sampled contribution-graph palettes against known
// holiday color fingerprints.
//
// Fingerprints are short hex substrings empirically tied to the palettes
// github.com has shipped for each event. The approach is deliberately loose:
// it tolerates minor palette variations but must be kept in sync with the
// upstream rendering, and it produces no signal at all rather than guessing.
package classify

import (
	"sort"
	"strings"
	"time"
)

// Palette maps a contribution intensity level (0-4) to a normalized lowercase
// hex color. A palette is built once per detection run and discarded.
type Palette map[int]string

// Levels returns the sampled levels in ascending order.
func (p Palette) Levels() []int {
	levels := make([]int, 0, len(p))
	for level := range p {
		levels = append(levels, level)
	}

	sort.Ints(levels)

	return levels
}

// Colors returns the sampled colors ordered by level.
func (p Palette) Colors() []string {
	colors := make([]string, 0, len(p))
	for _, level := range p.Levels() {
		colors = append(colors, p[level])
	}

	return colors
}

// Join concatenates all sampled colors into one lowercase blob for substring
// fingerprint tests.
func (p Palette) Join() string {
	return strings.ToLower(strings.Join(p.Colors(), ""))
}

// MinColors is the minimum number of distinct sampled levels required before
// fingerprint matching is attempted. Below this the sample is too sparse to
// distinguish a themed palette from a partially rendered default one.
const MinColors = 3

// Fingerprint families. Sourced from observed holiday palettes; pure black is
// never listed because the sampler treats it as unset.
var (
	orangeFingerprints = []string{"fb85", "d471", "bc4c", "fa7a", "ffc501", "ffee4a", "631c03", "bd561d"}
	redFingerprints    = []string{"dc143c", "8b0000", "ff0000", "e60000", "b22222", "ff6347"}
	greenFingerprints  = []string{"006400", "228b22", "008000", "44a340", "239a3b", "7bc96f"}
	pinkFingerprints   = []string{"ff69b4", "ff1493", "ffb6c1", "db7093", "ffc0cb"}
	purpleFingerprints = []string{"800080", "9932cc", "8a2be2", "b026ff", "6e40c9"}
)

func containsAny(blob string, fingerprints []string) bool {
	for _, fp := range fingerprints {
		if strings.Contains(blob, fp) {
			return true
		}
	}

	return false
}

// Match classifies a sampled palette against the known fingerprint families.
// Priority is absolute and order-dependent:
//
//  1. any orange fingerprint -> halloween
//  2. red AND green fingerprints -> christmas
//  3. pink or purple fingerprints -> disambiguated by month: February ->
//     valentines, January -> lunar_new_year, June -> pride
//
// Palettes with fewer than MinColors distinct levels never match. A non-match
// is a valid "no signal" outcome, not an error.
func Match(p Palette, now time.Time) (string, bool) {
	if len(p) < MinColors {
		return "", false
	}

	blob := p.Join()

	if containsAny(blob, orangeFingerprints) {
		return "halloween", true
	}

	if containsAny(blob, redFingerprints) && containsAny(blob, greenFingerprints) {
		return "christmas", true
	}

	if containsAny(blob, pinkFingerprints) || containsAny(blob, purpleFingerprints) {
		switch now.Month() {
		case time.February:
			return "valentines", true
		case time.January:
			return "lunar_new_year", true
		case time.June:
			return "pride", true
		}
	}

	return "", false
}

// Stock github.com contribution level palettes, used only for diagnostics.
var (
	defaultLightPalette = []string{"#ebedf0", "#9be9a8", "#40c463", "#30a14e", "#216e39"}
	defaultDarkPalette  = []string{"#161b22", "#0e4429", "#006d32", "#26a641", "#39d353"}
)

// DefaultPaletteOverlap counts how many sampled colors belong to the stock
// light and dark level palettes. High overlap means the page is rendering the
// ordinary green theme.
func DefaultPaletteOverlap(colors []string) (light, dark int) {
	seen := make(map[string]bool, len(colors))
	for _, c := range colors {
		seen[strings.ToLower(c)] = true
	}

	for _, c := range defaultLightPalette {
		if seen[c] {
			light++
		}
	}

	for _, c := range defaultDarkPalette {
		if seen[c] {
			dark++
		}
	}

	return light, dark
}
