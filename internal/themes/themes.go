// Package themes defines the closed table of holiday palette definitions and the
// synthetic default entry used when no holiday is active.
package themes

import (
	"sort"
	"strings"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// DefaultKey identifies the synthetic "no holiday" definition.
const DefaultKey = "none"

// Definition is an immutable palette record for one supported theme.
// LightColor/DarkColor are the primary (snake) colors per mode; LightDots/DarkDots
// are the ordered accent gradients used for contribution dots.
type Definition struct {
	Key         string
	Description string
	LightColor  string
	DarkColor   string
	LightDots   []string
	DarkDots    []string
}

// table is the full set of supported definitions. It is populated once at init
// and never mutated afterwards. Keys referenced by the classifier, the message
// scanner, and the calendar ranges must all resolve here.
var table = map[string]Definition{
	DefaultKey: {
		Key:         DefaultKey,
		Description: "Default GitHub Theme",
		LightColor:  "#40c463",
		DarkColor:   "#26a641",
		LightDots:   []string{"#ebedf0", "#9be9a8", "#40c463", "#30a14e", "#216e39"},
		DarkDots:    []string{"#161b22", "#0e4429", "#006d32", "#26a641", "#39d353"},
	},
	"halloween": {
		Key:         "halloween",
		Description: "Halloween Theme (Orange & Black)",
		LightColor:  "#fb8500",
		DarkColor:   "#fa7a18",
		LightDots:   []string{"#ffee4a", "#ffc501", "#fb8500", "#d47100", "#bc4c00"},
		DarkDots:    []string{"#631c03", "#bd561d", "#fa7a18", "#fddf68", "#ffee4a"},
	},
	"christmas": {
		Key:         "christmas",
		Description: "Christmas Theme (Red & Green)",
		LightColor:  "#dc143c",
		DarkColor:   "#ff6347",
		LightDots:   []string{"#c6e48b", "#7bc96f", "#239a3b", "#dc143c", "#8b0000"},
		DarkDots:    []string{"#0e4429", "#006d32", "#26a641", "#dc143c", "#ff6347"},
	},
	"lunar_new_year": {
		Key:         "lunar_new_year",
		Description: "Lunar New Year Theme (Red & Gold)",
		LightColor:  "#ff0000",
		DarkColor:   "#ffd700",
		LightDots:   []string{"#ffd700", "#ffa500", "#ff6347", "#ff0000", "#dc143c"},
		DarkDots:    []string{"#8b0000", "#dc143c", "#ff0000", "#ff6347", "#ffd700"},
	},
	"valentines": {
		Key:         "valentines",
		Description: "Valentine's Day Theme (Pink & Red)",
		LightColor:  "#ff1493",
		DarkColor:   "#ff69b4",
		LightDots:   []string{"#ffb6c1", "#ff69b4", "#ff1493", "#dc143c", "#ff0000"},
		DarkDots:    []string{"#8b0000", "#dc143c", "#ff1493", "#ff69b4", "#ffb6c1"},
	},
	"pride": {
		Key:         "pride",
		Description: "Pride Month Theme (Rainbow)",
		LightColor:  "#ff0000",
		DarkColor:   "#ffff00",
		LightDots:   []string{"#ff0000", "#ffa500", "#ffff00", "#008000", "#0000ff"},
		DarkDots:    []string{"#ffa500", "#ffff00", "#008000", "#0000ff", "#800080"},
	},
	"thanksgiving": {
		Key:         "thanksgiving",
		Description: "Thanksgiving Theme (Autumn Harvest)",
		LightColor:  "#d2691e",
		DarkColor:   "#ff7f50",
		LightDots:   []string{"#ffe4b5", "#deb887", "#d2691e", "#a0522d", "#8b4513"},
		DarkDots:    []string{"#8b4513", "#a0522d", "#d2691e", "#deb887", "#ffe4b5"},
	},
	"new_year": {
		Key:         "new_year",
		Description: "New Year Theme (Gold & Fireworks)",
		LightColor:  "#ffd700",
		DarkColor:   "#ffec8b",
		LightDots:   []string{"#fffacd", "#ffec8b", "#ffd700", "#daa520", "#b8860b"},
		DarkDots:    []string{"#b8860b", "#daa520", "#ffd700", "#ffec8b", "#fffacd"},
	},
}

// Lookup resolves a theme key to its definition. Lookups are total: an empty or
// unrecognized key resolves to the default definition, never an error.
func Lookup(key string) Definition {
	if def, ok := table[key]; ok {
		return def
	}

	return table[DefaultKey]
}

// Has reports whether key is a known theme key.
func Has(key string) bool {
	_, ok := table[key]
	return ok
}

// Default returns the synthetic no-holiday definition.
func Default() Definition {
	return table[DefaultKey]
}

// Keys returns all theme keys in sorted order, default entry included.
func Keys() []string {
	keys := make([]string, 0, len(table))
	for key := range table {
		keys = append(keys, key)
	}

	sort.Strings(keys)

	return keys
}

// All returns every definition ordered by key.
func All() []Definition {
	defs := make([]Definition, 0, len(table))
	for _, key := range Keys() {
		defs = append(defs, table[key])
	}

	return defs
}

// SortByLuminance orders hex colors from darkest to brightest. Colors that fail
// to parse sort first. The sort is stable so equal-luminance colors keep their
// sampled order.
func SortByLuminance(colors []string) []string {
	sorted := make([]string, len(colors))
	copy(sorted, colors)

	lum := func(hex string) float64 {
		c, err := colorful.Hex(strings.ToLower(hex))
		if err != nil {
			return -1
		}

		_, _, l := c.Hsl()

		return l
	}

	sort.SliceStable(sorted, func(i, j int) bool {
		return lum(sorted[i]) < lum(sorted[j])
	})

	return sorted
}
