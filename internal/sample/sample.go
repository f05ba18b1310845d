// Package sample reads holiday signals out of fetched github.com markup: the
// rendered contribution cell colors, the explicit holiday hint attribute, and
// the seasonal greeting text.
package sample

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/diverger/gh-holiday/internal/classify"
)

// black is treated as unset/transparent by the sampler, never a real signal.
const black = "#000000"

var hexColorRe = regexp.MustCompile(`#[0-9a-fA-F]{6}|#[0-9a-fA-F]{3}\b`)

// Parse builds a queryable document from raw markup.
func Parse(html string) (*goquery.Document, error) {
	return goquery.NewDocumentFromReader(strings.NewReader(html))
}

// Colors samples the rendered color of every contribution cell, keyed by its
// data-level attribute. The first cell seen per level wins. A fill style is
// preferred, then the SVG fill attribute, then a background style. Cells that
// resolve to pure black are skipped. Missing cells are a valid "no signal"
// outcome: the result is simply a smaller (possibly empty) palette.
func Colors(doc *goquery.Document) classify.Palette {
	palette := classify.Palette{}

	doc.Find("[data-level]").Each(func(_ int, sel *goquery.Selection) {
		levelAttr, _ := sel.Attr("data-level")

		level, err := strconv.Atoi(strings.TrimSpace(levelAttr))
		if err != nil || level < 0 {
			return
		}

		if _, seen := palette[level]; seen {
			return
		}

		color := cellColor(sel)
		if color == "" || color == black {
			return
		}

		palette[level] = color
	})

	return palette
}

func cellColor(sel *goquery.Selection) string {
	style, _ := sel.Attr("style")

	if c := styleProperty(style, "fill"); c != "" {
		return c
	}

	if fill, ok := sel.Attr("fill"); ok {
		if c := NormalizeHex(fill); c != "" {
			return c
		}
	}

	return styleProperty(style, "background-color")
}

// styleProperty extracts a hex color for one property out of an inline style
// declaration. CSS variable references and named colors yield no signal.
func styleProperty(style, property string) string {
	for _, decl := range strings.Split(style, ";") {
		name, value, ok := strings.Cut(decl, ":")
		if !ok {
			continue
		}

		if strings.TrimSpace(name) != property {
			continue
		}

		return NormalizeHex(strings.TrimSpace(value))
	}

	return ""
}

// NormalizeHex lowercases a hex color and expands the #rgb shorthand to
// #rrggbb. Anything that is not a hex color returns "".
func NormalizeHex(raw string) string {
	match := hexColorRe.FindString(raw)
	if match == "" {
		return ""
	}

	match = strings.ToLower(match)

	if len(match) == 4 {
		expanded := []byte{'#', 0, 0, 0, 0, 0, 0}
		for i := 0; i < 3; i++ {
			expanded[1+2*i] = match[1+i]
			expanded[2+2*i] = match[1+i]
		}

		return string(expanded)
	}

	return match
}
