// Package detect orchestrates a single holiday-theme detection run: sample
// rendered colors, scan for a greeting, read the hint attribute, then fall
// back to the calendar. Each stage short-circuits on success and every run
// ends with exactly one Result.
package detect

import (
	"context"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/diverger/gh-holiday/internal/calendar"
	"github.com/diverger/gh-holiday/internal/classify"
	"github.com/diverger/gh-holiday/internal/sample"
	"github.com/diverger/gh-holiday/internal/themes"
)

// Fetcher retrieves the pages that carry the contribution graph.
type Fetcher interface {
	FetchContributions(ctx context.Context, username string) (string, error)
	FetchProfile(ctx context.Context, username string) (string, error)
}

// APIColorsFunc samples calendar colors from an authenticated API instead of
// markup. Optional; failures are treated as "no signal".
type APIColorsFunc func(ctx context.Context, username string) (classify.Palette, error)

// Detector runs the detection state machine.
type Detector struct {
	Fetcher Fetcher

	// APIColors, when set, supplements markup sampling with API-reported
	// calendar colors if the markup yields too few.
	APIColors APIColorsFunc

	// Now is the clock used by the classifier and the calendar fallback.
	Now func() time.Time

	// Log receives the per-method progress lines.
	Log io.Writer
}

// New creates a Detector with the default clock writing progress to w.
func New(fetcher Fetcher, w io.Writer) *Detector {
	return &Detector{
		Fetcher: fetcher,
		Now:     time.Now,
		Log:     w,
	}
}

func (d *Detector) logf(format string, args ...any) {
	if d.Log != nil {
		fmt.Fprintf(d.Log, format+"\n", args...)
	}
}

// Run executes one detection run. It never fails: fetch or parse errors
// divert to a final calendar attempt, and a run with no signal at all yields
// the default no-holiday result. The caller always receives exactly one
// fully populated Result.
func (d *Detector) Run(ctx context.Context, username string) Result {
	html, err := d.Fetcher.FetchContributions(ctx, username)
	if err != nil {
		d.logf("fetch contributions failed: %v", err)
		return d.errorFallback()
	}

	doc, err := sample.Parse(html)
	if err != nil {
		d.logf("parse contributions failed: %v", err)
		return d.errorFallback()
	}

	palette := sample.Colors(doc)
	d.logf("method %s: sampled %d level colors", MethodRenderedColors, len(palette))

	if len(palette) < classify.MinColors && d.APIColors != nil {
		if apiPalette, err := d.APIColors(ctx, username); err != nil {
			d.logf("method %s: api calendar unavailable: %v", MethodRenderedColors, err)
		} else if len(apiPalette) > len(palette) {
			d.logf("method %s: using %d api calendar colors", MethodRenderedColors, len(apiPalette))
			palette = apiPalette
		}
	}

	if key, ok := classify.Match(palette, d.Now()); ok {
		d.logf("method %s: matched %s", MethodRenderedColors, key)
		return Build(key, MethodRenderedColors, paletteDiagnostics(palette))
	}

	d.logf("method %s: no fingerprint match", MethodRenderedColors)
	d.logDefaultOverlap(palette)

	if key, ok := sample.Message(html); ok {
		d.logf("method %s: greeting for %s found", MethodMessage, key)
		return Build(key, MethodMessage, paletteDiagnostics(palette))
	}

	d.logf("method %s: no greeting found", MethodMessage)

	// The fragment came up empty; the full profile page may still carry the
	// hint attribute and themed style variables.
	profileDoc := doc

	if profileHTML, err := d.Fetcher.FetchProfile(ctx, username); err != nil {
		d.logf("fetch profile failed: %v", err)
	} else if parsed, err := sample.Parse(profileHTML); err != nil {
		d.logf("parse profile failed: %v", err)
	} else {
		profileDoc = parsed

		if profilePalette := sample.Colors(parsed); len(profilePalette) > len(palette) {
			d.logf("method %s: profile page yielded %d level colors", MethodRenderedColors, len(profilePalette))
			palette = profilePalette

			if key, ok := classify.Match(palette, d.Now()); ok {
				d.logf("method %s: matched %s", MethodRenderedColors, key)
				return Build(key, MethodRenderedColors, paletteDiagnostics(palette))
			}
		}

		if key, ok := sample.Message(profileHTML); ok {
			d.logf("method %s: greeting for %s found on profile", MethodMessage, key)
			return Build(key, MethodMessage, paletteDiagnostics(palette))
		}
	}

	if hint, ok := sample.ReadHint(profileDoc); ok {
		for _, v := range hint.Vars {
			d.logf("method %s: %s = %q", MethodStyleAttribute, v.Name, v.Value)
		}

		d.logf("method %s: hint attribute names %s", MethodStyleAttribute, hint.Key)

		return Build(hint.Key, MethodStyleAttribute, hintDiagnostics(hint))
	}

	d.logf("method %s: no hint attribute", MethodStyleAttribute)

	if key, ok := calendar.ThemeFor(d.Now()); ok {
		d.logf("method %s: date window matched %s", MethodCalendar, key)
		return Build(key, MethodCalendar, nil)
	}

	d.logf("method %s: no date window matched", MethodCalendar)

	return Build(themes.DefaultKey, MethodNone, nil)
}

// errorFallback is the single retry the state machine allows: when fetching
// or parsing fails before any result exists, try the calendar once and
// default if it also yields nothing.
func (d *Detector) errorFallback() Result {
	if key, ok := calendar.ThemeFor(d.Now()); ok {
		d.logf("method %s: date window matched %s", MethodCalendarError, key)
		return Build(key, MethodCalendarError, nil)
	}

	d.logf("method %s: no date window matched", MethodCalendarError)

	return Build(themes.DefaultKey, MethodNone, nil)
}

func (d *Detector) logDefaultOverlap(palette classify.Palette) {
	if len(palette) == 0 {
		return
	}

	light, dark := classify.DefaultPaletteOverlap(palette.Colors())
	d.logf("sampled colors match default palettes: light %d/5, dark %d/5", light, dark)
}

func paletteDiagnostics(palette classify.Palette) map[string]string {
	if len(palette) == 0 {
		return nil
	}

	out := make(map[string]string, len(palette))
	for level, color := range palette {
		out[strconv.Itoa(level)] = color
	}

	return out
}

func hintDiagnostics(hint sample.Hint) map[string]string {
	out := make(map[string]string, len(hint.Vars))
	for _, v := range hint.Vars {
		if v.Value != "" {
			out[v.Name] = v.Value
		}
	}

	if len(out) == 0 {
		return nil
	}

	return out
}

// ConfigCheck verifies that every theme in the definitions table is reachable
// from at least one calendar window, classifier branch, or greeting pattern.
// It returns the keys of orphaned definitions; a non-empty answer means the
// static tables have drifted apart.
func ConfigCheck() []string {
	reachable := map[string]bool{
		// Classifier outcomes.
		"halloween":      true,
		"christmas":      true,
		"valentines":     true,
		"lunar_new_year": true,
		"pride":          true,
	}

	for _, r := range calendar.Ranges() {
		reachable[r.Theme] = true
	}

	var orphans []string

	for _, key := range themes.Keys() {
		if key == themes.DefaultKey {
			continue
		}

		if !reachable[key] {
			orphans = append(orphans, key)
		}
	}

	return orphans
}
