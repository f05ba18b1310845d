package detect

import (
	"strings"

	"github.com/diverger/gh-holiday/internal/themes"
)

// Detection methods, in the order they are attempted.
const (
	MethodRenderedColors = "rendered-colors"
	MethodMessage        = "message"
	MethodStyleAttribute = "style-attribute"
	MethodCalendar       = "calendar"
	MethodCalendarError  = "calendar-fallback-after-error"
	MethodNone           = "none"
)

// Result is the single output record of a detection run. It is always fully
// populated: even a failed run carries the default palette.
type Result struct {
	HolidayDetected  bool              `json:"holiday_detected"`
	ThemeName        string            `json:"theme_name"`
	ThemeDescription string            `json:"theme_description"`
	LightColor       string            `json:"light_color"`
	DarkColor        string            `json:"dark_color"`
	LightDots        string            `json:"light_dots"`
	DarkDots         string            `json:"dark_dots"`
	DetectionMethod  string            `json:"detection_method"`
	ExtractedColors  map[string]string `json:"extracted_colors,omitempty"`
}

// Build maps a theme key and detection method to the canonical output record.
// Unknown or empty keys resolve to the default definition, so a bogus
// upstream hint can never produce a half-formed result. The holiday flag is
// true exactly when the resolved key is not the default key.
func Build(key, method string, extracted map[string]string) Result {
	def := themes.Lookup(key)

	return Result{
		HolidayDetected:  def.Key != themes.DefaultKey,
		ThemeName:        def.Key,
		ThemeDescription: def.Description,
		LightColor:       def.LightColor,
		DarkColor:        def.DarkColor,
		LightDots:        strings.Join(def.LightDots, ", "),
		DarkDots:         strings.Join(def.DarkDots, ", "),
		DetectionMethod:  method,
		ExtractedColors:  extracted,
	}
}
