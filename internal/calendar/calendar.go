// Package calendar maps dates to holiday theme keys when no signal can be read
// from the rendered page.
package calendar

import "time"

// Range is a month/day window associated with a theme key. Windows either fall
// within a single month, span forward across months, or wrap the year boundary
// (StartMonth > EndMonth). Multi-segment wraparound is not supported.
type Range struct {
	Theme      string
	StartMonth time.Month
	StartDay   int
	EndMonth   time.Month
	EndDay     int
}

// ranges is tested in order; the first matching entry wins. Ordering is the
// deterministic tie-break for overlapping windows: christmas is listed before
// new_year so late December resolves to christmas, and valentines is listed
// before lunar_new_year so mid-February resolves to valentines.
var ranges = []Range{
	{Theme: "halloween", StartMonth: time.October, StartDay: 1, EndMonth: time.November, EndDay: 1},
	{Theme: "thanksgiving", StartMonth: time.November, StartDay: 20, EndMonth: time.November, EndDay: 30},
	{Theme: "christmas", StartMonth: time.December, StartDay: 1, EndMonth: time.December, EndDay: 31},
	{Theme: "new_year", StartMonth: time.December, StartDay: 26, EndMonth: time.January, EndDay: 5},
	{Theme: "valentines", StartMonth: time.February, StartDay: 7, EndMonth: time.February, EndDay: 15},
	{Theme: "lunar_new_year", StartMonth: time.January, StartDay: 20, EndMonth: time.February, EndDay: 20},
	{Theme: "pride", StartMonth: time.June, StartDay: 1, EndMonth: time.June, EndDay: 30},
}

// Ranges returns a copy of the configured windows in evaluation order.
func Ranges() []Range {
	out := make([]Range, len(ranges))
	copy(out, ranges)

	return out
}

// Contains reports whether the given month/day falls inside the window.
//
// Three cases, matching the upstream behavior this table was lifted from:
//
//   - same month: day must lie between StartDay and EndDay;
//   - forward span: (month == start && day >= startDay) OR
//     (month == end && day <= endDay) OR start < month < end. Note that any
//     interior month matches in full, even for short windows that merely touch
//     the two bounding months;
//   - year wraparound (StartMonth > EndMonth): as above but the interior test
//     becomes month > start || month < end.
func (r Range) Contains(month time.Month, day int) bool {
	switch {
	case r.StartMonth == r.EndMonth:
		return month == r.StartMonth && day >= r.StartDay && day <= r.EndDay
	case r.StartMonth < r.EndMonth:
		return (month == r.StartMonth && day >= r.StartDay) ||
			(month == r.EndMonth && day <= r.EndDay) ||
			(month > r.StartMonth && month < r.EndMonth)
	default:
		return (month == r.StartMonth && day >= r.StartDay) ||
			(month == r.EndMonth && day <= r.EndDay) ||
			(month > r.StartMonth || month < r.EndMonth)
	}
}

// ThemeFor returns the theme key whose window contains t, or false when the
// date falls outside every configured window.
func ThemeFor(t time.Time) (string, bool) {
	month := t.Month()
	day := t.Day()

	for _, r := range ranges {
		if r.Contains(month, day) {
			return r.Theme, true
		}
	}

	return "", false
}
