// Package dates holds the calendar filter types and the temporal-token
// resolver that turns keywords, weekday names, and formatted dates into
// concrete days, ranges, and times of day.
package dates

import "time"

// DateFilter selects either a single day or an inclusive day range.
// Range order is preserved exactly as the caller produced it: a filter with
// Start after End is legal and simply selects nothing.
type DateFilter struct {
	Start   time.Time
	End     time.Time
	IsRange bool
}

// SingleDay returns a filter matching exactly one day.
func SingleDay(d time.Time) DateFilter {
	return DateFilter{Start: d, End: d}
}

// DayRange returns a filter matching every day from start through end,
// both inclusive.
func DayRange(start, end time.Time) DateFilter {
	return DateFilter{Start: start, End: end, IsRange: true}
}

// TimeFilter selects either a single time (matched by hour of day) or a
// half-open range [Start, End) that wraps across midnight when Start > End.
type TimeFilter struct {
	Start   time.Time
	End     time.Time
	IsRange bool
}

// SingleTime returns a filter matching any time within Start's hour.
func SingleTime(t time.Time) TimeFilter {
	return TimeFilter{Start: t, End: t}
}

// TimeRange returns a half-open [start, end) time-of-day filter.
func TimeRange(start, end time.Time) TimeFilter {
	return TimeFilter{Start: start, End: end, IsRange: true}
}

// Day constructs a date value at midnight UTC. All calendar arithmetic in
// this package operates on such values.
func Day(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

// ClockTime constructs a time-of-day value on the package's fixed anchor
// date, so values from ClockTime and from parsing compare with Equal/Before.
func ClockTime(hour, minute, sec int) time.Time {
	return time.Date(0, time.January, 1, hour, minute, sec, 0, time.UTC)
}

// Midnight strips the clock component from t, leaving the day.
func Midnight(t time.Time) time.Time {
	return Day(t.Year(), t.Month(), t.Day())
}

// TimeOfDay strips the date component from t, leaving the clock reading on
// the anchor date.
func TimeOfDay(t time.Time) time.Time {
	return ClockTime(t.Hour(), t.Minute(), t.Second())
}

// TimeMatches reports whether t satisfies the filter. A single filter
// matches any time within the same hour. A range filter covers [Start, End),
// wrapping across midnight when Start > End; the end instant is always
// excluded so adjacent ranges never double count a boundary.
func TimeMatches(f TimeFilter, t time.Time) bool {
	t = TimeOfDay(t)
	if !f.IsRange {
		return t.Hour() == f.Start.Hour()
	}
	start, end := TimeOfDay(f.Start), TimeOfDay(f.End)
	if !start.After(end) {
		return !t.Before(start) && t.Before(end)
	}
	return !t.Before(start) || t.Before(end)
}

// DatesInRange returns every day from start through end, both inclusive.
// The result is empty when start is after end.
func DatesInRange(start, end time.Time) []time.Time {
	var out []time.Time
	for d := Midnight(start); !d.After(Midnight(end)); d = d.AddDate(0, 0, 1) {
		out = append(out, d)
	}
	return out
}
