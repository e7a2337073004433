package dates

import (
	"strconv"
	"strings"
	"time"

	"github.com/amvidal/lgg/internal/keyword"
)

// DefaultInputLayouts are the date layouts tried against raw tokens when the
// configuration does not supply its own.
var DefaultInputLayouts = []string{"02/01/2006"}

// Resolver turns date and time tokens into filters. It carries the keyword
// registry (canonical spellings plus user synonyms) and the accepted input
// date layouts; it holds no other state and is safe for concurrent use.
type Resolver struct {
	Keywords *keyword.Registry
	Layouts  []string
}

// NewResolver returns a resolver over the given registry. When layouts is
// empty, DefaultInputLayouts is used.
func NewResolver(reg *keyword.Registry, layouts []string) *Resolver {
	if len(layouts) == 0 {
		layouts = DefaultInputLayouts
	}
	return &Resolver{Keywords: reg, Layouts: layouts}
}

var weekdayKeywords = []struct {
	kw keyword.Keyword
	wd time.Weekday
}{
	{keyword.Monday, time.Monday},
	{keyword.Tuesday, time.Tuesday},
	{keyword.Wednesday, time.Wednesday},
	{keyword.Thursday, time.Thursday},
	{keyword.Friday, time.Friday},
	{keyword.Saturday, time.Saturday},
	{keyword.Sunday, time.Sunday},
}

func daysFromMonday(wd time.Weekday) int {
	return (int(wd) + 6) % 7
}

// ResolveDateToken resolves a single token against ref. Stages are tried in
// fixed priority order and the first match wins: relative day keywords,
// week/month/year range keywords, weekday names, then the configured date
// layouts. The second return value is false when nothing matched.
func (r *Resolver) ResolveDateToken(token string, ref time.Time) (DateFilter, bool) {
	ref = Midnight(ref)

	switch {
	case r.Keywords.Matches(keyword.Today, token):
		return SingleDay(ref), true
	case r.Keywords.Matches(keyword.Yesterday, token):
		return SingleDay(ref.AddDate(0, 0, -1)), true
	case r.Keywords.Matches(keyword.Tomorrow, token):
		return SingleDay(ref.AddDate(0, 0, 1)), true
	case r.Keywords.Matches(keyword.LastWeek, token):
		lastSunday := ref.AddDate(0, 0, -int(ref.Weekday()))
		return DayRange(lastSunday.AddDate(0, 0, -6), lastSunday), true
	case r.Keywords.Matches(keyword.ThisWeek, token):
		monday := ref.AddDate(0, 0, -daysFromMonday(ref.Weekday()))
		return DayRange(monday, monday.AddDate(0, 0, 6)), true
	case r.Keywords.Matches(keyword.LastMonth, token):
		firstOfThis := Day(ref.Year(), ref.Month(), 1)
		endOfLast := firstOfThis.AddDate(0, 0, -1)
		return DayRange(Day(endOfLast.Year(), endOfLast.Month(), 1), endOfLast), true
	case r.Keywords.Matches(keyword.ThisMonth, token):
		first := Day(ref.Year(), ref.Month(), 1)
		return DayRange(first, first.AddDate(0, 1, 0).AddDate(0, 0, -1)), true
	case r.Keywords.Matches(keyword.LastYear, token):
		y := ref.Year() - 1
		return DayRange(Day(y, time.January, 1), Day(y, time.December, 31)), true
	case r.Keywords.Matches(keyword.ThisYear, token):
		y := ref.Year()
		return DayRange(Day(y, time.January, 1), Day(y, time.December, 31)), true
	}

	for _, wk := range weekdayKeywords {
		if !r.Keywords.Matches(wk.kw, token) {
			continue
		}
		// Most recent occurrence on or before ref; ref itself when the
		// weekdays coincide.
		daysAgo := (daysFromMonday(ref.Weekday()) + 7 - daysFromMonday(wk.wd)) % 7
		return SingleDay(ref.AddDate(0, 0, -daysAgo)), true
	}

	for _, layout := range r.Layouts {
		if d, err := time.Parse(layout, token); err == nil {
			return SingleDay(Midnight(d)), true
		}
	}
	return DateFilter{}, false
}

// ParseDateToken combines a start token and an optional end token ("" means
// absent) into one filter:
//
//   - start resolves to a range: that range, end ignored.
//   - start single, end range: the end range wins.
//   - start single, end single: Range(start, end) in the order given, even
//     when start is after end. Consumers may legitimately see an empty
//     result set; the order is never normalized.
//   - start single, end absent: Single(start).
//
// Returns false when the start token resolves to nothing.
func (r *Resolver) ParseDateToken(start, end string, ref time.Time) (DateFilter, bool) {
	a, ok := r.ResolveDateToken(start, ref)
	if !ok {
		return DateFilter{}, false
	}
	if a.IsRange {
		return a, true
	}
	if end == "" {
		return a, true
	}
	b, ok := r.ResolveDateToken(end, ref)
	if !ok {
		return a, true
	}
	if b.IsRange {
		return b, true
	}
	return DayRange(a.Start, b.Start), true
}

// ParseTimeToken resolves a token into a time of day. Formats are tried in
// order: named keywords (morning 08:00, noon 12:00, evening 18:00, night
// 21:00, midnight 00:00), 12-hour with optional minutes/seconds and am/pm
// suffix, 24-hour HH:MM, then a bare hour 0-23. Out-of-range components
// fail the parse; nothing is clamped.
func (r *Resolver) ParseTimeToken(token string) (time.Time, bool) {
	switch {
	case r.Keywords.Matches(keyword.Morning, token):
		return ClockTime(8, 0, 0), true
	case r.Keywords.Matches(keyword.Noon, token):
		return ClockTime(12, 0, 0), true
	case r.Keywords.Matches(keyword.Evening, token):
		return ClockTime(18, 0, 0), true
	case r.Keywords.Matches(keyword.Night, token):
		return ClockTime(21, 0, 0), true
	case r.Keywords.Matches(keyword.Midnight, token):
		return ClockTime(0, 0, 0), true
	}

	lower := strings.ToLower(token)
	if strings.HasSuffix(lower, "am") || strings.HasSuffix(lower, "pm") {
		return parse12Hour(strings.TrimSpace(token[:len(token)-2]), strings.HasSuffix(lower, "pm"))
	}

	if t, err := time.Parse("15:04", token); err == nil {
		return TimeOfDay(t), true
	}
	if h, err := strconv.Atoi(token); err == nil && h >= 0 && h <= 23 {
		return ClockTime(h, 0, 0), true
	}
	return time.Time{}, false
}

// parse12Hour handles "6", "6:30", and "6:30:15" cores with a trailing
// am/pm already stripped. 12am maps to 00:00 and 12pm to 12:00.
func parse12Hour(core string, pm bool) (time.Time, bool) {
	parts := strings.Split(core, ":")
	if len(parts) > 3 {
		return time.Time{}, false
	}
	nums := make([]int, 3)
	for i, p := range parts {
		n, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return time.Time{}, false
		}
		nums[i] = n
	}
	h, m, s := nums[0], nums[1], nums[2]
	if h < 1 || h > 12 || m < 0 || m > 59 || s < 0 || s > 59 {
		return time.Time{}, false
	}
	switch {
	case h == 12 && !pm:
		h = 0
	case h != 12 && pm:
		h += 12
	}
	return ClockTime(h, m, s), true
}
