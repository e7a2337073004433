package parser

import (
	"strings"
	"time"

	"github.com/amvidal/lgg/internal/dates"
	"github.com/amvidal/lgg/internal/keyword"
)

const isoDateTimeLayout = "2006-01-02T15:04"

// Input is the structured form of one raw entry string such as
// "yesterday at 6am: Title. Body". Tags stay empty here: they are derived
// from file content on read, not from fresh input.
type Input struct {
	Date    time.Time
	Time    time.Time
	HasTime bool
	Title   string
	Body    string
	// ExplicitDate distinguishes a date written by the user from one
	// defaulted to the reference date.
	ExplicitDate bool
}

// ParseInput splits an optional date/time prefix from a raw entry string
// and resolves it against ref. The prefix is everything before the first
// ": " and is tried as, in order: a strict ISO datetime, a date and time
// split around the "at" keyword, and a bare date token. When no variant
// matches, the whole string is treated as text dated at ref.
func ParseInput(text string, res *dates.Resolver, ref time.Time) Input {
	ref = dates.Midnight(ref)
	date, clock, hasTime, rest, explicit := parsePrefix(text, res, ref)
	title, body := splitTitleBody(strings.TrimSpace(rest))

	return Input{
		Date:         date,
		Time:         clock,
		HasTime:      hasTime,
		Title:        normalizeTitle(title),
		Body:         body,
		ExplicitDate: explicit,
	}
}

func parsePrefix(text string, res *dates.Resolver, ref time.Time) (date, clock time.Time, hasTime bool, rest string, explicit bool) {
	idx := strings.Index(text, ": ")
	if idx < 0 {
		return ref, time.Time{}, false, text, false
	}
	prefix := strings.TrimSpace(text[:idx])
	after := text[idx+1:] // keep the space so title trimming stays uniform

	if dt, err := time.Parse(isoDateTimeLayout, prefix); err == nil {
		return dates.Midnight(dt), dates.TimeOfDay(dt), true, after, true
	}

	if word, ok := keyword.FindWord(keyword.At, prefix); ok {
		pos, _ := keyword.FindPosition(keyword.At, prefix)
		datePart := strings.TrimSpace(prefix[:pos])
		timePart := strings.TrimSpace(prefix[pos+len(word):])

		clock, hasTime = res.ParseTimeToken(timePart)
		if filter, ok := res.ParseDateToken(datePart, "", ref); ok {
			// A range prefix collapses to its first day.
			return filter.Start, clock, hasTime, after, true
		}
		return ref, clock, hasTime, after, false
	}

	if filter, ok := res.ParseDateToken(prefix, "", ref); ok {
		return filter.Start, time.Time{}, false, after, true
	}

	// Unrecognized prefix: the colon belongs to the text itself.
	return ref, time.Time{}, false, text, false
}

// splitTitleBody cuts text at the first newline, else at the first sentence
// terminator, else returns the whole text as title with an empty body.
func splitTitleBody(text string) (string, string) {
	if i := strings.IndexAny(text, "\n\r"); i >= 0 {
		return strings.TrimSpace(text[:i+1]), strings.TrimSpace(text[i+1:])
	}
	if i := strings.IndexAny(text, ".?!"); i >= 0 {
		return strings.TrimSpace(text[:i+1]), strings.TrimSpace(text[i+1:])
	}
	return strings.TrimSpace(text), ""
}

// normalizeTitle strips Markdown heading noise: leading and trailing '#'
// runs and the whitespace around them.
func normalizeTitle(s string) string {
	return strings.TrimFunc(s, func(r rune) bool {
		return r == '#' || r == ' ' || r == '\t'
	})
}
