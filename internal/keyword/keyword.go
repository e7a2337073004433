// Package keyword defines the canonical temporal keywords and the alias
// registry that maps user-defined synonyms onto them.
package keyword

import (
	"regexp"
	"strings"
	"sync"
)

// Keyword is one of the fixed, built-in temporal tokens. The set is closed:
// new keywords are never created at runtime, only aliased.
type Keyword int

const (
	At Keyword = iota
	Monday
	Tuesday
	Wednesday
	Thursday
	Friday
	Saturday
	Sunday
	Today
	Yesterday
	Tomorrow
	Morning
	Noon
	Evening
	Night
	Midnight
	LastWeek
	ThisWeek
	LastMonth
	ThisMonth
	LastYear
	ThisYear
)

var spellings = map[Keyword]string{
	At:        "at",
	Monday:    "monday",
	Tuesday:   "tuesday",
	Wednesday: "wednesday",
	Thursday:  "thursday",
	Friday:    "friday",
	Saturday:  "saturday",
	Sunday:    "sunday",
	Today:     "today",
	Yesterday: "yesterday",
	Tomorrow:  "tomorrow",
	Morning:   "morning",
	Noon:      "noon",
	Evening:   "evening",
	Night:     "night",
	Midnight:  "midnight",
	LastWeek:  "last week",
	ThisWeek:  "this week",
	LastMonth: "last month",
	ThisMonth: "this month",
	LastYear:  "last year",
	ThisYear:  "this year",
}

// String returns the canonical lowercase spelling of the keyword.
func (k Keyword) String() string {
	return spellings[k]
}

// IsCanonical reports whether word is the canonical spelling of any keyword.
func IsCanonical(word string) bool {
	lower := strings.ToLower(word)
	for _, s := range spellings {
		if s == lower {
			return true
		}
	}
	return false
}

// wordRe matches the canonical spelling of each keyword as a whole word,
// case-insensitively. Precompiled once; the keyword set is closed.
var wordRe = func() map[Keyword]*regexp.Regexp {
	m := make(map[Keyword]*regexp.Regexp, len(spellings))
	for k, s := range spellings {
		m[k] = regexp.MustCompile(`(?i)\b` + regexp.QuoteMeta(s) + `\b`)
	}
	return m
}()

// Synonym maps a user-defined alias onto an existing keyword spelling.
type Synonym struct {
	Alias  string
	Target string
}

// Registry resolves alias strings (canonical spellings and user synonyms)
// to canonical keywords. It is built once, optionally extended once at
// startup, and safe for concurrent reads afterwards.
type Registry struct {
	mu      sync.RWMutex
	aliases map[string]Keyword
}

// NewRegistry returns a registry seeded with the canonical self-mappings.
func NewRegistry() *Registry {
	aliases := make(map[string]Keyword, len(spellings))
	for k, s := range spellings {
		aliases[s] = k
	}
	return &Registry{aliases: aliases}
}

// Extend merges user synonyms into the registry. Pairs are applied in order.
// A pair is silently dropped when its alias collides with a canonical
// spelling (built-ins cannot be overridden) or when its target does not
// resolve to a known alias at merge time (no forward references).
func (r *Registry) Extend(pairs []Synonym) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, p := range pairs {
		alias := strings.ToLower(strings.TrimSpace(p.Alias))
		if alias == "" || IsCanonical(alias) {
			continue
		}
		canon, ok := r.aliases[strings.ToLower(strings.TrimSpace(p.Target))]
		if !ok {
			continue
		}
		r.aliases[alias] = canon
	}
}

// Matches reports whether input equals, case-insensitively, the canonical
// spelling of k or any of its registered synonyms.
func (r *Registry) Matches(k Keyword, input string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	canon, ok := r.aliases[strings.ToLower(input)]
	return ok && canon == k
}

// FindWord returns the canonical spelling of k when it occurs as a whole
// word inside input. "at" must not match inside "saturday".
func FindWord(k Keyword, input string) (string, bool) {
	if wordRe[k].MatchString(input) {
		return k.String(), true
	}
	return "", false
}

// FindPosition returns the byte offset of the first whole-word occurrence
// of k's canonical spelling inside input.
func FindPosition(k Keyword, input string) (int, bool) {
	loc := wordRe[k].FindStringIndex(input)
	if loc == nil {
		return 0, false
	}
	return loc[0], true
}
