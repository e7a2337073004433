package keyword

import "testing"

func TestMatches_CanonicalSpellings(t *testing.T) {
	r := NewRegistry()
	if !r.Matches(Today, "today") {
		t.Error("today should match Today")
	}
	if !r.Matches(Yesterday, "YESTERDAY") {
		t.Error("matching must be case-insensitive")
	}
	if !r.Matches(LastWeek, "last week") {
		t.Error("last week should match LastWeek")
	}
	if r.Matches(Yesterday, "today") {
		t.Error("today must not match Yesterday")
	}
	if r.Matches(Tomorrow, "not in registry") {
		t.Error("unknown word must not match")
	}
}

func TestExtend_AddsSynonyms(t *testing.T) {
	r := NewRegistry()
	r.Extend([]Synonym{
		{Alias: "ytd", Target: "yesterday"},
		{Alias: "AYER", Target: "yesterday"},
		{Alias: "tmrw", Target: "tomorrow"},
	})
	if !r.Matches(Yesterday, "ytd") {
		t.Error("ytd should resolve to Yesterday")
	}
	if !r.Matches(Yesterday, "ayer") {
		t.Error("aliases are lowercased on merge")
	}
	if !r.Matches(Tomorrow, "tmrw") {
		t.Error("tmrw should resolve to Tomorrow")
	}
	if r.Matches(Yesterday, "today") {
		t.Error("extending must not disturb canonical mappings")
	}
}

func TestExtend_RejectsCanonicalAlias(t *testing.T) {
	r := NewRegistry()
	r.Extend([]Synonym{{Alias: "today", Target: "yesterday"}})
	if r.Matches(Yesterday, "today") {
		t.Error("canonical spellings cannot be overridden")
	}
	if !r.Matches(Today, "today") {
		t.Error("today must still resolve to Today")
	}
}

func TestExtend_RejectsUnknownTarget(t *testing.T) {
	r := NewRegistry()
	r.Extend([]Synonym{{Alias: "soon", Target: "next week"}})
	if r.Matches(Tomorrow, "soon") || r.Matches(Today, "soon") {
		t.Error("pair with unresolvable target must be dropped")
	}
}

func TestExtend_ChainsThroughEarlierSynonym(t *testing.T) {
	r := NewRegistry()
	r.Extend([]Synonym{
		{Alias: "ytd", Target: "yesterday"},
		{Alias: "y", Target: "ytd"},
	})
	if !r.Matches(Yesterday, "y") {
		t.Error("a synonym added earlier in the batch is a valid target")
	}
}

func TestFindWord_WholeWordOnly(t *testing.T) {
	if w, ok := FindWord(At, "text at text"); !ok || w != "at" {
		t.Errorf("FindWord(At) = %q, %v", w, ok)
	}
	if w, ok := FindWord(Friday, "go friday go"); !ok || w != "friday" {
		t.Errorf("FindWord(Friday) = %q, %v", w, ok)
	}
	if _, ok := FindWord(At, "saturday"); ok {
		t.Error("at must not match inside saturday")
	}
	if _, ok := FindWord(Friday, "fridaya"); ok {
		t.Error("friday must not match inside fridaya")
	}
}

func TestFindPosition(t *testing.T) {
	if pos, ok := FindPosition(At, "text at text"); !ok || pos != 5 {
		t.Errorf("FindPosition(At) = %d, %v, want 5", pos, ok)
	}
	if pos, ok := FindPosition(Friday, "go Friday go"); !ok || pos != 3 {
		t.Errorf("FindPosition(Friday) = %d, %v, want 3", pos, ok)
	}
	if _, ok := FindPosition(At, "saturday"); ok {
		t.Error("no whole-word occurrence expected")
	}
	if _, ok := FindPosition(Tomorrow, "text text text"); ok {
		t.Error("absent keyword must not be found")
	}
}

func TestIsCanonical(t *testing.T) {
	for _, word := range []string{"today", "last week", "AT", "Sunday"} {
		if !IsCanonical(word) {
			t.Errorf("IsCanonical(%q) = false", word)
		}
	}
	if IsCanonical("ytd") {
		t.Error("ytd is not canonical")
	}
}
