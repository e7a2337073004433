package dates

import (
	"testing"
	"time"
)

func TestTimeMatches_SingleByHour(t *testing.T) {
	f := SingleTime(ClockTime(12, 0, 0))
	if !TimeMatches(f, ClockTime(12, 0, 0)) {
		t.Error("exact hour should match")
	}
	if !TimeMatches(f, ClockTime(12, 59, 59)) {
		t.Error("any time within the hour should match")
	}
	if TimeMatches(f, ClockTime(13, 0, 0)) {
		t.Error("next hour must not match")
	}
}

func TestTimeMatches_HalfOpenRange(t *testing.T) {
	f := TimeRange(ClockTime(6, 0, 0), ClockTime(12, 0, 0))
	if !TimeMatches(f, ClockTime(6, 0, 0)) {
		t.Error("start instant is included")
	}
	if !TimeMatches(f, ClockTime(11, 59, 59)) {
		t.Error("last instant before end is included")
	}
	if TimeMatches(f, ClockTime(12, 0, 0)) {
		t.Error("end instant is excluded")
	}
	if TimeMatches(f, ClockTime(5, 59, 59)) {
		t.Error("before start is excluded")
	}
}

func TestTimeMatches_AdjacentRangesDoNotDoubleCount(t *testing.T) {
	morning := TimeRange(ClockTime(6, 0, 0), ClockTime(12, 0, 0))
	afternoon := TimeRange(ClockTime(12, 0, 0), ClockTime(18, 0, 0))
	boundary := ClockTime(12, 0, 0)
	if TimeMatches(morning, boundary) {
		t.Error("boundary belongs to the next range")
	}
	if !TimeMatches(afternoon, boundary) {
		t.Error("boundary is the start of the next range")
	}
}

func TestTimeMatches_WrapsMidnight(t *testing.T) {
	f := TimeRange(ClockTime(22, 0, 0), ClockTime(2, 0, 0))
	if !TimeMatches(f, ClockTime(23, 0, 0)) {
		t.Error("before midnight should match")
	}
	if !TimeMatches(f, ClockTime(1, 59, 59)) {
		t.Error("after midnight should match")
	}
	if TimeMatches(f, ClockTime(2, 0, 0)) {
		t.Error("end instant is excluded")
	}
	if TimeMatches(f, ClockTime(21, 59, 59)) {
		t.Error("before start is excluded")
	}
}

func TestDatesInRange(t *testing.T) {
	got := DatesInRange(Day(2025, time.August, 15), Day(2025, time.August, 17))
	if len(got) != 3 {
		t.Fatalf("len = %d, want 3", len(got))
	}
	if !got[0].Equal(Day(2025, time.August, 15)) || !got[2].Equal(Day(2025, time.August, 17)) {
		t.Errorf("range = %v", got)
	}
}

func TestDatesInRange_ReversedIsEmpty(t *testing.T) {
	if got := DatesInRange(Day(2025, time.August, 17), Day(2025, time.August, 15)); len(got) != 0 {
		t.Errorf("reversed range should be empty, got %v", got)
	}
}
