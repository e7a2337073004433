package paths

import (
	"testing"
	"time"

	"github.com/amvidal/lgg/internal/dates"
)

func TestDayFile(t *testing.T) {
	got := DayFile(dates.Day(2025, time.August, 5))
	if got != "2025/08/2025-08-05.md" {
		t.Errorf("path = %q", got)
	}
	if got := DayFile(dates.Day(33, time.January, 1)); got != "0033/01/0033-01-01.md" {
		t.Errorf("path = %q", got)
	}
}

func TestMonthDir(t *testing.T) {
	if got := MonthDir(2025, time.March); got != "2025/03" {
		t.Errorf("dir = %q", got)
	}
}

func TestDateFromDayFile(t *testing.T) {
	d, ok := DateFromDayFile("2025/08/2025-08-05.md")
	if !ok || !d.Equal(dates.Day(2025, time.August, 5)) {
		t.Errorf("date = %v, ok = %v", d, ok)
	}
	if _, ok := DateFromDayFile("2025/08/notes.md"); ok {
		t.Error("non-date name must not parse")
	}
	if _, ok := DateFromDayFile(TodoFile); ok {
		t.Error("todo file is not a day file")
	}
}
