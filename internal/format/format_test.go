package format

import (
	"testing"
	"time"

	"github.com/amvidal/lgg/internal/dates"
	"github.com/amvidal/lgg/internal/models"
	"github.com/amvidal/lgg/internal/parser"
)

const (
	headerLayout   = "Monday, 2 Jan 2006"
	datetimeLayout = "02/01/2006 15:04"
)

func TestDayHeader(t *testing.T) {
	got := DayHeader(dates.Day(2025, time.August, 15), headerLayout)
	if got != "# Friday, 15 Aug 2025\n\n" {
		t.Errorf("header = %q", got)
	}
}

func TestEntryBlock(t *testing.T) {
	e := models.JournalEntry{
		Time:  dates.ClockTime(12, 34, 0),
		Title: "Quiet morning",
		Body:  "Slept in.\nCoffee on the porch.\n\n",
	}
	want := "## 12:34 - Quiet morning\n\nSlept in.\nCoffee on the porch.\n\n"
	if got := EntryBlock(e); got != want {
		t.Errorf("block = %q, want %q", got, want)
	}
}

func TestEntryBlock_NoBody(t *testing.T) {
	e := models.JournalEntry{Time: dates.ClockTime(7, 5, 0), Title: "Title only"}
	if got := EntryBlock(e); got != "## 07:05 - Title only\n\n" {
		t.Errorf("block = %q", got)
	}
}

func TestTodoBlock(t *testing.T) {
	due := time.Date(2025, time.August, 20, 7, 0, 0, 0, time.UTC)
	done := time.Date(2025, time.August, 22, 18, 30, 0, 0, time.UTC)

	cases := []struct {
		name string
		e    models.TodoEntry
		want string
	}{
		{
			"pending bare",
			models.TodoEntry{Title: "Buy milk", Status: models.StatusPending},
			"- [ ] Buy milk\n",
		},
		{
			"pending with due",
			models.TodoEntry{Title: "Buy milk", Status: models.StatusPending, DueDate: &due},
			"- [ ] Buy milk | 20/08/2025 07:00\n",
		},
		{
			"done with due and done",
			models.TodoEntry{Title: "Buy milk", Status: models.StatusDone, DueDate: &due, DoneDate: &done},
			"- [x] Buy milk | 20/08/2025 07:00 | 22/08/2025 18:30\n",
		},
		{
			"done without due keeps the column",
			models.TodoEntry{Title: "Buy milk", Status: models.StatusDone, DoneDate: &done},
			"- [x] Buy milk |  | 22/08/2025 18:30\n",
		},
		{
			"body is indented",
			models.TodoEntry{Title: "Call bank", Status: models.StatusPending, Body: "Ask about the fee."},
			"- [ ] Call bank\n      Ask about the fee.\n",
		},
	}
	for _, tc := range cases {
		if got := TodoBlock(tc.e, datetimeLayout); got != tc.want {
			t.Errorf("%s: block = %q, want %q", tc.name, got, tc.want)
		}
	}
}

func TestEntryBlock_RoundTrip(t *testing.T) {
	date := dates.Day(2025, time.August, 15)
	entries := []models.JournalEntry{
		{Date: date, Time: dates.ClockTime(8, 3, 0), Title: "Morning coffee", Body: "With @ana at the cafe.", Tags: []string{"ana"}},
		{Date: date, Time: dates.ClockTime(21, 40, 0), Title: "Late note"},
	}

	content := DayHeader(date, headerLayout)
	for _, e := range entries {
		content += EntryBlock(e)
	}

	result := parser.ParseDayFile(content, headerLayout)
	if len(result.Errors) != 0 {
		t.Fatalf("errors = %v", result.Errors)
	}
	if len(result.Entries) != len(entries) {
		t.Fatalf("got %d entries, want %d", len(result.Entries), len(entries))
	}
	for i, want := range entries {
		got := result.Entries[i]
		if !got.Date.Equal(want.Date) || !got.Time.Equal(want.Time) {
			t.Errorf("entry %d: date/time = %v %v", i, got.Date, got.Time)
		}
		if got.Title != want.Title || got.Body != want.Body {
			t.Errorf("entry %d: title = %q, body = %q", i, got.Title, got.Body)
		}
	}
	if len(result.Entries[0].Tags) != 1 || result.Entries[0].Tags[0] != "ana" {
		t.Errorf("tags = %v", result.Entries[0].Tags)
	}
}

func TestTodoBlock_RoundTrip(t *testing.T) {
	due := time.Date(2025, time.August, 20, 7, 0, 0, 0, time.UTC)
	done := time.Date(2025, time.August, 22, 18, 30, 0, 0, time.UTC)
	todos := []models.TodoEntry{
		{Title: "Buy milk", Status: models.StatusPending, DueDate: &due, Body: "Whole, two bottles."},
		{Title: "File taxes", Status: models.StatusDone, DoneDate: &done},
	}

	content := "# Todos\n\n"
	for _, e := range todos {
		content += TodoBlock(e, datetimeLayout)
	}

	result := parser.ParseTodoFile(content, datetimeLayout)
	if len(result.Errors) != 0 {
		t.Fatalf("errors = %v", result.Errors)
	}
	if len(result.Todos) != len(todos) {
		t.Fatalf("got %d todos, want %d", len(result.Todos), len(todos))
	}
	for i, want := range todos {
		got := result.Todos[i]
		if got.Title != want.Title || got.Body != want.Body || got.Status != want.Status {
			t.Errorf("todo %d: %+v", i, got)
		}
		if (got.DueDate == nil) != (want.DueDate == nil) ||
			(got.DueDate != nil && !got.DueDate.Equal(*want.DueDate)) {
			t.Errorf("todo %d: due = %v", i, got.DueDate)
		}
		if (got.DoneDate == nil) != (want.DoneDate == nil) ||
			(got.DoneDate != nil && !got.DoneDate.Equal(*want.DoneDate)) {
			t.Errorf("todo %d: done = %v", i, got.DoneDate)
		}
	}
}
