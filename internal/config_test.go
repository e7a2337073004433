package internal

import (
	"testing"
	"time"
)

func TestDefaultConfigIsValid(t *testing.T) {
	cfg := NewDefaultConfig()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("defaults should pass: %v", err)
	}
	if got := cfg.Journal.DefaultClockTime(); got.Hour() != 12 || got.Minute() != 0 {
		t.Errorf("default time = %v", got)
	}
}

func TestJournalConfig_MissingDir(t *testing.T) {
	cfg := NewDefaultConfig()
	cfg.Journal.Dir = ""
	if err := cfg.Validate(); err == nil {
		t.Fatal("empty journal dir should fail")
	}
}

func TestJournalConfig_BadDefaultTime(t *testing.T) {
	for _, bad := range []string{"", "noon", "25:00", "9am"} {
		cfg := NewDefaultConfig()
		cfg.Journal.DefaultTime = bad
		if err := cfg.Validate(); err == nil {
			t.Errorf("default_time %q should fail", bad)
		}
	}
}

func TestJournalConfig_DefaultClockTime(t *testing.T) {
	cfg := JournalConfig{DefaultTime: "08:30"}
	want := time.Date(0, time.January, 1, 8, 30, 0, 0, time.UTC)
	if got := cfg.DefaultClockTime(); !got.Equal(want) {
		t.Errorf("clock time = %v, want %v", got, want)
	}
}

func TestTodosConfig_MissingLayout(t *testing.T) {
	cfg := NewDefaultConfig()
	cfg.Todos.DatetimeLayout = ""
	if err := cfg.Validate(); err == nil {
		t.Fatal("empty datetime layout should fail")
	}
}
