package internal

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/amvidal/lgg/internal/clock"
	"github.com/amvidal/lgg/internal/dates"
	"github.com/amvidal/lgg/internal/keyword"
)

func testApp(t *testing.T) *App {
	t.Helper()
	cfg := NewDefaultConfig()
	cfg.Journal.Dir = filepath.Join(t.TempDir(), "journal")
	cfg.Synonyms = map[string]string{
		"ayer": "yesterday",
		"tmrw": "tomorrow",
	}
	app, err := NewApp(cfg, clock.Fixed(time.Date(2025, time.August, 15, 10, 0, 0, 0, time.UTC)))
	if err != nil {
		t.Fatalf("NewApp: %v", err)
	}
	return app
}

func TestNewApp_CreatesJournalDir(t *testing.T) {
	app := testApp(t)
	info, err := os.Stat(app.JournalDir)
	if err != nil || !info.IsDir() {
		t.Fatalf("journal dir not created: %v", err)
	}
	if app.TodosDir != app.JournalDir {
		t.Errorf("todos dir = %q, want journal dir", app.TodosDir)
	}
}

func TestNewApp_RegistersSynonyms(t *testing.T) {
	app := testApp(t)
	if !app.Keywords.Matches(keyword.Yesterday, "AYER") {
		t.Error("synonym ayer not registered")
	}
	filter, ok := app.Resolver.ParseDateToken("tmrw", "", dates.Day(2025, time.August, 15))
	if !ok || !filter.Start.Equal(dates.Day(2025, time.August, 16)) {
		t.Errorf("tmrw resolved to %v, ok=%v", filter.Start, ok)
	}
}

func TestNewApp_SeparateTodosDir(t *testing.T) {
	cfg := NewDefaultConfig()
	base := t.TempDir()
	cfg.Journal.Dir = filepath.Join(base, "journal")
	cfg.Todos.Dir = filepath.Join(base, "todos")
	app, err := NewApp(cfg, clock.System())
	if err != nil {
		t.Fatalf("NewApp: %v", err)
	}
	if app.TodosDir == app.JournalDir {
		t.Error("todos dir should differ from journal dir")
	}
	if _, err := os.Stat(app.TodosDir); err != nil {
		t.Errorf("todos dir not created: %v", err)
	}
}
