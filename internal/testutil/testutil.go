// Package testutil provides shared test helpers for setting up journal trees.
package testutil

import (
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/amvidal/lgg/internal/clock"
	"github.com/amvidal/lgg/internal/dates"
	"github.com/amvidal/lgg/internal/journal"
	"github.com/amvidal/lgg/internal/keyword"
	"github.com/amvidal/lgg/internal/storage"
	"github.com/amvidal/lgg/internal/todos"
)

// HeaderLayout is the day-header date layout used across tests.
const HeaderLayout = "Monday, 2 Jan 2006"

// DatetimeLayout is the todo due/done layout used across tests.
const DatetimeLayout = "02/01/2006 15:04"

// Silent returns a logger that discards everything.
func Silent() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// TestStore creates a temporary directory with a storage provider rooted in it.
func TestStore(t *testing.T) (string, *storage.FS) {
	t.Helper()
	dir := t.TempDir()
	store, err := storage.NewFS(dir)
	if err != nil {
		t.Fatal(err)
	}
	return dir, store
}

// TestJournal creates a journal service over a fresh temporary tree, with
// its clock frozen at now.
func TestJournal(t *testing.T, now time.Time) (*journal.Service, *storage.FS) {
	t.Helper()
	_, store := TestStore(t)
	svc := journal.NewService(store, Silent(), HeaderLayout, dates.ClockTime(12, 0, 0), clock.Fixed(now))
	return svc, store
}

// TestTodos creates a todo service over a fresh temporary tree, with its
// clock frozen at now.
func TestTodos(t *testing.T, now time.Time) (*todos.Service, *storage.FS) {
	t.Helper()
	_, store := TestStore(t)
	svc := todos.NewService(store, Silent(), DatetimeLayout, dates.ClockTime(12, 0, 0), clock.Fixed(now))
	return svc, store
}

// Resolver returns a date resolver with the canonical keywords and default
// input layouts.
func Resolver() *dates.Resolver {
	return dates.NewResolver(keyword.NewRegistry(), nil)
}
