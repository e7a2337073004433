// Package todos manages the flat todo list file. Like the journal, reads
// accumulate per-item problems instead of failing the whole list.
package todos

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"sort"
	"strings"
	"time"

	"github.com/amvidal/lgg/internal/clock"
	"github.com/amvidal/lgg/internal/dates"
	"github.com/amvidal/lgg/internal/format"
	"github.com/amvidal/lgg/internal/models"
	"github.com/amvidal/lgg/internal/parser"
	"github.com/amvidal/lgg/internal/paths"
	"github.com/amvidal/lgg/internal/storage"
)

const fileHeader = "# Todos\n\n"

// Service owns the todo list rooted at its storage provider.
type Service struct {
	store       storage.Provider
	log         *slog.Logger
	dtLayout    string
	defaultTime time.Time
	clock       clock.Clock
}

// NewService creates a todo service. dtLayout is the due/done datetime
// layout, defaultTime the clock time given to a due date written without one.
func NewService(store storage.Provider, log *slog.Logger, dtLayout string, defaultTime time.Time, clk clock.Clock) *Service {
	return &Service{
		store:       store,
		log:         log,
		dtLayout:    dtLayout,
		defaultTime: defaultTime,
		clock:       clk,
	}
}

// CreateTodo appends one pending item to the list, writing the header first
// when the file does not exist yet. A due time without a date anchors on the
// current day; a due date without a time takes the configured default.
func (s *Service) CreateTodo(in models.TodoWriteEntry) (models.TodoEntry, error) {
	entry := models.TodoEntry{
		DueDate: s.effectiveDue(in),
		Title:   in.Title,
		Body:    in.Body,
		Tags:    parser.Tags(in.Title, in.Body),
		Status:  models.StatusPending,
		Path:    paths.TodoFile,
	}

	exists, err := s.store.Exists(paths.TodoFile)
	if err != nil {
		return models.TodoEntry{}, fmt.Errorf("todos: create: %w", err)
	}
	block := format.TodoBlock(entry, s.dtLayout)
	if !exists {
		if err := s.store.Write(paths.TodoFile, []byte(fileHeader+block)); err != nil {
			return models.TodoEntry{}, fmt.Errorf("todos: create: %w", err)
		}
		s.log.Debug("todos: list file created", "path", paths.TodoFile)
		return entry, nil
	}
	if err := s.store.Append(paths.TodoFile, []byte(block)); err != nil {
		return models.TodoEntry{}, fmt.Errorf("todos: create: %w", err)
	}
	return entry, nil
}

func (s *Service) effectiveDue(in models.TodoWriteEntry) *time.Time {
	if in.DueDate == nil && in.Time == nil {
		return nil
	}
	date := in.DueDate
	if date == nil {
		today := dates.Midnight(s.clock.Now())
		date = &today
	}
	clockTime := s.defaultTime
	if in.Time != nil {
		clockTime = *in.Time
	}
	due := time.Date(date.Year(), date.Month(), date.Day(),
		clockTime.Hour(), clockTime.Minute(), 0, 0, time.UTC)
	return &due
}

// ReadTodos returns every item matching opts, sorted by due date with
// undated items last. A missing list file yields an empty result.
func (s *Service) ReadTodos(opts models.ReadTodoOptions) models.TodoQueryResult {
	var result models.TodoQueryResult

	data, err := s.store.Read(paths.TodoFile)
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			result.Errors = append(result.Errors, models.FileError(paths.TodoFile, err))
		}
		return result
	}

	parsed := parser.ParseTodoFile(string(data), s.dtLayout)
	for _, perr := range parsed.Errors {
		result.Errors = append(result.Errors, models.FileError(paths.TodoFile, perr))
	}
	for _, todo := range parsed.Todos {
		todo.Path = paths.TodoFile
		if !matchTodo(todo, opts) {
			continue
		}
		result.Todos = append(result.Todos, todo)
	}

	sort.SliceStable(result.Todos, func(i, j int) bool {
		a, b := result.Todos[i].DueDate, result.Todos[j].DueDate
		switch {
		case a == nil:
			return false
		case b == nil:
			return true
		default:
			return a.Before(*b)
		}
	})
	return result
}

func matchTodo(t models.TodoEntry, opts models.ReadTodoOptions) bool {
	if opts.Status != nil && t.Status != *opts.Status {
		return false
	}
	if opts.DueDate != nil {
		if t.DueDate == nil {
			return false
		}
		day := dates.Midnight(*t.DueDate)
		if day.Before(opts.DueDate.Start) || day.After(opts.DueDate.End) {
			return false
		}
	}
	return matchTags(t.Tags, opts.Tags)
}

func matchTags(have, want []string) bool {
	if len(want) == 0 {
		return true
	}
	for _, w := range want {
		for _, h := range have {
			if strings.EqualFold(w, h) {
				return true
			}
		}
	}
	return false
}
