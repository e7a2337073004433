// Package models defines the domain types for lgg.
package models

import (
	"fmt"
	"time"

	"github.com/amvidal/lgg/internal/dates"
)

// JournalEntry is one timestamped block inside a day file. Path is the file
// the entry was read from or written to; it is set only after a round trip
// through storage, never by pure parsing.
type JournalEntry struct {
	Date  time.Time `json:"date"`
	Time  time.Time `json:"time"`
	Title string    `json:"title"`
	Body  string    `json:"body,omitempty"`
	Tags  []string  `json:"tags,omitempty"`
	Path  string    `json:"path,omitempty"`
}

// JournalWriteEntry holds the fields needed to create a new journal entry.
type JournalWriteEntry struct {
	Date  time.Time
	Time  time.Time
	Title string
	Body  string
}

// TodoStatus is the completion state of a todo item.
type TodoStatus int

const (
	StatusPending TodoStatus = iota
	StatusDone
)

func (s TodoStatus) String() string {
	if s == StatusDone {
		return "done"
	}
	return "pending"
}

// TodoEntry is one checklist item in the todo list file. DueDate and
// DoneDate are nil when the item carries no due or completion timestamp.
type TodoEntry struct {
	DueDate  *time.Time `json:"due_date,omitempty"`
	DoneDate *time.Time `json:"done_date,omitempty"`
	Title    string     `json:"title"`
	Body     string     `json:"body,omitempty"`
	Tags     []string   `json:"tags,omitempty"`
	Status   TodoStatus `json:"status"`
	Path     string     `json:"path,omitempty"`
}

// TodoWriteEntry holds the fields needed to create a new todo item. Time is
// combined with DueDate when both are present; a due date without a time
// falls back to the configured default time.
type TodoWriteEntry struct {
	DueDate *time.Time
	Time    *time.Time
	Title   string
	Body    string
}

// QueryError is a non-fatal issue raised while resolving or reading.
// Queries accumulate these next to their results instead of aborting.
type QueryError struct {
	// Path is set for file-level problems.
	Path string
	// Input is set when a user-supplied token could not be resolved.
	Input string
	Err   error
}

func (e QueryError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("%s: %v", e.Path, e.Err)
	}
	if e.Input != "" {
		return fmt.Sprintf("%q: %v", e.Input, e.Err)
	}
	return e.Err.Error()
}

func (e QueryError) Unwrap() error { return e.Err }

// InvalidDateError flags a date token that resolved to nothing.
func InvalidDateError(input string, err error) QueryError {
	return QueryError{Input: input, Err: err}
}

// FileError flags a file that could not be read or parsed.
func FileError(path string, err error) QueryError {
	return QueryError{Path: path, Err: err}
}

// QueryResult carries every entry a journal query matched plus the
// non-fatal errors collected along the way. A malformed block never
// discards its well-formed siblings.
type QueryResult struct {
	Entries []JournalEntry
	Errors  []QueryError
}

// TodoQueryResult is the todo-list counterpart of QueryResult.
type TodoQueryResult struct {
	Todos  []TodoEntry
	Errors []QueryError
}

// QueryTagsResult lists the unique tags found across the journal.
type QueryTagsResult struct {
	Tags   []string
	Errors []QueryError
}

// ReadOptions filters a journal query. A nil Dates scans the whole journal
// tree. Tags match case-insensitively with OR semantics.
type ReadOptions struct {
	Dates *dates.DateFilter
	Time  *dates.TimeFilter
	Tags  []string
}

// ReadTodoOptions filters a todo query. A nil Status keeps every item.
type ReadTodoOptions struct {
	DueDate *dates.DateFilter
	Tags    []string
	Status  *TodoStatus
}
