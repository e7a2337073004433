// Package journal coordinates parsing, formatting and storage for the
// day-file tree. Queries never abort on a malformed file or block: problems
// are accumulated next to the results that could still be produced.
package journal

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

// Service owns the journal tree rooted at its storage provider.
type Service struct {
	store        storage.Provider
	log          *slog.Logger
	headerLayout string
	defaultTime  time.Time
	clock        clock.Clock
}

// NewService creates a journal service. headerLayout is the day-header date
// layout, defaultTime the clock time given to entries whose date was written
// explicitly but whose time was not.
func NewService(store storage.Provider, log *slog.Logger, headerLayout string, defaultTime time.Time, clk clock.Clock) *Service {
	return &Service{
		store:        store,
		log:          log,
		headerLayout: headerLayout,
		defaultTime:  defaultTime,
		clock:        clk,
	}
}

// CreateEntry appends one entry to its day file, creating the file with a
// header when absent. An existing file is reparsed and rewritten with the
// blocks in time order; when the existing content does not parse cleanly the
// new block is appended verbatim instead, so nothing is ever lost, and the
// parse problems come back as warnings.
func (s *Service) CreateEntry(in parser.Input) (models.JournalEntry, []models.QueryError, error) {
	entry := models.JournalEntry{
		Date:  in.Date,
		Time:  s.effectiveTime(in),
		Title: in.Title,
		Body:  in.Body,
		Tags:  parser.Tags(in.Title, in.Body),
		Path:  paths.DayFile(in.Date),
	}

	exists, err := s.store.Exists(entry.Path)
	if err != nil {
		return models.JournalEntry{}, nil, fmt.Errorf("journal: create entry: %w", err)
	}
	if !exists {
		content := format.DayHeader(entry.Date, s.headerLayout) + format.EntryBlock(entry)
		if err := s.store.Write(entry.Path, []byte(content)); err != nil {
			return models.JournalEntry{}, nil, fmt.Errorf("journal: create entry: %w", err)
		}
		s.log.Debug("journal: day file created", "path", entry.Path)
		return entry, nil, nil
	}

	data, err := s.store.Read(entry.Path)
	if err != nil {
		return models.JournalEntry{}, nil, fmt.Errorf("journal: create entry: %w", err)
	}
	result := parser.ParseDayFile(string(data), s.headerLayout)
	if len(result.Errors) > 0 {
		// Never rewrite content we could not fully parse.
		var warnings []models.QueryError
		for _, perr := range result.Errors {
			warnings = append(warnings, models.FileError(entry.Path, perr))
		}
		block := "\n" + format.EntryBlock(entry)
		if err := s.store.Append(entry.Path, []byte(block)); err != nil {
			return models.JournalEntry{}, warnings, fmt.Errorf("journal: create entry: %w", err)
		}
		s.log.Warn("journal: appended without sorting, day file has problems",
			"path", entry.Path, "problems", len(warnings))
		return entry, warnings, nil
	}

	blocks := append(result.Entries, entry)
	sort.SliceStable(blocks, func(i, j int) bool {
		return blocks[i].Time.Before(blocks[j].Time)
	})
	var b strings.Builder
	b.WriteString(format.DayHeader(entry.Date, s.headerLayout))
	for _, e := range blocks {
		b.WriteString(format.EntryBlock(e))
	}
	if err := s.store.Write(entry.Path, []byte(b.String())); err != nil {
		return models.JournalEntry{}, nil, fmt.Errorf("journal: create entry: %w", err)
	}
	return entry, nil, nil
}

func (s *Service) effectiveTime(in parser.Input) time.Time {
	if in.HasTime {
		return in.Time
	}
	if in.ExplicitDate {
		return s.defaultTime
	}
	now := s.clock.Now()
	return dates.ClockTime(now.Hour(), now.Minute(), 0)
}

// ReadEntries returns every entry matching opts, sorted by date then time.
// A nil Dates filter scans the whole tree.
func (s *Service) ReadEntries(opts models.ReadOptions) models.QueryResult {
	var result models.QueryResult

	for _, path := range s.candidateFiles(opts.Dates, &result) {
		entries, errs := s.ParseFile(path)
		result.Errors = append(result.Errors, errs...)
		for _, e := range entries {
			if !matchEntry(e, opts) {
				continue
			}
			result.Entries = append(result.Entries, e)
		}
	}

	sort.SliceStable(result.Entries, func(i, j int) bool {
		if !result.Entries[i].Date.Equal(result.Entries[j].Date) {
			return result.Entries[i].Date.Before(result.Entries[j].Date)
		}
		return result.Entries[i].Time.Before(result.Entries[j].Time)
	})
	return result
}

// ParseFile reads and parses one day file, stamping each entry with its
// storage path. A missing file yields nothing at all: absent days are not
// an error.
func (s *Service) ParseFile(path string) ([]models.JournalEntry, []models.QueryError) {
	data, err := s.store.Read(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, []models.QueryError{models.FileError(path, err)}
	}

	result := parser.ParseDayFile(string(data), s.headerLayout)
	var errs []models.QueryError
	for _, perr := range result.Errors {
		errs = append(errs, models.FileError(path, perr))
	}
	for i := range result.Entries {
		result.Entries[i].Path = path
	}
	return result.Entries, errs
}

// SearchAllTags collects the unique tags used anywhere in the journal,
// sorted alphabetically.
func (s *Service) SearchAllTags() models.QueryTagsResult {
	var result models.QueryTagsResult

	files, err := s.store.ListMarkdown("")
	if err != nil {
		result.Errors = append(result.Errors, models.FileError("", err))
		return result
	}

	seen := make(map[string]bool)
	for _, path := range files {
		entries, errs := s.ParseFile(path)
		result.Errors = append(result.Errors, errs...)
		for _, e := range entries {
			for _, tag := range e.Tags {
				if !seen[tag] {
					seen[tag] = true
					result.Tags = append(result.Tags, tag)
				}
			}
		}
	}
	sort.Strings(result.Tags)
	return result
}

// candidateFiles narrows the tree scan to the files a date filter can
// possibly match. Listing problems are recorded on result.
func (s *Service) candidateFiles(filter *dates.DateFilter, result *models.QueryResult) []string {
	if filter == nil {
		files, err := s.store.ListMarkdown("")
		if err != nil {
			result.Errors = append(result.Errors, models.FileError("", err))
			return nil
		}
		return dayFilesOnly(files)
	}
	if !filter.IsRange {
		return []string{paths.DayFile(filter.Start)}
	}

	var out []string
	for _, dir := range monthDirs(filter.Start, filter.End) {
		files, err := s.store.ListMarkdown(dir)
		if err != nil {
			result.Errors = append(result.Errors, models.FileError(dir, err))
			continue
		}
		for _, f := range files {
			d, ok := paths.DateFromDayFile(f)
			if !ok {
				continue
			}
			if d.Before(filter.Start) || d.After(filter.End) {
				continue
			}
			out = append(out, f)
		}
	}
	return out
}

func dayFilesOnly(files []string) []string {
	var out []string
	for _, f := range files {
		if _, ok := paths.DateFromDayFile(f); ok {
			out = append(out, f)
		}
	}
	return out
}

// monthDirs lists the month directories a date range can touch, inclusive.
// A reversed range yields nothing.
func monthDirs(start, end time.Time) []string {
	var out []string
	cur := dates.Day(start.Year(), start.Month(), 1)
	last := dates.Day(end.Year(), end.Month(), 1)
	for !cur.After(last) {
		out = append(out, paths.MonthDir(cur.Year(), cur.Month()))
		cur = cur.AddDate(0, 1, 0)
	}
	return out
}

func matchEntry(e models.JournalEntry, opts models.ReadOptions) bool {
	if opts.Time != nil && !dates.TimeMatches(*opts.Time, e.Time) {
		return false
	}
	return matchTags(e.Tags, opts.Tags)
}

// matchTags is an OR filter: the entry passes when it carries at least one
// of the wanted tags. An empty want list passes everything.
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
