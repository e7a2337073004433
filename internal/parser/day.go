package parser

import (
	"fmt"
	"strings"
	"time"

	"github.com/amvidal/lgg/internal/dates"
	"github.com/amvidal/lgg/internal/models"
)

// DayFileResult holds the entries parsed out of one day file and the
// per-block problems found along the way.
type DayFileResult struct {
	Entries []models.JournalEntry
	Errors  []error
}

// ParseDayFile parses the full text of a day file. The first line must be a
// `# <date>` header in headerLayout; an empty file or unparseable header is
// fatal for the file and yields zero entries. Every block after that starts
// with `## HH:MM - Title`. A malformed block is reported and skipped;
// parsing always continues with its siblings.
func ParseDayFile(content, headerLayout string) DayFileResult {
	var result DayFileResult

	header, body, found := strings.Cut(content, "\n")
	if !found && strings.TrimSpace(content) == "" {
		result.Errors = append(result.Errors,
			fmt.Errorf("empty file: expected a date header like `# DATE` on the first line"))
		return result
	}

	date, err := parseDayHeader(header, headerLayout)
	if err != nil {
		result.Errors = append(result.Errors, err)
		return result
	}

	for _, block := range splitBlocks(body) {
		entry, err := parseDayBlock(block, date)
		if err != nil {
			result.Errors = append(result.Errors, err)
			continue
		}
		result.Entries = append(result.Entries, entry)
	}
	return result
}

func parseDayHeader(line, layout string) (time.Time, error) {
	raw, ok := strings.CutPrefix(strings.TrimSpace(line), "# ")
	if ok {
		if d, err := time.Parse(layout, strings.TrimSpace(raw)); err == nil {
			return dates.Midnight(d), nil
		}
	}
	return time.Time{}, fmt.Errorf("invalid or missing date header: expected first line like `# DATE`, found `%s`", line)
}

// splitBlocks cuts file content on the `## ` entry delimiter, tolerating a
// delimiter at the very start of the remaining content.
func splitBlocks(content string) []string {
	content = strings.TrimLeft(content, "\n")
	content = strings.TrimPrefix(content, "## ")
	var blocks []string
	for _, b := range strings.Split(content, "\n## ") {
		if strings.TrimSpace(b) != "" {
			blocks = append(blocks, b)
		}
	}
	return blocks
}

func parseDayBlock(block string, date time.Time) (models.JournalEntry, error) {
	heading, body, _ := strings.Cut(block, "\n")
	body = strings.TrimSpace(body)

	timeStr, title, found := strings.Cut(heading, " - ")
	if !found {
		return models.JournalEntry{}, fmt.Errorf(
			"invalid entry heading `%s`: expected `HH:MM - Title` (e.g. `08:03 - Morning coffee`)", heading)
	}
	clock, err := time.Parse("15:04", strings.TrimSpace(timeStr))
	if err != nil {
		return models.JournalEntry{}, fmt.Errorf(
			"invalid time in entry heading `%s`: expected a 24-hour `HH:MM`", heading)
	}
	title = strings.TrimSpace(title)

	return models.JournalEntry{
		Date:  date,
		Time:  dates.TimeOfDay(clock),
		Title: title,
		Body:  body,
		Tags:  ExtractTags(tagSource(title, body)),
	}, nil
}
