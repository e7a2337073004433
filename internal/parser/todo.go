package parser

import (
	"fmt"
	"strings"
	"time"

	"github.com/amvidal/lgg/internal/models"
)

// TodoFileResult holds the items parsed out of the todo list file and the
// per-item problems found along the way.
type TodoFileResult struct {
	Todos  []models.TodoEntry
	Errors []error
}

var todoMarkers = []struct {
	prefix string
	status models.TodoStatus
}{
	{"- [ ] ", models.StatusPending},
	{"- [x] ", models.StatusDone},
	{"- [X] ", models.StatusDone},
}

func todoMarker(line string) (models.TodoStatus, string, bool) {
	trimmed := strings.TrimLeft(line, " \t")
	for _, m := range todoMarkers {
		if rest, ok := strings.CutPrefix(trimmed, m.prefix); ok {
			return m.status, strings.TrimLeft(rest, " "), true
		}
	}
	return 0, "", false
}

// ParseTodoFile parses the flat todo list. The first line must start with
// `#`; items are `- [ ]` / `- [x]` lines with optional ` | due` and
// ` | done` datetime fields in dtLayout, followed by indented continuation
// lines forming the body until the next item. A bad datetime is reported
// and the item is kept without it.
func ParseTodoFile(content, dtLayout string) TodoFileResult {
	var result TodoFileResult

	lines := strings.Split(content, "\n")
	if len(lines) == 0 || strings.TrimSpace(lines[0]) == "" {
		result.Errors = append(result.Errors,
			fmt.Errorf("empty file: expected a `#` header on the first line"))
		return result
	}
	if !strings.HasPrefix(strings.TrimLeft(lines[0], " \t"), "#") {
		result.Errors = append(result.Errors,
			fmt.Errorf("first line must be a header like `# ...`, got `%s`", lines[0]))
	}

	for i := 1; i < len(lines); {
		status, rest, ok := todoMarker(lines[i])
		if !ok {
			i++
			continue
		}
		header := lines[i]
		i++

		fields := strings.Split(rest, " | ")
		title := strings.TrimSpace(fields[0])
		var dueStr, doneStr string
		if len(fields) > 1 {
			dueStr = strings.TrimSpace(fields[1])
		}
		if len(fields) > 2 {
			doneStr = strings.TrimSpace(fields[2])
		}

		due, err := parseOptionalDateTime(dueStr, dtLayout)
		if err != nil {
			result.Errors = append(result.Errors, fmt.Errorf("in `%s`: %w", header, err))
		}
		done, err := parseOptionalDateTime(doneStr, dtLayout)
		if err != nil {
			result.Errors = append(result.Errors, fmt.Errorf("in `%s`: %w", header, err))
		}

		var bodyLines []string
		for i < len(lines) {
			if _, _, next := todoMarker(lines[i]); next {
				break
			}
			bodyLines = append(bodyLines, strings.TrimSpace(lines[i]))
			i++
		}
		body := strings.TrimSpace(strings.Join(bodyLines, "\n"))

		result.Todos = append(result.Todos, models.TodoEntry{
			DueDate:  due,
			DoneDate: done,
			Title:    title,
			Body:     body,
			Tags:     ExtractTags(tagSource(title, body)),
			Status:   status,
		})
	}
	return result
}

func parseOptionalDateTime(s, layout string) (*time.Time, error) {
	if s == "" {
		return nil, nil
	}
	dt, err := time.Parse(layout, s)
	if err != nil {
		return nil, fmt.Errorf("invalid datetime `%s`: expected `%s`", s, layout)
	}
	return &dt, nil
}
