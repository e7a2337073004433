// Package format renders structured entries back into the canonical
// Markdown block grammar. It is the exact inverse of package parser:
// parsing a formatted entry yields the entry back, except for the storage
// path (not representable in text) and tags (re-derived on parse).
package format

import (
	"fmt"
	"strings"
	"time"

	"github.com/amvidal/lgg/internal/models"
)

// DayHeader renders the first line of a day file, e.g.
// `# Friday, 15 Aug 2025` followed by a blank line.
func DayHeader(date time.Time, layout string) string {
	return fmt.Sprintf("# %s\n\n", date.Format(layout))
}

// EntryBlock renders one journal block: `## HH:MM - Title`, a blank line,
// and the body. Trailing newlines are trimmed from the body before exactly
// two are appended, so blocks always join cleanly.
func EntryBlock(e models.JournalEntry) string {
	heading := fmt.Sprintf("## %s - %s\n\n", e.Time.Format("15:04"), e.Title)
	if strings.TrimSpace(e.Body) == "" {
		return heading
	}
	return heading + strings.TrimRight(e.Body, "\n") + "\n\n"
}

// TodoBlock renders one todo item: `- [ ] Title | <due> | <done>` with the
// due column left empty when only a done timestamp is present, and a
// 6-space indented body on the following line.
func TodoBlock(e models.TodoEntry, dtLayout string) string {
	marker := "- [ ]"
	if e.Status == models.StatusDone {
		marker = "- [x]"
	}
	line := marker + " " + e.Title
	switch {
	case e.DueDate != nil && e.DoneDate != nil:
		line += " | " + e.DueDate.Format(dtLayout) + " | " + e.DoneDate.Format(dtLayout)
	case e.DueDate != nil:
		line += " | " + e.DueDate.Format(dtLayout)
	case e.DoneDate != nil:
		line += " |  | " + e.DoneDate.Format(dtLayout)
	}
	if strings.TrimSpace(e.Body) == "" {
		return line + "\n"
	}
	var b strings.Builder
	b.WriteString(line + "\n")
	for _, bodyLine := range strings.Split(strings.TrimRight(e.Body, "\n"), "\n") {
		b.WriteString("      " + bodyLine + "\n")
	}
	return b.String()
}
