// Package paths maps journal dates and the todo list onto their canonical
// locations inside the storage root: one file per day under
// `YYYY/MM/YYYY-MM-DD.md`, plus a single flat `todos.md`.
package paths

import (
	"fmt"
	"path"
	"strings"
	"time"
)

// TodoFile is the todo list location, relative to the todos root.
const TodoFile = "todos.md"

const dayFileLayout = "2006-01-02"

// DayFile returns the relative path of the day file for date.
func DayFile(date time.Time) string {
	return path.Join(YearDir(date.Year()), monthSegment(date.Month()), date.Format(dayFileLayout)+".md")
}

// YearDir returns the relative directory holding one year of entries.
func YearDir(year int) string {
	return fmt.Sprintf("%04d", year)
}

// MonthDir returns the relative directory holding one month of entries.
func MonthDir(year int, month time.Month) string {
	return path.Join(YearDir(year), monthSegment(month))
}

func monthSegment(month time.Month) string {
	return fmt.Sprintf("%02d", month)
}

// DateFromDayFile recovers the date encoded in a day-file name. It only
// looks at the base name, so both relative and absolute paths work.
func DateFromDayFile(p string) (time.Time, bool) {
	name := strings.TrimSuffix(path.Base(p), ".md")
	d, err := time.Parse(dayFileLayout, name)
	if err != nil {
		return time.Time{}, false
	}
	return d, true
}
