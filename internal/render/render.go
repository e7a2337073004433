// Package render prints query results for the terminal. Output keeps the
// on-disk Markdown shape so a rendered day can be pasted back into a file.
package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"

	"github.com/amvidal/lgg/internal/models"
)

// Printer renders entries, todos, and tags onto two writers: results on
// out, accumulated problems on errOut.
type Printer struct {
	out        io.Writer
	errOut     io.Writer
	dateLayout string
	dtLayout   string

	heading *color.Color
	clock   *color.Color
	due     *color.Color
	done    *color.Color
	warn    *color.Color
}

// NewPrinter creates a Printer. dateLayout renders day headings, dtLayout
// todo timestamps.
func NewPrinter(out, errOut io.Writer, dateLayout, dtLayout string) *Printer {
	return &Printer{
		out:        out,
		errOut:     errOut,
		dateLayout: dateLayout,
		dtLayout:   dtLayout,
		heading:    color.New(color.Bold),
		clock:      color.New(color.FgCyan),
		due:        color.New(color.FgYellow),
		done:       color.New(color.FgGreen),
		warn:       color.New(color.FgRed),
	}
}

// Entries prints journal entries grouped under one heading per day. In
// short mode each entry collapses to a single line without its body.
func (p *Printer) Entries(entries []models.JournalEntry, short bool) {
	if len(entries) == 0 {
		fmt.Fprintln(p.out, "No entries found.")
		return
	}
	if short {
		for _, e := range entries {
			fmt.Fprintf(p.out, "%s %s  %s\n",
				e.Date.Format("2006-01-02"), p.clock.Sprint(e.Time.Format("15:04")), e.Title)
		}
		return
	}

	var lastDay string
	for _, e := range entries {
		day := e.Date.Format(p.dateLayout)
		if day != lastDay {
			if lastDay != "" {
				fmt.Fprintln(p.out)
			}
			p.heading.Fprintf(p.out, "# %s\n", day)
			lastDay = day
		}
		fmt.Fprintf(p.out, "\n## %s - %s\n", p.clock.Sprint(e.Time.Format("15:04")), e.Title)
		if e.Body != "" {
			fmt.Fprintf(p.out, "\n%s\n", e.Body)
		}
	}
}

// Todos prints the todo list. In short mode timestamps and bodies are
// dropped.
func (p *Printer) Todos(todos []models.TodoEntry, short bool) {
	if len(todos) == 0 {
		fmt.Fprintln(p.out, "No todos found.")
		return
	}
	for _, t := range todos {
		marker := "[ ]"
		if t.Status == models.StatusDone {
			marker = p.done.Sprint("[x]")
		}
		fmt.Fprintf(p.out, "%s %s", marker, t.Title)
		if !short {
			if t.DueDate != nil {
				fmt.Fprintf(p.out, "  %s", p.due.Sprintf("due %s", t.DueDate.Format(p.dtLayout)))
			}
			if t.DoneDate != nil {
				fmt.Fprintf(p.out, "  %s", p.done.Sprintf("done %s", t.DoneDate.Format(p.dtLayout)))
			}
		}
		fmt.Fprintln(p.out)
		if !short && t.Body != "" {
			for _, line := range strings.Split(t.Body, "\n") {
				fmt.Fprintf(p.out, "    %s\n", line)
			}
		}
	}
}

// Tags prints one tag per line.
func (p *Printer) Tags(tags []string) {
	if len(tags) == 0 {
		fmt.Fprintln(p.out, "No tags found.")
		return
	}
	for _, t := range tags {
		fmt.Fprintf(p.out, "@%s\n", t)
	}
}

// Count prints a bare match count.
func (p *Printer) Count(n int) {
	fmt.Fprintln(p.out, n)
}

// Path prints a storage path.
func (p *Printer) Path(path string) {
	fmt.Fprintln(p.out, path)
}

// Problems prints accumulated query errors on the error writer. Results
// always print first so warnings never interleave with them.
func (p *Printer) Problems(errs []models.QueryError) {
	for _, e := range errs {
		p.warn.Fprintf(p.errOut, "warning: %s\n", e.Error())
	}
}
