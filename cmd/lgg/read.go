package main

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/urfave/cli/v3"

	"github.com/amvidal/lgg/internal"
	"github.com/amvidal/lgg/internal/dates"
	"github.com/amvidal/lgg/internal/models"
)

func readCommand() *cli.Command {
	return &cli.Command{
		Name:  "read",
		Usage: "Read journal entries",
		UsageText: "lgg read [--on TOKEN | --from TOKEN [--to TOKEN]] " +
			"[--at TOKEN] [--tags TAG,...] [--count] [--short]",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "on",
				Usage: "Single date token, e.g. \"yesterday\" or \"monday\"",
			},
			&cli.StringFlag{
				Name:  "from",
				Usage: "Range start date token; defaults to today when only --to is given",
			},
			&cli.StringFlag{
				Name:  "to",
				Usage: "Range end date token",
			},
			&cli.StringFlag{
				Name:  "at",
				Usage: "Time token, e.g. \"morning\" or \"6pm\"",
			},
			&cli.StringSliceFlag{
				Name:    "tags",
				Aliases: []string{"t"},
				Usage:   "Only entries carrying any of these tags",
			},
			&cli.BoolFlag{
				Name:  "all-tags",
				Usage: "Print the unique tags across the matched scope instead of entries",
			},
			&cli.BoolFlag{
				Name:  "count",
				Usage: "Print only the number of matching entries",
			},
			&cli.BoolFlag{
				Name:    "short",
				Aliases: []string{"s"},
				Usage:   "One line per entry, without bodies",
			},
		},
		Action: readAction,
	}
}

func readAction(ctx context.Context, cmd *cli.Command) error {
	app, err := loadApp(cmd)
	if err != nil {
		return err
	}
	p := printer(app)

	opts, err := readOptions(cmd, app)
	if err != nil {
		return err
	}

	res := app.Journal.ReadEntries(opts)
	switch {
	case cmd.Bool("all-tags"):
		p.Tags(uniqueTags(res.Entries))
	case cmd.Bool("count"):
		p.Count(len(res.Entries))
	default:
		p.Entries(res.Entries, cmd.Bool("short"))
	}
	p.Problems(res.Errors)
	return nil
}

// uniqueTags collects the sorted tag set of the matched entries.
func uniqueTags(entries []models.JournalEntry) []string {
	seen := make(map[string]bool)
	var out []string
	for _, e := range entries {
		for _, tag := range e.Tags {
			if !seen[tag] {
				seen[tag] = true
				out = append(out, tag)
			}
		}
	}
	sort.Strings(out)
	return out
}

// readOptions turns the read flags into a journal query. --on and
// --from/--to are mutually exclusive.
func readOptions(cmd *cli.Command, app *internal.App) (models.ReadOptions, error) {
	opts := models.ReadOptions{Tags: cmd.StringSlice("tags")}
	ref := time.Now()

	on := cmd.String("on")
	from := cmd.String("from")
	to := cmd.String("to")
	if on != "" && (from != "" || to != "") {
		return opts, fmt.Errorf("--on cannot be combined with --from/--to")
	}

	switch {
	case on != "":
		filter, ok := app.Resolver.ParseDateToken(on, "", ref)
		if !ok {
			return opts, fmt.Errorf("unrecognized date token: %q", on)
		}
		opts.Dates = &filter
	case from != "" || to != "":
		// A one-sided range extends to today.
		if from == "" {
			from = "today"
		}
		if to == "" {
			to = "today"
		}
		filter, ok := app.Resolver.ParseDateToken(from, to, ref)
		if !ok {
			return opts, fmt.Errorf("unrecognized date token: %q", from)
		}
		opts.Dates = &filter
	}

	if at := cmd.String("at"); at != "" {
		t, ok := app.Resolver.ParseTimeToken(at)
		if !ok {
			return opts, fmt.Errorf("unrecognized time token: %q", at)
		}
		tf := dates.SingleTime(t)
		opts.Time = &tf
	}
	return opts, nil
}
