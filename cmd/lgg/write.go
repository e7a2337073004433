package main

import (
	"context"
	"strings"
	"time"

	"github.com/urfave/cli/v3"

	"github.com/amvidal/lgg/internal/parser"
)

// writeAction turns the bare command arguments into one journal entry.
// With no arguments it prints usage instead.
func writeAction(ctx context.Context, cmd *cli.Command) error {
	args := cmd.Args().Slice()
	if len(args) == 0 {
		return cli.ShowAppHelp(cmd)
	}

	app, err := loadApp(cmd)
	if err != nil {
		return err
	}
	p := printer(app)

	text := strings.Join(args, " ")
	in := parser.ParseInput(text, app.Resolver, time.Now())
	entry, warnings, err := app.Journal.CreateEntry(in)
	if err != nil {
		return err
	}
	p.Path(entry.Path)
	p.Problems(warnings)
	return nil
}
