package main

import (
	"context"
	"path/filepath"

	"github.com/urfave/cli/v3"

	"github.com/amvidal/lgg/internal/paths"
)

func tagsCommand() *cli.Command {
	return &cli.Command{
		Name:   "tags",
		Usage:  "List every tag used anywhere in the journal",
		Action: tagsAction,
	}
}

func tagsAction(ctx context.Context, cmd *cli.Command) error {
	app, err := loadApp(cmd)
	if err != nil {
		return err
	}
	p := printer(app)

	res := app.Journal.SearchAllTags()
	p.Tags(res.Tags)
	p.Problems(res.Errors)
	return nil
}

func pathCommand() *cli.Command {
	return &cli.Command{
		Name:  "path",
		Usage: "Print the journal root, or the todo list path with --todos",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:  "todos",
				Usage: "Print the todo list file path instead",
			},
		},
		Action: pathAction,
	}
}

func pathAction(ctx context.Context, cmd *cli.Command) error {
	app, err := loadApp(cmd)
	if err != nil {
		return err
	}
	p := printer(app)

	if cmd.Bool("todos") {
		p.Path(filepath.Join(app.TodosDir, paths.TodoFile))
		return nil
	}
	p.Path(app.JournalDir)
	return nil
}
