package main

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/urfave/cli/v3"

	"github.com/amvidal/lgg/internal/models"
)

func todoCommand() *cli.Command {
	list := &cli.Command{
		Name:  "list",
		Usage: "List todo items, due first, undated last",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:  "pending",
				Usage: "Only open items",
			},
			&cli.BoolFlag{
				Name:  "done",
				Usage: "Only completed items",
			},
			&cli.StringFlag{
				Name:  "due",
				Usage: "Only items due on this date token",
			},
			&cli.StringSliceFlag{
				Name:    "tags",
				Aliases: []string{"t"},
				Usage:   "Only items carrying any of these tags",
			},
			&cli.BoolFlag{
				Name:  "count",
				Usage: "Print only the number of matching items",
			},
			&cli.BoolFlag{
				Name:    "short",
				Aliases: []string{"s"},
				Usage:   "One line per item, without timestamps and bodies",
			},
		},
		Action: todoListAction,
	}

	return &cli.Command{
		Name:      "todo",
		Usage:     "Manage the todo list",
		UsageText: "lgg todo [add <title> | list]",
		Commands: []*cli.Command{
			{
				Name:      "add",
				Usage:     "Add a pending item",
				UsageText: "lgg todo add [--due TOKEN] [--at TOKEN] [--body TEXT] <title>",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:  "due",
						Usage: "Due date token, e.g. \"tomorrow\" or \"20/08/2025\"",
					},
					&cli.StringFlag{
						Name:  "at",
						Usage: "Due time token, e.g. \"9am\"",
					},
					&cli.StringFlag{
						Name:  "body",
						Usage: "Longer description below the item",
					},
				},
				Action: todoAddAction,
			},
			list,
		},
		// Bare `lgg todo` lists everything.
		Action: todoListAction,
	}
}

func todoAddAction(ctx context.Context, cmd *cli.Command) error {
	title := strings.TrimSpace(strings.Join(cmd.Args().Slice(), " "))
	if title == "" {
		return fmt.Errorf("todo add: a title is required")
	}

	app, err := loadApp(cmd)
	if err != nil {
		return err
	}
	p := printer(app)

	in := models.TodoWriteEntry{Title: title, Body: cmd.String("body")}
	if due := cmd.String("due"); due != "" {
		filter, ok := app.Resolver.ParseDateToken(due, "", time.Now())
		if !ok {
			return fmt.Errorf("unrecognized date token: %q", due)
		}
		in.DueDate = &filter.Start
	}
	if at := cmd.String("at"); at != "" {
		t, ok := app.Resolver.ParseTimeToken(at)
		if !ok {
			return fmt.Errorf("unrecognized time token: %q", at)
		}
		in.Time = &t
	}

	entry, err := app.Todos.CreateTodo(in)
	if err != nil {
		return err
	}
	p.Path(entry.Path)
	return nil
}

func todoListAction(ctx context.Context, cmd *cli.Command) error {
	app, err := loadApp(cmd)
	if err != nil {
		return err
	}
	p := printer(app)

	opts := models.ReadTodoOptions{Tags: cmd.StringSlice("tags")}
	switch {
	case cmd.Bool("pending") && cmd.Bool("done"):
		return fmt.Errorf("--pending and --done are mutually exclusive")
	case cmd.Bool("pending"):
		st := models.StatusPending
		opts.Status = &st
	case cmd.Bool("done"):
		st := models.StatusDone
		opts.Status = &st
	}
	if due := cmd.String("due"); due != "" {
		filter, ok := app.Resolver.ParseDateToken(due, "", time.Now())
		if !ok {
			return fmt.Errorf("unrecognized date token: %q", due)
		}
		opts.DueDate = &filter
	}

	res := app.Todos.ReadTodos(opts)
	if cmd.Bool("count") {
		p.Count(len(res.Todos))
	} else {
		p.Todos(res.Todos, cmd.Bool("short"))
	}
	p.Problems(res.Errors)
	return nil
}
