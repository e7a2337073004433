package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/urfave/cli/v3"
	"golang.org/x/sync/errgroup"

	"github.com/amvidal/lgg/internal/models"
	"github.com/amvidal/lgg/internal/watch"
)

func watchCommand() *cli.Command {
	return &cli.Command{
		Name:  "watch",
		Usage: "Live view: re-render entries whenever the journal changes on disk",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "on",
				Usage: "Date token to follow",
				Value: "today",
			},
		},
		Action: watchAction,
	}
}

func watchAction(ctx context.Context, cmd *cli.Command) error {
	app, err := loadApp(cmd)
	if err != nil {
		return err
	}
	p := printer(app)

	token := cmd.String("on")
	filter, ok := app.Resolver.ParseDateToken(token, "", time.Now())
	if !ok {
		return fmt.Errorf("unrecognized date token: %q", token)
	}

	view := func() {
		fmt.Print("\033[2J\033[H") // clear screen, cursor home
		res := app.Journal.ReadEntries(models.ReadOptions{Dates: &filter})
		p.Entries(res.Entries, false)
		p.Problems(res.Errors)
	}
	view()

	sigCtx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	g, gCtx := errgroup.WithContext(sigCtx)
	g.Go(func() error {
		return watch.Watch(gCtx, app.JournalDir, app.Log, func(map[string]string) { view() })
	})
	if app.TodosDir != app.JournalDir {
		g.Go(func() error {
			return watch.Watch(gCtx, app.TodosDir, app.Log, func(map[string]string) { view() })
		})
	}
	return g.Wait()
}
