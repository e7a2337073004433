package main

import (
	"context"

	"github.com/urfave/cli/v3"

	"github.com/amvidal/lgg/internal/clock"
	"github.com/amvidal/lgg/internal/mcpserver"
)

func mcpCommand() *cli.Command {
	return &cli.Command{
		Name:   "mcp",
		Usage:  "Serve the journal over the Model Context Protocol on stdio",
		Action: mcpAction,
	}
}

func mcpAction(ctx context.Context, cmd *cli.Command) error {
	app, err := loadApp(cmd)
	if err != nil {
		return err
	}
	srv := mcpserver.New(app.Journal, app.Todos, app.Resolver, clock.System())
	app.Log.Info("mcp: serving on stdio")
	return srv.ServeStdio()
}
