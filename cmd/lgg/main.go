package main

import (
	"context"
	"fmt"
	"os"

	_ "github.com/joho/godotenv/autoload"
	"github.com/mitchellh/go-homedir"
	"github.com/urfave/cli/v3"

	"github.com/amvidal/lgg/internal"
	"github.com/amvidal/lgg/internal/clock"
	"github.com/amvidal/lgg/internal/render"
	pkgconfig "github.com/amvidal/lgg/pkg/config"
)

func main() {
	cmd := &cli.Command{
		Name:      "lgg",
		Usage:     "Plain-text journal and todo list with natural date tokens",
		UsageText: "lgg [command] | lgg <entry text, e.g. \"yesterday at 6am: Early start\">",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "config",
				Aliases:     []string{"c"},
				Usage:       "Path to config file",
				DefaultText: "~/.config/lgg/config.yaml",
				Value:       "~/.config/lgg/config.yaml",
				Sources:     cli.EnvVars("LGG_CONFIG_FILE"),
			},
		},
		Commands: []*cli.Command{
			readCommand(),
			todoCommand(),
			tagsCommand(),
			pathCommand(),
			watchCommand(),
			mcpCommand(),
		},
		// Bare arguments are a new journal entry.
		Action: writeAction,
	}

	if err := cmd.Run(context.Background(), os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "lgg: %v\n", err)
		os.Exit(1)
	}
}

// loadApp builds the application for one command invocation.
func loadApp(cmd *cli.Command) (*internal.App, error) {
	cfg := internal.NewDefaultConfig()
	path, err := expandPath(cmd.String("config"))
	if err != nil {
		return nil, err
	}
	if err := pkgconfig.LoadIfPresent(path, cfg); err != nil {
		return nil, err
	}
	return internal.NewApp(cfg, clock.System())
}

// printer builds the terminal renderer from the app's configured layouts.
func printer(app *internal.App) *render.Printer {
	return render.NewPrinter(os.Stdout, os.Stderr,
		app.Config.Journal.DateLayout, app.Config.Todos.DatetimeLayout)
}

func expandPath(p string) (string, error) {
	expanded, err := homedir.Expand(p)
	if err != nil {
		return "", fmt.Errorf("expand %s: %w", p, err)
	}
	return expanded, nil
}
