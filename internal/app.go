// Package internal wires configuration into the running services.
package internal

import (
	"fmt"
	"log/slog"
	"os"
	"sort"

	"github.com/mitchellh/go-homedir"

	"github.com/amvidal/lgg/internal/clock"
	"github.com/amvidal/lgg/internal/dates"
	"github.com/amvidal/lgg/internal/journal"
	"github.com/amvidal/lgg/internal/keyword"
	"github.com/amvidal/lgg/internal/storage"
	"github.com/amvidal/lgg/internal/todos"
)

// App holds the assembled services behind every command. Failing to create
// the journal directory is the only fatal setup error; everything after
// that surfaces as accumulated query errors.
type App struct {
	Config   *Config
	Log      *slog.Logger
	Keywords *keyword.Registry
	Resolver *dates.Resolver
	Journal  *journal.Service
	Todos    *todos.Service

	// JournalDir and TodosDir are the expanded absolute roots.
	JournalDir string
	TodosDir   string
}

// NewApp builds the application from cfg. The clock is injectable so
// commands and tests can pin the reference date.
func NewApp(cfg *Config, clk clock.Clock) (*App, error) {
	log := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: cfg.App.LogLevel,
	}))
	slog.SetDefault(log)

	journalDir, err := homedir.Expand(cfg.Journal.Dir)
	if err != nil {
		return nil, fmt.Errorf("expand journal dir: %w", err)
	}
	todosDir := journalDir
	if cfg.Todos.Dir != "" {
		if todosDir, err = homedir.Expand(cfg.Todos.Dir); err != nil {
			return nil, fmt.Errorf("expand todos dir: %w", err)
		}
	}

	if err := os.MkdirAll(journalDir, 0o755); err != nil {
		return nil, fmt.Errorf("create journal dir: %w", err)
	}
	if err := os.MkdirAll(todosDir, 0o755); err != nil {
		return nil, fmt.Errorf("create todos dir: %w", err)
	}

	journalStore, err := storage.NewFS(journalDir)
	if err != nil {
		return nil, fmt.Errorf("init journal storage: %w", err)
	}
	todoStore, err := storage.NewFS(todosDir)
	if err != nil {
		return nil, fmt.Errorf("init todos storage: %w", err)
	}

	registry := keyword.NewRegistry()
	registry.Extend(synonymPairs(cfg.Synonyms))
	resolver := dates.NewResolver(registry, cfg.Journal.InputDateLayouts)

	defaultTime := cfg.Journal.DefaultClockTime()
	return &App{
		Config:     cfg,
		Log:        log,
		Keywords:   registry,
		Resolver:   resolver,
		Journal:    journal.NewService(journalStore, log, cfg.Journal.DateLayout, defaultTime, clk),
		Todos:      todos.NewService(todoStore, log, cfg.Todos.DatetimeLayout, defaultTime, clk),
		JournalDir: journalDir,
		TodosDir:   todosDir,
	}, nil
}

// synonymPairs flattens the config map into a deterministic order so
// repeated runs register aliases identically.
func synonymPairs(m map[string]string) []keyword.Synonym {
	aliases := make([]string, 0, len(m))
	for alias := range m {
		aliases = append(aliases, alias)
	}
	sort.Strings(aliases)
	pairs := make([]keyword.Synonym, 0, len(aliases))
	for _, alias := range aliases {
		pairs = append(pairs, keyword.Synonym{Alias: alias, Target: m[alias]})
	}
	return pairs
}
