package internal

import (
	"fmt"
	"log/slog"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// Config represents the application configuration.
type Config struct {
	App     ApplicationConfig `yaml:"app"`
	Journal JournalConfig     `yaml:"journal"`
	Todos   TodosConfig       `yaml:"todos"`
	// Synonyms maps extra date/time spellings to canonical keyword names,
	// e.g. "ayer: yesterday". Unknown targets are ignored.
	Synonyms map[string]string `yaml:"synonyms"`
}

// Validate validates the configuration.
func (c *Config) Validate() error {
	if err := c.Journal.Validate(); err != nil {
		return err
	}
	return c.Todos.Validate()
}

// ApplicationConfig holds application-level configuration.
type ApplicationConfig struct {
	LogLevel slog.Level `yaml:"log_level"`
}

// JournalConfig holds the journal tree location and its date formats.
type JournalConfig struct {
	// Dir is the journal root. A leading ~ expands to the home directory.
	Dir string `yaml:"dir"`
	// DateLayout renders the `# <date>` header of every day file.
	DateLayout string `yaml:"date_layout"`
	// InputDateLayouts are the formatted-date layouts accepted in entry
	// prefixes and query flags, tried in order.
	InputDateLayouts []string `yaml:"input_date_layouts"`
	// DefaultTime, in HH:MM, stamps entries whose date was written without
	// a time.
	DefaultTime string `yaml:"default_time"`
}

// Validate validates the journal configuration.
func (c *JournalConfig) Validate() error {
	return validation.ValidateStruct(c,
		validation.Field(&c.Dir, validation.Required),
		validation.Field(&c.DateLayout, validation.Required),
		validation.Field(&c.DefaultTime, validation.Required, validation.By(validClockTime)),
	)
}

// DefaultClockTime parses DefaultTime. Call Validate first.
func (c *JournalConfig) DefaultClockTime() time.Time {
	t, _ := time.Parse("15:04", c.DefaultTime)
	return t
}

func validClockTime(value any) error {
	s, _ := value.(string)
	if _, err := time.Parse("15:04", s); err != nil {
		return fmt.Errorf("must be a 24-hour HH:MM time, got %q", s)
	}
	return nil
}

// TodosConfig holds the todo list location and its datetime format.
type TodosConfig struct {
	// Dir is the directory holding todos.md. Defaults to the journal dir.
	Dir string `yaml:"dir"`
	// DatetimeLayout renders due and done timestamps on todo items.
	DatetimeLayout string `yaml:"datetime_layout"`
}

// Validate validates the todos configuration.
func (c *TodosConfig) Validate() error {
	return validation.ValidateStruct(c,
		validation.Field(&c.DatetimeLayout, validation.Required),
	)
}

// NewDefaultConfig returns a new Config with sensible default values.
func NewDefaultConfig() *Config {
	return &Config{
		App: ApplicationConfig{
			LogLevel: slog.LevelWarn,
		},
		Journal: JournalConfig{
			Dir:              "~/lgg",
			DateLayout:       "Monday, 2 Jan 2006",
			InputDateLayouts: []string{"02/01/2006"},
			DefaultTime:      "12:00",
		},
		Todos: TodosConfig{
			DatetimeLayout: "02/01/2006 15:04",
		},
	}
}
