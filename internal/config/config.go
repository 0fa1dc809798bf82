package config

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"strconv"
	"time"

	"github.com/caarlos0/env/v10"
)

// Vocabulary source kinds.
const (
	SourceEmbedded = "embedded"
	SourceDir      = "dir"
	SourcePostgres = "postgres"
)

// App holds the runtime configuration of the drill.
type App struct {
	Name                    string        `env:"APP_NAME" envDefault:"kanaprac"`
	Env                     string        `env:"APP_ENV" envDefault:"development"`
	LogLevel                string        `env:"LOG_LEVEL" envDefault:"warn"`
	GracefulShutdownTimeout time.Duration `env:"GRACEFUL_SHUTDOWN_SECONDS" envDefault:"5s"`

	Drill    Drill
	Vocab    Vocab
	Postgres Postgres
	Redis    Redis
	Metrics  Metrics
}

// Drill groups the quiz options also exposed as flags.
type Drill struct {
	KanaSet    string `env:"KANA_SET" envDefault:"hira"`
	Iterations int    `env:"ITERATIONS" envDefault:"0"`
	Seed       string `env:"DRILL_SEED" envDefault:""`
	NoColor    string `env:"NO_COLOR" envDefault:""`
}

// ColorDisabled follows the NO_COLOR convention: any non-empty value turns colour off.
func (d Drill) ColorDisabled() bool {
	return d.NoColor != ""
}

// Vocab selects where decks are loaded from.
type Vocab struct {
	Source   string        `env:"VOCAB_SOURCE" envDefault:"embedded"`
	Dir      string        `env:"VOCAB_DIR" envDefault:"data"`
	Cache    bool          `env:"VOCAB_CACHE" envDefault:"false"`
	CacheTTL time.Duration `env:"VOCAB_CACHE_TTL" envDefault:"24h"`
}

// Postgres captures connection info for the vocabulary database.
type Postgres struct {
	Host     string `env:"PG_HOST" envDefault:"localhost"`
	Port     int    `env:"PG_PORT" envDefault:"5432"`
	User     string `env:"PG_USER" envDefault:""`
	Password string `env:"PG_PASSWORD" envDefault:""`
	Database string `env:"PG_DATABASE" envDefault:""`
	SSLMode  string `env:"PG_SSL_MODE" envDefault:"disable"`
}

// ConnString renders a libpq-style DSN accepted by pgx.
func (p Postgres) ConnString() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		p.Host, p.Port, p.User, p.Password, p.Database, p.SSLMode)
}

// Validate reports missing credentials.
func (p Postgres) Validate() error {
	var errs []error
	if p.User == "" {
		errs = append(errs, errors.New("PG_USER is required"))
	}
	if p.Password == "" {
		errs = append(errs, errors.New("PG_PASSWORD is required"))
	}
	if p.Database == "" {
		errs = append(errs, errors.New("PG_DATABASE is required"))
	}
	return errors.Join(errs...)
}

// Redis holds the vocabulary cache connection.
type Redis struct {
	Addr     string `env:"REDIS_ADDR" envDefault:"localhost:6379"`
	DB       int    `env:"REDIS_DB" envDefault:"0"`
	PoolSize int    `env:"REDIS_POOL_SIZE" envDefault:"4"`
}

// Metrics enables the /metrics listener when Addr is set.
type Metrics struct {
	Addr string `env:"METRICS_ADDR" envDefault:""`
}

// Load parses environment variables into App config.
func Load(ctx context.Context) (*App, error) {
	cfg := &App{}
	if err := env.ParseWithOptions(cfg, env.Options{RequiredIfNoDef: true}); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	return cfg, nil
}

// BindFlags registers the command-line overrides on fs, defaulting to the current values.
func (c *App) BindFlags(fs *flag.FlagSet) {
	fs.StringVar(&c.Drill.KanaSet, "kana", c.Drill.KanaSet, "Which kana to use: hira, kata or both")
	fs.IntVar(&c.Drill.Iterations, "iterations", c.Drill.Iterations, "How many rounds to play (0 loops until end of input)")
	fs.StringVar(&c.Drill.Seed, "seed", c.Drill.Seed, "Seed for a reproducible draw order")
	fs.BoolFunc("no-color", "Disable coloured output", func(v string) error {
		off, err := strconv.ParseBool(v)
		if err != nil {
			return err
		}
		c.Drill.NoColor = ""
		if off {
			c.Drill.NoColor = "1"
		}
		return nil
	})
	fs.StringVar(&c.Vocab.Source, "source", c.Vocab.Source, "Vocabulary source: embedded, dir or postgres")
	fs.StringVar(&c.Vocab.Dir, "dir", c.Vocab.Dir, "Directory holding <deck>.txt files for -source=dir")
}

// Validate checks combinations the env parser cannot express.
func (c *App) Validate() error {
	if c.Drill.Iterations < 0 {
		return fmt.Errorf("iterations must not be negative, got %d", c.Drill.Iterations)
	}
	switch c.Vocab.Source {
	case SourceEmbedded, SourceDir:
	case SourcePostgres:
		if err := c.Postgres.Validate(); err != nil {
			return fmt.Errorf("postgres source: %w", err)
		}
	default:
		return fmt.Errorf("unknown vocabulary source %q", c.Vocab.Source)
	}
	return nil
}
