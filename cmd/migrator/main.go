package main

import (
	"context"
	"database/sql"
	"flag"
	"io/fs"
	"os"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"
	"github.com/pressly/goose/v3"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/gokatarajesh/kanaprac/internal/config"
	"github.com/gokatarajesh/kanaprac/internal/db"
	"github.com/gokatarajesh/kanaprac/internal/vocab"
)

func main() {
	command := flag.String("command", "up", "Migration command: up, down, status or seed")
	flag.Parse()

	log.Logger = zerolog.New(os.Stderr).With().Timestamp().Logger()

	if os.Getenv("APP_ENV") != "production" {
		_ = godotenv.Load()
	}

	ctx := context.Background()
	cfg, err := config.Load(ctx)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}
	if err := cfg.Postgres.Validate(); err != nil {
		log.Fatal().Err(err).Msg("invalid postgres configuration")
	}

	if *command == "seed" {
		seed(ctx, cfg.Postgres)
		return
	}

	// goose speaks database/sql, so go through the pgx stdlib driver
	conn, err := sql.Open("pgx", cfg.Postgres.ConnString())
	if err != nil {
		log.Fatal().Err(err).Str("host", cfg.Postgres.Host).Int("port", cfg.Postgres.Port).Msg("failed to open database connection")
	}
	defer conn.Close()

	if err := conn.PingContext(ctx); err != nil {
		log.Fatal().Err(err).Msg("failed to ping database")
	}

	log.Info().
		Str("host", cfg.Postgres.Host).
		Int("port", cfg.Postgres.Port).
		Str("database", cfg.Postgres.Database).
		Msg("connected to database")

	migrations, err := fs.Sub(db.Migrations, "migrations")
	if err != nil {
		log.Fatal().Err(err).Msg("failed to open embedded migrations")
	}
	goose.SetBaseFS(migrations)
	goose.SetTableName("goose_db_version")
	if err := goose.SetDialect("postgres"); err != nil {
		log.Fatal().Err(err).Msg("failed to set goose dialect")
	}

	switch *command {
	case "up":
		if err := goose.Up(conn, "."); err != nil {
			log.Fatal().Err(err).Msg("failed to run migrations up")
		}
		log.Info().Msg("migrations applied successfully")

	case "down":
		if err := goose.Down(conn, "."); err != nil {
			log.Fatal().Err(err).Msg("failed to run migrations down")
		}
		log.Info().Msg("migrations rolled back successfully")

	case "status":
		if err := goose.Status(conn, "."); err != nil {
			log.Fatal().Err(err).Msg("failed to get migration status")
		}

	default:
		log.Fatal().Str("command", *command).Msg("unknown command. Use: up, down, status or seed")
	}
}

func seed(ctx context.Context, pg config.Postgres) {
	pool, err := pgxpool.New(ctx, pg.ConnString())
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to database")
	}
	defer pool.Close()

	n, err := db.SeedDecks(ctx, pool, []string{vocab.DeckHiragana, vocab.DeckKatakana})
	if err != nil {
		log.Fatal().Err(err).Msg("failed to seed vocabulary")
	}
	log.Info().Int64("rows", n).Msg("vocabulary seeded")
}
