package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/gokatarajesh/kanaprac/internal/config"
	"github.com/gokatarajesh/kanaprac/internal/drill"
	"github.com/gokatarajesh/kanaprac/internal/logging"
	"github.com/gokatarajesh/kanaprac/internal/metrics"
	"github.com/gokatarajesh/kanaprac/internal/server"
	"github.com/gokatarajesh/kanaprac/internal/session"
	"github.com/gokatarajesh/kanaprac/internal/terminal"
	"github.com/gokatarajesh/kanaprac/internal/vocab"
)

// Application aggregates the drill and the infrastructure it was loaded from.
type Application struct {
	cfg       *config.App
	logger    zerolog.Logger
	sessionID string

	pool  *pgxpool.Pool
	redis *redis.Client
	http  *http.Server

	term    *terminal.Terminal
	session *session.Session
}

// New bootstraps the drill on the process's standard streams.
func New(ctx context.Context, cfg *config.App) (*Application, error) {
	return NewWithIO(ctx, cfg, os.Stdin, os.Stdout)
}

// NewWithIO bootstraps logger, vocabulary source, pool and session, prompting on in/out.
func NewWithIO(ctx context.Context, cfg *config.App, in io.Reader, out io.Writer) (*Application, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	sessionID := uuid.NewString()
	logger := logging.New(cfg.Name, cfg.Env, cfg.LogLevel).With().Str("session", sessionID).Logger()
	logger.Info().Msg("starting drill bootstrap")

	a := &Application{cfg: cfg, logger: logger, sessionID: sessionID}
	ctx = logging.IntoContext(ctx, logger)

	set, err := vocab.ParseSet(cfg.Drill.KanaSet)
	if err != nil {
		return nil, err
	}

	src, err := a.source(ctx)
	if err != nil {
		a.close()
		return nil, err
	}

	pool, err := vocab.LoadPool(ctx, src, set, drill.NewSeededRand(cfg.Drill.Seed))
	if err != nil {
		a.close()
		return nil, fmt.Errorf("load vocabulary: %w", err)
	}
	_, total := pool.Progress()
	logger.Info().Str("set", string(set)).Int("keys", total).Str("source", cfg.Vocab.Source).Msg("vocabulary loaded")

	reg := prometheus.NewRegistry()
	drillMetrics, err := metrics.NewDrill(reg)
	if err != nil {
		a.close()
		return nil, fmt.Errorf("register metrics: %w", err)
	}
	if cfg.Metrics.Addr != "" {
		a.http = server.NewHTTPServer(cfg.Metrics.Addr, logger, reg, sessionID)
	}

	a.term = terminal.New(in, out, cfg.Drill.ColorDisabled())
	a.session = session.New(pool, a.term, a.term, session.Options{
		Metrics: drillMetrics,
		Logger:  logger,
	})
	return a, nil
}

func (a *Application) source(ctx context.Context) (vocab.Source, error) {
	var src vocab.Source
	switch a.cfg.Vocab.Source {
	case config.SourceDir:
		src = vocab.DirSource{Dir: a.cfg.Vocab.Dir}
	case config.SourcePostgres:
		pool, err := pgxpool.New(ctx, a.cfg.Postgres.ConnString())
		if err != nil {
			return nil, fmt.Errorf("connect postgres: %w", err)
		}
		a.pool = pool
		src = vocab.NewPostgresSource(vocab.NewPostgresStore(pool))
	default:
		src = vocab.EmbeddedSource{}
	}

	if a.cfg.Vocab.Cache {
		a.redis = redis.NewClient(&redis.Options{
			Addr:     a.cfg.Redis.Addr,
			DB:       a.cfg.Redis.DB,
			PoolSize: a.cfg.Redis.PoolSize,
		})
		src = vocab.NewCachedSource(src, a.redis, a.cfg.Vocab.CacheTTL)
	}
	return src, nil
}

// Run plays the drill until the configured rounds are done, input ends or a
// termination signal arrives.
func (a *Application) Run(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	errCh := make(chan error, 1)
	if a.http != nil {
		go func() {
			a.logger.Info().Str("addr", a.cfg.Metrics.Addr).Msg("metrics server listening")
			if err := a.http.ListenAndServe(); err != nil && err != http.ErrServerClosed {
				errCh <- err
			}
		}()
	}

	type result struct {
		stats session.Stats
		err   error
	}
	doneCh := make(chan result, 1)
	go func() {
		stats, err := a.session.Run(ctx, a.cfg.Drill.Iterations)
		doneCh <- result{stats: stats, err: err}
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigCh)

	var runErr error
	select {
	case res := <-doneCh:
		if res.err != nil && !errors.Is(res.err, context.Canceled) {
			runErr = fmt.Errorf("drill: %w", res.err)
		}
		a.term.Summary(res.stats.Rounds, res.stats.Correct, res.stats.Passes)
	case sig := <-sigCh:
		// the session may be blocked on a read; it is abandoned with the process.
		a.logger.Info().Str("signal", sig.String()).Msg("shutdown signal received")
	case err := <-errCh:
		runErr = fmt.Errorf("metrics server error: %w", err)
	case <-ctx.Done():
		a.logger.Warn().Msg("context canceled")
	}

	a.shutdown()
	return runErr
}

func (a *Application) shutdown() {
	if a.http != nil {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), a.cfg.GracefulShutdownTimeout)
		defer cancel()
		if err := a.http.Shutdown(shutdownCtx); err != nil {
			a.logger.Error().Err(err).Msg("metrics server shutdown error")
		}
	}
	a.close()
	a.logger.Info().Msg("shutdown complete")
}

func (a *Application) close() {
	if a.pool != nil {
		a.pool.Close()
	}
	if a.redis != nil {
		if err := a.redis.Close(); err != nil {
			a.logger.Error().Err(err).Msg("redis shutdown error")
		}
	}
}
