package session

import (
	"context"
	"errors"
	"io"

	"github.com/rs/zerolog"

	"github.com/gokatarajesh/kanaprac/internal/drill"
	"github.com/gokatarajesh/kanaprac/internal/metrics"
)

// Prompter shows a key and returns the user's answer. io.EOF ends the drill.
type Prompter interface {
	Prompt(key string) (string, error)
}

// Presenter renders drill feedback.
type Presenter interface {
	Correct(done, total int)
	FullLoop()
	Wrong(answers []string)
}

// Stats summarises a finished drill.
type Stats struct {
	Rounds  int
	Correct int
	Wrong   int
	Passes  int
}

// Accuracy returns the share of correct answers, 0 when nothing was answered.
func (s Stats) Accuracy() float64 {
	if s.Rounds == 0 {
		return 0
	}
	return float64(s.Correct) / float64(s.Rounds)
}

// Session drives a pool through prompt/answer rounds.
type Session struct {
	pool      *drill.Pool
	prompter  Prompter
	presenter Presenter
	metrics   *metrics.Drill
	logger    zerolog.Logger
}

// Options carries the optional collaborators of a Session.
type Options struct {
	Metrics *metrics.Drill
	Logger  zerolog.Logger
}

func New(pool *drill.Pool, prompter Prompter, presenter Presenter, opts Options) *Session {
	return &Session{
		pool:      pool,
		prompter:  prompter,
		presenter: presenter,
		metrics:   opts.Metrics,
		logger:    opts.Logger,
	}
}

// Run plays rounds rounds, or until input ends when rounds <= 0. End of input is a
// normal stop; a cancelled ctx stops before the next prompt and returns ctx.Err().
func (s *Session) Run(ctx context.Context, rounds int) (Stats, error) {
	var stats Stats
	for rounds <= 0 || stats.Rounds < rounds {
		if err := ctx.Err(); err != nil {
			return stats, err
		}
		done, err := s.round(&stats)
		if err != nil {
			return stats, err
		}
		if done {
			break
		}
	}
	s.logger.Info().
		Int("rounds", stats.Rounds).
		Int("correct", stats.Correct).
		Int("passes", stats.Passes).
		Msg("drill finished")
	return stats, nil
}

func (s *Session) round(stats *Stats) (bool, error) {
	key := s.pool.Draw()
	answer, err := s.prompter.Prompt(key)
	if errors.Is(err, io.EOF) {
		return true, nil
	}
	if err != nil {
		return false, err
	}
	stats.Rounds++

	if !s.pool.Accepts(key, answer) {
		stats.Wrong++
		s.presenter.Wrong(s.pool.Answers(key))
		remaining, _ := s.pool.Progress()
		s.metrics.Observe(false, false, remaining)
		s.logger.Debug().Str("key", key).Str("answer", answer).Msg("wrong answer")
		return false, nil
	}

	stats.Correct++
	more := s.pool.Resolve(key)
	remaining, total := s.pool.Progress()
	done := total - remaining
	if !more {
		// the pool has already refilled; the pass ended on a full score.
		done = total
		stats.Passes++
	}
	s.presenter.Correct(done, total)
	if !more {
		s.presenter.FullLoop()
	}
	s.metrics.Observe(true, !more, remaining)
	s.logger.Debug().Str("key", key).Int("remaining", remaining).Msg("correct answer")
	return false, nil
}
