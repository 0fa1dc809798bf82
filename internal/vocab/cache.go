package vocab

import (
	"context"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/gokatarajesh/kanaprac/internal/drill"
	"github.com/gokatarajesh/kanaprac/internal/logging"
)

const defaultCacheTTL = 24 * time.Hour

type hashStore interface {
	HGetAll(ctx context.Context, key string) *redis.MapStringStringCmd
	HSet(ctx context.Context, key string, values ...interface{}) *redis.IntCmd
	Expire(ctx context.Context, key string, expiration time.Duration) *redis.BoolCmd
	Del(ctx context.Context, keys ...string) *redis.IntCmd
}

// CachedSource is a Redis read-through cache in front of another Source. Each deck is a
// hash whose fields are keys and whose values are the answers joined by a space.
type CachedSource struct {
	inner  Source
	client hashStore
	ttl    time.Duration
}

var _ Source = (*CachedSource)(nil)

func NewCachedSource(inner Source, client hashStore, ttl time.Duration) *CachedSource {
	if ttl <= 0 {
		ttl = defaultCacheTTL
	}
	return &CachedSource{inner: inner, client: client, ttl: ttl}
}

func (c *CachedSource) key(deck string) string {
	return strings.Join([]string{"kanaprac", "deck", deck}, ":")
}

// Load serves the deck from Redis when present. Cache failures are logged on the
// context's logger and never fail the load.
func (c *CachedSource) Load(ctx context.Context, deck string) (drill.Table, error) {
	logger := logging.FromContext(ctx)
	fields, err := c.client.HGetAll(ctx, c.key(deck)).Result()
	switch {
	case err != nil && err != redis.Nil:
		logger.Warn().Err(err).Str("deck", deck).Msg("vocabulary cache read failed")
	case len(fields) > 0:
		table := make(drill.Table, len(fields))
		for k, v := range fields {
			answers := strings.Fields(v)
			if len(answers) == 0 {
				table = nil
				break
			}
			table[k] = answers
		}
		if table != nil {
			logger.Debug().Str("deck", deck).Int("keys", len(table)).Msg("vocabulary cache hit")
			return table, nil
		}
		logger.Warn().Str("deck", deck).Msg("vocabulary cache entry corrupt, reloading")
	}

	table, err := c.inner.Load(ctx, deck)
	if err != nil {
		return nil, err
	}
	c.store(ctx, deck, table)
	return table, nil
}

func (c *CachedSource) store(ctx context.Context, deck string, table drill.Table) {
	logger := logging.FromContext(ctx)
	values := make([]interface{}, 0, len(table)*2)
	for k, answers := range table {
		values = append(values, k, strings.Join(answers, " "))
	}
	key := c.key(deck)
	if err := c.client.Del(ctx, key).Err(); err != nil {
		logger.Warn().Err(err).Str("deck", deck).Msg("vocabulary cache reset failed")
		return
	}
	if err := c.client.HSet(ctx, key, values...).Err(); err != nil {
		logger.Warn().Err(err).Str("deck", deck).Msg("vocabulary cache write failed")
		return
	}
	if err := c.client.Expire(ctx, key, c.ttl).Err(); err != nil {
		logger.Warn().Err(err).Str("deck", deck).Msg("vocabulary cache expire failed")
	}
}
