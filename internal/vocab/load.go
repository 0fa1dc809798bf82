package vocab

import (
	"context"

	"github.com/gokatarajesh/kanaprac/internal/drill"
)

// LoadPool builds one pool per deck of set and merges them left to right,
// so later decks win on shared keys. The returned pool draws from rng.
func LoadPool(ctx context.Context, src Source, set Set, rng drill.Rand) (*drill.Pool, error) {
	var pool *drill.Pool
	for _, deck := range set.Decks() {
		table, err := src.Load(ctx, deck)
		if err != nil {
			return nil, err
		}
		next := drill.NewPool(table, rng)
		if pool == nil {
			pool = next
			continue
		}
		pool = pool.MergeWith(next, rng)
	}
	return pool, nil
}
