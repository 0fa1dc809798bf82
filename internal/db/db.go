// Package db owns the vocabulary schema and its seed data.
package db

import (
	"context"
	"embed"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/gokatarajesh/kanaprac/internal/vocab"
)

// Migrations holds the goose migrations, rooted at "migrations".
//
//go:embed migrations/*.sql
var Migrations embed.FS

type seedTx interface {
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
	CopyFrom(ctx context.Context, tableName pgx.Identifier, columnNames []string, rowSrc pgx.CopyFromSource) (int64, error)
}

// SeedDecks replaces the rows of each deck with the compiled-in vocabulary, in one transaction.
func SeedDecks(ctx context.Context, pool *pgxpool.Pool, decks []string) (int64, error) {
	tx, err := pool.Begin(ctx)
	if err != nil {
		return 0, fmt.Errorf("begin seed: %w", err)
	}
	defer tx.Rollback(ctx)

	var total int64
	for _, deck := range decks {
		data, err := vocab.EmbeddedDeck(deck)
		if err != nil {
			return 0, err
		}
		entries, err := vocab.Rows(data)
		if err != nil {
			return 0, fmt.Errorf("parse deck %s: %w", deck, err)
		}
		n, err := seedDeck(ctx, tx, deck, entries)
		if err != nil {
			return 0, err
		}
		total += n
	}
	if err := tx.Commit(ctx); err != nil {
		return 0, fmt.Errorf("commit seed: %w", err)
	}
	return total, nil
}

func seedDeck(ctx context.Context, tx seedTx, deck string, entries []vocab.Entry) (int64, error) {
	if _, err := tx.Exec(ctx, `DELETE FROM vocabulary WHERE deck = $1`, deck); err != nil {
		return 0, fmt.Errorf("clear deck %s: %w", deck, err)
	}
	n, err := tx.CopyFrom(ctx,
		pgx.Identifier{"vocabulary"},
		[]string{"deck", "position", "kana", "romaji"},
		pgx.CopyFromSlice(len(entries), func(i int) ([]any, error) {
			return []any{deck, i, entries[i].Kana, entries[i].Romaji}, nil
		}),
	)
	if err != nil {
		return 0, fmt.Errorf("copy deck %s: %w", deck, err)
	}
	return n, nil
}
