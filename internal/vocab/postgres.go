package vocab

import (
	"bytes"
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/gokatarajesh/kanaprac/internal/drill"
	"github.com/gokatarajesh/kanaprac/internal/logging"
)

// Entry is one accepted answer row of the vocabulary table.
type Entry struct {
	Kana   string
	Romaji string
}

type deckStore interface {
	DeckEntries(ctx context.Context, deck string) ([]Entry, error)
}

// PostgresStore reads vocabulary rows seeded by the migrator.
type PostgresStore struct {
	pool *pgxpool.Pool
}

func NewPostgresStore(pool *pgxpool.Pool) *PostgresStore {
	return &PostgresStore{pool: pool}
}

const deckEntriesQuery = `SELECT kana, romaji FROM vocabulary WHERE deck = $1 ORDER BY position`

// DeckEntries returns the rows of deck in file order.
func (s *PostgresStore) DeckEntries(ctx context.Context, deck string) ([]Entry, error) {
	rows, err := s.pool.Query(ctx, deckEntriesQuery, deck)
	if err != nil {
		return nil, fmt.Errorf("query deck %s: %w", deck, err)
	}
	entries, err := pgx.CollectRows(rows, pgx.RowToStructByPos[Entry])
	if err != nil {
		return nil, fmt.Errorf("scan deck %s: %w", deck, err)
	}
	return entries, nil
}

// PostgresSource builds tables from a deckStore.
type PostgresSource struct {
	store deckStore
}

var _ Source = (*PostgresSource)(nil)

func NewPostgresSource(store deckStore) *PostgresSource {
	return &PostgresSource{store: store}
}

func (s *PostgresSource) Load(ctx context.Context, deck string) (drill.Table, error) {
	entries, err := s.store.DeckEntries(ctx, deck)
	if err != nil {
		return nil, err
	}
	if len(entries) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrDeckNotFound, deck)
	}
	table := drill.Table{}
	for _, e := range entries {
		table[e.Kana] = append(table[e.Kana], e.Romaji)
	}
	logger := logging.FromContext(ctx)
	logger.Debug().
		Str("deck", deck).
		Int("rows", len(entries)).
		Int("keys", len(table)).
		Msg("vocabulary loaded from postgres")
	return table, nil
}

// Rows flattens a parsed table back into ordered rows for seeding, keeping the
// order in which keys first appear in data.
func Rows(data []byte) ([]Entry, error) {
	table, err := Parse(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}
	var entries []Entry
	for _, key := range keyOrder(data) {
		for _, romaji := range table[key] {
			entries = append(entries, Entry{Kana: key, Romaji: romaji})
		}
	}
	return entries, nil
}
