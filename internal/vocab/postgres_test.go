package vocab

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gokatarajesh/kanaprac/internal/drill"
	"github.com/gokatarajesh/kanaprac/internal/logging"
)

type stubDeckStore struct {
	entries map[string][]Entry
	err     error
}

func (s *stubDeckStore) DeckEntries(_ context.Context, deck string) ([]Entry, error) {
	return s.entries[deck], s.err
}

func TestPostgresSourceAggregatesRows(t *testing.T) {
	src := NewPostgresSource(&stubDeckStore{entries: map[string][]Entry{
		DeckHiragana: {
			{Kana: "し", Romaji: "shi"},
			{Kana: "あ", Romaji: "a"},
			{Kana: "し", Romaji: "si"},
		},
	}})

	var buf bytes.Buffer
	ctx := logging.IntoContext(context.Background(), zerolog.New(&buf))

	table, err := src.Load(ctx, DeckHiragana)
	require.NoError(t, err)
	assert.Equal(t, drill.Table{"し": {"shi", "si"}, "あ": {"a"}}, table)
	assert.Contains(t, buf.String(), `"rows":3`)
	assert.Contains(t, buf.String(), `"keys":2`)

	_, err = src.Load(context.Background(), DeckKatakana)
	assert.ErrorIs(t, err, ErrDeckNotFound)
}

func TestPostgresSourceStoreError(t *testing.T) {
	boom := errors.New("connection refused")
	_, err := NewPostgresSource(&stubDeckStore{err: boom}).Load(context.Background(), DeckHiragana)
	assert.ErrorIs(t, err, boom)
}

func TestRowsKeepFileOrder(t *testing.T) {
	rows, err := Rows([]byte("し shi si\nあ a\nし shi\n"))
	require.NoError(t, err)
	assert.Equal(t, []Entry{
		{Kana: "し", Romaji: "shi"},
		{Kana: "し", Romaji: "si"},
		{Kana: "し", Romaji: "shi"},
		{Kana: "あ", Romaji: "a"},
	}, rows)

	_, err = Rows([]byte("し\n"))
	assert.ErrorIs(t, err, ErrMalformedRecord)
}
