package db

import (
	"context"
	"errors"
	"io/fs"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gokatarajesh/kanaprac/internal/vocab"
)

type recordingTx struct {
	execs   []string
	rows    [][]any
	copyErr error
}

func (r *recordingTx) Exec(_ context.Context, sql string, args ...any) (pgconn.CommandTag, error) {
	r.execs = append(r.execs, sql)
	return pgconn.NewCommandTag("DELETE 0"), nil
}

func (r *recordingTx) CopyFrom(_ context.Context, _ pgx.Identifier, _ []string, src pgx.CopyFromSource) (int64, error) {
	if r.copyErr != nil {
		return 0, r.copyErr
	}
	for src.Next() {
		values, err := src.Values()
		if err != nil {
			return 0, err
		}
		r.rows = append(r.rows, values)
	}
	return int64(len(r.rows)), src.Err()
}

func TestSeedDeckWritesPositions(t *testing.T) {
	tx := &recordingTx{}
	n, err := seedDeck(context.Background(), tx, "hiragana", []vocab.Entry{
		{Kana: "し", Romaji: "shi"},
		{Kana: "し", Romaji: "si"},
	})
	require.NoError(t, err)

	assert.EqualValues(t, 2, n)
	assert.Len(t, tx.execs, 1)
	assert.Equal(t, [][]any{
		{"hiragana", 0, "し", "shi"},
		{"hiragana", 1, "し", "si"},
	}, tx.rows)
}

func TestSeedDeckCopyError(t *testing.T) {
	boom := errors.New("copy failed")
	_, err := seedDeck(context.Background(), &recordingTx{copyErr: boom}, "katakana", nil)
	assert.ErrorIs(t, err, boom)
}

func TestMigrationsEmbedded(t *testing.T) {
	files, err := fs.Glob(Migrations, "migrations/*.sql")
	require.NoError(t, err)
	assert.NotEmpty(t, files)
}
