package config

import (
	"context"
	"flag"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "kanaprac", cfg.Name)
	assert.Equal(t, "hira", cfg.Drill.KanaSet)
	assert.Zero(t, cfg.Drill.Iterations)
	assert.Equal(t, SourceEmbedded, cfg.Vocab.Source)
	assert.Equal(t, 24*time.Hour, cfg.Vocab.CacheTTL)
	assert.Empty(t, cfg.Metrics.Addr)
	assert.NoError(t, cfg.Validate())
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("KANA_SET", "both")
	t.Setenv("ITERATIONS", "20")
	t.Setenv("VOCAB_CACHE", "true")
	t.Setenv("PG_PORT", "6543")

	cfg, err := Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "both", cfg.Drill.KanaSet)
	assert.Equal(t, 20, cfg.Drill.Iterations)
	assert.True(t, cfg.Vocab.Cache)
	assert.Equal(t, 6543, cfg.Postgres.Port)
}

func TestLoadRejectsBadNumber(t *testing.T) {
	t.Setenv("ITERATIONS", "many")
	_, err := Load(context.Background())
	assert.Error(t, err)
}

func TestFlagsOverrideEnv(t *testing.T) {
	t.Setenv("KANA_SET", "kata")
	cfg, err := Load(context.Background())
	require.NoError(t, err)

	fs := flag.NewFlagSet("kanaprac", flag.ContinueOnError)
	cfg.BindFlags(fs)
	require.NoError(t, fs.Parse([]string{"-iterations", "3", "-seed", "abc"}))

	assert.Equal(t, "kata", cfg.Drill.KanaSet)
	assert.Equal(t, 3, cfg.Drill.Iterations)
	assert.Equal(t, "abc", cfg.Drill.Seed)
}

func TestValidate(t *testing.T) {
	cfg := &App{Vocab: Vocab{Source: SourcePostgres}}
	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "PG_USER")

	cfg.Postgres = Postgres{User: "u", Password: "p", Database: "d"}
	assert.NoError(t, cfg.Validate())

	cfg.Drill.Iterations = -1
	assert.Error(t, cfg.Validate())

	cfg = &App{Vocab: Vocab{Source: "ftp"}}
	assert.Error(t, cfg.Validate())
}

func TestConnString(t *testing.T) {
	p := Postgres{Host: "db", Port: 5432, User: "u", Password: "p", Database: "kana", SSLMode: "disable"}
	assert.Equal(t, "host=db port=5432 user=u password=p dbname=kana sslmode=disable", p.ConnString())
}

func TestNoColorAcceptsAnyValue(t *testing.T) {
	for _, v := range []string{"1", "yes", "true", "false"} {
		t.Setenv("NO_COLOR", v)
		cfg, err := Load(context.Background())
		require.NoError(t, err, "NO_COLOR=%s", v)
		assert.True(t, cfg.Drill.ColorDisabled(), "NO_COLOR=%s", v)
	}

	t.Setenv("NO_COLOR", "")
	cfg, err := Load(context.Background())
	require.NoError(t, err)
	assert.False(t, cfg.Drill.ColorDisabled())
}

func TestNoColorFlag(t *testing.T) {
	cfg := &App{}
	fs := flag.NewFlagSet("kanaprac", flag.ContinueOnError)
	cfg.BindFlags(fs)
	require.NoError(t, fs.Parse([]string{"-no-color"}))
	assert.True(t, cfg.Drill.ColorDisabled())

	require.NoError(t, fs.Parse([]string{"-no-color=false"}))
	assert.False(t, cfg.Drill.ColorDisabled())
}
