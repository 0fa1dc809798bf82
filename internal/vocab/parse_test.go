package vocab

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gokatarajesh/kanaprac/internal/drill"
)

func TestParseRecords(t *testing.T) {
	input := "あ a\n\n  \nし shi si\nし shi\n"
	table, err := Parse(strings.NewReader(input))
	require.NoError(t, err)

	assert.Equal(t, drill.Table{
		"あ": {"a"},
		"し": {"shi", "si", "shi"},
	}, table)
}

func TestParseMalformedLine(t *testing.T) {
	_, err := Parse(strings.NewReader("あ a\nい\n"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrMalformedRecord))

	var fe *FormatError
	require.True(t, errors.As(err, &fe))
	assert.Equal(t, 2, fe.Line)
	assert.Equal(t, "い", fe.Text)
}

func TestParseEmpty(t *testing.T) {
	_, err := Parse(strings.NewReader("\n\n"))
	assert.ErrorIs(t, err, ErrEmptyTable)
}

func TestParseSet(t *testing.T) {
	for in, want := range map[string]Set{"hira": SetHiragana, "KATA": SetKatakana, " both ": SetBoth} {
		got, err := ParseSet(in)
		assert.NoError(t, err)
		assert.Equal(t, want, got)
	}

	_, err := ParseSet("kanji")
	assert.ErrorIs(t, err, ErrUnknownSet)
}

func TestSetDecks(t *testing.T) {
	assert.Equal(t, []string{DeckHiragana}, SetHiragana.Decks())
	assert.Equal(t, []string{DeckKatakana}, SetKatakana.Decks())
	assert.Equal(t, []string{DeckHiragana, DeckKatakana}, SetBoth.Decks())
}
