package vocab

import (
	"errors"
	"fmt"
	"strings"
)

// Deck names as stored on disk, in Postgres and in the cache.
const (
	DeckHiragana = "hiragana"
	DeckKatakana = "katakana"
)

// Set selects which decks a drill covers.
type Set string

const (
	SetHiragana Set = "hira"
	SetKatakana Set = "kata"
	SetBoth     Set = "both"
)

// ErrUnknownSet is returned by ParseSet for anything but hira, kata or both.
var ErrUnknownSet = errors.New("unknown kana set")

// ParseSet accepts the short names used on the command line.
func ParseSet(s string) (Set, error) {
	switch Set(strings.ToLower(strings.TrimSpace(s))) {
	case SetHiragana:
		return SetHiragana, nil
	case SetKatakana:
		return SetKatakana, nil
	case SetBoth:
		return SetBoth, nil
	}
	return "", fmt.Errorf("%w: %q (want hira, kata or both)", ErrUnknownSet, s)
}

// Decks lists the decks merged for the set, in merge order.
func (s Set) Decks() []string {
	switch s {
	case SetKatakana:
		return []string{DeckKatakana}
	case SetBoth:
		return []string{DeckHiragana, DeckKatakana}
	default:
		return []string{DeckHiragana}
	}
}
