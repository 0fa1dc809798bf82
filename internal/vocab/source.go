package vocab

import (
	"context"
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/gokatarajesh/kanaprac/internal/drill"
)

//go:embed data/*.txt
var embedded embed.FS

// ErrDeckNotFound is returned when a source has no records for the requested deck.
var ErrDeckNotFound = errors.New("deck not found")

// Source loads the key→answers table of a deck.
type Source interface {
	Load(ctx context.Context, deck string) (drill.Table, error)
}

// EmbeddedSource serves the decks compiled into the binary.
type EmbeddedSource struct{}

var _ Source = EmbeddedSource{}

func (EmbeddedSource) Load(_ context.Context, deck string) (drill.Table, error) {
	return loadFS(embedded, "data/"+deck+".txt", deck)
}

// EmbeddedDeck returns the raw file backing a compiled-in deck.
func EmbeddedDeck(deck string) ([]byte, error) {
	data, err := embedded.ReadFile("data/" + deck + ".txt")
	if errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("%w: %s", ErrDeckNotFound, deck)
	}
	return data, err
}

// DirSource reads <Dir>/<deck>.txt from disk.
type DirSource struct {
	Dir string
}

var _ Source = DirSource{}

func (s DirSource) Load(_ context.Context, deck string) (drill.Table, error) {
	return loadFS(os.DirFS(s.Dir), deck+".txt", filepath.Join(s.Dir, deck+".txt"))
}

func loadFS(fsys fs.FS, name, label string) (drill.Table, error) {
	f, err := fsys.Open(name)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("%w: %s", ErrDeckNotFound, label)
	}
	if err != nil {
		return nil, fmt.Errorf("open deck %s: %w", label, err)
	}
	defer f.Close()

	table, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("parse deck %s: %w", label, err)
	}
	return table, nil
}
