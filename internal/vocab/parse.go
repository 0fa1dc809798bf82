package vocab

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/gokatarajesh/kanaprac/internal/drill"
)

var (
	// ErrMalformedRecord marks a record line that holds a key but no answer.
	ErrMalformedRecord = errors.New("malformed vocabulary record")
	// ErrEmptyTable is returned when a deck holds no records at all.
	ErrEmptyTable = errors.New("vocabulary table is empty")
)

// FormatError reports the offending line of a vocabulary file.
type FormatError struct {
	Line int
	Text string
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("line %d: bad number of fields: %q", e.Line, e.Text)
}

func (e *FormatError) Unwrap() error { return ErrMalformedRecord }

// Parse reads `KEY ANSWER1 [ANSWER2 ...]` records. Blank lines are skipped and a key that
// appears on several lines collects the answers of all of them, in order.
func Parse(r io.Reader) (drill.Table, error) {
	table := drill.Table{}
	scanner := bufio.NewScanner(r)
	line := 0
	for scanner.Scan() {
		line++
		fields := strings.Fields(scanner.Text())
		switch len(fields) {
		case 0:
			continue
		case 1:
			return nil, &FormatError{Line: line, Text: scanner.Text()}
		}
		table[fields[0]] = append(table[fields[0]], fields[1:]...)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read vocabulary: %w", err)
	}
	if len(table) == 0 {
		return nil, ErrEmptyTable
	}
	return table, nil
}
