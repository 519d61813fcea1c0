// Package chunk decodes encoded tile text into tower rows and picks which
// chunk file the tower loads next.
package chunk

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/milk9111/higher/tile"
)

var (
	ErrUnknownSymbol = errors.New("chunk: unknown tile symbol")
	ErrRowWidth      = errors.New("chunk: row width mismatch")
	ErrEmptyChunk    = errors.New("chunk: no rows")
	ErrNoChunks      = errors.New("chunk: no chunk files in bucket")
)

// Rows is a block of tower rows, index 0 at the bottom.
type Rows [][]tile.Cell

// Decode reads one encoded chunk. Every line must be exactly width letters
// long; only trailing blank lines are allowed. The returned rows are in
// reverse file order so the last line of the file becomes the bottom row.
func Decode(r io.Reader, width int) (Rows, error) {
	scanner := bufio.NewScanner(r)
	var lines [][]tile.Cell
	lineNo, blank := 0, 0
	for scanner.Scan() {
		lineNo++
		text := strings.TrimSpace(scanner.Text())
		if text == "" {
			if blank == 0 {
				blank = lineNo
			}
			continue
		}
		if blank != 0 {
			return nil, fmt.Errorf("%w: line %d is blank", ErrRowWidth, blank)
		}
		if n := utf8.RuneCountInString(text); n != width {
			return nil, fmt.Errorf("%w: line %d has %d cells, want %d", ErrRowWidth, lineNo, n, width)
		}
		row := make([]tile.Cell, 0, width)
		col := 0
		for _, sym := range text {
			col++
			cell, ok := tile.Lookup(sym)
			if !ok {
				return nil, fmt.Errorf("%w %q at line %d column %d", ErrUnknownSymbol, sym, lineNo, col)
			}
			row = append(row, cell)
		}
		lines = append(lines, row)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("chunk: read: %w", err)
	}
	if len(lines) == 0 {
		return nil, ErrEmptyChunk
	}

	rows := make(Rows, len(lines))
	for i, line := range lines {
		rows[len(lines)-1-i] = line
	}
	return rows, nil
}
