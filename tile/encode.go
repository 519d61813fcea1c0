package tile

import (
	"errors"
	"fmt"
	"strings"
)

// Authoring characters accepted by Encode.
const (
	AuthorEmpty = '.'
	AuthorHole  = 'H'
	AuthorWall  = '#'
)

var ErrAuthorSymbol = errors.New("tile: unknown authoring symbol")

// variants maps a neighborhood id to a letter. Empty cells use negative ids,
// walls use 1 plus a bitmask of neighboring walls (up 1, right 2, down 4,
// down-left 8, left 16). Some masks share a sprite.
var variants = map[int]rune{
	-10: 'A', -4: 'B', -3: 'C', -2: 'D', -1: 'E',
	1: 'F', 2: 'G', 3: 'H', 4: 'I', 5: 'J', 6: 'K', 7: 'L', 8: 'M',
	9: 'F', 10: 'G', 11: 'H', 12: 'I', 13: 'J', 14: 'K', 15: 'L', 16: 'M',
	17: 'N', 18: 'O', 19: 'P', 20: 'Q', 21: 'R', 22: 'S', 23: 'T', 24: 'U',
	25: 'N', 26: 'O', 27: 'P', 28: 'Q', 29: 'V', 30: 'W', 31: 'X', 32: 'Y',
}

// Encode converts a hand-drawn grid of '.', 'H' and '#' into the chunk
// alphabet. Lines are in file order (top line first).
func Encode(lines []string) ([]string, error) {
	grid := make([][]byte, len(lines))
	for y, line := range lines {
		grid[y] = []byte(strings.TrimRight(line, "\r\n"))
	}

	at := func(x, y int) byte {
		if y < 0 || y >= len(grid) || x < 0 || x >= len(grid[y]) {
			return 0
		}
		return grid[y][x]
	}

	out := make([]string, 0, len(grid))
	for y, row := range grid {
		var sb strings.Builder
		sb.Grow(len(row))
		for x, sym := range row {
			var id int
			switch sym {
			case AuthorEmpty:
				id = -1
				if at(x-1, y) != AuthorEmpty {
					id--
				}
				if at(x+1, y) != AuthorEmpty {
					id -= 2
				}
			case AuthorHole:
				id = -10
			case AuthorWall:
				id = 1
				if at(x, y-1) == AuthorWall {
					id++
				}
				if at(x+1, y) == AuthorWall {
					id += 2
				}
				if at(x, y+1) == AuthorWall {
					id += 4
				}
				if at(x-1, y+1) == AuthorWall {
					id += 8
				}
				if at(x-1, y) == AuthorWall {
					id += 16
				}
			default:
				return nil, fmt.Errorf("%w %q at line %d column %d", ErrAuthorSymbol, sym, y+1, x+1)
			}
			sb.WriteRune(variants[id])
		}
		out = append(out, sb.String())
	}
	return out, nil
}

// AuthorKind returns the kind an authoring character stands for.
func AuthorKind(sym byte) (Kind, bool) {
	switch sym {
	case AuthorEmpty:
		return Empty, true
	case AuthorHole:
		return Hole, true
	case AuthorWall:
		return Wall, true
	}
	return 0, false
}
