package tile

import "github.com/milk9111/higher/common"

// SheetCell is the size of one tile on the tower sheet.
const SheetCell = 160

func sheetRect(x, y int) common.Rect {
	return common.Rect{X: x, Y: y, Width: SheetCell, Height: SheetCell}
}

// symbols maps the chunk alphabet to a cell. B..E are empty cells bordered
// on no side, the left, the right or both; F..Y pick wall edges.
var symbols = map[rune]Cell{
	'A': {Kind: Hole, Image: sheetRect(640, 0)},

	'B': {Kind: Empty, Image: sheetRect(480, 0)},
	'C': {Kind: Empty, Image: sheetRect(320, 0)},
	'D': {Kind: Empty, Image: sheetRect(0, 0)},
	'E': {Kind: Empty, Image: sheetRect(160, 0)},

	'F': {Kind: Wall, Image: sheetRect(160, 480)},
	'G': {Kind: Wall, Image: sheetRect(640, 480)},
	'H': {Kind: Wall, Image: sheetRect(160, 0)},
	'I': {Kind: Wall, Image: sheetRect(640, 0)},
	'J': {Kind: Wall, Image: sheetRect(320, 480)},
	'K': {Kind: Wall, Image: sheetRect(480, 480)},
	'L': {Kind: Wall, Image: sheetRect(320, 0)},
	'M': {Kind: Wall, Image: sheetRect(480, 0)},
	'N': {Kind: Wall, Image: sheetRect(160, 320)},
	'O': {Kind: Wall, Image: sheetRect(640, 320)},
	'P': {Kind: Wall, Image: sheetRect(160, 160)},
	'Q': {Kind: Wall, Image: sheetRect(640, 160)},
	'R': {Kind: Wall, Image: sheetRect(640, 640)},
	'S': {Kind: Wall, Image: sheetRect(480, 640)},
	'T': {Kind: Wall, Image: sheetRect(320, 640)},
	'U': {Kind: Wall, Image: sheetRect(160, 640)},
	'V': {Kind: Wall, Image: sheetRect(320, 320)},
	'W': {Kind: Wall, Image: sheetRect(480, 320)},
	'X': {Kind: Wall, Image: sheetRect(320, 160)},
	'Y': {Kind: Wall, Image: sheetRect(480, 160)},
}

// Lookup decodes one chunk letter.
func Lookup(r rune) (Cell, bool) {
	c, ok := symbols[r]
	return c, ok
}
