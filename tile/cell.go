// Package tile models the cells a tower is built from and the letter alphabet
// chunk files are written in.
package tile

import (
	"fmt"

	"github.com/milk9111/higher/common"
)

// Kind is what a cell means for movement.
type Kind uint8

const (
	Empty Kind = iota
	Wall
	Hole
)

func (k Kind) String() string {
	switch k {
	case Empty:
		return "empty"
	case Wall:
		return "wall"
	case Hole:
		return "hole"
	default:
		return fmt.Sprintf("kind(%d)", uint8(k))
	}
}

// Cell is a single tower tile. Image is the source rectangle on the tower
// sheet and only selects which wall edge is drawn.
type Cell struct {
	Kind  Kind
	Image common.Rect
}

// Walkable reports whether a step may pass through the cell.
func (c Cell) Walkable() bool {
	return c.Kind == Empty || c.Kind == Hole
}

// Pos is an absolute grid position; Y counts rows up from the bottom of the
// generated tower.
type Pos struct {
	X, Y int
}

func (p Pos) Add(s Step) Pos {
	return Pos{X: p.X + s.DX, Y: p.Y + s.DY}
}

func (p Pos) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}

// Step is a relative grid move. Positive DY goes up the tower.
type Step struct {
	DX, DY int
}

var (
	Up    = Step{DX: 0, DY: 1}
	Down  = Step{DX: 0, DY: -1}
	Left  = Step{DX: -1, DY: 0}
	Right = Step{DX: 1, DY: 0}
)
