// Package player moves the climber across the tower grid.
package player

import (
	"errors"
	"fmt"

	"github.com/milk9111/higher/tile"
)

var ErrBadSpawn = errors.New("player: spawn is not an empty cell")

// Grid is the part of the tower the player needs.
type Grid interface {
	IsWalkable(p tile.Pos) bool
	IsEmpty(p tile.Pos) bool
	Floor() float64
}

type Player struct {
	X, Y int

	grid Grid
	dead bool
}

func New(grid Grid, spawn tile.Pos) (*Player, error) {
	if !grid.IsEmpty(spawn) {
		return nil, fmt.Errorf("%w: %v", ErrBadSpawn, spawn)
	}
	return &Player{X: spawn.X, Y: spawn.Y, grid: grid}, nil
}

func (p *Player) Pos() tile.Pos {
	return tile.Pos{X: p.X, Y: p.Y}
}

// Move applies one step to pos. A blocked step leaves pos unchanged so a
// sequence can carry on from the last reachable cell.
func (p *Player) Move(pos tile.Pos, step tile.Step) tile.Pos {
	next := pos.Add(step)
	if p.grid.IsWalkable(next) {
		return next
	}
	return pos
}

// MoveSequence walks steps in order. The player only ends up on cells that are
// empty; holes can be crossed but never rested on.
func (p *Player) MoveSequence(steps ...tile.Step) {
	pos := p.Pos()
	for _, step := range steps {
		pos = p.Move(pos, step)
		if p.grid.IsEmpty(pos) {
			p.X, p.Y = pos.X, pos.Y
		}
	}
}

// IsAlive reports whether the player is still on or above the floor. Once
// the floor has passed the player it stays false.
func (p *Player) IsAlive() bool {
	if p.dead {
		return false
	}
	if float64(p.Y) < p.grid.Floor() {
		p.dead = true
	}
	return !p.dead
}
