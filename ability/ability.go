// Package ability implements the cooldown-gated move sequences bound to the
// ability keys.
package ability

import (
	"errors"
	"fmt"

	"github.com/milk9111/higher/common"
	"github.com/milk9111/higher/input"
	"github.com/milk9111/higher/tile"
)

// DefaultCooldown is in update ticks.
const DefaultCooldown = 90

var (
	ErrUnknown = errors.New("ability: unknown ability")
	ErrSlot    = errors.New("ability: slot out of range")
)

// MoveFunc applies a move sequence to the player.
type MoveFunc func(steps ...tile.Step)

// Def describes an ability. Sprite is the ready frame on the ability sheet;
// the cooldown frames follow it to the right.
type Def struct {
	Name     string
	Key      string
	Steps    []tile.Step
	Cooldown int
	Sprite   common.Rect
	Frames   int
}

func sprite(y int) common.Rect {
	return common.Rect{X: 0, Y: y, Width: 320, Height: 320}
}

var catalog = []Def{
	{Name: "Knight Left-Up", Steps: []tile.Step{tile.Left, tile.Left, tile.Up}, Sprite: sprite(960)},
	{Name: "Knight Up-Left", Steps: []tile.Step{tile.Up, tile.Up, tile.Left}, Sprite: sprite(640)},
	{Name: "Knight Up-Right", Steps: []tile.Step{tile.Up, tile.Up, tile.Right}, Sprite: sprite(320)},
	{Name: "Knight Right-Up", Steps: []tile.Step{tile.Right, tile.Right, tile.Up}, Sprite: sprite(0)},
	{Name: "Rush Up", Steps: []tile.Step{tile.Up, tile.Up, tile.Up}, Sprite: sprite(1280)},
	{Name: "Hop", Steps: []tile.Step{{DX: 0, DY: 2}}, Sprite: sprite(1600)},
}

// Catalog returns copies of the built-in abilities with no key bound.
func Catalog() []Def {
	defs := make([]Def, len(catalog))
	for i, d := range catalog {
		d.Steps = append([]tile.Step(nil), d.Steps...)
		d.Cooldown = DefaultCooldown
		d.Frames = 6
		defs[i] = d
	}
	return defs
}

func Lookup(name string) (Def, error) {
	for _, d := range Catalog() {
		if d.Name == name {
			return d, nil
		}
	}
	return Def{}, fmt.Errorf("%w: %q", ErrUnknown, name)
}

// Ability is a Def with its cooldown state.
type Ability struct {
	Def

	move      MoveFunc
	remaining int
}

func New(def Def, move MoveFunc) *Ability {
	return &Ability{Def: def, move: move}
}

// Handle runs the move sequence when ev is the ability's key and the cooldown
// is over. A press while cooling does nothing.
func (a *Ability) Handle(ev input.Event) bool {
	if ev.Type != input.KeyDown || a.Key == "" || ev.Key != a.Key {
		return false
	}
	if !a.IsReady() {
		return false
	}
	if a.move != nil {
		a.move(a.Steps...)
	}
	a.remaining = a.Cooldown
	return true
}

func (a *Ability) Tick() {
	if a.remaining > 0 {
		a.remaining--
	}
}

func (a *Ability) IsReady() bool {
	return a.remaining <= 0
}

func (a *Ability) Remaining() int {
	return a.remaining
}

// Frame picks the cooldown frame to draw, 0 when ready.
func (a *Ability) Frame() int {
	if a.remaining <= 0 || a.Cooldown <= 0 || a.Frames <= 1 {
		return 0
	}
	f := (a.remaining*(a.Frames-1) + a.Cooldown - 1) / a.Cooldown
	return common.Clamp(f, 1, a.Frames-1)
}
