// Package tower owns the growing stack of tile rows and the scrolling floor.
package tower

import (
	"errors"
	"fmt"
	"math"

	"github.com/milk9111/higher/chunk"
	"github.com/milk9111/higher/tile"
	log "github.com/sirupsen/logrus"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

var ErrBadChunk = errors.New("tower: chunk does not fit the tower")

// Source supplies chunks. Next receives the row index the chunk will start at.
type Source interface {
	Load(name string) (chunk.Rows, error)
	Next(depth int) (chunk.Rows, error)
}

type Options struct {
	Width  int
	Height int
	// Margin is how many rows above the floor (or focus row) must stay loaded.
	Margin int
	// AnimationTicks > 0 eases floor drops over that many updates instead of
	// applying them at once.
	AnimationTicks int
	StartChunk     string
}

type Tower struct {
	src  Source
	opts Options

	rows   [][]tile.Cell
	floor  float64
	target float64
	tween  *gween.Tween
	focus  int
}

// New loads the start chunk and streams rows up to the margin.
func New(src Source, opts Options) (*Tower, error) {
	if opts.Width <= 0 || opts.Height <= 0 || opts.Margin < 0 {
		return nil, fmt.Errorf("tower: invalid size %dx%d margin %d", opts.Width, opts.Height, opts.Margin)
	}
	t := &Tower{src: src, opts: opts}

	rows, err := src.Load(opts.StartChunk)
	if err != nil {
		return nil, fmt.Errorf("tower: start chunk: %w", err)
	}
	if err := t.appendRows(rows); err != nil {
		return nil, err
	}
	if err := t.topUp(); err != nil {
		return nil, err
	}
	return t, nil
}

// Update advances a running floor animation, then tops up rows.
func (t *Tower) Update() error {
	if t.tween != nil {
		cur, done := t.tween.Update(1)
		t.floor = float64(cur)
		if done {
			t.floor = t.target
			t.tween = nil
		}
	}
	return t.topUp()
}

// MoveFloor raises the floor by amount rows.
func (t *Tower) MoveFloor(amount float64) {
	t.target += amount
	if t.opts.AnimationTicks <= 0 {
		t.floor = t.target
		return
	}
	t.tween = gween.New(float32(t.floor), float32(t.target), float32(t.opts.AnimationTicks), ease.Linear)
}

// SetFocus keeps rows loaded above row as well as above the floor.
func (t *Tower) SetFocus(row int) {
	t.focus = row
}

func (t *Tower) Floor() float64 {
	return t.floor
}

// TargetFloor is where the floor settles once any animation finishes.
func (t *Tower) TargetFloor() float64 {
	return t.target
}

func (t *Tower) Animating() bool {
	return t.tween != nil
}

func (t *Tower) Width() int {
	return t.opts.Width
}

func (t *Tower) Height() int {
	return t.opts.Height
}

// LoadedHeight is the number of rows currently held.
func (t *Tower) LoadedHeight() int {
	return len(t.rows)
}

// Cell returns the cell at p, false when p is outside the loaded grid.
func (t *Tower) Cell(p tile.Pos) (tile.Cell, bool) {
	if p.X < 0 || p.X >= t.opts.Width || p.Y < 0 || p.Y >= len(t.rows) {
		return tile.Cell{}, false
	}
	return t.rows[p.Y][p.X], true
}

// IsWalkable reports whether a step may pass through p.
func (t *Tower) IsWalkable(p tile.Pos) bool {
	c, ok := t.Cell(p)
	return ok && c.Walkable()
}

// IsEmpty reports whether the player may rest on p.
func (t *Tower) IsEmpty(p tile.Pos) bool {
	c, ok := t.Cell(p)
	return ok && c.Kind == tile.Empty
}

// VisibleRows is the half-open row range the camera shows. It includes one
// extra row for the fractional part of the floor.
func (t *Tower) VisibleRows() (from, to int) {
	from = int(math.Floor(t.floor))
	if from < 0 {
		from = 0
	}
	to = from + t.opts.Height + 1
	if to > len(t.rows) {
		to = len(t.rows)
	}
	return from, to
}

// Row returns row y or nil.
func (t *Tower) Row(y int) []tile.Cell {
	if y < 0 || y >= len(t.rows) {
		return nil
	}
	return t.rows[y]
}

func (t *Tower) anchor() int {
	a := int(math.Ceil(math.Max(t.floor, t.target)))
	if t.focus > a {
		a = t.focus
	}
	return a
}

func (t *Tower) topUp() error {
	for len(t.rows) <= t.anchor()+t.opts.Margin {
		depth := len(t.rows)
		rows, err := t.src.Next(depth)
		if err != nil {
			return fmt.Errorf("tower: stream at row %d: %w", depth, err)
		}
		if err := t.appendRows(rows); err != nil {
			return err
		}
		log.WithFields(log.Fields{"depth": depth, "rows": len(rows), "floor": t.floor}).Debug("tower topped up")
	}
	return nil
}

func (t *Tower) appendRows(rows chunk.Rows) error {
	if len(rows) == 0 {
		return fmt.Errorf("%w: no rows", ErrBadChunk)
	}
	for i, row := range rows {
		if len(row) != t.opts.Width {
			return fmt.Errorf("%w: row %d has %d cells, want %d", ErrBadChunk, i, len(row), t.opts.Width)
		}
	}
	t.rows = append(t.rows, rows...)
	return nil
}
