package render

import (
	"time"

	"github.com/milk9111/higher/common"
)

// Layout places the game on the base resolution. The tower takes 80% of the
// screen height and is centered horizontally; the beat line sits below it.
type Layout struct {
	Width, Height int
	Cols, Rows    int
}

func NewLayout(cols, rows int) Layout {
	return Layout{Width: common.BaseWidth, Height: common.BaseHeight, Cols: cols, Rows: rows}
}

// Cell is the on-screen size of one tile.
func (l Layout) Cell() float64 {
	return 0.8 * float64(l.Height) / float64(l.Rows)
}

// TowerLeft is the x of the tower's left edge.
func (l Layout) TowerLeft() float64 {
	return float64(l.Width)/2 - float64(l.Cols)*l.Cell()/2
}

// CellOrigin is the top-left corner of grid cell (x, y) when the floor is at
// floor. Row floor sits at the bottom of the tower view.
func (l Layout) CellOrigin(x, y int, floor float64) (float64, float64) {
	a := l.Cell()
	sx := l.TowerLeft() + float64(x)*a
	sy := (float64(l.Rows-1) - (float64(y) - floor)) * a
	return sx, sy
}

// BeatLine returns the center and half width of the beat line.
func (l Layout) BeatLine() (cx, cy, half float64) {
	return float64(l.Width) / 2, float64(l.Height) * 0.9, float64(l.Width) / 4
}

// BeatOffset is how far from the line's center a beat is drawn. Beats enter at
// the ends one loop before their target and meet the center on it. ok is
// false for beats not on the line yet.
func (l Layout) BeatOffset(target, now, loop time.Duration) (float64, bool) {
	if loop <= 0 {
		return 0, false
	}
	d := target - now
	if d > loop {
		return 0, false
	}
	_, _, half := l.BeatLine()
	return common.Lerp(0, half, float64(d)/float64(loop)), true
}

// SlotOrigin is the top-left corner of ability slot i.
func (l Layout) SlotOrigin(i int) (float64, float64) {
	size := l.SlotSize()
	x := float64(l.Width)/5 - size/2
	y := float64(l.Height)*0.1 + float64(i)*(size+10)
	return x, y
}

func (l Layout) SlotSize() float64 {
	return float64(l.Height) * 0.8 / 4 * 0.75
}
