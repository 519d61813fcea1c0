package render

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLayoutCells(t *testing.T) {
	l := NewLayout(13, 15)
	assert.InDelta(t, 38.4, l.Cell(), 1e-9)
	assert.InDelta(t, 640-13*38.4/2, l.TowerLeft(), 1e-9)

	x, y := l.CellOrigin(0, 0, 0)
	assert.InDelta(t, l.TowerLeft(), x, 1e-9)
	assert.InDelta(t, 14*38.4, y, 1e-9, "floor row is the bottom row")

	_, top := l.CellOrigin(0, 14, 0)
	assert.InDelta(t, 0, top, 1e-9)

	_, scrolled := l.CellOrigin(0, 14, 0.5)
	assert.InDelta(t, 0.5*38.4, scrolled, 1e-9, "a fractional floor scrolls down")
}

func TestBeatOffset(t *testing.T) {
	l := NewLayout(13, 15)
	_, _, half := l.BeatLine()
	loop := 2 * time.Second

	cases := []struct {
		name   string
		target time.Duration
		want   float64
		ok     bool
	}{
		{"on_target", 5 * time.Second, 0, true},
		{"entering", 7 * time.Second, half, true},
		{"halfway", 6 * time.Second, half / 2, true},
		{"passed", 4 * time.Second, -half / 2, true},
		{"not_yet", 7*time.Second + time.Millisecond, 0, false},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got, ok := l.BeatOffset(c.target, 5*time.Second, loop)
			assert.Equal(t, c.ok, ok)
			assert.InDelta(t, c.want, got, 1e-9)
		})
	}

	_, ok := l.BeatOffset(time.Second, 0, 0)
	assert.False(t, ok)
}

func TestSlots(t *testing.T) {
	l := NewLayout(13, 15)
	_, y0 := l.SlotOrigin(0)
	_, y1 := l.SlotOrigin(1)
	assert.InDelta(t, l.SlotSize()+10, y1-y0, 1e-9)
}
