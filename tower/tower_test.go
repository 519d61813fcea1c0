package tower

import (
	"errors"
	"testing"

	"github.com/milk9111/higher/chunk"
	"github.com/milk9111/higher/tile"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const width = 5

func row(kinds ...tile.Kind) []tile.Cell {
	out := make([]tile.Cell, len(kinds))
	for i, k := range kinds {
		out[i] = tile.Cell{Kind: k}
	}
	return out
}

// fakeSource hands out a fixed chunk and records the depths it was asked for.
type fakeSource struct {
	start  chunk.Rows
	next   chunk.Rows
	depths []int
	err    error
}

func (f *fakeSource) Load(name string) (chunk.Rows, error) {
	if name != "start" {
		return nil, errors.New("missing " + name)
	}
	return f.start, nil
}

func (f *fakeSource) Next(depth int) (chunk.Rows, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.depths = append(f.depths, depth)
	return f.next, nil
}

func newSource() *fakeSource {
	e, w, h := tile.Empty, tile.Wall, tile.Hole
	return &fakeSource{
		start: chunk.Rows{
			row(w, e, e, e, w),
			row(w, e, h, e, w),
			row(w, e, e, e, w),
		},
		next: chunk.Rows{
			row(w, e, e, e, w),
			row(w, w, e, w, w),
			row(w, e, e, e, w),
			row(w, h, h, h, w),
		},
	}
}

func opts() Options {
	return Options{Width: width, Height: 6, Margin: 10, StartChunk: "start"}
}

func TestNewStreamsToMargin(t *testing.T) {
	src := newSource()
	tw, err := New(src, opts())
	require.NoError(t, err)

	assert.Greater(t, tw.LoadedHeight(), 10)
	assert.Equal(t, 3, src.depths[0], "first streamed chunk sits on the start chunk")
	assert.Equal(t, tile.Hole, tw.Row(1)[2].Kind)
}

func TestNewErrors(t *testing.T) {
	src := newSource()
	o := opts()
	o.StartChunk = "other"
	_, err := New(src, o)
	assert.Error(t, err)

	src = newSource()
	src.next = chunk.Rows{row(tile.Empty)}
	_, err = New(src, opts())
	assert.ErrorIs(t, err, ErrBadChunk)

	_, err = New(newSource(), Options{Width: 0, Height: 1})
	assert.Error(t, err)
}

func TestUpdateKeepsRowsAheadOfFloor(t *testing.T) {
	src := newSource()
	tw, err := New(src, opts())
	require.NoError(t, err)

	for i := 0; i < 200; i++ {
		tw.MoveFloor(1)
		before := tw.LoadedHeight()
		require.NoError(t, tw.Update())
		assert.Greater(t, tw.LoadedHeight(), int(tw.Floor())+opts().Margin)
		assert.GreaterOrEqual(t, tw.LoadedHeight(), before, "rows never shrink")
		y := int(tw.Floor()) + opts().Margin
		_, ok := tw.Cell(tile.Pos{X: 2, Y: y})
		assert.True(t, ok, "row %d must be loaded", y)
	}
}

func TestFocusStreamsAheadOfPlayer(t *testing.T) {
	tw, err := New(newSource(), opts())
	require.NoError(t, err)

	tw.SetFocus(100)
	require.NoError(t, tw.Update())
	assert.Greater(t, tw.LoadedHeight(), 110)
	assert.Equal(t, 0.0, tw.Floor())
}

func TestUpdatePropagatesLoaderError(t *testing.T) {
	src := newSource()
	tw, err := New(src, opts())
	require.NoError(t, err)

	boom := errors.New("boom")
	src.err = boom
	tw.MoveFloor(50)
	assert.ErrorIs(t, tw.Update(), boom)
}

func TestQueries(t *testing.T) {
	tw, err := New(newSource(), opts())
	require.NoError(t, err)

	cases := []struct {
		name     string
		pos      tile.Pos
		walkable bool
		empty    bool
	}{
		{"empty", tile.Pos{X: 1, Y: 0}, true, true},
		{"wall", tile.Pos{X: 0, Y: 0}, false, false},
		{"hole", tile.Pos{X: 2, Y: 1}, true, false},
		{"left_of_grid", tile.Pos{X: -1, Y: 0}, false, false},
		{"right_of_grid", tile.Pos{X: width, Y: 0}, false, false},
		{"below_grid", tile.Pos{X: 1, Y: -1}, false, false},
		{"above_loaded", tile.Pos{X: 1, Y: 10000}, false, false},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assert.Equal(t, c.walkable, tw.IsWalkable(c.pos))
			assert.Equal(t, c.empty, tw.IsEmpty(c.pos))
		})
	}
}

func TestMoveFloorImmediate(t *testing.T) {
	tw, err := New(newSource(), opts())
	require.NoError(t, err)

	tw.MoveFloor(1)
	tw.MoveFloor(2)
	assert.Equal(t, 3.0, tw.Floor())
	assert.False(t, tw.Animating())
}

func TestMoveFloorAnimated(t *testing.T) {
	o := opts()
	o.AnimationTicks = 4
	tw, err := New(newSource(), o)
	require.NoError(t, err)

	tw.MoveFloor(2)
	assert.Equal(t, 0.0, tw.Floor())
	assert.Equal(t, 2.0, tw.TargetFloor())

	want := []float64{0.5, 1, 1.5, 2}
	for i, w := range want {
		require.NoError(t, tw.Update())
		assert.InDelta(t, w, tw.Floor(), 1e-4, "tick %d", i)
	}
	assert.False(t, tw.Animating())
	assert.Equal(t, 2.0, tw.Floor())
}

func TestVisibleRows(t *testing.T) {
	tw, err := New(newSource(), opts())
	require.NoError(t, err)

	from, to := tw.VisibleRows()
	assert.Equal(t, 0, from)
	assert.Equal(t, 7, to)

	tw.MoveFloor(2.5)
	from, to = tw.VisibleRows()
	assert.Equal(t, 2, from)
	assert.Equal(t, 9, to)
}
