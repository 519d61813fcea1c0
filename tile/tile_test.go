package tile

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLookupAlphabet(t *testing.T) {
	counts := map[Kind]int{}
	for r := 'A'; r <= 'Y'; r++ {
		c, ok := Lookup(r)
		require.True(t, ok, "letter %q", r)
		assert.False(t, c.Image.Empty(), "letter %q has no sprite", r)
		counts[c.Kind]++
	}
	assert.Equal(t, 1, counts[Hole])
	assert.Equal(t, 4, counts[Empty])
	assert.Equal(t, 20, counts[Wall])

	for _, r := range []rune{'Z', '.', '#', 'a', ' '} {
		_, ok := Lookup(r)
		assert.False(t, ok, "letter %q should be unknown", r)
	}
}

func TestEncodeVariants(t *testing.T) {
	cases := []struct {
		name  string
		lines []string
		want  []string
	}{
		{
			name:  "empty_borders",
			lines: []string{"..."},
			want:  []string{"DEC"},
		},
		{
			name:  "isolated_empty",
			lines: []string{"#.#"},
			want:  []string{"FBF"},
		},
		{
			name:  "hole",
			lines: []string{"#H#"},
			want:  []string{"FAF"},
		},
		{
			name:  "wall_run",
			lines: []string{"###"},
			want:  []string{"HPN"},
		},
		{
			name:  "wall_column",
			lines: []string{"#", "#"},
			want:  []string{"J", "G"},
		},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got, err := Encode(c.lines)
			require.NoError(t, err)
			assert.Equal(t, c.want, got)
		})
	}
}

func TestEncodePreservesKinds(t *testing.T) {
	grid := []string{
		"#....H....#",
		"##.#####.##",
		"#..H.H.H..#",
		"#.........#",
	}
	enc, err := Encode(grid)
	require.NoError(t, err)
	require.Len(t, enc, len(grid))

	for y, line := range grid {
		require.Len(t, enc[y], len(line))
		for x := 0; x < len(line); x++ {
			want, ok := AuthorKind(line[x])
			require.True(t, ok)
			got, ok := Lookup(rune(enc[y][x]))
			require.True(t, ok)
			assert.Equal(t, want, got.Kind, "line %d column %d", y, x)
		}
	}
}

func TestEncodeRejectsUnknown(t *testing.T) {
	_, err := Encode([]string{"#.x"})
	assert.ErrorIs(t, err, ErrAuthorSymbol)
}

func TestPosAdd(t *testing.T) {
	p := Pos{X: 6, Y: 3}
	assert.Equal(t, Pos{X: 6, Y: 4}, p.Add(Up))
	assert.Equal(t, Pos{X: 5, Y: 3}, p.Add(Left))
	assert.Equal(t, "(6,3)", p.String())
	assert.Equal(t, "hole", Hole.String())
}

func TestCellWalkable(t *testing.T) {
	assert.True(t, Cell{Kind: Empty}.Walkable())
	assert.True(t, Cell{Kind: Hole}.Walkable())
	assert.False(t, Cell{Kind: Wall}.Walkable())
}
