package config

import (
	"io/fs"
	"testing"
	"testing/fstest"
	"time"

	"github.com/milk9111/higher/tile"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultIsValid(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, tile.Pos{X: 6, Y: 3}, cfg.SpawnPos())
	assert.Equal(t, 2*time.Second, cfg.Beat.Loop())
	assert.Equal(t, 200*time.Millisecond, cfg.Beat.Window())

	defs, err := cfg.AbilityDefs()
	require.NoError(t, err)
	require.Len(t, defs, 4)
	assert.Equal(t, "Knight Left-Up", defs[0].Name)
}

func TestParseOverridesDefaults(t *testing.T) {
	cfg, err := Parse([]byte(`
fps: 60
tower:
  margin: 30
  floor_animation_ticks: 6
keys:
  up: [I]
abilities:
  - name: Hop
    cooldown: 12
  - name: Long Jump
    steps: [[0, 4]]
`))
	require.NoError(t, err)
	assert.Equal(t, 60, cfg.FPS)
	assert.Equal(t, 30, cfg.Tower.Margin)
	assert.Equal(t, 13, cfg.Tower.Width, "unset fields keep defaults")
	assert.Equal(t, 6, cfg.Tower.FloorAnimationTicks)
	assert.Equal(t, []string{"I"}, cfg.Keys.Up)
	assert.Equal(t, []string{"S", "ArrowDown"}, cfg.Keys.Down)

	defs, err := cfg.AbilityDefs()
	require.NoError(t, err)
	require.Len(t, defs, 2)
	assert.Equal(t, 12, defs[0].Cooldown)
	assert.Equal(t, []tile.Step{{DY: 2}}, defs[0].Steps)
	assert.Equal(t, "Long Jump", defs[1].Name)
	assert.Equal(t, []tile.Step{{DY: 4}}, defs[1].Steps)
}

func TestAbilityCooldownOverride(t *testing.T) {
	cases := []struct {
		name string
		data string
		want int
	}{
		{"unset", "abilities: [{name: Hop}]", 90},
		{"zero", "abilities: [{name: Hop, cooldown: 0}]", 0},
		{"set", "abilities: [{name: Hop, cooldown: 45}]", 45},
		{"custom_unset", "abilities: [{name: Step, steps: [[0, 1]]}]", 90},
		{"custom_zero", "abilities: [{name: Step, steps: [[0, 1]], cooldown: 0}]", 0},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			cfg, err := Parse([]byte(c.data))
			require.NoError(t, err)
			defs, err := cfg.AbilityDefs()
			require.NoError(t, err)
			require.Len(t, defs, 1)
			assert.Equal(t, c.want, defs[0].Cooldown)
		})
	}

	_, err := Parse([]byte("abilities: [{name: Hop, cooldown: -1}]"))
	assert.ErrorIs(t, err, ErrInvalid)
}

func TestReload(t *testing.T) {
	cur := Default()

	cases := []struct {
		name    string
		edit    func(*Config)
		wantErr error
	}{
		{"same_fps", func(c *Config) { c.Tower.Margin = 40 }, nil},
		{"fps_changed", func(c *Config) { c.FPS = 60 }, ErrFPSChange},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			next := Default()
			c.edit(&next)
			got, err := cur.Reload(next)
			if c.wantErr != nil {
				assert.ErrorIs(t, err, c.wantErr)
				assert.Equal(t, cur, got)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, next, got)
		})
	}
}

func TestParseErrors(t *testing.T) {
	cases := []struct {
		name string
		data string
	}{
		{"zero_fps", "fps: 0"},
		{"spawn_outside", "spawn: [13, 3]"},
		{"no_beat_file", "beat: {file: ''}"},
		{"bad_window", "beat: {window_ms: 0}"},
		{"unknown_ability", "abilities: [{name: Mirror}]"},
		{"too_many_abilities", "ability_keys: [H]"},
		{"key_clash", "ability_keys: [W, J, K, L]"},
		{"no_difficulty", "difficulty: {steps: []}"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			_, err := Parse([]byte(c.data))
			assert.ErrorIs(t, err, ErrInvalid)
		})
	}

	_, err := Parse([]byte("fps: ["))
	assert.Error(t, err)
}

func TestSelector(t *testing.T) {
	fsys := fstest.MapFS{
		"scripts/curve.tengo": {Data: []byte(`bucket = depth < 50 ? "easy" : "hard"`)},
	}

	cfg := Default()
	sel, err := cfg.Selector(fsys)
	require.NoError(t, err)
	bucket, err := sel.Bucket(200)
	require.NoError(t, err)
	assert.Equal(t, "medium", bucket)

	cfg.Difficulty.Script = "scripts/curve.tengo"
	sel, err = cfg.Selector(fsys)
	require.NoError(t, err)
	bucket, err = sel.Bucket(80)
	require.NoError(t, err)
	assert.Equal(t, "hard", bucket)

	cfg.Difficulty.Script = "scripts/missing.tengo"
	_, err = cfg.Selector(fsys)
	assert.ErrorIs(t, err, fs.ErrNotExist)
}
