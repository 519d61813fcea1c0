// Package config holds the game settings. A Config is built once by Parse and
// treated as read-only afterwards.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"time"

	"github.com/milk9111/higher/ability"
	"github.com/milk9111/higher/difficulty"
	"github.com/milk9111/higher/input"
	"github.com/milk9111/higher/tile"
	"gopkg.in/yaml.v3"
)

const DefaultPath = "config.yaml"

var (
	ErrInvalid   = errors.New("config: invalid")
	ErrFPSChange = errors.New("config: fps cannot change while running")
)

type Config struct {
	FPS         int              `yaml:"fps"`
	Tower       TowerConfig      `yaml:"tower"`
	Spawn       [2]int           `yaml:"spawn"`
	Beat        BeatConfig       `yaml:"beat"`
	Difficulty  DifficultyConfig `yaml:"difficulty"`
	Keys        input.Bindings   `yaml:"keys"`
	AbilityKeys []string         `yaml:"ability_keys"`
	Abilities   []AbilityConfig  `yaml:"abilities"`
	Music       string           `yaml:"music"`
}

type TowerConfig struct {
	Width               int    `yaml:"width"`
	Height              int    `yaml:"height"`
	Margin              int    `yaml:"margin"`
	FloorAnimationTicks int    `yaml:"floor_animation_ticks"`
	StartChunk          string `yaml:"start_chunk"`
	ChunkDir            string `yaml:"chunk_dir"`
}

type BeatConfig struct {
	File string `yaml:"file"`
	// LoopMS is how long a beat travels along the line.
	LoopMS int `yaml:"loop_ms"`
	// WindowMS is the hit window for beat files that carry no durations.
	WindowMS  int  `yaml:"window_ms"`
	GuardMS   int  `yaml:"guard_ms"`
	WallClock bool `yaml:"wall_clock"`
}

func (b BeatConfig) Loop() time.Duration   { return time.Duration(b.LoopMS) * time.Millisecond }
func (b BeatConfig) Window() time.Duration { return time.Duration(b.WindowMS) * time.Millisecond }
func (b BeatConfig) Guard() time.Duration  { return time.Duration(b.GuardMS) * time.Millisecond }

// DifficultyConfig selects chunk buckets by depth. Script wins over Steps when
// both are set.
type DifficultyConfig struct {
	Script string            `yaml:"script"`
	Steps  []difficulty.Step `yaml:"steps"`
}

// AbilityConfig equips a catalog ability by name, or defines a new one when
// Steps is set. A nil Cooldown keeps the ability's default.
type AbilityConfig struct {
	Name     string   `yaml:"name"`
	Steps    [][2]int `yaml:"steps"`
	Cooldown *int     `yaml:"cooldown"`
}

func Default() Config {
	return Config{
		FPS: 30,
		Tower: TowerConfig{
			Width:      13,
			Height:     15,
			Margin:     20,
			StartChunk: "chunks/start.txt",
			ChunkDir:   "chunks",
		},
		Spawn: [2]int{6, 3},
		Beat: BeatConfig{
			File:     "beatlines/opening.json",
			LoopMS:   2000,
			WindowMS: 200,
			GuardMS:  1,
		},
		Difficulty: DifficultyConfig{
			Steps: []difficulty.Step{
				{From: 0, Bucket: "easy"},
				{From: 120, Bucket: "medium"},
				{From: 300, Bucket: "hard"},
			},
		},
		Keys:        input.DefaultBindings(),
		AbilityKeys: append([]string(nil), ability.DefaultKeys...),
		Abilities: []AbilityConfig{
			{Name: "Knight Left-Up"},
			{Name: "Knight Up-Left"},
			{Name: "Knight Up-Right"},
			{Name: "Knight Right-Up"},
		},
	}
}

// Parse decodes YAML over the defaults and validates the result.
func Parse(data []byte) (Config, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("config: unmarshal: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Reload accepts an edited config for the next session. The tick rate is
// fixed once the game loop runs, so a changed FPS is rejected.
func (c Config) Reload(next Config) (Config, error) {
	if next.FPS != c.FPS {
		return c, fmt.Errorf("%w: %d to %d", ErrFPSChange, c.FPS, next.FPS)
	}
	return next, nil
}

func (c Config) Validate() error {
	switch {
	case c.FPS <= 0:
		return fmt.Errorf("%w: fps %d", ErrInvalid, c.FPS)
	case c.Tower.Width <= 0 || c.Tower.Height <= 0:
		return fmt.Errorf("%w: tower size %dx%d", ErrInvalid, c.Tower.Width, c.Tower.Height)
	case c.Tower.Margin < 0 || c.Tower.FloorAnimationTicks < 0:
		return fmt.Errorf("%w: negative tower margin or animation", ErrInvalid)
	case c.Tower.StartChunk == "" || c.Tower.ChunkDir == "":
		return fmt.Errorf("%w: tower chunk paths are required", ErrInvalid)
	case c.Spawn[0] < 0 || c.Spawn[0] >= c.Tower.Width || c.Spawn[1] < 0:
		return fmt.Errorf("%w: spawn %v outside a %d wide tower", ErrInvalid, c.Spawn, c.Tower.Width)
	case c.Beat.File == "":
		return fmt.Errorf("%w: beat file is required", ErrInvalid)
	case c.Beat.LoopMS <= 0 || c.Beat.WindowMS <= 0 || c.Beat.GuardMS < 0:
		return fmt.Errorf("%w: beat timings", ErrInvalid)
	case c.Difficulty.Script == "" && len(c.Difficulty.Steps) == 0:
		return fmt.Errorf("%w: difficulty needs a script or steps", ErrInvalid)
	case len(c.Abilities) > len(c.AbilityKeys):
		return fmt.Errorf("%w: %d abilities for %d ability keys", ErrInvalid, len(c.Abilities), len(c.AbilityKeys))
	}

	bound := make(map[string]string)
	for _, k := range c.Keys.Keys() {
		bound[k] = "movement"
	}
	for _, k := range c.AbilityKeys {
		if prev, ok := bound[k]; ok {
			return fmt.Errorf("%w: key %q bound to both %s and an ability", ErrInvalid, k, prev)
		}
		bound[k] = "ability"
	}
	if _, err := c.AbilityDefs(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalid, err)
	}
	return nil
}

// SpawnPos is the player's start cell.
func (c Config) SpawnPos() tile.Pos {
	return tile.Pos{X: c.Spawn[0], Y: c.Spawn[1]}
}

// AbilityDefs resolves the equipped abilities in slot order.
func (c Config) AbilityDefs() ([]ability.Def, error) {
	defs := make([]ability.Def, 0, len(c.Abilities))
	for _, a := range c.Abilities {
		var def ability.Def
		if len(a.Steps) > 0 {
			def = ability.Def{Name: a.Name, Cooldown: ability.DefaultCooldown}
			for _, s := range a.Steps {
				def.Steps = append(def.Steps, tile.Step{DX: s[0], DY: s[1]})
			}
		} else {
			var err error
			if def, err = ability.Lookup(a.Name); err != nil {
				return nil, err
			}
		}
		if a.Cooldown != nil {
			def.Cooldown = *a.Cooldown
		}
		if def.Cooldown < 0 {
			return nil, fmt.Errorf("ability %q: negative cooldown", a.Name)
		}
		defs = append(defs, def)
	}
	return defs, nil
}

// Selector builds the difficulty curve. Script paths are read from fsys.
func (c Config) Selector(fsys fs.FS) (difficulty.Selector, error) {
	if c.Difficulty.Script != "" {
		src, err := fs.ReadFile(fsys, c.Difficulty.Script)
		if err != nil {
			return nil, fmt.Errorf("config: difficulty script: %w", err)
		}
		return difficulty.NewScript(src)
	}
	return difficulty.NewSteps(c.Difficulty.Steps)
}
