// Package input is the key-press boundary between the window and the game.
package input

import "github.com/milk9111/higher/tile"

type Type int

const (
	KeyDown Type = iota
	MouseDown
)

// Event is one press. Key holds the key name for KeyDown; X and Y hold the
// cursor position for MouseDown.
type Event struct {
	Type Type
	Key  string
	X, Y int
}

func Key(name string) Event {
	return Event{Type: KeyDown, Key: name}
}

// Bindings maps key names to the four movement directions.
type Bindings struct {
	Up    []string `yaml:"up"`
	Down  []string `yaml:"down"`
	Left  []string `yaml:"left"`
	Right []string `yaml:"right"`
}

func DefaultBindings() Bindings {
	return Bindings{
		Up:    []string{"W", "ArrowUp"},
		Down:  []string{"S", "ArrowDown"},
		Left:  []string{"A", "ArrowLeft"},
		Right: []string{"D", "ArrowRight"},
	}
}

// Direction returns the step bound to key.
func (b Bindings) Direction(key string) (tile.Step, bool) {
	for _, d := range []struct {
		keys []string
		step tile.Step
	}{
		{b.Up, tile.Up},
		{b.Down, tile.Down},
		{b.Left, tile.Left},
		{b.Right, tile.Right},
	} {
		for _, k := range d.keys {
			if k == key {
				return d.step, true
			}
		}
	}
	return tile.Step{}, false
}

// Keys lists every bound key name.
func (b Bindings) Keys() []string {
	keys := make([]string, 0, len(b.Up)+len(b.Down)+len(b.Left)+len(b.Right))
	keys = append(keys, b.Up...)
	keys = append(keys, b.Down...)
	keys = append(keys, b.Left...)
	return append(keys, b.Right...)
}
