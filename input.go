package main

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/milk9111/higher/input"
)

// Input turns this frame's presses into events, keys first.
type Input struct {
	keys []ebiten.Key
}

func NewInput() *Input {
	return &Input{}
}

func (in *Input) Poll() []input.Event {
	in.keys = inpututil.AppendJustPressedKeys(in.keys[:0])
	events := make([]input.Event, 0, len(in.keys)+1)
	for _, k := range in.keys {
		events = append(events, input.Key(k.String()))
	}
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		events = append(events, input.Event{Type: input.MouseDown, X: x, Y: y})
	}
	return events
}
