package ability

import (
	"fmt"
	"slices"

	"github.com/milk9111/higher/input"
)

// DefaultKeys are the slot keys, left to right.
var DefaultKeys = []string{"H", "J", "K", "L"}

// Bar is the ordered set of equipped abilities. Slot i is triggered by keys[i].
type Bar struct {
	keys  []string
	move  MoveFunc
	slots []*Ability
}

// NewBar equips defs in order. Each def gets the key of its slot.
func NewBar(keys []string, move MoveFunc, defs ...Def) (*Bar, error) {
	if len(defs) > len(keys) {
		return nil, fmt.Errorf("%w: %d abilities for %d keys", ErrSlot, len(defs), len(keys))
	}
	b := &Bar{
		keys:  slices.Clone(keys),
		move:  move,
		slots: make([]*Ability, len(defs)),
	}
	for i, d := range defs {
		if err := b.Set(i, d); err != nil {
			return nil, err
		}
	}
	return b, nil
}

// Set replaces the ability in slot. The new ability starts ready.
func (b *Bar) Set(slot int, def Def) error {
	if slot < 0 || slot >= len(b.keys) {
		return fmt.Errorf("%w: %d", ErrSlot, slot)
	}
	for len(b.slots) <= slot {
		b.slots = append(b.slots, nil)
	}
	def.Key = b.keys[slot]
	b.slots[slot] = New(def, b.move)
	return nil
}

// Bound reports whether key triggers an equipped ability.
func (b *Bar) Bound(key string) bool {
	for _, a := range b.slots {
		if a != nil && a.Key == key {
			return true
		}
	}
	return false
}

// Handle forwards ev to the slots and reports whether an ability fired.
func (b *Bar) Handle(ev input.Event) bool {
	for _, a := range b.slots {
		if a != nil && a.Handle(ev) {
			return true
		}
	}
	return false
}

// Update ticks every cooldown once.
func (b *Bar) Update() {
	for _, a := range b.slots {
		if a != nil {
			a.Tick()
		}
	}
}

func (b *Bar) Slots() []*Ability {
	return b.slots
}
