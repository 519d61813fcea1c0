// Package beat keeps the rolling window of upcoming beats that gate player
// input.
package beat

import "time"

type State int

const (
	Pending State = iota
	Active
	Consumed
	Expired
)

func (s State) String() string {
	switch s {
	case Pending:
		return "pending"
	case Active:
		return "active"
	case Consumed:
		return "consumed"
	case Expired:
		return "expired"
	default:
		return "unknown"
	}
}

// Beat is a single timed hit. Window is the full hit window centered on Target.
type Beat struct {
	Target time.Duration
	Window time.Duration

	consumed bool
}

func (b *Beat) half() time.Duration {
	return b.Window / 2
}

func (b *Beat) IsActive(now time.Duration) bool {
	d := b.Target - now
	if d < 0 {
		d = -d
	}
	return d < b.half()
}

func (b *Beat) IsExpired(now time.Duration) bool {
	return now-b.Target >= b.half()
}

func (b *Beat) Consumed() bool {
	return b.consumed
}

func (b *Beat) State(now time.Duration) State {
	switch {
	case b.consumed:
		return Consumed
	case b.IsExpired(now):
		return Expired
	case b.IsActive(now):
		return Active
	default:
		return Pending
	}
}
