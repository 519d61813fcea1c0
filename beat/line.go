package beat

import (
	"errors"
	"fmt"
	"io"
	"time"
)

const (
	DefaultLoop  = 2 * time.Second
	DefaultGuard = time.Millisecond
)

type Options struct {
	// Loop is how long a beat is visible on the line before its target.
	Loop time.Duration
	// Guard is the minimum spacing between accepted beats.
	Guard time.Duration
}

// Line holds the beats of the next two loops in ascending target order.
type Line struct {
	src   Source
	clock Clock
	loop  time.Duration
	guard time.Duration

	beats []*Beat

	next      *Entry
	exhausted bool

	watermark    time.Duration
	hasWatermark bool
	lastUnpackAt time.Duration
}

func NewLine(src Source, clock Clock, opts Options) (*Line, error) {
	if src == nil || clock == nil {
		return nil, errors.New("beat: line needs a source and a clock")
	}
	if opts.Loop <= 0 {
		opts.Loop = DefaultLoop
	}
	if opts.Guard <= 0 {
		opts.Guard = DefaultGuard
	}

	l := &Line{
		src:   src,
		clock: clock,
		loop:  opts.Loop,
		guard: opts.Guard,
	}
	if err := l.Unpack(0, 2*l.loop); err != nil {
		return nil, err
	}
	return l, nil
}

// Update advances the clock and tops up the window once most of a loop has
// passed since the last unpack.
func (l *Line) Update() error {
	l.clock.Tick()
	now := l.clock.Now()
	if now-l.lastUnpackAt >= l.loop*9/10 {
		return l.Unpack(now, now+2*l.loop)
	}
	return nil
}

// Unpack reads entries with targets in [start, end). Entries before start or
// too close to the last accepted beat are dropped. The first entry at or past
// end is held for the next call.
func (l *Line) Unpack(start, end time.Duration) error {
	defer func() { l.lastUnpackAt = l.clock.Now() }()

	for !l.exhausted || l.next != nil {
		e, err := l.peek()
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return fmt.Errorf("beat: unpack: %w", err)
		}
		if e.Target >= end {
			return nil
		}
		l.next = nil

		if e.Target < start {
			continue
		}
		if l.hasWatermark && e.Target < l.watermark+l.guard {
			continue
		}
		l.beats = append(l.beats, &Beat{Target: e.Target, Window: e.Window})
		l.watermark = e.Target
		l.hasWatermark = true
	}
	return nil
}

func (l *Line) peek() (Entry, error) {
	if l.next != nil {
		return *l.next, nil
	}
	if l.exhausted {
		return Entry{}, io.EOF
	}
	e, err := l.src.Next()
	if errors.Is(err, io.EOF) {
		l.exhausted = true
		return Entry{}, io.EOF
	}
	if err != nil {
		return Entry{}, err
	}
	l.next = &e
	return e, nil
}

// Cleanup evicts expired beats from the front of the line and returns how
// many of them were never hit.
func (l *Line) Cleanup() int {
	now := l.clock.Now()
	missed := 0
	i := 0
	for ; i < len(l.beats) && l.beats[i].IsExpired(now); i++ {
		if !l.beats[i].consumed {
			missed++
		}
	}
	if i > 0 {
		clear(l.beats[:i])
		l.beats = l.beats[i:]
	}
	return missed
}

func (l *Line) IsActive() bool {
	now := l.clock.Now()
	for _, b := range l.beats {
		if b.State(now) == Active {
			return true
		}
	}
	return false
}

// Deactivate consumes every active beat so one press cannot hit twice.
func (l *Line) Deactivate() {
	now := l.clock.Now()
	for _, b := range l.beats {
		if b.State(now) == Active {
			b.consumed = true
		}
	}
}

func (l *Line) Beats() []*Beat {
	return l.beats
}

func (l *Line) Now() time.Duration {
	return l.clock.Now()
}

func (l *Line) Loop() time.Duration {
	return l.loop
}

// Done reports whether the source is drained and every beat has left the line.
func (l *Line) Done() bool {
	return l.exhausted && l.next == nil && len(l.beats) == 0
}
