package beat

import "time"

// Clock is the time base of a beat line. Tick is called once per game update.
type Clock interface {
	Tick()
	Now() time.Duration
}

// FrameClock counts game ticks. It is deterministic and what tests use.
type FrameClock struct {
	Frame time.Duration
	ticks int64
}

func NewFrameClock(fps int) *FrameClock {
	return &FrameClock{Frame: time.Second / time.Duration(fps)}
}

func (c *FrameClock) Tick() {
	c.ticks++
}

func (c *FrameClock) Now() time.Duration {
	return time.Duration(c.ticks) * c.Frame
}

// WallClock measures real time since the first Tick, which keeps beats in
// sync with music when frames are dropped.
type WallClock struct {
	now     func() time.Time
	started time.Time
	elapsed time.Duration
}

func NewWallClock(now func() time.Time) *WallClock {
	if now == nil {
		now = time.Now
	}
	return &WallClock{now: now}
}

func (c *WallClock) Tick() {
	t := c.now()
	if c.started.IsZero() {
		c.started = t
	}
	c.elapsed = t.Sub(c.started)
}

func (c *WallClock) Now() time.Duration {
	return c.elapsed
}
