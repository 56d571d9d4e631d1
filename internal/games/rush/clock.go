package rush

import "time"

// Clock is a free-running tick counter. The value wraps at 2^32; consumers
// must only ever look at differences between samples.
type Clock interface {
	ElapsedTicks() uint32
}

// TickingClock is a Clock the game advances once per simulation step.
type TickingClock interface {
	Clock
	Advance()
}

// FrameClock derives ticks from the number of simulation steps taken.
// It is fully deterministic, which makes it the clock used for replays.
type FrameClock struct {
	perSecond uint64
	tickRate  uint64
	frames    uint64
	offset    uint32
}

// NewFrameClock creates a clock producing perSecond ticks every tickRate steps.
func NewFrameClock(perSecond uint32, tickRate int) *FrameClock {
	if tickRate <= 0 {
		tickRate = 60
	}
	return &FrameClock{
		perSecond: uint64(perSecond),
		tickRate:  uint64(tickRate),
	}
}

// WithOffset starts the counter at the given raw value.
func (c *FrameClock) WithOffset(offset uint32) *FrameClock {
	c.offset = offset
	return c
}

// Advance moves the clock forward by one simulation step.
func (c *FrameClock) Advance() {
	c.frames++
}

// ElapsedTicks returns the counter value. Ticks are spread across steps
// without rounding error accumulating.
func (c *FrameClock) ElapsedTicks() uint32 {
	return c.offset + uint32(c.frames*c.perSecond/c.tickRate)
}

// WallClock derives ticks from real elapsed time.
type WallClock struct {
	start     time.Time
	perSecond uint64
	now       func() time.Time
}

// NewWallClock creates a clock anchored at the current time.
func NewWallClock(perSecond uint32) *WallClock {
	return newWallClock(perSecond, time.Now)
}

func newWallClock(perSecond uint32, now func() time.Time) *WallClock {
	return &WallClock{
		start:     now(),
		perSecond: uint64(perSecond),
		now:       now,
	}
}

// Advance is a no-op: wall time moves on its own.
func (c *WallClock) Advance() {}

// ElapsedTicks returns the ticks since the clock was created, truncated to 32 bits.
func (c *WallClock) ElapsedTicks() uint32 {
	d := c.now().Sub(c.start)
	if d < 0 {
		return 0
	}
	secs := uint64(d / time.Second)
	rem := uint64(d % time.Second)
	return uint32(secs*c.perSecond + rem*c.perSecond/uint64(time.Second))
}
