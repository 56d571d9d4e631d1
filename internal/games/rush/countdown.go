package rush

// DefaultTicksPerSecond is the number of clock ticks that make up one second
// of countdown: a 16.78 MHz counter behind a /1024 prescaler.
const DefaultTicksPerSecond uint32 = 0x4000

// Countdown converts clock samples into whole seconds remaining.
//
// Ticks accumulate across updates; every time the accumulator reaches the
// per-second threshold one second is taken off and the threshold subtracted,
// so the remainder carries forward instead of drifting. Clock deltas use
// uint32 wraparound arithmetic, so a counter overflow never looks like a jump.
type Countdown struct {
	seconds     int
	secondsLeft int
	perSecond   uint32
	lastTicks   uint32
	acc         uint32
	enabled     bool
}

// NewCountdown creates a countdown of the given length. It is enabled and
// anchored at tick 0; call Reset with the current clock sample before use.
func NewCountdown(seconds int, perSecond uint32) *Countdown {
	if perSecond == 0 {
		perSecond = DefaultTicksPerSecond
	}
	return &Countdown{
		seconds:     seconds,
		secondsLeft: seconds,
		perSecond:   perSecond,
		enabled:     true,
	}
}

// Reset restores the full duration, clears the accumulator, re-enables the
// countdown and anchors it at the given clock sample.
func (c *Countdown) Reset(now uint32) {
	c.secondsLeft = c.seconds
	c.lastTicks = now
	c.acc = 0
	c.enabled = true
}

// SetEnabled freezes or resumes the countdown. Ticks that elapse while
// disabled are discarded.
func (c *Countdown) SetEnabled(enabled bool) {
	c.enabled = enabled
}

// Enabled reports whether the countdown is running.
func (c *Countdown) Enabled() bool {
	return c.enabled
}

// Update feeds the current clock sample.
func (c *Countdown) Update(now uint32) {
	delta := now - c.lastTicks
	c.lastTicks = now

	if !c.enabled || c.secondsLeft == 0 {
		return
	}

	c.acc += delta
	for c.acc >= c.perSecond && c.secondsLeft > 0 {
		c.acc -= c.perSecond
		c.secondsLeft--
	}
}

// SecondsLeft returns the whole seconds remaining. Never negative.
func (c *Countdown) SecondsLeft() int {
	return c.secondsLeft
}

// Expired reports whether the countdown has reached zero.
func (c *Countdown) Expired() bool {
	return c.secondsLeft <= 0
}
