package rush

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

const ps = DefaultTicksPerSecond

func TestCountdownOneSecondPerThreshold(t *testing.T) {
	c := NewCountdown(10, ps)
	c.Reset(0)

	c.Update(ps - 1)
	assert.Equal(t, 10, c.SecondsLeft())
	c.Update(ps)
	assert.Equal(t, 9, c.SecondsLeft())
	c.Update(2 * ps)
	assert.Equal(t, 8, c.SecondsLeft())
}

func TestCountdownCarriesRemainder(t *testing.T) {
	c := NewCountdown(10, ps)
	c.Reset(0)

	// Two and a half seconds in one sample.
	c.Update(2*ps + ps/2)
	assert.Equal(t, 8, c.SecondsLeft())

	// The half second carried over completes the third.
	c.Update(3 * ps)
	assert.Equal(t, 7, c.SecondsLeft())

	for i := uint32(1); i <= 3*ps; i += ps / 4 {
		c.Update(3*ps + i)
	}
	assert.Equal(t, 5, c.SecondsLeft())
}

func TestCountdownWraparound(t *testing.T) {
	c := NewCountdown(10, ps)
	start := ^uint32(0) - ps/2
	c.Reset(start)

	// The counter overflows between samples: only the real delta counts.
	c.Update(start + ps/4)
	c.Update(ps / 4)
	assert.Equal(t, 10, c.SecondsLeft())

	c.Update(ps/4 + ps)
	assert.Equal(t, 9, c.SecondsLeft())
}

func TestCountdownNeverNegative(t *testing.T) {
	c := NewCountdown(3, ps)
	c.Reset(0)

	c.Update(100 * ps)
	assert.Equal(t, 0, c.SecondsLeft())
	assert.True(t, c.Expired())

	c.Update(200 * ps)
	assert.Equal(t, 0, c.SecondsLeft())
}

func TestCountdownDisabledDiscardsTime(t *testing.T) {
	c := NewCountdown(10, ps)
	c.Reset(0)

	c.SetEnabled(false)
	c.Update(5 * ps)
	assert.Equal(t, 10, c.SecondsLeft())
	assert.False(t, c.Enabled())

	c.SetEnabled(true)
	c.Update(5*ps + ps/2)
	assert.Equal(t, 10, c.SecondsLeft())
	c.Update(6 * ps)
	assert.Equal(t, 9, c.SecondsLeft())
}

func TestCountdownReset(t *testing.T) {
	c := NewCountdown(4, ps)
	c.Reset(0)
	c.Update(3*ps + ps/2)
	c.SetEnabled(false)

	c.Reset(1000)
	assert.Equal(t, 4, c.SecondsLeft())
	assert.True(t, c.Enabled())

	// The leftover half second was cleared.
	c.Update(1000 + ps/2)
	assert.Equal(t, 4, c.SecondsLeft())
}

func TestCountdownDefaultThreshold(t *testing.T) {
	c := NewCountdown(2, 0)
	c.Reset(0)
	c.Update(DefaultTicksPerSecond)
	assert.Equal(t, 1, c.SecondsLeft())
}

func TestFrameClockExactPerSecond(t *testing.T) {
	c := NewFrameClock(ps, 60)

	for range 30 {
		c.Advance()
	}
	assert.Equal(t, ps/2, c.ElapsedTicks())

	for range 30 {
		c.Advance()
	}
	assert.Equal(t, ps, c.ElapsedTicks())

	for range 600 {
		c.Advance()
	}
	assert.Equal(t, 11*ps, c.ElapsedTicks())
}

func TestFrameClockWraps(t *testing.T) {
	c := NewFrameClock(ps, 60).WithOffset(^uint32(0))
	for range 60 {
		c.Advance()
	}
	assert.Equal(t, ps-1, c.ElapsedTicks())
}

func TestFrameClockDefaultRate(t *testing.T) {
	c := NewFrameClock(ps, 0)
	for range 60 {
		c.Advance()
	}
	assert.Equal(t, ps, c.ElapsedTicks())
}

func TestWallClock(t *testing.T) {
	base := time.Unix(1_700_000_000, 0)
	now := base
	c := newWallClock(ps, func() time.Time { return now })

	assert.Equal(t, uint32(0), c.ElapsedTicks())

	now = base.Add(1500 * time.Millisecond)
	c.Advance()
	assert.Equal(t, ps+ps/2, c.ElapsedTicks())

	now = base.Add(-time.Second)
	assert.Equal(t, uint32(0), c.ElapsedTicks())
}
