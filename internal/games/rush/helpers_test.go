package rush

// seqSource replays a fixed list of draws, cycling when exhausted.
type seqSource struct {
	vals []int
	i    int
}

func (s *seqSource) Uniform3() int {
	v := s.vals[s.i%len(s.vals)]
	s.i++
	return v
}

// manualClock is a clock the test sets directly.
type manualClock struct {
	now uint32
}

func (c *manualClock) ElapsedTicks() uint32 { return c.now }

func (c *manualClock) add(ticks uint32) { c.now += ticks }
