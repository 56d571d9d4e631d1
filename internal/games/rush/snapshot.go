package rush

// Snapshot captures the complete game state for determinism testing and replay.
type Snapshot struct {
	Tick        uint64           `yaml:"tick"`
	Phase       string           `yaml:"phase"`
	Score       int              `yaml:"score"`
	SecondsLeft int              `yaml:"seconds_left"`
	Slots       [QueueLen]string `yaml:"slots,flow"`
	Player      string           `yaml:"player"`
	Cause       string           `yaml:"cause"`
	PlayedTicks int              `yaml:"played_ticks"`
	LingerTicks int              `yaml:"linger_ticks"`
	ClockTicks  uint32           `yaml:"clock_ticks"`
	Paused      bool             `yaml:"paused"`
}

// Snapshot returns the current game snapshot for determinism verification.
func (g *Game) Snapshot() Snapshot {
	if g.round == nil {
		return Snapshot{}
	}
	r := g.round

	var slots [QueueLen]string
	for i, s := range r.Slots() {
		slots[i] = s.String()
	}

	return Snapshot{
		Tick:        g.tick,
		Phase:       r.Phase().String(),
		Score:       r.Score(),
		SecondsLeft: r.SecondsRemaining(),
		Slots:       slots,
		Player:      r.Player().String(),
		Cause:       r.Cause().String(),
		PlayedTicks: r.PlayedTicks(),
		LingerTicks: r.LingerTicks(),
		ClockTicks:  g.clock.ElapsedTicks(),
		Paused:      r.Paused(),
	}
}
