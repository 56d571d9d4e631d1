package rush

import "github.com/vovakirdan/elemental-rush/internal/core"

// Phase is the round's position in the play / dying / game over lifecycle.
type Phase uint8

const (
	PhasePlaying Phase = iota
	PhaseDying
	PhaseGameOver
)

func (p Phase) String() string {
	switch p {
	case PhasePlaying:
		return "playing"
	case PhaseDying:
		return "dying"
	case PhaseGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// DeathCause records why a round ended.
type DeathCause uint8

const (
	CauseNone DeathCause = iota
	CauseTimeout
	CauseWrongAction
)

func (c DeathCause) String() string {
	switch c {
	case CauseTimeout:
		return "timeout"
	case CauseWrongAction:
		return "wrong_action"
	default:
		return "none"
	}
}

const (
	DefaultCountdownSeconds = 10
	DefaultLingerTicks      = 50
)

// RoundConfig holds the tunables of a round.
type RoundConfig struct {
	CountdownSeconds int
	LingerTicks      int
	TicksPerSecond   uint32
	Bindings         []Binding
}

// DefaultRoundConfig returns the standard round settings.
func DefaultRoundConfig() RoundConfig {
	return RoundConfig{
		CountdownSeconds: DefaultCountdownSeconds,
		LingerTicks:      DefaultLingerTicks,
		TicksPerSecond:   DefaultTicksPerSecond,
		Bindings:         DefaultBindings,
	}
}

// Round is one life of the player: from a freshly randomized queue until
// game over. It owns the queue, the countdown, the score and the player pose.
type Round struct {
	cfg       RoundConfig
	queue     *Queue
	resolver  *Resolver
	countdown *Countdown
	clock     Clock

	phase  Phase
	player PlayerState
	cause  DeathCause
	score  int
	linger int
	played int
	paused bool
}

// NewRound starts a round: the queue is randomized and the countdown is
// anchored at the clock's current sample.
func NewRound(cfg RoundConfig, rng RandomSource, clock Clock) *Round {
	if cfg.Bindings == nil {
		cfg.Bindings = DefaultBindings
	}
	r := &Round{
		cfg:       cfg,
		queue:     NewQueue(rng),
		resolver:  NewResolver(cfg.Bindings),
		countdown: NewCountdown(cfg.CountdownSeconds, cfg.TicksPerSecond),
		clock:     clock,
	}
	r.queue.Randomize()
	r.countdown.Reset(clock.ElapsedTicks())
	return r
}

// Tick advances the round by one display refresh with the buttons newly
// pressed in it, and returns the resolver's verdict for this tick.
func (r *Round) Tick(in core.InputFrame) Verdict {
	if r.phase == PhaseGameOver {
		return Verdict{}
	}

	// Always sample so that time spent paused or dying is never replayed
	// into the countdown later.
	r.countdown.Update(r.clock.ElapsedTicks())
	if r.paused {
		return Verdict{}
	}

	switch r.phase {
	case PhasePlaying:
		r.played++
		if r.countdown.Expired() {
			r.die(CauseTimeout)
			return Verdict{}
		}
		v := r.resolver.Resolve(in, r.queue.Current())
		switch v.Kind {
		case VerdictCorrect:
			r.score++
			r.queue.Advance()
			r.player = poseFor(v.Action())
		case VerdictIncorrect:
			r.die(CauseWrongAction)
		}
		return v

	case PhaseDying:
		r.linger++
		if r.linger > r.cfg.LingerTicks {
			r.phase = PhaseGameOver
		}
	}
	return Verdict{}
}

func (r *Round) die(cause DeathCause) {
	r.phase = PhaseDying
	r.player = PlayerDead
	r.cause = cause
	r.linger = 0
	r.countdown.SetEnabled(false)
}

// SetPaused freezes the round. A paused round ignores input and its
// countdown does not run; ticks still sample the clock.
func (r *Round) SetPaused(paused bool) {
	if r.phase == PhaseGameOver {
		return
	}
	r.paused = paused
	r.countdown.SetEnabled(!paused && r.phase == PhasePlaying)
}

// Paused reports whether the round is paused.
func (r *Round) Paused() bool { return r.paused }

// Slots returns the scenario pipeline, slot 0 being the one to resolve now.
func (r *Round) Slots() [QueueLen]ScenarioKind { return r.queue.Slots() }

// Current returns the scenario to resolve now.
func (r *Round) Current() ScenarioKind { return r.queue.Current() }

// Score returns the number of correct actions this round.
func (r *Round) Score() int { return r.score }

// SecondsRemaining returns the whole seconds left on the countdown.
func (r *Round) SecondsRemaining() int { return r.countdown.SecondsLeft() }

// CountdownRunning reports whether the countdown is currently enabled.
func (r *Round) CountdownRunning() bool { return r.countdown.Enabled() }

// IsAlive reports whether the player is still playing.
func (r *Round) IsAlive() bool { return r.phase == PhasePlaying }

// IsGameOver reports whether the round has finished lingering.
func (r *Round) IsGameOver() bool { return r.phase == PhaseGameOver }

// Phase returns the lifecycle phase.
func (r *Round) Phase() Phase { return r.phase }

// Player returns the current pose.
func (r *Round) Player() PlayerState { return r.player }

// Cause returns why the player died, or CauseNone while alive.
func (r *Round) Cause() DeathCause { return r.cause }

// LingerTicks returns the ticks spent dying so far.
func (r *Round) LingerTicks() int { return r.linger }

// PlayedTicks returns the ticks spent in play, including the fatal tick.
func (r *Round) PlayedTicks() int { return r.played }

// Bindings returns the binding table in resolution order.
func (r *Round) Bindings() []Binding { return r.resolver.Bindings() }

// Answer returns the binding that resolves the current scenario.
func (r *Round) Answer() (Binding, bool) { return r.resolver.BindingFor(r.queue.Current()) }
