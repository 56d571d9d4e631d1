// Package rush implements Elemental Rush, a reaction game where the player
// answers a scrolling strip of Water, Volcano and Swamp hazards by pressing
// the button bound to the nearest one before the countdown runs out.
package rush

import (
	"github.com/vovakirdan/elemental-rush/internal/config"
	"github.com/vovakirdan/elemental-rush/internal/core"
	"github.com/vovakirdan/elemental-rush/internal/registry"
)

// ID is the registry identifier and score table key of the game.
const ID = "rush"

// Game adapts a Round to the platform's registry.Game contract.
type Game struct {
	runtime   core.RuntimeConfig
	cfg       config.RushConfig
	fixedCfg  bool // cfg was supplied by the caller; Reset must not reload it
	clock     TickingClock
	round     *Round
	recorder  *Recorder
	tick      uint64
	lastPress Verdict
}

// configPath stores the custom config path set via CLI
var configPath string
var difficultyPreset config.DifficultyPreset

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset.
func SetDifficultyPreset(preset string) {
	switch preset {
	case "easy":
		difficultyPreset = config.DifficultyEasy
	case "normal":
		difficultyPreset = config.DifficultyNormal
	case "hard":
		difficultyPreset = config.DifficultyHard
	case "fixed":
		difficultyPreset = config.DifficultyFixed
	default:
		difficultyPreset = ""
	}
}

// New creates a game that loads its config on every Reset.
func New() *Game {
	return &Game{}
}

// NewWithConfig creates a game that always uses cfg.
func NewWithConfig(cfg config.RushConfig) *Game {
	return &Game{cfg: cfg, fixedCfg: true}
}

func init() {
	registry.Register(ID, func() registry.Game {
		return New()
	})
}

// ID returns the game identifier.
func (g *Game) ID() string { return ID }

// Title returns the display name.
func (g *Game) Title() string { return "Elemental Rush" }

// Reset starts a fresh round: new queue, zero score, full countdown.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime

	if !g.fixedCfg {
		cfg, err := config.LoadRush(configPath)
		if err != nil {
			cfg = config.DefaultRushConfig()
		}
		if difficultyPreset != "" {
			config.ApplyRushPreset(&cfg, difficultyPreset)
		}
		g.cfg = cfg
	}

	g.clock = g.newClock()
	g.round = NewRound(g.roundConfig(), NewRandomSource(runtime.Seed), g.clock)
	g.recorder = NewRecorder(runtime, g.cfg)
	g.tick = 0
	g.lastPress = Verdict{}
}

func (g *Game) newClock() TickingClock {
	if g.cfg.Clock.Kind == config.ClockWall {
		return NewWallClock(g.cfg.Clock.TicksPerSecond)
	}
	return NewFrameClock(g.cfg.Clock.TicksPerSecond, g.runtime.TickRate)
}

func (g *Game) roundConfig() RoundConfig {
	rc := DefaultRoundConfig()
	rc.CountdownSeconds = g.cfg.Round.CountdownSeconds
	rc.LingerTicks = g.cfg.Round.LingerTicks
	rc.TicksPerSecond = g.cfg.Clock.TicksPerSecond
	return rc
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.round == nil {
		g.Reset(core.DefaultConfig())
	}

	g.tick++
	g.recorder.Record(g.tick, in)

	if in.Has(core.ActionPause) {
		g.round.SetPaused(!g.round.Paused())
		// Buttons pressed together with Pause are dropped.
		in = core.InputFrame{}
	}

	g.clock.Advance()
	if v := g.round.Tick(in); v.Kind != VerdictNone {
		g.lastPress = v
	}

	return core.StepResult{State: g.State()}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	if g.round == nil {
		return core.GameState{}
	}
	return core.GameState{
		Score:    g.round.Score(),
		GameOver: g.round.IsGameOver(),
		Paused:   g.round.Paused(),
	}
}

// Round exposes the running round for presentation.
func (g *Game) Round() *Round { return g.round }

// Ticks returns the number of steps since the last Reset.
func (g *Game) Ticks() uint64 { return g.tick }

// Seed returns the seed of the current round.
func (g *Game) Seed() int64 { return g.runtime.Seed }

// Config returns the config the current round was built from.
func (g *Game) Config() config.RushConfig { return g.cfg }

// Recording returns the inputs of the current round so far.
func (g *Game) Recording() Recording {
	if g.recorder == nil {
		return Recording{}
	}
	return g.recorder.Recording(g.tick, g.State().Score)
}

// SaveReplay writes the current round's recording to path.
func (g *Game) SaveReplay(path string) error {
	return SaveRecording(path, g.Recording())
}

// EndCause reports why the round ended: "timeout", "wrong_action" or "none".
func (g *Game) EndCause() string {
	if g.round == nil {
		return CauseNone.String()
	}
	return g.round.Cause().String()
}

// PlayedTicks returns the ticks spent in play before the player died.
func (g *Game) PlayedTicks() int {
	if g.round == nil {
		return 0
	}
	return g.round.PlayedTicks()
}
