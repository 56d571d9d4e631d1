package core

// RuntimeConfig is what the front end knows when a round starts: the
// terminal size, the step rate and the seed.
type RuntimeConfig struct {
	ScreenW  int
	ScreenH  int
	TickRate int   // Steps per second
	Seed     int64 // 0 lets the front end pick one from the clock
}

// DefaultConfig is used by games stepped before any Reset.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60}
}

// GameState is the part of a game the front end acts on: saving the
// score, offering a restart and showing the pause overlay.
type GameState struct {
	Score    int
	GameOver bool
	Paused   bool
}

// StepResult wraps the state after one Step.
type StepResult struct {
	State GameState
}
