// Package config provides YAML-based game configuration loading,
// difficulty presets and environment overrides.
package config

import "fmt"

// RushConfig contains all configuration for Elemental Rush.
type RushConfig struct {
	Round   RushRound   `yaml:"round"`
	Clock   RushClock   `yaml:"clock"`
	Display RushDisplay `yaml:"display"`
}

// RushRound defines round timing.
type RushRound struct {
	CountdownSeconds int `yaml:"countdown_seconds"` // Seconds until a round times out
	LingerTicks      int `yaml:"linger_ticks"`      // Ticks between death and game over
}

// Clock kinds.
const (
	ClockFrame = "frame" // Deterministic, derived from tick count
	ClockWall  = "wall"  // Derived from real elapsed time
)

// RushClock defines how countdown seconds are measured.
type RushClock struct {
	Kind           string `yaml:"kind"`
	TicksPerSecond uint32 `yaml:"ticks_per_second"` // Accumulator threshold for one second
}

// RushDisplay defines presentation options.
type RushDisplay struct {
	ShowLegend bool `yaml:"show_legend"` // Draw the button legend under the strip
}

// Validate checks that the config describes a playable round.
func (c RushConfig) Validate() error {
	if c.Round.CountdownSeconds <= 0 {
		return fmt.Errorf("config: countdown_seconds must be positive, got %d", c.Round.CountdownSeconds)
	}
	if c.Round.LingerTicks < 0 {
		return fmt.Errorf("config: linger_ticks must not be negative, got %d", c.Round.LingerTicks)
	}
	if c.Clock.TicksPerSecond == 0 {
		return fmt.Errorf("config: ticks_per_second must be positive")
	}
	switch c.Clock.Kind {
	case ClockFrame, ClockWall:
	default:
		return fmt.Errorf("config: unknown clock kind %q", c.Clock.Kind)
	}
	return nil
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset converts a CLI value into a preset. Empty means "use the config file".
func ParsePreset(s string) (DifficultyPreset, error) {
	switch p := DifficultyPreset(s); p {
	case "", DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return p, nil
	default:
		return "", fmt.Errorf("config: unknown difficulty %q (want easy, normal, hard or fixed)", s)
	}
}

// CountdownForPreset returns the round length for a preset, or 0 if the
// preset keeps the configured value.
func CountdownForPreset(preset DifficultyPreset) int {
	switch preset {
	case DifficultyEasy:
		return 15
	case DifficultyNormal:
		return 10
	case DifficultyHard:
		return 6
	default:
		return 0
	}
}

// ApplyRushPreset modifies the config based on a difficulty preset.
func ApplyRushPreset(cfg *RushConfig, preset DifficultyPreset) {
	if secs := CountdownForPreset(preset); secs > 0 {
		cfg.Round.CountdownSeconds = secs
	}
}
