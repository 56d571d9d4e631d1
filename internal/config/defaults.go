package config

import (
	_ "embed"
)

//go:embed defaults/rush.yaml
var defaultRushYAML []byte

// DefaultRushConfig returns the default Elemental Rush configuration.
func DefaultRushConfig() RushConfig {
	return RushConfig{
		Round: RushRound{
			CountdownSeconds: 10,
			LingerTicks:      50,
		},
		Clock: RushClock{
			Kind:           ClockFrame,
			TicksPerSecond: 0x4000,
		},
		Display: RushDisplay{
			ShowLegend: true,
		},
	}
}

// GetDefaultYAML returns the embedded default YAML for a game.
func GetDefaultYAML(gameID string) []byte {
	switch gameID {
	case "rush":
		return defaultRushYAML
	default:
		return nil
	}
}
