package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Env holds defaults for CLI flags that can be set from the environment.
// Flags given on the command line still win.
type Env struct {
	DBPath      string `env:"RUSH_DB"         envDefault:"~/.rush/scores.db"`
	DataDir     string `env:"RUSH_DATA_DIR"   envDefault:"~/.rush"`
	ConfigPath  string `env:"RUSH_CONFIG"`
	Difficulty  string `env:"RUSH_DIFFICULTY"`
	FPS         int    `env:"RUSH_FPS"        envDefault:"60"`
	Seed        int64  `env:"RUSH_SEED"       envDefault:"0"`
	SSHAddr     string `env:"RUSH_SSH_ADDR"   envDefault:":23234"`
	LogLevel    string `env:"RUSH_LOG_LEVEL"  envDefault:"info"`
	IdleMinutes int    `env:"RUSH_IDLE_TIMEOUT" envDefault:"30"`
}

// LoadEnv reads the environment into an Env.
func LoadEnv() (Env, error) {
	var e Env
	if err := env.Parse(&e); err != nil {
		return e, fmt.Errorf("config: cannot parse environment: %w", err)
	}
	return e, nil
}

// DefaultEnv returns the values used when the environment sets nothing.
func DefaultEnv() Env {
	return Env{
		DBPath:      "~/.rush/scores.db",
		DataDir:     "~/.rush",
		FPS:         60,
		SSHAddr:     ":23234",
		LogLevel:    "info",
		IdleMinutes: 30,
	}
}
