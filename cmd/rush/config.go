package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/elemental-rush/internal/config"
	"github.com/vovakirdan/elemental-rush/internal/games/rush"
)

var flagConfigDefault bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective game config",
	Long: `Print the game config that 'rush play' would use, after the
--config file and the --difficulty preset are applied.

With --default, print the built-in config file instead; redirect it to
~/.rush/configs/rush.yaml to start customizing.

Examples:
  rush config
  rush config --difficulty hard
  rush config --default > ~/.rush/configs/rush.yaml`,
	Args: cobra.NoArgs,
	RunE: runConfig,
}

func init() {
	configCmd.Flags().BoolVar(&flagConfigDefault, "default", false, "Print the built-in default config file")
}

func runConfig(_ *cobra.Command, _ []string) error {
	if flagConfigDefault {
		os.Stdout.Write(config.GetDefaultYAML(rush.ID))
		return nil
	}

	cfg, err := config.LoadRush(flagConfig)
	if err != nil {
		return err
	}
	preset, _ := config.ParsePreset(flagDifficulty) // Validated in applyGlobalFlags
	config.ApplyRushPreset(&cfg, preset)

	out, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("encoding config: %w", err)
	}
	os.Stdout.Write(out)
	return nil
}
