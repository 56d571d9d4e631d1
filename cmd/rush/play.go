package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/elemental-rush/internal/games/rush"
	"github.com/vovakirdan/elemental-rush/internal/platform/tui"
	"github.com/vovakirdan/elemental-rush/internal/registry"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Start a round without the title screen",
	Long: `Start playing immediately.

Controls:
  ←/h/a      - L (Attack, answers Water)
  →/l/s      - R (Jump, answers Volcano)
  ↓/j/z      - B (Shield, answers Swamp)
  ↑/k/x      - A (Shield, answers Swamp)
  P          - Pause
  Enter/R    - Restart (after game over)
  Esc        - Leave (when paused or after game over)
  Ctrl+S     - Save a screenshot
  Ctrl+E     - Save a replay of the current round
  Q/Ctrl+C   - Quit

Difficulty options:
  easy   - 15 second countdown
  normal - 10 second countdown
  hard   - 6 second countdown
  fixed  - Countdown from the config file

Examples:
  rush play
  rush play --difficulty hard
  rush play --seed 42 --fps 30
  rush play --config ./my-rush.yaml`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func runPlay(_ *cobra.Command, _ []string) error {
	game, err := registry.Create(rush.ID)
	if err != nil {
		return fmt.Errorf("creating game: %w", err)
	}

	logger, closeLog := openTUILogger()
	defer closeLog()

	// Continue without storage if it cannot be opened - the game still works
	store := openStore(logger)
	if store != nil {
		defer store.Close()
	}

	opts := tui.Options{
		Store:   store,
		Logger:  logger,
		DataDir: dataDir(),
	}
	if err := tui.Run(game, runtimeConfig(), opts); err != nil {
		return fmt.Errorf("running game: %w", err)
	}
	return nil
}
