// rush is Elemental Rush, a terminal reaction game: answer the Water,
// Volcano and Swamp hazards scrolling toward you before the clock runs out.
//
// Usage:
//
//	rush                     - Title screen (start, high scores, quit)
//	rush play                - Start a round directly
//	rush scores              - Show high scores and recent rounds
//	rush replay <file>       - Re-run a saved replay and print the result
//	rush list                - List saved replays
//	rush config              - Print the effective game config
//	rush serve               - Start SSH server for remote play
//
// Global flags (defaults can be set with RUSH_* environment variables):
//
//	--fps <rate>          - Set tick rate (default: 60, RUSH_FPS)
//	--seed <value>        - Set RNG seed for reproducible rounds (RUSH_SEED)
//	--db <path>           - Set database path (default: ~/.rush/scores.db, RUSH_DB)
//	--config <path>       - Custom game config YAML (RUSH_CONFIG)
//	--difficulty <preset> - easy, normal, hard or fixed (RUSH_DIFFICULTY)
//	--log-level <level>   - debug, info, warn or error (RUSH_LOG_LEVEL)
//	--data-dir <path>     - Logs, replays, screenshots (default: ~/.rush, RUSH_DATA_DIR)
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/elemental-rush/internal/config"
	"github.com/vovakirdan/elemental-rush/internal/core"
	"github.com/vovakirdan/elemental-rush/internal/games/rush"
	"github.com/vovakirdan/elemental-rush/internal/platform/tui"
	"github.com/vovakirdan/elemental-rush/internal/storage"
)

// Environment defaults for the flags below. Read before init() runs.
var env, envErr = config.LoadEnv()

var (
	// Global flags
	flagFPS        int
	flagSeed       int64
	flagDBPath     string
	flagConfig     string
	flagDifficulty string
	flagLogLevel   string
	flagDataDir    string
)

func main() {
	if envErr != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", envErr)
		os.Exit(1)
	}
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "rush",
	Short: "Elemental Rush - a reaction game for your terminal",
	Long: `Elemental Rush is a reaction game played in the terminal.

Water, Volcano and Swamp hazards scroll toward your hero. Press the button
that answers the one in front before the countdown runs out:

  L  (←/h/a)  Attack  - Water
  R  (→/l/s)  Jump    - Volcano
  B  (↓/j/z)  Shield  - Swamp
  A  (↑/k/x)  Shield  - Swamp

A wrong button or running out of time ends the round.

Examples:
  rush
  rush play --difficulty hard
  rush play --seed 42
  rush replay ~/.rush/replays/rush_20260101_120000.yaml
  rush serve --ssh :2222`,
	SilenceUsage:      true,
	PersistentPreRunE: applyGlobalFlags,
	RunE:              runTitle,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", env.FPS, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", env.Seed, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", env.DBPath, "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", env.ConfigPath, "Path to custom game config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", env.Difficulty, "Difficulty preset: easy, normal, hard, fixed")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", env.LogLevel, "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagDataDir, "data-dir", env.DataDir, "Directory for logs, replays and screenshots")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(replayCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(serveCmd)
}

// applyGlobalFlags validates the shared flags and hands the game its config source.
func applyGlobalFlags(_ *cobra.Command, _ []string) error {
	if _, err := config.ParsePreset(flagDifficulty); err != nil {
		return err
	}
	if _, err := log.ParseLevel(flagLogLevel); err != nil {
		return fmt.Errorf("invalid --log-level %q: %w", flagLogLevel, err)
	}
	if flagFPS <= 0 {
		return fmt.Errorf("--fps must be positive, got %d", flagFPS)
	}
	if flagConfig != "" {
		// Rounds fall back to defaults on a bad file; fail here instead.
		if _, err := config.LoadRush(flagConfig); err != nil {
			return err
		}
	}

	rush.SetConfigPath(flagConfig)
	rush.SetDifficultyPreset(flagDifficulty)
	return nil
}

// newLogger builds a logger on w at the configured level.
func newLogger(w *os.File, prefix string) *log.Logger {
	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          prefix,
	})
	if level, err := log.ParseLevel(flagLogLevel); err == nil {
		logger.SetLevel(level)
	}
	return logger
}

// dataDir returns the directory holding logs, replays and screenshots.
func dataDir() string {
	dir, err := config.ExpandHome(flagDataDir)
	if err != nil {
		return flagDataDir
	}
	return dir
}

// openTUILogger returns a logger that writes to a file in the data
// directory, so warnings never draw over the game screen. The returned
// close function is always safe to call.
func openTUILogger() (*log.Logger, func()) {
	dir := dataDir()
	if err := os.MkdirAll(dir, 0o755); err == nil {
		f, err := os.OpenFile(filepath.Join(dir, "rush.log"), os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600)
		if err == nil {
			return newLogger(f, "rush"), func() { f.Close() }
		}
	}
	return newLogger(os.Stderr, "rush"), func() {}
}

// runtimeConfig sizes the screen from the terminal.
func runtimeConfig() core.RuntimeConfig {
	width, height := 80, 24 // Defaults
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width = w
		height = h
	}
	return core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}
}

// openStore opens the scores database, or returns nil with a warning.
func openStore(logger *log.Logger) *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open scores database, scores will not be saved", "path", flagDBPath, "error", err)
		return nil
	}
	return store
}

// runTitle runs the title screen session.
func runTitle(_ *cobra.Command, _ []string) error {
	logger, closeLog := openTUILogger()
	defer closeLog()

	store := openStore(logger)
	if store != nil {
		defer store.Close()
	}

	opts := tui.Options{
		Store:   store,
		Logger:  logger,
		DataDir: dataDir(),
	}
	if err := tui.RunSession(rush.ID, runtimeConfig(), opts); err != nil {
		return fmt.Errorf("running game: %w", err)
	}
	return nil
}
