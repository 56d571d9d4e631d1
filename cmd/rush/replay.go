package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/elemental-rush/internal/games/rush"
)

var replayCmd = &cobra.Command{
	Use:   "replay <file>",
	Short: "Re-run a saved replay and print the final state",
	Long: `Load a replay saved with Ctrl+E, run it without a screen and print
the final game snapshot as YAML. Exits with an error if the replayed score
differs from the score stored in the file.

Replays recorded with the wall clock are re-run on the frame clock, so
their countdown can differ from the live round.

Examples:
  rush replay ~/.rush/replays/rush_20260101_120000.yaml`,
	Args: cobra.ExactArgs(1),
	RunE: runReplay,
}

func runReplay(_ *cobra.Command, args []string) error {
	rec, err := rush.LoadRecording(args[0])
	if err != nil {
		return err
	}

	snap, err := rush.Play(rec)
	if err != nil {
		return err
	}

	out, err := yaml.Marshal(snap)
	if err != nil {
		return fmt.Errorf("encoding snapshot: %w", err)
	}
	os.Stdout.Write(out)

	if snap.Score != rec.Score {
		return fmt.Errorf("replay diverged: recorded score %d, replayed score %d", rec.Score, snap.Score)
	}
	return nil
}
