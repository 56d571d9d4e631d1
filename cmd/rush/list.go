package main

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/elemental-rush/internal/games/rush"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List saved replays",
	Long:  `Shows the replays saved with Ctrl+E in the data directory, newest first.`,
	Args:  cobra.NoArgs,
	RunE:  runList,
}

type replayInfo struct {
	path string
	mod  int64
	rec  rush.Recording
}

func runList(_ *cobra.Command, _ []string) error {
	dir := filepath.Join(dataDir(), "replays")
	paths, err := filepath.Glob(filepath.Join(dir, "*.yaml"))
	if err != nil {
		return fmt.Errorf("listing replays: %w", err)
	}

	var replays []replayInfo
	for _, p := range paths {
		rec, err := rush.LoadRecording(p)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Skipping %s: %v\n", p, err)
			continue
		}
		var mod int64
		if fi, err := os.Stat(p); err == nil {
			mod = fi.ModTime().UnixNano()
		}
		replays = append(replays, replayInfo{path: p, mod: mod, rec: rec})
	}

	if len(replays) == 0 {
		fmt.Printf("No replays in %s.\n", dir)
		fmt.Println("Press Ctrl+E during a round to save one.")
		return nil
	}

	sort.Slice(replays, func(i, j int) bool {
		return replays[i].mod > replays[j].mod
	})

	// Calculate column widths
	maxNameLen := 4 // "File" header
	for _, r := range replays {
		if n := len(filepath.Base(r.path)); n > maxNameLen {
			maxNameLen = n
		}
	}

	fmt.Printf("  %-*s  %6s  %7s  %s\n", maxNameLen, "File", "Score", "Ticks", "Seed")
	fmt.Printf("  %-*s  %6s  %7s  %s\n", maxNameLen, "----", "-----", "-----", "----")
	for _, r := range replays {
		fmt.Printf("  %-*s  %6d  %7d  %d\n", maxNameLen, filepath.Base(r.path), r.rec.Score, r.rec.Ticks, r.rec.Seed)
	}

	fmt.Println()
	fmt.Println("Run 'rush replay <file>' to re-run one.")
	return nil
}
