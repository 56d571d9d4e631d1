package main

import (
	"fmt"
	"io"
	"sort"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/elemental-rush/internal/games/rush"
	"github.com/vovakirdan/elemental-rush/internal/platform/tui"
	"github.com/vovakirdan/elemental-rush/internal/storage"
)

var (
	flagScoresTUI   bool
	flagScoresClear bool
	flagScoresAll   bool
	flagScoresLimit int
	flagScoresRound string
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show high scores and recent rounds",
	Long: `Display the top high scores and the most recent rounds.

Examples:
  rush scores
  rush scores --limit 20
  rush scores --all
  rush scores --round 3f1c9a52-0d7e-4b8e-9a61-2b7f5c0e4d11
  rush scores --tui
  rush scores --clear`,
	Args: cobra.NoArgs,
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().BoolVar(&flagScoresTUI, "tui", false, "Open the interactive scoreboard")
	scoresCmd.Flags().BoolVar(&flagScoresClear, "clear", false, "Delete all scores and round history")
	scoresCmd.Flags().BoolVar(&flagScoresAll, "all", false, "List every recorded score, newest first")
	scoresCmd.Flags().IntVar(&flagScoresLimit, "limit", 10, "Number of scores and rounds to show")
	scoresCmd.Flags().StringVar(&flagScoresRound, "round", "", "Show one round by its ID")
}

func runScores(cmd *cobra.Command, _ []string) error {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		return fmt.Errorf("opening scores database: %w", err)
	}
	defer store.Close()

	out := cmd.OutOrStdout()

	switch {
	case flagScoresClear:
		if err := store.ClearScores(rush.ID); err != nil {
			return err
		}
		fmt.Fprintln(out, "Scores cleared.")
		return nil
	case flagScoresTUI:
		cfg := runtimeConfig()
		return tui.RunScoreboard(rush.ID, store, cfg.ScreenW, cfg.ScreenH)
	case flagScoresRound != "":
		return printRound(out, store, flagScoresRound)
	case flagScoresAll:
		scores, err := store.AllScores(rush.ID)
		if err != nil {
			return fmt.Errorf("retrieving scores: %w", err)
		}
		fmt.Fprintln(out, "All Scores - Elemental Rush")
		fmt.Fprintln(out)
		printScores(out, scores)
		return nil
	}

	scores, err := store.TopScores(rush.ID, flagScoresLimit)
	if err != nil {
		return fmt.Errorf("retrieving scores: %w", err)
	}

	fmt.Fprintln(out, "High Scores - Elemental Rush")
	fmt.Fprintln(out)
	if len(scores) == 0 {
		fmt.Fprintln(out, "No scores recorded yet.")
		fmt.Fprintln(out)
		fmt.Fprintln(out, "Play 'rush play' to set the first high score!")
		return nil
	}
	printScores(out, scores)

	rounds, err := store.RecentRounds(rush.ID, flagScoresLimit)
	if err != nil {
		return fmt.Errorf("retrieving rounds: %w", err)
	}
	if len(rounds) > 0 {
		fmt.Fprintln(out)
		fmt.Fprintln(out, "Recent rounds")
		fmt.Fprintln(out)
		fmt.Fprintf(out, "  %-6s  %-13s  %-7s  %-16s  %-12s  %s\n", "Score", "Ended by", "Ticks", "Date", "Player", "Round")
		fmt.Fprintf(out, "  %-6s  %-13s  %-7s  %-16s  %-12s  %s\n", "-----", "--------", "-----", "----", "------", "-----")
		for _, r := range rounds {
			fmt.Fprintf(out, "  %-6d  %-13s  %-7d  %-16s  %-12s  %s\n",
				r.Score, r.Cause, r.Ticks, r.CreatedAt.Format("2006-01-02 15:04"), r.Session, r.ID)
		}
		fmt.Fprintln(out)
		fmt.Fprintln(out, "Run 'rush scores --round <Round>' for details.")
	}

	stats, err := store.GetGameStats(rush.ID)
	if err != nil {
		return err
	}
	causes, err := store.CauseCounts(rush.ID)
	if err != nil {
		return err
	}

	fmt.Fprintln(out)
	fmt.Fprintf(out, "Best: %d  Games: %d  Average: %.1f\n", stats.HighScore, stats.GamesCount, stats.AvgScore)
	names := make([]string, 0, len(causes))
	for c := range causes {
		names = append(names, c)
	}
	sort.Strings(names)
	for _, c := range names {
		fmt.Fprintf(out, "  %s: %d\n", c, causes[c])
	}
	return nil
}

func printScores(out io.Writer, scores []storage.ScoreEntry) {
	fmt.Fprintf(out, "  %-4s  %-10s  %s\n", "Rank", "Score", "Date")
	fmt.Fprintf(out, "  %-4s  %-10s  %s\n", "----", "-----", "----")
	for i, entry := range scores {
		fmt.Fprintf(out, "  %-4d  %-10d  %s\n", i+1, entry.Score, entry.CreatedAt.Format("2006-01-02 15:04"))
	}
}

// printRound shows one round, looked up by the ID from the recent rounds list.
func printRound(out io.Writer, store *storage.Store, id string) error {
	r, err := store.RoundByID(id)
	if err != nil {
		return err
	}
	if r == nil {
		return fmt.Errorf("no round with ID %q", id)
	}

	fmt.Fprintf(out, "Round:    %s\n", r.ID)
	fmt.Fprintf(out, "Player:   %s\n", r.Session)
	fmt.Fprintf(out, "Score:    %d\n", r.Score)
	fmt.Fprintf(out, "Ended by: %s\n", r.Cause)
	fmt.Fprintf(out, "Ticks:    %d\n", r.Ticks)
	fmt.Fprintf(out, "Seed:     %d\n", r.Seed)
	fmt.Fprintf(out, "Date:     %s\n", r.CreatedAt.Format("2006-01-02 15:04:05"))
	return nil
}
