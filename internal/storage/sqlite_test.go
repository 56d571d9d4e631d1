package storage

import (
	"os"
	"path/filepath"
	"testing"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestStoreOpenNestedPath(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "subdir", "deep", "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() with nested path failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created in nested directory")
	}
}

func TestStoreReopenKeepsData(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	store.SaveScore("rush", 12)
	store.Close()

	store, err = Open(dbPath)
	if err != nil {
		t.Fatalf("reopen failed: %v", err)
	}
	defer store.Close()

	high, err := store.HighScore("rush")
	if err != nil || high != 12 {
		t.Errorf("HighScore() = %d, %v; want 12", high, err)
	}
}

func TestStoreSaveAndRetrieve(t *testing.T) {
	store := openTestStore(t)

	for _, score := range []int{10, 5, 20} {
		if _, err := store.SaveScore("rush", score); err != nil {
			t.Fatalf("SaveScore() failed: %v", err)
		}
	}
	if _, err := store.SaveScore("other", 50); err != nil {
		t.Fatalf("SaveScore() failed: %v", err)
	}

	scores, err := store.TopScores("rush", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 3 {
		t.Fatalf("Expected 3 scores, got %d", len(scores))
	}

	// Should be sorted descending
	want := []int{20, 10, 5}
	for i, w := range want {
		if scores[i].Score != w {
			t.Errorf("scores[%d] = %d, want %d", i, scores[i].Score, w)
		}
		if scores[i].GameID != "rush" {
			t.Errorf("scores[%d].GameID = %q", i, scores[i].GameID)
		}
	}
}

func TestStoreTopScoresLimit(t *testing.T) {
	store := openTestStore(t)

	for i := 0; i < 5; i++ {
		store.SaveScore("rush", (i+1)*10)
	}

	scores, err := store.TopScores("rush", 3)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 3 {
		t.Fatalf("Expected 3 scores with limit, got %d", len(scores))
	}
	if scores[0].Score != 50 || scores[1].Score != 40 || scores[2].Score != 30 {
		t.Errorf("Scores not in expected order: %v", scores)
	}

	all, err := store.AllScores("rush")
	if err != nil {
		t.Fatalf("AllScores() failed: %v", err)
	}
	if len(all) != 5 {
		t.Errorf("Expected 5 scores, got %d", len(all))
	}
}

func TestStoreHighScore(t *testing.T) {
	store := openTestStore(t)

	high, err := store.HighScore("rush")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 0 {
		t.Errorf("Expected high score of 0 for empty game, got %d", high)
	}

	store.SaveScore("rush", 10)
	store.SaveScore("rush", 30)
	store.SaveScore("rush", 20)

	high, err = store.HighScore("rush")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 30 {
		t.Errorf("Expected high score of 30, got %d", high)
	}
}

func TestStoreRounds(t *testing.T) {
	store := openTestStore(t)

	id, err := store.SaveRound(RoundRecord{GameID: "rush", Score: 7, Cause: "timeout", Ticks: 600, Seed: 42})
	if err != nil {
		t.Fatalf("SaveRound() failed: %v", err)
	}
	if len(id) != 36 {
		t.Errorf("expected a UUID, got %q", id)
	}

	got, err := store.RoundByID(id)
	if err != nil {
		t.Fatalf("RoundByID() failed: %v", err)
	}
	if got == nil {
		t.Fatal("round not found")
	}
	if got.Score != 7 || got.Cause != "timeout" || got.Ticks != 600 || got.Seed != 42 {
		t.Errorf("round = %+v", got)
	}
	if got.Session != "local" {
		t.Errorf("session = %q, want local", got.Session)
	}

	missing, err := store.RoundByID("nope")
	if err != nil || missing != nil {
		t.Errorf("RoundByID(missing) = %v, %v", missing, err)
	}

	if _, err := store.SaveRound(RoundRecord{ID: id, GameID: "rush", Cause: "timeout"}); err == nil {
		t.Error("expected duplicate ID to fail")
	}
}

func TestStoreRecentRoundsAndCauses(t *testing.T) {
	store := openTestStore(t)

	causes := []string{"timeout", "wrong_action", "wrong_action", "timeout", "wrong_action"}
	for i, c := range causes {
		if _, err := store.SaveRound(RoundRecord{GameID: "rush", Score: i, Cause: c, Session: "ssh-1"}); err != nil {
			t.Fatalf("SaveRound() failed: %v", err)
		}
	}
	store.SaveRound(RoundRecord{GameID: "other", Cause: "timeout"})

	recent, err := store.RecentRounds("rush", 3)
	if err != nil {
		t.Fatalf("RecentRounds() failed: %v", err)
	}
	if len(recent) != 3 {
		t.Fatalf("Expected 3 rounds, got %d", len(recent))
	}
	// Newest first.
	if recent[0].Score != 4 || recent[2].Score != 2 {
		t.Errorf("unexpected order: %+v", recent)
	}

	counts, err := store.CauseCounts("rush")
	if err != nil {
		t.Fatalf("CauseCounts() failed: %v", err)
	}
	if counts["timeout"] != 2 || counts["wrong_action"] != 3 {
		t.Errorf("counts = %v", counts)
	}
}

func TestStoreClearScores(t *testing.T) {
	store := openTestStore(t)

	store.SaveScore("rush", 10)
	store.SaveScore("rush", 20)
	store.SaveScore("other", 30)
	store.SaveRound(RoundRecord{GameID: "rush", Cause: "timeout"})

	if err := store.ClearScores("rush"); err != nil {
		t.Fatalf("ClearScores() failed: %v", err)
	}

	if scores, _ := store.TopScores("rush", 10); len(scores) != 0 {
		t.Errorf("Expected 0 scores after clear, got %d", len(scores))
	}
	if rounds, _ := store.RecentRounds("rush", 10); len(rounds) != 0 {
		t.Errorf("Expected 0 rounds after clear, got %d", len(rounds))
	}
	if scores, _ := store.TopScores("other", 10); len(scores) != 1 {
		t.Errorf("other game should not be affected by clearing rush")
	}
}

func TestStoreGameStats(t *testing.T) {
	store := openTestStore(t)

	stats, err := store.GetGameStats("rush")
	if err != nil {
		t.Fatalf("GetGameStats() failed: %v", err)
	}
	if stats.GamesCount != 0 || !stats.LastPlayed.IsZero() {
		t.Errorf("empty stats = %+v", stats)
	}

	store.SaveScore("rush", 10)
	store.SaveScore("rush", 20)

	stats, err = store.GetGameStats("rush")
	if err != nil {
		t.Fatalf("GetGameStats() failed: %v", err)
	}
	if stats.GamesCount != 2 || stats.HighScore != 20 || stats.TotalScore != 30 || stats.AvgScore != 15 {
		t.Errorf("stats = %+v", stats)
	}
	if stats.LastPlayed.IsZero() {
		t.Error("LastPlayed not set")
	}
}
