package storage

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/vovakirdan/tui-breakout/internal/core"
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

func TestStoreOpenClose(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
}

func TestStoreSaveAndRetrieve(t *testing.T) {
	store := openTestStore(t)

	runs := []RunRecord{
		{GameID: "breakout", Score: 100, Outcome: "loss", BlocksCleared: 20, BallsLost: 3, Ticks: 900},
		{GameID: "breakout", Score: 50, Outcome: "loss", BlocksCleared: 10, BallsLost: 3, Ticks: 400},
		{GameID: "breakout", Score: 445, Outcome: "win", BlocksCleared: 57, BallsLost: 1, Ticks: 5000},
		{GameID: "breakout_wall", Score: 500, Outcome: "loss", Ticks: 100},
	}
	for _, r := range runs {
		if _, err := store.SaveRun(r); err != nil {
			t.Fatalf("SaveRun() failed: %v", err)
		}
	}

	top, err := store.TopRuns("breakout", 10)
	if err != nil {
		t.Fatalf("TopRuns() failed: %v", err)
	}
	if len(top) != 3 {
		t.Fatalf("Expected 3 runs, got %d", len(top))
	}
	if top[0].Score != 445 || top[1].Score != 100 || top[2].Score != 50 {
		t.Errorf("Runs not sorted by score: %+v", top)
	}
	if top[0].Outcome != "win" || top[0].BlocksCleared != 57 || top[0].Ticks != 5000 {
		t.Errorf("Run fields not round-tripped: %+v", top[0])
	}
	if top[0].CreatedAt.IsZero() {
		t.Error("CreatedAt should be set by the database")
	}

	wall, err := store.TopRuns("breakout_wall", 10)
	if err != nil {
		t.Fatalf("TopRuns() failed: %v", err)
	}
	if len(wall) != 1 {
		t.Errorf("Expected 1 wall run, got %d", len(wall))
	}
}

func TestStoreTopRunsLimitAndTies(t *testing.T) {
	store := openTestStore(t)

	for i := 0; i < 5; i++ {
		store.SaveRun(RunRecord{GameID: "test", Score: (i + 1) * 100, Outcome: "loss", Ticks: 10})
	}
	store.SaveRun(RunRecord{GameID: "test", Score: 500, Outcome: "loss", Ticks: 5})

	top, err := store.TopRuns("test", 3)
	if err != nil {
		t.Fatalf("TopRuns() failed: %v", err)
	}
	if len(top) != 3 {
		t.Fatalf("Expected 3 runs with limit, got %d", len(top))
	}
	if top[0].Score != 500 || top[0].Ticks != 5 {
		t.Errorf("Faster run should win a tie, got %+v", top[0])
	}
	if top[1].Score != 500 || top[2].Score != 400 {
		t.Errorf("Runs not in expected order: %+v", top)
	}
}

func TestStoreSaveRunRequiresOutcome(t *testing.T) {
	store := openTestStore(t)
	if _, err := store.SaveRun(RunRecord{GameID: "breakout", Score: 10}); err == nil {
		t.Error("Expected error for run without outcome")
	}
}

func TestStoreHighScoreAndStats(t *testing.T) {
	store := openTestStore(t)

	high, err := store.HighScore("breakout")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 0 {
		t.Errorf("Expected high score of 0 for empty game, got %d", high)
	}

	store.SaveRun(RunRecord{GameID: "breakout", Score: 100, Outcome: "loss"})
	store.SaveRun(RunRecord{GameID: "breakout", Score: 300, Outcome: "win"})
	store.SaveRun(RunRecord{GameID: "breakout", Score: 200, Outcome: "loss"})

	high, err = store.HighScore("breakout")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 300 {
		t.Errorf("Expected high score of 300, got %d", high)
	}

	stats, err := store.Stats("breakout")
	if err != nil {
		t.Fatalf("Stats() failed: %v", err)
	}
	if stats.Runs != 3 || stats.Wins != 1 || stats.HighScore != 300 || stats.AvgScore != 200 {
		t.Errorf("Unexpected stats: %+v", stats)
	}
}

func TestStoreClearRuns(t *testing.T) {
	store := openTestStore(t)

	store.SaveRun(RunRecord{GameID: "breakout", Score: 100, Outcome: "loss"})
	store.SaveRun(RunRecord{GameID: "breakout_wall", Score: 300, Outcome: "loss"})

	if err := store.ClearRuns("breakout"); err != nil {
		t.Fatalf("ClearRuns() failed: %v", err)
	}

	runs, _ := store.TopRuns("breakout", 10)
	if len(runs) != 0 {
		t.Errorf("Expected 0 runs after clear, got %d", len(runs))
	}
	wall, _ := store.TopRuns("breakout_wall", 10)
	if len(wall) != 1 {
		t.Error("Other games should not be affected by clearing")
	}
}

func TestRecordFromSummary(t *testing.T) {
	r := RecordFromSummary(core.RunSummary{GameID: "breakout", Score: 445, Won: true, BlocksCleared: 57, BallsLost: 2, Ticks: 100})
	if r.Outcome != "win" || r.Score != 445 || r.BallsLost != 2 {
		t.Errorf("RecordFromSummary() = %+v", r)
	}
	if RecordFromSummary(core.RunSummary{}).Outcome != "loss" {
		t.Error("A run that was not won is a loss")
	}
}

func TestStoreNestedPath(t *testing.T) {
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
