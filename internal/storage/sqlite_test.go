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

func TestStoreOpenCreatesFile(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "subdir", "deep", "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() with nested path failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("database file was not created")
	}
}

func TestStoreSaveAndRetrieve(t *testing.T) {
	store := openTestStore(t)

	for _, r := range []struct {
		mode    string
		score   int
		outcome string
	}{
		{"crossing", 1200, OutcomeOver},
		{"crossing", 2100, OutcomeClear},
		{"crossing", 800, OutcomeOver},
		{"crossing_endless", 5400, OutcomeQuit},
	} {
		if _, err := store.SaveResult(r.mode, r.score, r.outcome); err != nil {
			t.Fatalf("SaveResult(%q) failed: %v", r.mode, err)
		}
	}

	results, err := store.TopResults("crossing", 10)
	if err != nil {
		t.Fatalf("TopResults() failed: %v", err)
	}
	if len(results) != 3 {
		t.Fatalf("expected 3 timed results, got %d", len(results))
	}
	if results[0].Score != 2100 || results[1].Score != 1200 || results[2].Score != 800 {
		t.Errorf("results not sorted by score: %v", results)
	}
	if results[0].Outcome != OutcomeClear {
		t.Errorf("best result outcome = %q, want %q", results[0].Outcome, OutcomeClear)
	}

	endless, err := store.TopResults("crossing_endless", 10)
	if err != nil {
		t.Fatalf("TopResults() failed: %v", err)
	}
	if len(endless) != 1 {
		t.Errorf("expected 1 endless result, got %d", len(endless))
	}
}

func TestStoreTopResultsLimit(t *testing.T) {
	store := openTestStore(t)

	for i := 0; i < 5; i++ {
		store.SaveResult("crossing", (i+1)*100, OutcomeOver)
	}

	results, err := store.TopResults("crossing", 3)
	if err != nil {
		t.Fatalf("TopResults() failed: %v", err)
	}
	if len(results) != 3 {
		t.Fatalf("expected 3 results with limit, got %d", len(results))
	}
	if results[0].Score != 500 || results[1].Score != 400 || results[2].Score != 300 {
		t.Errorf("results not in expected order: %v", results)
	}
}

func TestStoreHighScore(t *testing.T) {
	store := openTestStore(t)

	high, err := store.HighScore("crossing")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 0 {
		t.Errorf("expected high score 0 for empty mode, got %d", high)
	}

	store.SaveResult("crossing", 1000, OutcomeOver)
	store.SaveResult("crossing", 2300, OutcomeClear)
	store.SaveResult("crossing", 1800, OutcomeOver)

	high, err = store.HighScore("crossing")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 2300 {
		t.Errorf("expected high score 2300, got %d", high)
	}
}

func TestStoreClearResults(t *testing.T) {
	store := openTestStore(t)

	store.SaveResult("crossing", 100, OutcomeOver)
	store.SaveResult("crossing", 200, OutcomeOver)
	store.SaveResult("crossing_endless", 300, OutcomeQuit)

	if err := store.ClearResults("crossing"); err != nil {
		t.Fatalf("ClearResults() failed: %v", err)
	}

	timed, _ := store.TopResults("crossing", 10)
	if len(timed) != 0 {
		t.Errorf("expected 0 timed results after clear, got %d", len(timed))
	}
	endless, _ := store.TopResults("crossing_endless", 10)
	if len(endless) != 1 {
		t.Error("endless results should not be affected by clearing timed")
	}
}

func TestStoreAllResults(t *testing.T) {
	store := openTestStore(t)

	for i := 0; i < 20; i++ {
		store.SaveResult("crossing", i*100, OutcomeOver)
	}

	results, err := store.AllResults("crossing")
	if err != nil {
		t.Fatalf("AllResults() failed: %v", err)
	}
	if len(results) != 20 {
		t.Errorf("expected 20 results, got %d", len(results))
	}
}

func TestStoreModeStats(t *testing.T) {
	store := openTestStore(t)

	store.SaveResult("crossing", 2100, OutcomeClear)
	store.SaveResult("crossing", 900, OutcomeOver)
	store.SaveResult("crossing", 1500, OutcomeOver)

	stats, err := store.ModeStats("crossing")
	if err != nil {
		t.Fatalf("ModeStats() failed: %v", err)
	}
	if stats.Sessions != 3 {
		t.Errorf("Sessions = %d, want 3", stats.Sessions)
	}
	if stats.Cleared != 1 {
		t.Errorf("Cleared = %d, want 1", stats.Cleared)
	}
	if stats.HighScore != 2100 {
		t.Errorf("HighScore = %d, want 2100", stats.HighScore)
	}
	if stats.AvgScore != 1500 {
		t.Errorf("AvgScore = %v, want 1500", stats.AvgScore)
	}
}

func TestStoreAllStats(t *testing.T) {
	store := openTestStore(t)

	store.SaveResult("crossing", 2100, OutcomeClear)
	store.SaveResult("crossing_endless", 4000, OutcomeQuit)

	stats, err := store.AllStats()
	if err != nil {
		t.Fatalf("AllStats() failed: %v", err)
	}
	if len(stats) != 2 {
		t.Fatalf("expected stats for 2 modes, got %d", len(stats))
	}
	if stats["crossing"].HighScore != 2100 {
		t.Errorf("timed HighScore = %d, want 2100", stats["crossing"].HighScore)
	}
	if stats["crossing_endless"].Sessions != 1 {
		t.Errorf("endless Sessions = %d, want 1", stats["crossing_endless"].Sessions)
	}
}
