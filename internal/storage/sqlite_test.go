package storage

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/vovakirdan/tui-memory/internal/achievements"
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
	dbPath := filepath.Join(tmpDir, "nested", "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
}

func TestStoreGetMissingKey(t *testing.T) {
	store := openTestStore(t)

	value, ok, err := store.Get("missing")
	if err != nil {
		t.Fatalf("Get() failed: %v", err)
	}
	if ok || value != nil {
		t.Errorf("Get(missing) = %q, %v; want nil, false", value, ok)
	}
}

func TestStorePutOverwrites(t *testing.T) {
	store := openTestStore(t)

	if err := store.Put("k", []byte("[1]")); err != nil {
		t.Fatalf("Put() failed: %v", err)
	}
	if err := store.Put("k", []byte("[2,1]")); err != nil {
		t.Fatalf("Put() failed: %v", err)
	}

	value, ok, err := store.Get("k")
	if err != nil || !ok {
		t.Fatalf("Get() = %v, %v", ok, err)
	}
	if string(value) != "[2,1]" {
		t.Errorf("Get() = %q, want %q", value, "[2,1]")
	}

	if err := store.Delete("k"); err != nil {
		t.Fatalf("Delete() failed: %v", err)
	}
	if _, ok, _ := store.Get("k"); ok {
		t.Error("key should be gone after Delete()")
	}
}

func TestAchievementsSurviveReopen(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "ach.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	ach := achievements.New(store)
	ach.Load()
	ach.Save(2)
	ach.Save(5)
	store.Close()

	store, err = Open(dbPath)
	if err != nil {
		t.Fatalf("reopen failed: %v", err)
	}
	defer store.Close()

	got := achievements.New(store).Load()
	if diff := cmp.Diff([]int{5, 2}, got); diff != "" {
		t.Errorf("reloaded achievements mismatch (-want +got):\n%s", diff)
	}
}

func TestRecordRunAndStats(t *testing.T) {
	store := openTestStore(t)

	runs := []RunRecord{
		{GameID: "memory", Level: 1, Score: 2, Moves: 3, MaxMoves: 5, Outcome: OutcomeCleared},
		{GameID: "memory", Level: 2, Score: 3, Moves: 6, MaxMoves: 7, Outcome: OutcomeCleared},
		{GameID: "memory", Level: 3, Score: 1, Moves: 10, MaxMoves: 10, Outcome: OutcomeExhausted},
		{GameID: "memory_ascii", Level: 1, Score: 2, Moves: 2, MaxMoves: 5, Outcome: OutcomeCleared},
	}
	for _, r := range runs {
		id, err := store.RecordRun(r)
		if err != nil {
			t.Fatalf("RecordRun() failed: %v", err)
		}
		if id == "" {
			t.Error("RecordRun() should generate an ID")
		}
	}

	recent, err := store.RecentRuns("memory", 10)
	if err != nil {
		t.Fatalf("RecentRuns() failed: %v", err)
	}
	if len(recent) != 3 {
		t.Fatalf("RecentRuns() returned %d runs, want 3", len(recent))
	}
	if recent[0].Level != 3 || recent[0].Outcome != OutcomeExhausted {
		t.Errorf("most recent run = %+v, want level 3 exhausted", recent[0])
	}

	stats, err := store.RunStats("memory")
	if err != nil {
		t.Fatalf("RunStats() failed: %v", err)
	}
	if stats.Runs != 3 || stats.Cleared != 2 || stats.Exhausted != 1 {
		t.Errorf("stats counts = %d/%d/%d, want 3/2/1", stats.Runs, stats.Cleared, stats.Exhausted)
	}
	if stats.BestLevel != 2 {
		t.Errorf("BestLevel = %d, want 2 (exhausted runs don't count)", stats.BestLevel)
	}
	if stats.TotalPairs != 6 {
		t.Errorf("TotalPairs = %d, want 6", stats.TotalPairs)
	}
}

func TestRunStatsEmpty(t *testing.T) {
	store := openTestStore(t)

	stats, err := store.RunStats("memory")
	if err != nil {
		t.Fatalf("RunStats() failed: %v", err)
	}
	if stats.Runs != 0 || stats.BestLevel != 0 || !stats.LastPlayed.IsZero() {
		t.Errorf("empty stats = %+v", stats)
	}
}

func TestClearRuns(t *testing.T) {
	store := openTestStore(t)

	if _, err := store.RecordRun(RunRecord{GameID: "memory", Level: 1, Outcome: OutcomeCleared}); err != nil {
		t.Fatalf("RecordRun() failed: %v", err)
	}
	if err := store.ClearRuns("memory"); err != nil {
		t.Fatalf("ClearRuns() failed: %v", err)
	}

	runs, err := store.RecentRuns("memory", 10)
	if err != nil {
		t.Fatalf("RecentRuns() failed: %v", err)
	}
	if len(runs) != 0 {
		t.Errorf("expected no runs after clear, got %d", len(runs))
	}
}
