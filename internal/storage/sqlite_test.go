package storage

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/vovakirdan/squirrel-run/internal/sim"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "sim.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func sampleBatch(seed int64) Batch {
	runs := []sim.Result{
		{Run: 0, Seed: seed, Score: 300, Passed: 3, Ticks: 412, SpeedMultiplier: 1.03, SpawnInterval: 1317.5, Crashed: true},
		{Run: 1, Seed: seed + 1, Score: 1200, Passed: 12, Ticks: 2000, SpeedMultiplier: 1.23, SpawnInterval: 900, Crashed: false},
	}
	return Batch{
		Seed:      seed,
		MaxTicks:  2000,
		Lookahead: 8,
		Summary:   sim.Summarize(runs),
		Runs:      runs,
	}
}

func TestStoreOpenClose(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "nested", "dir", "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
}

func TestStoreReopenKeepsData(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	if _, err := store.SaveBatch(sampleBatch(1)); err != nil {
		t.Fatalf("SaveBatch() failed: %v", err)
	}
	store.Close()

	store, err = Open(dbPath)
	if err != nil {
		t.Fatalf("second Open() failed: %v", err)
	}
	defer store.Close()

	batches, err := store.RecentBatches(10)
	if err != nil {
		t.Fatalf("RecentBatches() failed: %v", err)
	}
	if len(batches) != 1 {
		t.Errorf("Expected 1 batch after reopen, got %d", len(batches))
	}
}

func TestStoreSaveBatchRoundTrip(t *testing.T) {
	store := openTestStore(t)
	batch := sampleBatch(7)

	id, err := store.SaveBatch(batch)
	if err != nil {
		t.Fatalf("SaveBatch() failed: %v", err)
	}
	if id <= 0 {
		t.Errorf("Expected positive batch ID, got %d", id)
	}

	runs, err := store.BatchRuns(id)
	if err != nil {
		t.Fatalf("BatchRuns() failed: %v", err)
	}
	if !reflect.DeepEqual(runs, batch.Runs) {
		t.Errorf("BatchRuns() = %+v, expected %+v", runs, batch.Runs)
	}

	batches, err := store.RecentBatches(1)
	if err != nil {
		t.Fatalf("RecentBatches() failed: %v", err)
	}
	got := batches[0]
	if got.ID != id || got.Seed != 7 || got.MaxTicks != 2000 || got.Lookahead != 8 {
		t.Errorf("unexpected batch header: %+v", got)
	}
	if got.Summary != batch.Summary {
		t.Errorf("Summary = %+v, expected %+v", got.Summary, batch.Summary)
	}
	if got.Runs != nil {
		t.Error("RecentBatches should not load runs")
	}
	if got.CreatedAt.IsZero() {
		t.Error("CreatedAt should be set by the database")
	}
}

func TestStoreRecentBatchesOrder(t *testing.T) {
	store := openTestStore(t)

	for seed := int64(1); seed <= 3; seed++ {
		if _, err := store.SaveBatch(sampleBatch(seed)); err != nil {
			t.Fatalf("SaveBatch() failed: %v", err)
		}
	}

	batches, err := store.RecentBatches(2)
	if err != nil {
		t.Fatalf("RecentBatches() failed: %v", err)
	}
	if len(batches) != 2 {
		t.Fatalf("Expected 2 batches, got %d", len(batches))
	}
	if batches[0].Seed != 3 || batches[1].Seed != 2 {
		t.Errorf("Expected newest first (3, 2), got (%d, %d)", batches[0].Seed, batches[1].Seed)
	}
}

func TestStoreUnknownBatch(t *testing.T) {
	store := openTestStore(t)

	runs, err := store.BatchRuns(42)
	if err != nil {
		t.Fatalf("BatchRuns() failed: %v", err)
	}
	if len(runs) != 0 {
		t.Errorf("Expected no runs for unknown batch, got %d", len(runs))
	}
}

func TestStoreDuplicateRunRollsBack(t *testing.T) {
	store := openTestStore(t)

	batch := sampleBatch(1)
	batch.Runs[1].Run = 0
	if _, err := store.SaveBatch(batch); err == nil {
		t.Fatal("SaveBatch() should fail on duplicate run index")
	}

	batches, err := store.RecentBatches(10)
	if err != nil {
		t.Fatalf("RecentBatches() failed: %v", err)
	}
	if len(batches) != 0 {
		t.Errorf("Failed batch should be rolled back, found %d batches", len(batches))
	}
}
