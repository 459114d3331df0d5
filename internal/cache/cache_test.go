package cache

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/cbbstats/kenpom"
)

func sampleTeams() map[string]kenpom.Team {
	return map[string]kenpom.Team{
		"Acme U": {
			Rank:       1,
			Name:       "Acme U",
			Conference: "Big Conf",
			Wins:       30,
			Losses:     4,
			Efficiency: 28.5,
		},
	}
}

func TestSaveAndLoad(t *testing.T) {
	store, err := New(t.TempDir(), time.Hour)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	if err := store.Save(sampleTeams()); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	snapshot, err := store.Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if snapshot == nil {
		t.Fatal("expected a snapshot, got nil")
	}
	if len(snapshot.Teams) != 1 {
		t.Fatalf("expected 1 team, got %d", len(snapshot.Teams))
	}

	got := snapshot.Teams["Acme U"]
	if got.Rank != 1 || got.Record() != "30-4" || got.Efficiency != 28.5 {
		t.Errorf("round-tripped team mismatch: %+v", got)
	}
	if snapshot.FetchedAt.IsZero() {
		t.Error("expected FetchedAt to be set")
	}
}

func TestLoadMissing(t *testing.T) {
	store, err := New(t.TempDir(), time.Hour)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	snapshot, err := store.Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if snapshot != nil {
		t.Errorf("expected nil snapshot for empty cache, got %+v", snapshot)
	}
}

func TestLoadExpired(t *testing.T) {
	store, err := New(t.TempDir(), time.Millisecond)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	if err := store.Save(sampleTeams()); err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	time.Sleep(5 * time.Millisecond)

	snapshot, err := store.Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if snapshot != nil {
		t.Error("expected expired snapshot to be treated as absent")
	}
}

func TestLoadCorrupt(t *testing.T) {
	dir := t.TempDir()
	store, err := New(dir, time.Hour)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	if err := os.WriteFile(filepath.Join(dir, "ratings.json"), []byte("{not json"), 0644); err != nil {
		t.Fatalf("writing corrupt snapshot: %v", err)
	}

	if _, err := store.Load(); err == nil {
		t.Error("expected error for corrupt snapshot")
	}
}

func TestClear(t *testing.T) {
	store, err := New(t.TempDir(), time.Hour)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	if err := store.Save(sampleTeams()); err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	if err := store.Clear(); err != nil {
		t.Fatalf("Clear failed: %v", err)
	}

	snapshot, err := store.Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if snapshot != nil {
		t.Error("expected no snapshot after Clear")
	}

	// Clearing an already-empty cache is fine.
	if err := store.Clear(); err != nil {
		t.Errorf("Clear on empty cache failed: %v", err)
	}
}
