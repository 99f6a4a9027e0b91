package statstore

import (
	"testing"

	"github.com/neuroforge/forge/internal/stats"
)

func testSnapshot(files, lines int) *stats.Snapshot {
	return &stats.Snapshot{
		ByExtension: map[string]stats.ExtStat{
			"go": {Count: files, Lines: lines},
		},
		TotalFiles:  files,
		TotalLines:  lines,
		GeneratedAt: "2026-01-01 00:00:00",
	}
}

func TestStore_SaveAndGet(t *testing.T) {
	store, err := New(":memory:")
	if err != nil {
		t.Fatal(err)
	}
	defer store.Close()

	rec, err := store.SaveSnapshot("/repo", testSnapshot(3, 120))
	if err != nil {
		t.Fatal(err)
	}
	if rec.ID == "" {
		t.Fatal("record should get an ID")
	}

	got, err := store.GetSnapshot(rec.ID)
	if err != nil {
		t.Fatal(err)
	}

	if got.RepoPath != "/repo" {
		t.Errorf("RepoPath = %q, want /repo", got.RepoPath)
	}
	if got.Snapshot.TotalFiles != 3 {
		t.Errorf("TotalFiles = %d, want 3", got.Snapshot.TotalFiles)
	}
	if got.Snapshot.ByExtension["go"].Lines != 120 {
		t.Errorf("go lines = %d, want 120", got.Snapshot.ByExtension["go"].Lines)
	}
}

func TestStore_Latest(t *testing.T) {
	store, err := New(":memory:")
	if err != nil {
		t.Fatal(err)
	}
	defer store.Close()

	latest, err := store.Latest()
	if err != nil {
		t.Fatal(err)
	}
	if latest != nil {
		t.Fatalf("empty store Latest() = %v, want nil", latest)
	}

	if _, err := store.SaveSnapshot("/repo", testSnapshot(1, 10)); err != nil {
		t.Fatal(err)
	}
	second, err := store.SaveSnapshot("/repo", testSnapshot(2, 20))
	if err != nil {
		t.Fatal(err)
	}

	latest, err = store.Latest()
	if err != nil {
		t.Fatal(err)
	}
	if latest == nil {
		t.Fatal("Latest() = nil after saves")
	}
	if latest.Snapshot.TotalFiles != 2 && latest.ID != second.ID {
		t.Errorf("Latest() = %v, want second snapshot", latest)
	}
}

func TestStore_ListSnapshots(t *testing.T) {
	store, err := New(":memory:")
	if err != nil {
		t.Fatal(err)
	}
	defer store.Close()

	for i := 1; i <= 3; i++ {
		if _, err := store.SaveSnapshot("/repo", testSnapshot(i, i*10)); err != nil {
			t.Fatal(err)
		}
	}

	all, err := store.ListSnapshots(0)
	if err != nil {
		t.Fatal(err)
	}
	if len(all) != 3 {
		t.Errorf("ListSnapshots(0) returned %d records, want 3", len(all))
	}

	limited, err := store.ListSnapshots(2)
	if err != nil {
		t.Fatal(err)
	}
	if len(limited) != 2 {
		t.Errorf("ListSnapshots(2) returned %d records, want 2", len(limited))
	}
}
