package cache

import (
	"context"
	"path/filepath"
	"testing"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "cache.db"))
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestStore_RecordAndLookup(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()

	hash := HashSpec([]byte("name: App\n"))
	recorded, err := store.Record(ctx, hash, 2, "Spec validation error: 2 defect(s)\n")
	if err != nil {
		t.Fatalf("Record() error = %v", err)
	}
	if recorded.RunID == "" {
		t.Error("Record() produced empty run id")
	}

	found, err := store.Lookup(ctx, hash)
	if err != nil {
		t.Fatalf("Lookup() error = %v", err)
	}
	if found == nil {
		t.Fatal("Lookup() = nil for recorded hash")
	}
	if found.DefectCount != 2 || found.Valid() {
		t.Errorf("entry = %+v, want 2 defects and not valid", found)
	}
	if found.RunID != recorded.RunID {
		t.Errorf("RunID = %q, want %q", found.RunID, recorded.RunID)
	}
}

func TestStore_LookupMiss(t *testing.T) {
	store := openTestStore(t)

	found, err := store.Lookup(context.Background(), HashSpec([]byte("something else")))
	if err != nil {
		t.Fatalf("Lookup() error = %v", err)
	}
	if found != nil {
		t.Errorf("Lookup() = %+v, want nil for unknown hash", found)
	}
}

func TestStore_RecordOverwritesSameHash(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()
	hash := HashSpec([]byte("name: App\n"))

	if _, err := store.Record(ctx, hash, 3, "first"); err != nil {
		t.Fatal(err)
	}
	if _, err := store.Record(ctx, hash, 0, ""); err != nil {
		t.Fatal(err)
	}

	found, err := store.Lookup(ctx, hash)
	if err != nil {
		t.Fatal(err)
	}
	if found == nil || !found.Valid() {
		t.Errorf("entry = %+v, want latest (valid) run", found)
	}
}

func TestHashSpec_Deterministic(t *testing.T) {
	a := HashSpec([]byte("name: App"))
	b := HashSpec([]byte("name: App"))
	c := HashSpec([]byte("name: Other"))

	if a != b {
		t.Error("same bytes produced different hashes")
	}
	if a == c {
		t.Error("different bytes produced the same hash")
	}
	if len(a) != 64 {
		t.Errorf("hash length = %d, want 64 hex chars", len(a))
	}
}
