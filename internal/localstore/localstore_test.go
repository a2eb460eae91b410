package localstore

import (
	"context"
	"path/filepath"
	"testing"

	"agent-dashboard/internal/config"

	"github.com/rs/zerolog"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	cfg := &config.Config{DBPath: filepath.Join(t.TempDir(), "slots.db")}
	store, err := New(cfg, zerolog.Nop())
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestSlotRoundTrip(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	type blob struct {
		Theme     string `json:"theme"`
		Collapsed bool   `json:"collapsed"`
	}

	if err := store.Put(ctx, "prefs", blob{Theme: "dark", Collapsed: true}); err != nil {
		t.Fatalf("put: %v", err)
	}

	var got blob
	found, err := store.Get(ctx, "prefs", &got)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if !found {
		t.Fatal("expected slot to exist")
	}
	if got.Theme != "dark" || !got.Collapsed {
		t.Fatalf("round trip mismatch: %+v", got)
	}
}

func TestSlotOverwrite(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	if err := store.Put(ctx, "k", "first"); err != nil {
		t.Fatalf("put: %v", err)
	}
	if err := store.Put(ctx, "k", "second"); err != nil {
		t.Fatalf("overwrite: %v", err)
	}

	var got string
	if _, err := store.Get(ctx, "k", &got); err != nil {
		t.Fatalf("get: %v", err)
	}
	if got != "second" {
		t.Fatalf("expected overwrite to win, got %q", got)
	}
}

func TestMissingSlotReportsNotFound(t *testing.T) {
	store := newTestStore(t)

	var got string
	found, err := store.Get(context.Background(), "missing", &got)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if found {
		t.Fatal("expected missing slot to report !found")
	}
}

func TestDeleteClearsSlot(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	if err := store.Put(ctx, "k", "v"); err != nil {
		t.Fatalf("put: %v", err)
	}
	if err := store.Delete(ctx, "k"); err != nil {
		t.Fatalf("delete: %v", err)
	}

	var got string
	found, _ := store.Get(ctx, "k", &got)
	if found {
		t.Fatal("expected slot gone after delete")
	}
}
