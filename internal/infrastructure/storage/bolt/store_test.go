package bolt

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/pokearena/teambuilder/internal/core/ports"
)

func openStore(t *testing.T, path string) *Store {
	t.Helper()
	store, err := Open(path)
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	return store
}

func TestStoreSetGetDelete(t *testing.T) {
	store := openStore(t, filepath.Join(t.TempDir(), "session.db"))
	defer store.Close()
	ctx := context.Background()

	if _, ok, err := store.Get(ctx, ports.TokenKey); err != nil || ok {
		t.Fatalf("expected missing token, got ok=%v err=%v", ok, err)
	}

	if err := store.Set(ctx, ports.TokenKey, "abc.def.ghi"); err != nil {
		t.Fatalf("set token: %v", err)
	}
	if err := store.Set(ctx, ports.UserKey, `{"username":"ash"}`); err != nil {
		t.Fatalf("set user: %v", err)
	}

	got, ok, err := store.Get(ctx, ports.TokenKey)
	if err != nil || !ok || got != "abc.def.ghi" {
		t.Fatalf("get token = %q, %v, %v", got, ok, err)
	}

	if err := store.Delete(ctx, ports.TokenKey, ports.UserKey, "never-set"); err != nil {
		t.Fatalf("delete: %v", err)
	}
	for _, k := range []string{ports.TokenKey, ports.UserKey} {
		if _, ok, _ := store.Get(ctx, k); ok {
			t.Fatalf("expected %q deleted", k)
		}
	}
}

func TestStoreSurvivesReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "dir", "session.db")
	ctx := context.Background()

	store := openStore(t, path)
	if err := store.Set(ctx, ports.TokenKey, "persisted"); err != nil {
		t.Fatalf("set: %v", err)
	}
	if err := store.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}

	reopened := openStore(t, path)
	defer reopened.Close()
	got, ok, err := reopened.Get(ctx, ports.TokenKey)
	if err != nil || !ok || got != "persisted" {
		t.Fatalf("get after reopen = %q, %v, %v", got, ok, err)
	}
}

func TestStoreRequiresPath(t *testing.T) {
	if _, err := Open("  "); err == nil {
		t.Fatalf("expected error for blank path")
	}
}

func TestStoreHonoursCancelledContext(t *testing.T) {
	store := openStore(t, filepath.Join(t.TempDir(), "session.db"))
	defer store.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if err := store.Set(ctx, ports.TokenKey, "x"); !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}

func TestNilStore(t *testing.T) {
	var store *Store
	if err := store.Close(); err != nil {
		t.Fatalf("close nil store: %v", err)
	}
	if _, _, err := store.Get(context.Background(), ports.TokenKey); err == nil {
		t.Fatalf("expected error from nil store")
	}
}
