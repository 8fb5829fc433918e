package redis

import (
	"context"
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/pokearena/teambuilder/internal/core/ports"
)

func connectOrSkip(t *testing.T) *SessionStore {
	t.Helper()
	addr := os.Getenv("REDIS_ADDR")
	if addr == "" {
		t.Skip("REDIS_ADDR not set")
	}
	ctx := context.Background()
	client, err := Connect(ctx, Config{Addr: addr, Timeout: 2 * time.Second})
	if err != nil {
		t.Fatalf("connect: %v", err)
	}
	t.Cleanup(func() { _ = client.Close() })

	prefix := fmt.Sprintf("teambuilder-test-%d", time.Now().UnixNano())
	store := NewSessionStore(client, prefix)
	t.Cleanup(func() { _ = store.Delete(ctx, ports.TokenKey, ports.UserKey) })
	return store
}

func TestSessionStoreRoundTrip(t *testing.T) {
	store := connectOrSkip(t)
	ctx := context.Background()

	if _, ok, err := store.Get(ctx, ports.TokenKey); err != nil || ok {
		t.Fatalf("expected missing key, got ok=%v err=%v", ok, err)
	}
	if err := store.Set(ctx, ports.TokenKey, "abc"); err != nil {
		t.Fatalf("set: %v", err)
	}
	if v, ok, err := store.Get(ctx, ports.TokenKey); err != nil || !ok || v != "abc" {
		t.Fatalf("get = %q, %v, %v", v, ok, err)
	}
	if err := store.Delete(ctx, ports.TokenKey, ports.UserKey); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, ok, _ := store.Get(ctx, ports.TokenKey); ok {
		t.Fatalf("expected key deleted")
	}
}

func TestConnectFailsFast(t *testing.T) {
	_, err := Connect(context.Background(), Config{Addr: "127.0.0.1:1", Timeout: 200 * time.Millisecond})
	if err == nil {
		t.Fatalf("expected ping failure")
	}
}

func TestSessionStoreKey(t *testing.T) {
	if got := NewSessionStore(nil, "arena:").key("token"); got != "arena:token" {
		t.Fatalf("key = %q", got)
	}
	if got := NewSessionStore(nil, "").key("user"); got != "user" {
		t.Fatalf("key = %q", got)
	}
}
