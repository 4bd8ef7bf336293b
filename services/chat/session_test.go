package chat

import (
	"context"
	"testing"

	"bookassist/models"
)

func TestMemorySessionStoreRoundTrip(t *testing.T) {
	store := NewMemorySessionStore()
	ctx := context.Background()

	// An unknown session yields a fresh idle state, not an error.
	state, err := store.Get(ctx, "fresh")
	if err != nil {
		t.Fatalf("Get(fresh) failed: %v", err)
	}
	if state.Phase != models.PhaseIdle || state.SessionID != "fresh" {
		t.Fatalf("fresh state = %+v", state)
	}

	state.Phase = models.PhaseCollecting
	state.Record.Name = "John Smith"
	if err := store.Put(ctx, state); err != nil {
		t.Fatalf("Put failed: %v", err)
	}

	loaded, err := store.Get(ctx, "fresh")
	if err != nil {
		t.Fatalf("Get after Put failed: %v", err)
	}
	if loaded.Phase != models.PhaseCollecting || loaded.Record.Name != "John Smith" {
		t.Fatalf("loaded state = %+v", loaded)
	}

	// Mutating the loaded copy must not leak back into the store.
	loaded.Record.Name = "Mallory"
	again, _ := store.Get(ctx, "fresh")
	if again.Record.Name != "John Smith" {
		t.Fatal("store returned aliased state")
	}

	if err := store.Clear(ctx, "fresh"); err != nil {
		t.Fatalf("Clear failed: %v", err)
	}
	cleared, _ := store.Get(ctx, "fresh")
	if cleared.Phase != models.PhaseIdle || cleared.Record.HasAny() {
		t.Fatal("cleared session should start over")
	}
}

func TestSessionKey(t *testing.T) {
	if got := sessionKey("abc"); got != "session:abc" {
		t.Fatalf("sessionKey = %q", got)
	}
}
