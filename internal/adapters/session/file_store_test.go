package session_test

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/hostelsuite/dashboard-service/internal/adapters/session"
)

func TestFileStore_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session")
	store := session.NewFileStore(path)
	ctx := context.Background()

	if token, err := store.Load(ctx); err != nil || token != "" {
		t.Fatalf("empty store: got (%q, %v)", token, err)
	}

	if err := store.Save(ctx, "token-value"); err != nil {
		t.Fatal(err)
	}
	token, err := store.Load(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if token != "token-value" {
		t.Fatalf("got %q", token)
	}

	if err := store.Clear(ctx); err != nil {
		t.Fatal(err)
	}
	if token, err := store.Load(ctx); err != nil || token != "" {
		t.Fatalf("after clear: got (%q, %v)", token, err)
	}

	// Clearing an already empty store is fine.
	if err := store.Clear(ctx); err != nil {
		t.Fatal(err)
	}
}
