package repositories

import (
	"context"
	"testing"
)

func TestShopStatusRepositoryImpl_DefaultsToOpen(t *testing.T) {
	client := setupTestRedis(t)
	repo := NewShopStatusRepository(client)

	open, err := repo.IsOpen(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !open {
		t.Error("expected shop to default to open")
	}
}

func TestShopStatusRepositoryImpl_SetOpen(t *testing.T) {
	client := setupTestRedis(t)
	repo := NewShopStatusRepository(client)
	ctx := context.Background()

	if err := repo.SetOpen(ctx, false); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	open, err := repo.IsOpen(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if open {
		t.Error("expected shop to be closed")
	}

	if err := repo.SetOpen(ctx, true); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	open, err = repo.IsOpen(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !open {
		t.Error("expected shop to be open after toggle")
	}
}

// Independent repository instances over the same Redis observe the latest
// write: the flag is shared state, not per-session.
func TestShopStatusRepositoryImpl_SharedAcrossReaders(t *testing.T) {
	client := setupTestRedis(t)
	writer := NewShopStatusRepository(client)
	reader := NewShopStatusRepository(client)
	ctx := context.Background()

	if err := writer.SetOpen(ctx, false); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	open, err := reader.IsOpen(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if open {
		t.Error("reader should observe the writer's close")
	}
}
