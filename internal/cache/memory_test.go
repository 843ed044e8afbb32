package cache

import (
	"context"
	"testing"
	"time"

	"github.com/MrJJimenez/jobagg/internal/models"
)

func TestMemoryRoundTrip(t *testing.T) {
	m := NewMemory(time.Minute)
	ctx := context.Background()

	if _, ok := m.Get(ctx, "missing"); ok {
		t.Fatalf("Get on empty cache reported a hit")
	}

	resp := &models.SearchResponse{Total: 3, Returned: 3}
	m.Set(ctx, "key", resp)

	got, ok := m.Get(ctx, "key")
	if !ok {
		t.Fatalf("Get after Set missed")
	}
	if got.Total != 3 {
		t.Fatalf("Total = %d, want 3", got.Total)
	}

	// The cached copy must not alias the caller's response.
	got.Total = 99
	again, _ := m.Get(ctx, "key")
	if again.Total != 3 {
		t.Fatalf("cached entry mutated through a returned pointer")
	}
}

func TestMemoryExpiry(t *testing.T) {
	current := time.Date(2024, 3, 15, 12, 0, 0, 0, time.UTC)
	m := NewMemory(time.Minute)
	m.now = func() time.Time { return current }

	ctx := context.Background()
	m.Set(ctx, "key", &models.SearchResponse{Total: 1})

	current = current.Add(59 * time.Second)
	if _, ok := m.Get(ctx, "key"); !ok {
		t.Fatalf("entry expired before its TTL")
	}

	current = current.Add(2 * time.Second)
	if _, ok := m.Get(ctx, "key"); ok {
		t.Fatalf("entry survived past its TTL")
	}
}

func TestMemoryIgnoresNil(t *testing.T) {
	m := NewMemory(time.Minute)
	m.Set(context.Background(), "key", nil)
	if _, ok := m.Get(context.Background(), "key"); ok {
		t.Fatalf("nil response was cached")
	}
}
