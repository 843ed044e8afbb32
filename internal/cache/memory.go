package cache

import (
	"context"
	"sync"
	"time"

	"github.com/MrJJimenez/jobagg/internal/models"
)

// DefaultTTL keeps responses just long enough to absorb repeated
// identical queries without re-hitting the providers.
const DefaultTTL = 10 * time.Minute

type memoryEntry struct {
	resp      models.SearchResponse
	expiresAt time.Time
}

// Memory is the in-process cache backend. Expired entries are deleted
// lazily on the next lookup.
type Memory struct {
	ttl     time.Duration
	now     func() time.Time
	mu      sync.Mutex
	entries map[string]memoryEntry
}

func NewMemory(ttl time.Duration) *Memory {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Memory{
		ttl:     ttl,
		now:     time.Now,
		entries: map[string]memoryEntry{},
	}
}

func (m *Memory) Get(_ context.Context, key string) (*models.SearchResponse, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	entry, ok := m.entries[key]
	if !ok {
		return nil, false
	}
	if m.now().After(entry.expiresAt) {
		delete(m.entries, key)
		return nil, false
	}

	resp := entry.resp
	return &resp, true
}

func (m *Memory) Set(_ context.Context, key string, resp *models.SearchResponse) {
	if resp == nil {
		return
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	m.entries[key] = memoryEntry{
		resp:      *resp,
		expiresAt: m.now().Add(m.ttl),
	}
}
