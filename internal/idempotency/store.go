// Package idempotency remembers checkout confirmations by client-supplied
// key so a retried submit replays the first answer.
package idempotency

import (
	"context"
	"sync"
	"time"

	"github.com/Hshshshsh454/Highway-delight/internal/models"
	"github.com/hashicorp/golang-lru/v2/expirable"
)

const (
	DefaultTTL        = 24 * time.Hour
	DefaultMaxEntries = 10000
)

type Store interface {
	// Get returns nil, nil when nothing is stored under key.
	Get(ctx context.Context, key string) (*models.Confirmation, error)
	// SaveIfAbsent stores c unless key is taken and returns whichever
	// confirmation ends up stored.
	SaveIfAbsent(ctx context.Context, key string, c *models.Confirmation) (*models.Confirmation, error)
	// Delete releases key so the next submit with it starts over.
	Delete(ctx context.Context, key string) error
}

// MemoryStore keeps keys in a bounded in-process LRU. Entries expire after
// the TTL whether or not they are ever read again.
type MemoryStore struct {
	mu    sync.Mutex
	items *expirable.LRU[string, models.Confirmation]
}

func NewMemoryStore(ttl time.Duration) *MemoryStore {
	return NewBoundedMemoryStore(ttl, DefaultMaxEntries)
}

func NewBoundedMemoryStore(ttl time.Duration, maxEntries int) *MemoryStore {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	if maxEntries <= 0 {
		maxEntries = DefaultMaxEntries
	}
	return &MemoryStore{items: expirable.NewLRU[string, models.Confirmation](maxEntries, nil, ttl)}
}

func (m *MemoryStore) Get(ctx context.Context, key string) (*models.Confirmation, error) {
	c, ok := m.items.Get(key)
	if !ok {
		return nil, nil
	}
	return &c, nil
}

func (m *MemoryStore) SaveIfAbsent(ctx context.Context, key string, c *models.Confirmation) (*models.Confirmation, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if existing, ok := m.items.Get(key); ok {
		return &existing, nil
	}
	m.items.Add(key, *c)
	return c, nil
}

func (m *MemoryStore) Delete(ctx context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.items.Remove(key)
	return nil
}

// Len reports the number of live entries.
func (m *MemoryStore) Len() int {
	return m.items.Len()
}
