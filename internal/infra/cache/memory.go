package cache

import (
	"context"
	"sync"
	"time"

	"bizprofile/internal/domain/service"
)

// memoryCache is an in-process service.Cache for development and tests.
// Expiry is checked on read; there is no background janitor, so a dead entry
// occupies memory until the next Get or a region flush touches it.
type memoryCache struct {
	mu      sync.RWMutex
	ttl     time.Duration
	entries map[string]map[string]memoryEntry // region -> key -> entry
	now     func() time.Time
}

type memoryEntry struct {
	value     []byte
	expiresAt time.Time
}

// NewMemoryCache is the constructor for memoryCache.
func NewMemoryCache(ttl time.Duration) service.Cache {
	return &memoryCache{
		ttl:     ttl,
		entries: make(map[string]map[string]memoryEntry),
		now:     time.Now,
	}
}

// Get returns the live snapshot stored under region/key, or service.ErrCacheMiss.
func (c *memoryCache) Get(_ context.Context, region, key string) ([]byte, error) {
	c.mu.RLock()
	entry, ok := c.entries[region][key]
	c.mu.RUnlock()

	if !ok || c.now().After(entry.expiresAt) {
		return nil, service.ErrCacheMiss
	}

	// Copy so callers cannot mutate the cached snapshot.
	value := make([]byte, len(entry.value))
	copy(value, entry.value)

	return value, nil
}

// Set stores a snapshot under region/key with the configured TTL.
func (c *memoryCache) Set(_ context.Context, region, key string, value []byte) error {
	stored := make([]byte, len(value))
	copy(stored, value)

	c.mu.Lock()
	defer c.mu.Unlock()

	regionEntries, ok := c.entries[region]
	if !ok {
		regionEntries = make(map[string]memoryEntry)
		c.entries[region] = regionEntries
	}

	regionEntries[key] = memoryEntry{
		value:     stored,
		expiresAt: c.now().Add(c.ttl),
	}

	return nil
}

// Delete evicts the single entry under region/key.
func (c *memoryCache) Delete(_ context.Context, region, key string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	delete(c.entries[region], key)

	return nil
}

// DeleteAll evicts every entry in the region.
func (c *memoryCache) DeleteAll(_ context.Context, region string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	delete(c.entries, region)

	return nil
}
