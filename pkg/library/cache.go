// Package library projects novel sessions into bookshelf entries and
// aggregates per-user reading statistics.
package library

import (
	"sync"
	"time"
)

// DefaultCacheTTL is how long a projected view stays fresh. Short on
// purpose: the projector recomputes cheaply and writers never have to
// invalidate explicitly, only the backfill does.
const DefaultCacheTTL = 30 * time.Second

// cacheEntry holds one cached view with a timestamp for TTL expiration.
type cacheEntry struct {
	value     any
	fetchedAt time.Time
}

// Cache is a thread-safe in-memory view cache with TTL expiration.
// Expired entries are cleaned up lazily on Get() — no background goroutine.
type Cache struct {
	mu      sync.RWMutex
	entries map[string]*cacheEntry
	ttl     time.Duration
}

// NewCache creates a new cache with the given TTL.
func NewCache(ttl time.Duration) *Cache {
	return &Cache{
		entries: make(map[string]*cacheEntry),
		ttl:     ttl,
	}
}

// Get returns a cached view if present and not expired.
func (c *Cache) Get(key string) (any, bool) {
	c.mu.RLock()
	entry, ok := c.entries[key]
	c.mu.RUnlock()

	if !ok {
		return nil, false
	}

	if time.Since(entry.fetchedAt) > c.ttl {
		// Expired — clean up lazily.
		// Re-check under write lock: a concurrent Set() may have replaced
		// the entry with a fresh one between RUnlock and Lock.
		c.mu.Lock()
		if current, ok := c.entries[key]; ok && time.Since(current.fetchedAt) > c.ttl {
			delete(c.entries, key)
		}
		c.mu.Unlock()
		return nil, false
	}

	return entry.value, true
}

// Set stores a view with the current timestamp.
func (c *Cache) Set(key string, value any) {
	c.mu.Lock()
	c.entries[key] = &cacheEntry{
		value:     value,
		fetchedAt: time.Now(),
	}
	c.mu.Unlock()
}

// Invalidate drops the given views so the next read recomputes them.
func (c *Cache) Invalidate(keys ...string) {
	c.mu.Lock()
	for _, key := range keys {
		delete(c.entries, key)
	}
	c.mu.Unlock()
}

func libraryKey(userID string) string { return "library:" + userID }
func statsKey(userID string) string   { return "stats:" + userID }
