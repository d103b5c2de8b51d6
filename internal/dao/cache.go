package dao

import (
	"strings"
	"sync"
	"time"
)

// DefaultCacheTTL is the default time-to-live for fetched documents.
const DefaultCacheTTL = 5 * time.Minute

// cacheEntry holds a cached document with its timestamp.
type cacheEntry struct {
	data      []byte
	timestamp time.Time
}

// DocumentCache provides TTL-based caching for fetched screen documents.
type DocumentCache struct {
	data map[string]cacheEntry
	ttl  time.Duration
	now  func() time.Time
	mx   sync.RWMutex
}

// NewDocumentCache creates a new DocumentCache with the specified TTL.
func NewDocumentCache(ttl time.Duration) *DocumentCache {
	return &DocumentCache{
		data: make(map[string]cacheEntry),
		ttl:  ttl,
		now:  time.Now,
	}
}

// Get retrieves a cached document for the given key.
// Returns false if the key is not found or the entry has expired.
func (c *DocumentCache) Get(key string) ([]byte, bool) {
	c.mx.RLock()
	defer c.mx.RUnlock()

	entry, exists := c.data[key]
	if !exists {
		return nil, false
	}

	if c.now().Sub(entry.timestamp) > c.ttl {
		return nil, false
	}

	return entry.data, true
}

// Set stores a document in the cache with the given key.
func (c *DocumentCache) Set(key string, data []byte) {
	c.mx.Lock()
	defer c.mx.Unlock()

	c.data[key] = cacheEntry{
		data:      data,
		timestamp: c.now(),
	}
}

// Invalidate removes a specific key from the cache.
func (c *DocumentCache) Invalidate(key string) {
	c.mx.Lock()
	defer c.mx.Unlock()

	delete(c.data, key)
}

// InvalidatePrefix removes all cache entries whose keys start with the given prefix.
func (c *DocumentCache) InvalidatePrefix(prefix string) {
	c.mx.Lock()
	defer c.mx.Unlock()

	for key := range c.data {
		if strings.HasPrefix(key, prefix) {
			delete(c.data, key)
		}
	}
}

// Clear removes all entries from the cache.
func (c *DocumentCache) Clear() {
	c.mx.Lock()
	defer c.mx.Unlock()

	c.data = make(map[string]cacheEntry)
}
