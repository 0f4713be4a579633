package utils

import (
	"log"
	"sync"
	"time"

	lru "github.com/hashicorp/golang-lru/v2"
)

// cacheEntry pairs cached data with its expiry.
type cacheEntry struct {
	data      interface{}
	expiresAt time.Time
}

// PageCache is a small in-process TTL cache over an LRU, used for rendered
// page data that is expensive to rebuild on every request.
type PageCache struct {
	lru *lru.Cache[string, cacheEntry]
}

var (
	cacheOnce     sync.Once
	cacheInstance *PageCache
)

// GetCache returns the process-wide cache instance.
func GetCache() *PageCache {
	cacheOnce.Do(func() {
		l, err := lru.New[string, cacheEntry](256)
		if err != nil {
			log.Fatalf("Failed to create LRU cache: %v", err)
		}
		cacheInstance = &PageCache{lru: l}
	})
	return cacheInstance
}

// Set stores data under key for the given TTL.
func (c *PageCache) Set(key string, data interface{}, ttl time.Duration) {
	c.lru.Add(key, cacheEntry{data: data, expiresAt: time.Now().Add(ttl)})
}

// Get returns the cached data, or nil if the key is absent or expired.
func (c *PageCache) Get(key string) interface{} {
	entry, ok := c.lru.Get(key)
	if !ok {
		return nil
	}
	if time.Now().After(entry.expiresAt) {
		c.lru.Remove(key)
		return nil
	}
	return entry.data
}

// Delete drops a single key.
func (c *PageCache) Delete(key string) {
	c.lru.Remove(key)
}

// Purge drops everything. Test setups call it so cached pages never leak
// between cases.
func (c *PageCache) Purge() {
	c.lru.Purge()
}
