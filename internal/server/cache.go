package server

import (
	"sync"
	"time"
)

// cacheEntry holds a parsed fixture with its timestamp.
type cacheEntry[T any] struct {
	value     T
	timestamp time.Time
}

// FileCache provides a TTL-based cache of parsed fixture files.
type FileCache[T any] struct {
	mu      sync.Mutex
	entries map[string]cacheEntry[T]
	ttl     time.Duration
	load    func(path string) (T, error)
	now     func() time.Time
}

// NewFileCache creates a new cache. A ttl of 0 disables caching.
func NewFileCache[T any](ttl time.Duration, load func(path string) (T, error)) *FileCache[T] {
	return &FileCache[T]{
		entries: make(map[string]cacheEntry[T]),
		ttl:     ttl,
		load:    load,
		now:     time.Now,
	}
}

// Get returns the cached value for path if within TTL, otherwise loads it.
// Failed loads are not cached.
func (c *FileCache[T]) Get(path string) (T, error) {
	if c.ttl == 0 {
		return c.load(path)
	}

	c.mu.Lock()
	if entry, ok := c.entries[path]; ok && c.now().Sub(entry.timestamp) < c.ttl {
		c.mu.Unlock()
		return entry.value, nil
	}
	c.mu.Unlock()

	v, err := c.load(path)
	if err != nil {
		return v, err
	}

	c.mu.Lock()
	c.entries[path] = cacheEntry[T]{value: v, timestamp: c.now()}
	c.mu.Unlock()
	return v, nil
}

// Invalidate removes the entry for path.
func (c *FileCache[T]) Invalidate(path string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.entries, path)
}

// InvalidateAll clears the entire cache.
func (c *FileCache[T]) InvalidateAll() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries = make(map[string]cacheEntry[T])
}
