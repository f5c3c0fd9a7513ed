package data

import (
	"crypto/sha256"
	"encoding/hex"
	"strings"
	"sync"
	"time"
)

// TTLCache memoizes collaborator responses (geocoding, weather) by input
// key so repeated runs with unchanged inputs avoid redundant network calls.
// The core pipeline never touches this; caching is a capability of the
// clients injected into orchestration.
type TTLCache[T any] struct {
	mu    sync.RWMutex
	store map[string]cacheEntry[T]
	ttl   time.Duration

	janitorOnce sync.Once
}

type cacheEntry[T any] struct {
	value     T
	expiresAt time.Time
}

func NewTTLCache[T any](ttl time.Duration) *TTLCache[T] {
	return &TTLCache[T]{
		store: make(map[string]cacheEntry[T]),
		ttl:   ttl,
	}
}

// Get retrieves a cached value if present and not expired.
func (c *TTLCache[T]) Get(key string) (T, bool) {
	var zero T
	if c == nil {
		return zero, false
	}

	c.mu.RLock()
	defer c.mu.RUnlock()

	entry, ok := c.store[key]
	if !ok || time.Now().After(entry.expiresAt) {
		return zero, false
	}
	return entry.value, true
}

// Set stores a value and starts the background janitor on first use.
func (c *TTLCache[T]) Set(key string, value T) {
	if c == nil {
		return
	}

	c.janitorOnce.Do(func() { go c.janitor() })

	c.mu.Lock()
	defer c.mu.Unlock()
	c.store[key] = cacheEntry[T]{value: value, expiresAt: time.Now().Add(c.ttl)}
}

// Clear removes all entries.
func (c *TTLCache[T]) Clear() {
	if c == nil {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.store = make(map[string]cacheEntry[T])
}

func (c *TTLCache[T]) janitor() {
	ticker := time.NewTicker(5 * time.Minute)
	defer ticker.Stop()

	for range ticker.C {
		c.mu.Lock()
		now := time.Now()
		for key, entry := range c.store {
			if now.After(entry.expiresAt) {
				delete(c.store, key)
			}
		}
		c.mu.Unlock()
	}
}

// CacheKey builds a deterministic, bounded-size key from its parts.
func CacheKey(parts ...string) string {
	hash := sha256.Sum256([]byte(strings.Join(parts, ":")))
	return hex.EncodeToString(hash[:])
}
