// Package cache is a small TTL memo with a pluggable clock, replacing what
// used to be an implicit module-level result cache.
package cache

import (
	"sync"
	"time"
)

// Clock abstracts time.Now so expiry is testable.
type Clock interface {
	Now() time.Time
}

type realClock struct{}

func (realClock) Now() time.Time { return time.Now() }

// RealClock returns a Clock backed by time.Now.
func RealClock() Clock { return realClock{} }

type entry struct {
	value     any
	expiresAt time.Time
}

// Cache stores values for a fixed TTL.
type Cache struct {
	ttl   time.Duration
	clock Clock

	mu      sync.RWMutex
	entries map[string]entry
}

func New(ttl time.Duration, clock Clock) *Cache {
	if clock == nil {
		clock = RealClock()
	}
	return &Cache{
		ttl:     ttl,
		clock:   clock,
		entries: make(map[string]entry),
	}
}

// Get returns the cached value for key, or false when absent or expired.
// Expired entries are removed on access.
func (c *Cache) Get(key string) (any, bool) {
	c.mu.RLock()
	e, ok := c.entries[key]
	c.mu.RUnlock()
	if !ok {
		return nil, false
	}
	if c.clock.Now().After(e.expiresAt) {
		c.expireIfStale(key)
		return nil, false
	}
	return e.value, true
}

// expireIfStale deletes key only while it is still expired; a Set racing
// between the read and this write must keep its fresh entry.
func (c *Cache) expireIfStale(key string) {
	c.mu.Lock()
	if e, ok := c.entries[key]; ok && c.clock.Now().After(e.expiresAt) {
		delete(c.entries, key)
	}
	c.mu.Unlock()
}

// Set stores value under key for the cache's TTL.
func (c *Cache) Set(key string, value any) {
	c.mu.Lock()
	c.entries[key] = entry{value: value, expiresAt: c.clock.Now().Add(c.ttl)}
	c.mu.Unlock()
}

// Expire removes a single key.
func (c *Cache) Expire(key string) {
	c.mu.Lock()
	delete(c.entries, key)
	c.mu.Unlock()
}

// Purge removes every entry.
func (c *Cache) Purge() {
	c.mu.Lock()
	c.entries = make(map[string]entry)
	c.mu.Unlock()
}
