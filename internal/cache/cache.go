// Package cache provides a small in-process TTL cache for read-heavy
// values such as the aggregated portfolio snapshot served to the
// chatbot. Entries are loaded lazily and reloaded once stale.
package cache

import (
	"sync"
	"time"
)

// Loader produces a fresh value when the cache is empty or stale.
type Loader[T any] func() (T, error)

// TTLCache caches a single value for a fixed duration.
type TTLCache[T any] struct {
	mu       sync.Mutex
	ttl      time.Duration
	load     Loader[T]
	now      func() time.Time
	value    T
	loadedAt time.Time
	valid    bool
}

func New[T any](ttl time.Duration, load Loader[T]) *TTLCache[T] {
	return &TTLCache[T]{
		ttl:  ttl,
		load: load,
		now:  time.Now,
	}
}

// WithClock overrides the time source. Tests use it to age entries
// without sleeping.
func (c *TTLCache[T]) WithClock(now func() time.Time) *TTLCache[T] {
	c.now = now
	return c
}

// Get returns the cached value, reloading it when absent or older than
// the TTL. A failed reload leaves any previous value invalidated and
// returns the loader's error.
func (c *TTLCache[T]) Get() (T, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.valid && c.now().Sub(c.loadedAt) < c.ttl {
		return c.value, nil
	}

	value, err := c.load()
	if err != nil {
		var zero T
		c.valid = false
		return zero, err
	}

	c.value = value
	c.loadedAt = c.now()
	c.valid = true
	return value, nil
}

// Invalidate drops the cached value so the next Get reloads.
func (c *TTLCache[T]) Invalidate() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.valid = false
}
