// Package listcache makes the screens' refresh-after-mutate habit an
// explicit contract: a mutation invalidates the affected list key, and the
// next read fetches a fresh snapshot. A failed re-fetch never destroys the
// previous snapshot, so a screen can keep showing the stale list alongside
// its failure banner.
package listcache

import (
	"context"
	"sync"
)

type entry struct {
	value any
	stale bool
}

// Cache is a keyed snapshot cache for backend lists.
type Cache struct {
	mu      sync.Mutex
	entries map[string]*entry
}

// New creates an empty Cache.
func New() *Cache {
	return &Cache{entries: make(map[string]*entry)}
}

// Invalidate marks the snapshot under key as stale. The snapshot itself is
// kept until a fresh fetch succeeds.
func (c *Cache) Invalidate(key string) {
	c.mu.Lock()
	if e, ok := c.entries[key]; ok {
		e.stale = true
	}
	c.mu.Unlock()
}

// InvalidateAll marks every snapshot as stale.
func (c *Cache) InvalidateAll() {
	c.mu.Lock()
	for _, e := range c.entries {
		e.stale = true
	}
	c.mu.Unlock()
}

// getOrFetch returns the fresh snapshot under key, fetching when the
// snapshot is missing or stale. When the fetch fails and a stale snapshot
// exists, that snapshot is returned together with the error.
func (c *Cache) getOrFetch(ctx context.Context, key string, fetch func(context.Context) (any, error)) (any, error) {
	c.mu.Lock()
	e, ok := c.entries[key]
	if ok && !e.stale {
		value := e.value
		c.mu.Unlock()
		return value, nil
	}
	c.mu.Unlock()

	value, err := fetch(ctx)
	if err != nil {
		if ok {
			return e.value, err
		}
		return nil, err
	}

	c.mu.Lock()
	c.entries[key] = &entry{value: value}
	c.mu.Unlock()
	return value, nil
}

// GetOrFetch is the typed entry point to the cache.
func GetOrFetch[T any](ctx context.Context, c *Cache, key string, fetch func(context.Context) (T, error)) (T, error) {
	value, err := c.getOrFetch(ctx, key, func(ctx context.Context) (any, error) {
		return fetch(ctx)
	})
	if value == nil {
		var zero T
		return zero, err
	}
	return value.(T), err
}
