package client

import (
	"sync"

	"entrykeeper/internal/domain/entry"
)

// Cache persists the last fetched entry snapshot between sessions so the
// guest view has something to show when the server is unreachable.
type Cache interface {
	Save(entries []entry.Entry) error
	Load() ([]entry.Entry, error)
	Close() error
}

// MemoryCache is the fallback when the on-disk cache cannot be opened.
// It survives only for the lifetime of the process.
type MemoryCache struct {
	mu      sync.Mutex
	entries []entry.Entry
}

func NewMemoryCache() *MemoryCache {
	return &MemoryCache{}
}

func (c *MemoryCache) Save(entries []entry.Entry) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries = make([]entry.Entry, len(entries))
	copy(c.entries, entries)
	return nil
}

func (c *MemoryCache) Load() ([]entry.Entry, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]entry.Entry, len(c.entries))
	copy(out, c.entries)
	return out, nil
}

func (c *MemoryCache) Close() error {
	return nil
}
