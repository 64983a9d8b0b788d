package texture

import (
	"image"
	"sync"

	"solar-raster/internal/logging"
)

// Resolver resolves an image name to a decoded image.
type Resolver interface {
	Resolve(name string) *image.NRGBA
}

// Cache is a concurrency-safe image cache.
type Cache struct {
	mu    sync.RWMutex
	items map[string]*cacheEntry
	index *Index
}

type cacheEntry struct {
	img    *image.NRGBA
	loaded bool // true if we've attempted to load (img may still be nil)
}

// NewCache creates a new cache backed by the given index.
func NewCache(index *Index) *Cache {
	return &Cache{
		items: make(map[string]*cacheEntry),
		index: index,
	}
}

// Names lists the images the cache can resolve.
func (c *Cache) Names() []string {
	return c.index.Names()
}

// Resolve loads and caches an image by name. Returns nil if the name is not
// indexed or fails to decode; failures are remembered.
func (c *Cache) Resolve(name string) *image.NRGBA {
	path, ok := c.index.ResolvePath(name)
	if !ok {
		return nil
	}

	// Fast path: read lock
	c.mu.RLock()
	if entry, exists := c.items[path]; exists {
		c.mu.RUnlock()
		return entry.img
	}
	c.mu.RUnlock()

	// Slow path: load from disk
	img, err := Load(path)
	if err != nil {
		logging.Logger().Warn("backdrop unreadable", "path", path, "err", err)
	}

	// Write lock with double-check
	c.mu.Lock()
	defer c.mu.Unlock()
	if entry, exists := c.items[path]; exists {
		return entry.img
	}
	c.items[path] = &cacheEntry{img: img, loaded: true}
	return img
}
