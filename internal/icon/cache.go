package icon

import (
	"context"
	"image"
	"sync"

	"golang.org/x/sync/errgroup"
)

type cacheKey struct {
	path string
	size int
}

// Cache memoizes extraction results keyed by (path, size). Extraction
// failures are cached as placeholders so repeated list redraws do not hammer
// the shell. Safe for concurrent use; returned images are shared and must
// not be mutated.
type Cache struct {
	mu      sync.RWMutex
	entries map[cacheKey]*image.RGBA

	// extractFn is swappable in tests.
	extractFn func(string, int) (*image.RGBA, error)
}

// NewCache creates an empty icon cache.
func NewCache() *Cache {
	return &Cache{
		entries:   make(map[cacheKey]*image.RGBA),
		extractFn: Extract,
	}
}

// Get returns the icon for path at size, extracting on first use. The result
// is never nil: extraction failures yield a lettered placeholder.
func (c *Cache) Get(path string, size int) *image.RGBA {
	key := cacheKey{path: path, size: size}

	c.mu.RLock()
	img, ok := c.entries[key]
	c.mu.RUnlock()
	if ok {
		return img
	}

	img, err := c.extractFn(path, size)
	if err != nil {
		img = Placeholder(path, size)
	}

	c.mu.Lock()
	if existing, ok := c.entries[key]; ok {
		img = existing
	} else {
		c.entries[key] = img
	}
	c.mu.Unlock()
	return img
}

// Invalidate drops all cached sizes for path.
func (c *Cache) Invalidate(path string) {
	c.mu.Lock()
	for key := range c.entries {
		if key.path == path {
			delete(c.entries, key)
		}
	}
	c.mu.Unlock()
}

// Len reports the number of cached entries.
func (c *Cache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}

// Warm primes the cache for a batch of paths with at most workers concurrent
// extractions. Shell icon queries can take noticeable wall-clock time, so
// callers run this off the display thread before a list becomes visible.
func (c *Cache) Warm(ctx context.Context, paths []string, size, workers int) error {
	if workers < 1 {
		workers = 1
	}
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for _, path := range paths {
		path := path
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			c.Get(path, size)
			return nil
		})
	}
	return g.Wait()
}
