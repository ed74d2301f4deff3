package evolve

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/dgraph-io/ristretto/v2"
)

// Cached memoizes another Resolver so rooms of the same archetype at the
// same depth share one Evolver.
type Cached struct {
	inner Resolver
	cache *ristretto.Cache[string, Evolver]
}

// NewCached wraps inner with a cache holding up to size evolvers.
func NewCached(inner Resolver, size int64) (*Cached, error) {
	if size <= 0 {
		size = 64
	}
	cache, err := ristretto.NewCache[string, Evolver](&ristretto.Config[string, Evolver]{
		NumCounters:        size * 10,
		MaxCost:            size,
		BufferItems:        64,
		IgnoreInternalCost: true,
	})
	if err != nil {
		return nil, fmt.Errorf("evolver cache: %w", err)
	}
	return &Cached{inner: inner, cache: cache}, nil
}

func cacheKey(archetype string, depth int) string {
	return strings.ToLower(archetype) + "|" + strconv.Itoa(depth)
}

// Resolve returns the cached evolver or asks the wrapped resolver.
// Failures are not cached.
func (c *Cached) Resolve(archetype string, depth int) (Evolver, error) {
	key := cacheKey(archetype, depth)
	if ev, ok := c.cache.Get(key); ok {
		return ev, nil
	}
	ev, err := c.inner.Resolve(archetype, depth)
	if err != nil {
		return nil, err
	}
	c.cache.Set(key, ev, 1)
	c.cache.Wait()
	return ev, nil
}

// Close stops the cache's background goroutines.
func (c *Cached) Close() {
	c.cache.Close()
}
