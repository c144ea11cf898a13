package sessioncache

import (
	"context"
	"time"

	gocache "github.com/patrickmn/go-cache"
)

type memoryCache struct {
	cache *gocache.Cache
}

// NewMemoryCache builds an in-process cache. Items self-expire with their
// session TTL; the janitor purges expired entries every 10 minutes.
func NewMemoryCache() Cache {
	return &memoryCache{
		cache: gocache.New(1*time.Hour, 10*time.Minute),
	}
}

func (c *memoryCache) Set(ctx context.Context, tokenHash string, session CachedSession, ttl time.Duration) error {
	c.cache.Set(tokenHash, session, ttl)
	return nil
}

func (c *memoryCache) Get(ctx context.Context, tokenHash string) (CachedSession, bool, error) {
	if x, found := c.cache.Get(tokenHash); found {
		return x.(CachedSession), true, nil
	}
	return CachedSession{}, false, nil
}

func (c *memoryCache) Delete(ctx context.Context, tokenHash string) error {
	c.cache.Delete(tokenHash)
	return nil
}
