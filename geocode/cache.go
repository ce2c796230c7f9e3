package geocode

import (
	"context"
	"time"

	"github.com/fwojciec/bungo"
	gocache "github.com/patrickmn/go-cache"
)

// Cache durations.
const (
	DefaultCacheTTL      = 24 * time.Hour
	DefaultCacheInterval = time.Hour
)

// Ensure Cache implements bungo.Geocoder at compile time.
var _ bungo.Geocoder = (*Cache)(nil)

// Cache remembers matches and ENOTFOUND misses per place name. Other errors
// are not cached.
type Cache struct {
	next  bungo.Geocoder
	cache *gocache.Cache
}

// NewCache wraps next with an in-memory cache whose entries expire after ttl.
func NewCache(next bungo.Geocoder, ttl time.Duration) *Cache {
	return &Cache{
		next:  next,
		cache: gocache.New(ttl, DefaultCacheInterval),
	}
}

type cacheEntry struct {
	result *bungo.GeocodeResult
	err    error
}

// Geocode answers from the cache when it holds placeName and otherwise asks
// the wrapped geocoder. A cached ENOTFOUND is returned as the same error.
func (c *Cache) Geocode(ctx context.Context, placeName string) (*bungo.GeocodeResult, error) {
	if v, ok := c.cache.Get(placeName); ok {
		e := v.(cacheEntry)
		return e.result, e.err
	}

	result, err := c.next.Geocode(ctx, placeName)
	if err == nil || bungo.ErrorCode(err) == bungo.ENOTFOUND {
		c.cache.Set(placeName, cacheEntry{result: result, err: err}, gocache.DefaultExpiration)
	}
	return result, err
}

// Len returns the number of cached entries, including expired ones not yet
// cleaned up.
func (c *Cache) Len() int {
	return c.cache.ItemCount()
}
