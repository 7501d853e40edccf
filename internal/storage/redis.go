package storage

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

// CatalogCache holds serialized catalog listings. Entries expire on their
// own; the catalog only changes through administrative seeding, so a short
// TTL is enough and no invalidation path exists.
type CatalogCache struct {
	Client *redis.Client
	TTL    time.Duration
}

func NewCatalogCache(client *redis.Client, ttl time.Duration) *CatalogCache {
	return &CatalogCache{Client: client, TTL: ttl}
}

func (c *CatalogCache) Get(ctx context.Context, key string) ([]byte, error) {
	return c.Client.Get(ctx, key).Bytes()
}

func (c *CatalogCache) Set(ctx context.Context, key string, payload []byte) error {
	return c.Client.Set(ctx, key, payload, c.TTL).Err()
}
