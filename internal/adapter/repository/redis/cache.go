package redis

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

// DefaultKeyPrefix namespaces keys written by this service.
const DefaultKeyPrefix = "goassets:"

// Cache is a prefixed string key/value store on top of Redis.
type Cache struct {
	client *redis.Client
	prefix string
}

// NewCache creates a new Cache. An empty prefix falls back to DefaultKeyPrefix.
func NewCache(client *redis.Client, prefix string) *Cache {
	if prefix == "" {
		prefix = DefaultKeyPrefix
	}
	return &Cache{
		client: client,
		prefix: prefix,
	}
}

// Get retrieves a value by key. A missing key yields redis.Nil.
func (c *Cache) Get(ctx context.Context, key string) (string, error) {
	return c.client.Get(ctx, c.prefix+key).Result()
}

// Set stores a value. A zero ttl keeps the key until it is overwritten.
func (c *Cache) Set(ctx context.Context, key, value string, ttl time.Duration) error {
	return c.client.Set(ctx, c.prefix+key, value, ttl).Err()
}
