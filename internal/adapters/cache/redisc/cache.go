package redisc

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

// Cache implementa ports/cache.Cache sobre Redis.
// Las kundalis derivadas son deterministas, así que cachearlas es seguro;
// el TTL existe solo para acotar memoria, no por frescura.
type Cache struct {
	client *redis.Client
	ttl    time.Duration
}

const DefaultTTL = 24 * time.Hour

func New(addr string) *Cache {
	rdb := redis.NewClient(&redis.Options{
		Addr: addr,
	})
	return &Cache{client: rdb, ttl: DefaultTTL}
}

func (c *Cache) Get(ctx context.Context, key string) (string, bool) {
	val, err := c.client.Get(ctx, key).Result()
	if err != nil {
		return "", false
	}
	return val, true
}

func (c *Cache) Set(ctx context.Context, key string, value string) error {
	return c.client.Set(ctx, key, value, c.ttl).Err()
}
