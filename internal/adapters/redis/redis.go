// internal/adapters/redis/redis.go
package redis

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
)

const blacklistPrefix = "blacklist:"

// Cache backs the order-list cache, the geocode cache and the token blacklist.
type Cache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewCache(addr, username, password string, db int, ttl time.Duration) *Cache {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Username: username,
		Password: password,
		DB:       db,
	})
	return &Cache{client: client, ttl: ttl}
}

// WithTTL returns a view of the same connection pool that stores entries
// for ttl instead.
func (c *Cache) WithTTL(ttl time.Duration) *Cache {
	return &Cache{client: c.client, ttl: ttl}
}

func (c *Cache) Get(ctx context.Context, key string) ([]byte, error) {
	return c.client.Get(ctx, key).Bytes()
}

func (c *Cache) Set(ctx context.Context, key string, value interface{}) error {
	data, err := json.Marshal(value)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, key, data, c.ttl).Err()
}

func (c *Cache) DeleteByPrefix(ctx context.Context, prefix string) error {
	iter := c.client.Scan(ctx, 0, prefix+"*", 0).Iterator()
	for iter.Next(ctx) {
		if err := c.client.Del(ctx, iter.Val()).Err(); err != nil {
			return err
		}
	}
	return iter.Err()
}

func (c *Cache) Ping(ctx context.Context) error {
	return c.client.Ping(ctx).Err()
}

// Revoke blacklists a token until it would have expired anyway.
func (c *Cache) Revoke(ctx context.Context, token string, ttl time.Duration) error {
	return c.client.Set(ctx, blacklistPrefix+token, "revoked", ttl).Err()
}

func (c *Cache) IsRevoked(ctx context.Context, token string) (bool, error) {
	err := c.client.Get(ctx, blacklistPrefix+token).Err()
	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, redis.Nil):
		return false, nil
	}
	return false, err
}

func (c *Cache) Close() error {
	return c.client.Close()
}
