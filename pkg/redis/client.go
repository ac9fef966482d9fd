// Package redis holds the process-wide client behind the idempotency
// bookkeeping. Callers go through the package-level helpers so tests can
// point them at a miniredis instance via SetClient.
package redis

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

const pingTimeout = 5 * time.Second

var client *redis.Client

// Init connects from a redis URL and verifies the connection with a ping
// before the server starts taking requests. A separately configured
// password overrides the one embedded in the URL.
func Init(url, password string) error {
	opts, err := redis.ParseURL(url)
	if err != nil {
		return err
	}
	if password != "" {
		opts.Password = password
	}

	c := redis.NewClient(opts)

	ctx, cancel := context.WithTimeout(context.Background(), pingTimeout)
	defer cancel()
	if err := c.Ping(ctx).Err(); err != nil {
		return err
	}

	client = c
	return nil
}

// SetClient swaps the process client. Tests use it to install a
// miniredis-backed client without going through Init.
func SetClient(c *redis.Client) {
	client = c
}

// Set writes a key with a TTL.
func Set(ctx context.Context, key string, value any, ttl time.Duration) error {
	return client.Set(ctx, key, value, ttl).Err()
}

// Get returns the string stored at key.
func Get(ctx context.Context, key string) (string, error) {
	return client.Get(ctx, key).Result()
}

// Del removes a key.
func Del(ctx context.Context, key string) error {
	return client.Del(ctx, key).Err()
}

// SetNX claims a key only when it is absent and reports whether the claim
// won, which is what the idempotency lock leans on.
func SetNX(ctx context.Context, key string, value any, ttl time.Duration) (bool, error) {
	return client.SetNX(ctx, key, value, ttl).Result()
}
