// internal/common/database/redis.go
package database

import (
	"context"
	"errors"
	"fmt"
	"time"

	"cloudops-workers/internal/common/config"

	"github.com/redis/go-redis/v9"
)

// RedisClient wraps the Redis client with the list operations the
// request queue uses.
type RedisClient struct {
	Client redis.UniversalClient
}

// NewRedis creates a new Redis client
func NewRedis(cfg config.RedisConfig) (*RedisClient, error) {
	if cfg.Address == "" {
		return nil, fmt.Errorf("redis address is required")
	}
	rdb := redis.NewClient(&redis.Options{
		Addr:         cfg.Address,
		Password:     cfg.Password,
		DB:           cfg.DB,
		DialTimeout:  5 * time.Second,
		ReadTimeout:  3 * time.Second,
		WriteTimeout: 3 * time.Second,
		PoolSize:     10,
		MinIdleConns: 2,
	})

	return &RedisClient{Client: rdb}, nil
}

// NewRedisFromClient wraps an existing client (miniredis or redismock in tests).
func NewRedisFromClient(rdb redis.UniversalClient) *RedisClient {
	return &RedisClient{Client: rdb}
}

// Ping tests the Redis connection
func (c *RedisClient) Ping(ctx context.Context) error {
	if err := c.Client.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("redis ping failed: %w", err)
	}
	return nil
}

// Close closes the Redis connection
func (c *RedisClient) Close() error {
	if c.Client != nil {
		return c.Client.Close()
	}
	return nil
}

// Pop blocks up to timeout for the next item on key. ok is false when the
// wait expired with nothing queued.
func (c *RedisClient) Pop(ctx context.Context, key string, timeout time.Duration) (value string, ok bool, err error) {
	res, err := c.Client.BRPop(ctx, timeout, key).Result()
	if errors.Is(err, redis.Nil) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("redis brpop %s: %w", key, err)
	}
	// BRPOP replies [key, value]
	if len(res) != 2 {
		return "", false, fmt.Errorf("redis brpop %s: unexpected reply length %d", key, len(res))
	}
	return res[1], true, nil
}

// Push prepends value to key and applies ttl when positive.
func (c *RedisClient) Push(ctx context.Context, key string, value interface{}, ttl time.Duration) error {
	if ttl <= 0 {
		return c.Client.LPush(ctx, key, value).Err()
	}
	pipe := c.Client.TxPipeline()
	pipe.LPush(ctx, key, value)
	pipe.Expire(ctx, key, ttl)
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("redis lpush %s: %w", key, err)
	}
	return nil
}
