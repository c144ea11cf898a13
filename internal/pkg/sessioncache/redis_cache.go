package sessioncache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const redisKeyPrefix = "session:"

type redisCache struct {
	client *redis.Client
}

// NewRedisCache connects to Redis and verifies the connection before use.
func NewRedisCache(redisURL string) (Cache, error) {
	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("parse redis url: %w", err)
	}

	client := redis.NewClient(opts)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("connect to redis: %w", err)
	}

	return &redisCache{client: client}, nil
}

// NewRedisCacheWithClient wraps an existing client. Used by tests.
func NewRedisCacheWithClient(client *redis.Client) Cache {
	return &redisCache{client: client}
}

func (c *redisCache) Set(ctx context.Context, tokenHash string, session CachedSession, ttl time.Duration) error {
	data, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("marshal session: %w", err)
	}
	if ttl <= 0 {
		ttl = time.Minute
	}
	return c.client.Set(ctx, redisKeyPrefix+tokenHash, data, ttl).Err()
}

func (c *redisCache) Get(ctx context.Context, tokenHash string) (CachedSession, bool, error) {
	data, err := c.client.Get(ctx, redisKeyPrefix+tokenHash).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return CachedSession{}, false, nil
		}
		return CachedSession{}, false, err
	}

	var session CachedSession
	if err := json.Unmarshal(data, &session); err != nil {
		return CachedSession{}, false, fmt.Errorf("unmarshal session: %w", err)
	}
	return session, true, nil
}

func (c *redisCache) Delete(ctx context.Context, tokenHash string) error {
	return c.client.Del(ctx, redisKeyPrefix+tokenHash).Err()
}
