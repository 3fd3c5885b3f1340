package dateparse

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"time"

	"casavida/utils"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

const cacheKeyPrefix = "dateparse:"

// errCacheMiss marks an absent key; any other Get error means Redis trouble.
var errCacheMiss = errors.New("cache miss")

// Store is the slice of the cache backend the resolver cache needs.
type Store interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string, ttl time.Duration) error
}

type redisStore struct {
	client *redis.Client
}

// NewRedisStore adapts a redis client to the Store interface.
func NewRedisStore(client *redis.Client) Store {
	return redisStore{client: client}
}

func (s redisStore) Get(ctx context.Context, key string) (string, error) {
	value, err := s.client.Get(ctx, key).Result()
	if err == redis.Nil {
		return "", errCacheMiss
	}
	return value, err
}

func (s redisStore) Set(ctx context.Context, key, value string, ttl time.Duration) error {
	return s.client.Set(ctx, key, value, ttl).Err()
}

// CachedResolver memoizes resolver answers in Redis. Keys combine the
// normalized text with the reference day, so "tomorrow" asked on different
// days never shares an entry. Redis trouble is logged and falls through to the
// live resolver; the cache is an optimization, never a source of truth. The
// scheduling engine itself stays uncached.
type CachedResolver struct {
	Inner Resolver
	Store Store
	TTL   time.Duration
}

type cachedResolution struct {
	Found bool      `json:"found"`
	At    time.Time `json:"at,omitempty"`
}

func (c *CachedResolver) Resolve(ctx context.Context, text string, reference time.Time) (time.Time, bool, error) {
	key := cacheKey(text, reference)

	if data, err := c.Store.Get(ctx, key); err == nil {
		var cached cachedResolution
		if json.Unmarshal([]byte(data), &cached) == nil {
			return cached.At, cached.Found, nil
		}
	} else if !errors.Is(err, errCacheMiss) {
		utils.GetLogger().Warn("dateparse: cache read failed", zap.Error(err))
	}

	at, found, err := c.Inner.Resolve(ctx, text, reference)
	if err != nil {
		return time.Time{}, false, err
	}

	if data, err := json.Marshal(cachedResolution{Found: found, At: at}); err == nil {
		if err := c.Store.Set(ctx, key, string(data), c.TTL); err != nil {
			utils.GetLogger().Warn("dateparse: cache write failed", zap.Error(err))
		}
	}
	return at, found, nil
}

func cacheKey(text string, reference time.Time) string {
	return cacheKeyPrefix + reference.Format("2006-01-02") + ":" + strings.ToLower(strings.TrimSpace(text))
}
