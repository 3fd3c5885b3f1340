package utils

import (
	"context"
	"log"
	"time"

	"casavida/config"

	"github.com/go-redis/redis/v8"
)

// ResolverCacheClient caches date-resolver answers.
var ResolverCacheClient *redis.Client

// InitRedis initializes the Redis client used by the resolver cache.
func InitRedis() {
	ResolverCacheClient = redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisCacheDB,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if _, err := ResolverCacheClient.Ping(ctx).Result(); err != nil {
		log.Fatalf("Failed to connect to Redis (resolver cache): %v", err)
	}
}

// GetResolverCacheClient returns the resolver cache client.
func GetResolverCacheClient() *redis.Client {
	if ResolverCacheClient == nil {
		InitRedis()
	}
	return ResolverCacheClient
}
