package utils

import (
	"context"
	"sync"
	"time"

	"github.com/go-redis/redis/v8"
)

// HealthStatus represents current status of external services.
type HealthStatus struct {
	Redis     bool      `json:"redis"`
	CheckedAt time.Time `json:"checkedAt"`
}

var (
	currentHealth HealthStatus
	healthMu      sync.RWMutex
)

// GetHealthStatus returns latest stored health snapshot.
func GetHealthStatus() HealthStatus {
	healthMu.RLock()
	defer healthMu.RUnlock()
	return currentHealth
}

// StartHealthMonitor performs periodic health checks and updates in-memory
// state. The first check runs right away so /health never serves a zero-value
// snapshot.
func StartHealthMonitor(redisClient *redis.Client) {
	go func() {
		ctx := context.Background()
		checkHealth(ctx, redisClient)

		ticker := time.NewTicker(60 * time.Second)
		defer ticker.Stop()
		for range ticker.C {
			checkHealth(ctx, redisClient)
		}
	}()
}

func checkHealth(ctx context.Context, redisClient *redis.Client) {
	redisHealthy := redisClient.Ping(ctx).Err() == nil

	healthMu.Lock()
	currentHealth = HealthStatus{
		Redis:     redisHealthy,
		CheckedAt: time.Now(),
	}
	healthMu.Unlock()
}
