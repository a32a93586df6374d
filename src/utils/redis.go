package utils

import (
	"context"
	"fmt"
	"time"

	DB "Backend-Curadoria-AF/src/database"
)

var Ctx = context.Background()

// RateLimitAllow counts a hit for key inside a fixed window and reports
// whether it stays under limit. Uses the shared Redis client so the limit
// holds across instances; callers fall back to their own counters when
// Redis is not initialized (second return value false).
func RateLimitAllow(key string, limit int, window time.Duration) (allowed bool, counted bool) {
	client := DB.RedisClient
	if client == nil {
		return true, false
	}

	redisKey := fmt.Sprintf("ratelimit:%s", key)
	count, err := client.Incr(Ctx, redisKey).Result()
	if err != nil {
		return true, false
	}
	if count == 1 {
		client.Expire(Ctx, redisKey, window)
	}
	return count <= int64(limit), true
}
