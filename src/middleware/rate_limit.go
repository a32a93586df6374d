package middleware

import (
	"sync"
	"time"

	"Backend-Curadoria-AF/src/utils"

	"github.com/gofiber/fiber/v2"
)

type rateEntry struct {
	count   int
	resetAt time.Time
}

var (
	rateMu  sync.Mutex
	rateMap = map[string]*rateEntry{}
)

// RateLimit returns a per-IP fixed-window limiter. Counters live in Redis
// when it is up, so the window holds across instances; otherwise an
// in-memory map takes over and the limit is per process.
func RateLimit(name string, limit int, window time.Duration) fiber.Handler {
	return func(c *fiber.Ctx) error {
		key := name + ":" + c.IP()

		allowed, counted := utils.RateLimitAllow(key, limit, window)
		if !counted {
			allowed = allowLocal(key, limit, window)
		}
		if !allowed {
			return c.Status(fiber.StatusTooManyRequests).JSON(fiber.Map{
				"success": false,
				"error":   "Muitas requisições. Tente novamente em 1 minuto.",
			})
		}
		return c.Next()
	}
}

func allowLocal(key string, limit int, window time.Duration) bool {
	rateMu.Lock()
	defer rateMu.Unlock()

	now := time.Now()
	entry, ok := rateMap[key]
	if !ok || now.After(entry.resetAt) {
		rateMap[key] = &rateEntry{count: 1, resetAt: now.Add(window)}
		return true
	}
	if entry.count >= limit {
		return false
	}
	entry.count++
	return true
}
