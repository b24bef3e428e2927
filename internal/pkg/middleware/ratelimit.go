package middleware

import (
	"net"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/storage/redis"

	"github.com/refledgerhq/refledger/internal/pkg/cache"
	"github.com/refledgerhq/refledger/internal/pkg/env"
)

// NewLimiterStorage builds a Redis-backed storage for the Fiber limiter so
// rate limits hold across horizontally scaled instances.
func NewLimiterStorage() fiber.Storage {
	host := "localhost"
	port := 6379
	password := env.GetEnv("CACHE_PASSWORD", "")
	if cacheClient := cache.GetClient(); cacheClient != nil {
		addr := cacheClient.Options().Addr
		if h, p, err := net.SplitHostPort(addr); err == nil {
			host = h
			if v, err := strconv.Atoi(p); err == nil {
				port = v
			}
		}
		if p := cacheClient.Options().Password; p != "" {
			password = p
		}
	}

	// Separate database so limiter keys stay out of counters and jobs (DB 0)
	return redis.New(redis.Config{
		Host:     host,
		Port:     port,
		Password: password,
		Database: 1,
		Reset:    false,
	})
}

// WebhookRateLimiter throttles repeated deliveries per source IP. Honest
// senders retry slowly; a flood of failing requests from one source is the
// case this exists for.
func WebhookRateLimiter() fiber.Handler {
	return limiter.New(limiter.Config{
		Max:        120,
		Expiration: time.Minute,
		Storage:    NewLimiterStorage(),
		KeyGenerator: func(c *fiber.Ctx) string {
			return c.IP()
		},
	})
}
