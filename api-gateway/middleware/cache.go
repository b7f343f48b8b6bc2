package middleware

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/redis/go-redis/v9"

	"github.com/ayse/sweetshop/pkg/logger"
)

// CacheConfig holds response cache configuration
type CacheConfig struct {
	TTL            time.Duration
	CacheablePaths []string
}

// DefaultCacheConfig caches the read-heavy inventory views for a short
// interval. Stock levels may be a few seconds stale here; the ledger itself
// always serves the authoritative counter.
func DefaultCacheConfig() CacheConfig {
	return CacheConfig{
		TTL: 10 * time.Second,
		CacheablePaths: []string{
			"/api/inventory/status",
			"/api/inventory/alerts",
			"/api/sweets",
		},
	}
}

// CacheMiddleware implements response caching with Redis for GET requests
// on the configured paths.
func CacheMiddleware(redisClient *redis.Client, config CacheConfig) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if redisClient == nil || c.Method() != fiber.MethodGet {
			return c.Next()
		}
		if !isPathCacheable(c.Path(), config.CacheablePaths) {
			return c.Next()
		}

		cacheKey := generateCacheKey(c)
		ctx := c.UserContext()

		cached, err := redisClient.Get(ctx, cacheKey).Bytes()
		if err == nil && len(cached) > 0 {
			c.Set("X-Cache", "HIT")
			c.Set("Content-Type", "application/json")
			return c.Send(cached)
		}

		err = c.Next()

		if c.Response().StatusCode() == fiber.StatusOK {
			body := c.Response().Body()
			if cacheErr := redisClient.Set(ctx, cacheKey, body, config.TTL).Err(); cacheErr != nil {
				logger.Logger.Warn().
					Err(cacheErr).
					Str("cache_key", cacheKey).
					Msg("Failed to cache response")
			}
			c.Set("X-Cache", "MISS")
		}

		return err
	}
}

// generateCacheKey hashes method, path, query string and actor identity
func generateCacheKey(c *fiber.Ctx) string {
	components := fmt.Sprintf("%s:%s:%s:%s",
		c.Method(),
		c.Path(),
		string(c.Request().URI().QueryString()),
		c.Get("Authorization"),
	)
	hash := sha256.Sum256([]byte(components))
	return fmt.Sprintf("cache:%s", hex.EncodeToString(hash[:]))
}

func isPathCacheable(path string, cacheablePaths []string) bool {
	for _, p := range cacheablePaths {
		if path == p || strings.HasPrefix(path, p+"/") {
			return true
		}
	}
	return false
}
