package middleware

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/agriconnect/agriconnect/internal/utils"
	"github.com/go-redis/redis/v8"
	"github.com/labstack/echo/v4"
)

// RateLimiterConfig contains configuration for the rate limiter
type RateLimiterConfig struct {
	RedisClient *redis.Client
	Key         string        // Key prefix for Redis
	Limit       int           // Maximum number of requests
	Period      time.Duration // Time period for the limit
}

// RateLimiterMiddleware creates a Redis-backed fixed-window rate limiter.
// The OTP endpoints sit behind this so a single number cannot be hammered
// with issuance or verification requests.
func RateLimiterMiddleware(config RateLimiterConfig) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			identifier := c.RealIP()
			if userID := c.Get("user_id"); userID != nil {
				identifier = fmt.Sprintf("%v", userID)
			}

			key := fmt.Sprintf("%s:%s:%s", config.Key, c.Path(), identifier)
			ctx := c.Request().Context()

			count, err := config.RedisClient.Incr(ctx, key).Result()
			if err != nil {
				return utils.ErrorResponseHandler(c, http.StatusInternalServerError, "Rate limiter error")
			}
			if count == 1 {
				if err := config.RedisClient.Expire(ctx, key, config.Period).Err(); err != nil {
					return utils.ErrorResponseHandler(c, http.StatusInternalServerError, "Rate limiter error")
				}
			}

			if count > int64(config.Limit) {
				ttl, err := config.RedisClient.TTL(ctx, key).Result()
				if err == nil && ttl > 0 {
					c.Response().Header().Set("Retry-After", strconv.FormatInt(int64(ttl.Seconds()), 10))
					c.Response().Header().Set("X-RateLimit-Reset", strconv.FormatInt(time.Now().Add(ttl).Unix(), 10))
				}
				c.Response().Header().Set("X-RateLimit-Limit", strconv.Itoa(config.Limit))
				c.Response().Header().Set("X-RateLimit-Remaining", "0")
				return utils.ErrorResponseHandler(c, http.StatusTooManyRequests, "Rate limit exceeded")
			}

			c.Response().Header().Set("X-RateLimit-Limit", strconv.Itoa(config.Limit))
			c.Response().Header().Set("X-RateLimit-Remaining", strconv.FormatInt(int64(config.Limit)-count, 10))

			return next(c)
		}
	}
}

// IPRateLimiter creates a simple IP-based rate limiter
func IPRateLimiter(limit int, period time.Duration, redisClient *redis.Client) echo.MiddlewareFunc {
	return RateLimiterMiddleware(RateLimiterConfig{
		RedisClient: redisClient,
		Key:         "rate:ip",
		Limit:       limit,
		Period:      period,
	})
}
