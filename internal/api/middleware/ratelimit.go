package middleware

import (
	"net/http"
	"sync"
	"time"

	"ftwallet/internal/config"

	"github.com/gin-gonic/gin"
)

type rateLimiter struct {
	requests map[string][]time.Time
	mutex    sync.Mutex
	limit    int
	window   time.Duration
}

// RateLimit throttles each client IP to cfg.RateLimit.RequestsPerMinute
// requests per cfg.RateLimit.Window, guarding the mutation endpoints from a
// single noisy client starving the write-ahead log.
func RateLimit(cfg *config.Config) gin.HandlerFunc {
	limiter := &rateLimiter{
		requests: make(map[string][]time.Time),
		limit:    cfg.RateLimit.RequestsPerMinute,
		window:   cfg.RateLimit.Window,
	}
	return func(c *gin.Context) {
		clientIP := c.ClientIP()

		limiter.mutex.Lock()
		defer limiter.mutex.Unlock()

		now := time.Now()

		var validRequests []time.Time
		for _, reqTime := range limiter.requests[clientIP] {
			if now.Sub(reqTime) < limiter.window {
				validRequests = append(validRequests, reqTime)
			}
		}
		limiter.requests[clientIP] = validRequests

		if len(limiter.requests[clientIP]) >= limiter.limit {
			c.JSON(http.StatusTooManyRequests, gin.H{
				"success":     false,
				"message":     "rate limit exceeded, try again later",
				"retry_after": int(limiter.window.Seconds()),
			})
			c.Abort()
			return
		}

		limiter.requests[clientIP] = append(limiter.requests[clientIP], now)

		c.Next()
	}
}
