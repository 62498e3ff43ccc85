package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/hashicorp/golang-lru/v2/expirable"
	"golang.org/x/time/rate"

	"wellora-backend/pkg/response"
)

// rateLimiter tracks a token bucket per client key, evicting idle clients.
type rateLimiter struct {
	limiters *expirable.LRU[string, *rate.Limiter]
	rate     rate.Limit
	burst    int
}

func newRateLimiter(requestsPerMin int) *rateLimiter {
	burst := requestsPerMin / 10
	if burst < 1 {
		burst = 1
	}
	return &rateLimiter{
		limiters: expirable.NewLRU[string, *rate.Limiter](
			1000,          // Max 1000 unique clients
			nil,           // No eviction callback
			time.Minute*5, // TTL: 5 minutes
		),
		rate:  rate.Limit(float64(requestsPerMin) / 60.0), // Per second
		burst: burst,
	}
}

func (rl *rateLimiter) allow(key string) bool {
	limiter, ok := rl.limiters.Get(key)
	if !ok {
		limiter = rate.NewLimiter(rl.rate, rl.burst)
		rl.limiters.Add(key, limiter)
	}
	return limiter.Allow()
}

// RateLimit limits requests per client IP. Disabled limiters pass every
// request through untouched.
func (m Middleware) RateLimit() gin.HandlerFunc {
	if !m.cfg.Enabled {
		return func(c *gin.Context) {
			c.Next()
		}
	}

	rl := newRateLimiter(m.cfg.RequestsPerMin)
	return func(c *gin.Context) {
		ip := c.ClientIP()
		if !rl.allow(ip) {
			m.l.Warnf(c.Request.Context(), "middleware.RateLimit: client %s throttled", ip)
			response.TooManyRequests(c)
			return
		}
		c.Next()
	}
}
