package middleware

import (
	"net"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/hashicorp/golang-lru/v2/expirable"
	"golang.org/x/time/rate"

	"rag-intent-chat/pkg/response"
)

// RateLimit throttles requests per tenant, falling back to the client IP
// when no tenant header is present.
func (m Middleware) RateLimit() gin.HandlerFunc {
	return func(c *gin.Context) {
		if m.limiter == nil || m.ipAllowed(c.ClientIP()) {
			c.Next()
			return
		}

		key := c.GetHeader(HeaderTenantID)
		if key == "" {
			key = "ip:" + c.ClientIP()
		}
		if !m.limiter.Allow(key) {
			m.l.Warnf(c.Request.Context(), "middleware.RateLimit: limit exceeded for %s", key)
			response.TooManyRequests(c)
			c.Abort()
			return
		}
		c.Next()
	}
}

func (m Middleware) ipAllowed(ip string) bool {
	parsed := net.ParseIP(ip)
	for _, allowed := range m.allowedIPs {
		if ip == allowed {
			return true
		}
		if strings.Contains(allowed, "/") {
			_, ipNet, err := net.ParseCIDR(allowed)
			if err == nil && parsed != nil && ipNet.Contains(parsed) {
				return true
			}
		}
	}
	return false
}

// rateLimiter keeps one token bucket per key, expiring idle keys.
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
			1000,
			nil,
			time.Minute*5,
		),
		rate:  rate.Limit(float64(requestsPerMin) / 60.0),
		burst: burst,
	}
}

func (rl *rateLimiter) Allow(key string) bool {
	limiter, ok := rl.limiters.Get(key)
	if !ok {
		limiter = rate.NewLimiter(rl.rate, rl.burst)
		rl.limiters.Add(key, limiter)
	}
	return limiter.Allow()
}
