package middleware

import (
	"rag-intent-chat/pkg/log"
)

// Config configures the shared gin middlewares.
type Config struct {
	RateLimitEnabled bool
	// RequestsPerMin is the sustained rate per tenant (or client IP).
	RequestsPerMin int
	// AllowedIPs bypass rate limiting. Entries may be CIDR ranges.
	AllowedIPs []string
}

type Middleware struct {
	l          log.Logger
	limiter    *rateLimiter
	allowedIPs []string
}

func New(l log.Logger, cfg Config) Middleware {
	mw := Middleware{l: l, allowedIPs: cfg.AllowedIPs}
	if cfg.RateLimitEnabled && cfg.RequestsPerMin > 0 {
		mw.limiter = newRateLimiter(cfg.RequestsPerMin)
	}
	return mw
}
