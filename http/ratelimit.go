package http

import (
	"context"
	"net/url"
	"strings"
	"sync"

	"golang.org/x/time/rate"
)

// RateLimiter applies a token bucket per domain so bursts of retrievals don't
// trip YouTube's anti-abuse responses.
type RateLimiter struct {
	mu       sync.Mutex
	limiters map[string]*rate.Limiter
	config   RateLimiterConfig
}

// RateLimiterConfig defines rate limiting behavior.
type RateLimiterConfig struct {
	// RequestsPerSecond is the default sustained rate per domain.
	RequestsPerSecond float64
	// Burst is the token bucket depth.
	Burst int
	// CustomRates maps domain suffixes to dedicated rates.
	CustomRates map[string]float64
}

// DefaultRateLimiterConfig returns sensible defaults.
func DefaultRateLimiterConfig() RateLimiterConfig {
	return RateLimiterConfig{
		RequestsPerSecond: 2.5,
		Burst:             3,
	}
}

// NewRateLimiter creates a rate limiter with the given configuration.
func NewRateLimiter(cfg RateLimiterConfig) *RateLimiter {
	if cfg.RequestsPerSecond <= 0 {
		cfg.RequestsPerSecond = DefaultRateLimiterConfig().RequestsPerSecond
	}
	if cfg.Burst <= 0 {
		cfg.Burst = 1
	}

	return &RateLimiter{
		limiters: make(map[string]*rate.Limiter),
		config:   cfg,
	}
}

// Wait blocks until a request to the URL's domain may proceed, or the context
// is canceled.
func (rl *RateLimiter) Wait(ctx context.Context, urlStr string) error {
	return rl.limiterFor(extractDomain(urlStr)).Wait(ctx)
}

func (rl *RateLimiter) limiterFor(domain string) *rate.Limiter {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	if limiter, ok := rl.limiters[domain]; ok {
		return limiter
	}

	rps := rl.config.RequestsPerSecond
	for suffix, custom := range rl.config.CustomRates {
		if strings.HasSuffix(domain, suffix) {
			rps = custom
			break
		}
	}

	limiter := rate.NewLimiter(rate.Limit(rps), rl.config.Burst)
	rl.limiters[domain] = limiter
	return limiter
}

// extractDomain returns the host portion of a URL, or the raw string when it
// cannot be parsed. Unparseable URLs still get a bucket of their own.
func extractDomain(urlStr string) string {
	u, err := url.Parse(urlStr)
	if err != nil || u.Hostname() == "" {
		return urlStr
	}
	return u.Hostname()
}
