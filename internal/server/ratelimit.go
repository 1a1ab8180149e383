package server

import (
	"net"
	"net/http"
	"strings"
	"sync"
	"time"

	"atscheck/internal/config"
	"atscheck/internal/errors"
	"atscheck/internal/observability"

	"go.opentelemetry.io/otel/attribute"
	"golang.org/x/time/rate"
)

// visitor pairs a token bucket with the last time its key was seen, so
// idle buckets can be evicted.
type visitor struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// RateLimiter applies a per-key token bucket (keyed by API key or client IP).
type RateLimiter struct {
	mu       sync.Mutex
	visitors map[string]*visitor
	limit    rate.Limit
	burst    int
	stop     chan struct{}
	logger   *errors.Logger
}

const visitorMaxIdle = 10 * time.Minute

// NewRateLimiter builds a limiter allowing cfg.RequestsPerMin sustained
// requests with bursts up to cfg.BurstCapacity, and starts a janitor that
// evicts buckets idle for more than ten minutes.
func NewRateLimiter(cfg *config.RateLimitConfig, logger *errors.Logger) *RateLimiter {
	rl := &RateLimiter{
		visitors: make(map[string]*visitor),
		limit:    rate.Limit(float64(cfg.RequestsPerMin) / 60.0),
		burst:    cfg.BurstCapacity,
		stop:     make(chan struct{}),
		logger:   logger,
	}
	go rl.janitor(visitorMaxIdle)
	return rl
}

// Allow reports whether a request for the given key fits the key's budget.
func (rl *RateLimiter) Allow(key string) bool {
	rl.mu.Lock()
	v, ok := rl.visitors[key]
	if !ok {
		v = &visitor{limiter: rate.NewLimiter(rl.limit, rl.burst)}
		rl.visitors[key] = v
	}
	v.lastSeen = time.Now()
	rl.mu.Unlock()

	return v.limiter.Allow()
}

// Stats reports the limiter configuration and the active bucket count.
func (rl *RateLimiter) Stats() map[string]any {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	return map[string]any{
		"active_limiters": len(rl.visitors),
		"rate_per_second": float64(rl.limit),
		"rate_per_minute": float64(rl.limit) * 60.0,
		"burst_capacity":  rl.burst,
	}
}

func (rl *RateLimiter) janitor(maxIdle time.Duration) {
	ticker := time.NewTicker(maxIdle)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			rl.evictIdle(maxIdle)
		case <-rl.stop:
			return
		}
	}
}

func (rl *RateLimiter) evictIdle(maxIdle time.Duration) {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	cutoff := time.Now().Add(-maxIdle)
	for key, v := range rl.visitors {
		if v.lastSeen.Before(cutoff) {
			delete(rl.visitors, key)
		}
	}

	if rl.logger != nil {
		rl.logger.Debug("Rate limiter eviction completed",
			"active_limiters", len(rl.visitors))
	}
}

// Close stops the janitor goroutine.
func (rl *RateLimiter) Close() {
	close(rl.stop)
}

// rateLimitMiddleware rejects requests over the configured rate with a 429
// and records the rate limit hit metric.
func (s *Server) rateLimitMiddleware(om *observability.ObservabilityManager) func(http.HandlerFunc) http.HandlerFunc {
	if s.RateLimit == nil || !s.RateLimit.Enabled || s.RateLimiter == nil {
		return func(next http.HandlerFunc) http.HandlerFunc { return next }
	}

	return func(next http.HandlerFunc) http.HandlerFunc {
		return func(w http.ResponseWriter, r *http.Request) {
			key := rateLimitKey(r, s.RateLimit.ByAPIKey, s.RateLimit.ByIP)
			if key == "" || s.RateLimiter.Allow(key) {
				next(w, r)
				return
			}

			s.Logger.Info("Rate limit exceeded",
				"key", key,
				"endpoint", r.URL.Path,
				"client_ip", clientIP(r))

			om.GetMetrics().RecordScoringMetric(r.Context(), "rate_limit_hit", true, om,
				attribute.String("endpoint", r.URL.Path),
				attribute.String("method", r.Method))

			writeErrorResponse(w, "Rate limit exceeded", "Too many requests", http.StatusTooManyRequests)
		}
	}
}

// rateLimitKey picks the bucket key for a request: the API key when keying
// by API key is enabled and one is present, otherwise the client IP.
func rateLimitKey(r *http.Request, byAPIKey, byIP bool) string {
	if byAPIKey {
		apiKey := r.Header.Get("X-API-Key")
		if apiKey == "" {
			if after, ok := strings.CutPrefix(r.Header.Get("Authorization"), "Bearer "); ok {
				apiKey = after
			}
		}
		if apiKey != "" {
			return "api:" + apiKey
		}
	}

	if byIP {
		return "ip:" + clientIP(r)
	}

	return ""
}

// clientIP resolves the client address, preferring proxy headers over the
// connection's remote address.
func clientIP(r *http.Request) string {
	if xff := r.Header.Get("X-Forwarded-For"); xff != "" {
		for ip := range strings.SplitSeq(xff, ",") {
			ip = strings.TrimSpace(ip)
			if net.ParseIP(ip) != nil {
				return ip
			}
		}
	}

	if xri := r.Header.Get("X-Real-IP"); xri != "" && net.ParseIP(xri) != nil {
		return xri
	}

	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
