package middleware

import (
	"log/slog"
	"net/http"
	"sync"
	"time"

	"resort-booking/internal/pkg/config"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

const (
	limiterIdleTTL       = 10 * time.Minute
	limiterSweepInterval = time.Minute
)

type limiterEntry struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// RateLimiter keeps one token bucket per client IP.
type RateLimiter struct {
	mu        sync.Mutex
	limiters  map[string]*limiterEntry
	lastSweep time.Time
	every     rate.Limit
	burst     int
	logger    *slog.Logger
	now       func() time.Time
}

func NewRateLimiter(cfg config.RateLimitConfig, logger *slog.Logger) *RateLimiter {
	perMinute := cfg.PerMinute
	if perMinute <= 0 {
		perMinute = 60
	}
	burst := cfg.Burst
	if burst <= 0 {
		burst = 1
	}
	return &RateLimiter{
		limiters:  make(map[string]*limiterEntry),
		lastSweep: time.Now(),
		every:     rate.Every(time.Minute / time.Duration(perMinute)),
		burst:     burst,
		logger:    logger,
		now:       time.Now,
	}
}

func (r *RateLimiter) get(ip string) *rate.Limiter {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := r.now()
	if now.Sub(r.lastSweep) >= limiterSweepInterval {
		r.sweep(now)
	}

	e, ok := r.limiters[ip]
	if !ok {
		e = &limiterEntry{limiter: rate.NewLimiter(r.every, r.burst)}
		r.limiters[ip] = e
	}
	e.lastSeen = now
	return e.limiter
}

// sweep drops limiters idle for longer than limiterIdleTTL. Callers hold mu.
func (r *RateLimiter) sweep(now time.Time) {
	for k, e := range r.limiters {
		if now.Sub(e.lastSeen) > limiterIdleTTL {
			delete(r.limiters, k)
		}
	}
	r.lastSweep = now
}

func (r *RateLimiter) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		ip := c.ClientIP()
		if !r.get(ip).Allow() {
			r.logger.Warn("Rate limit exceeded", slog.String("ip", ip), slog.String("path", c.Request.URL.Path))
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{"error": "Rate limit exceeded. Try again later."})
			return
		}
		c.Next()
	}
}
