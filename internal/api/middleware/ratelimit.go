package middleware

import (
	"context"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"strings"
	"sync"
	"time"

	"credit-application/internal/config"

	"github.com/redis/go-redis/v9"
	"golang.org/x/time/rate"
)

// Limiter decides whether one more request from key fits in its budget.
type Limiter interface {
	Allow(ctx context.Context, key string) (bool, error)
}

// WindowCounter is the subset of the redis client the fixed-window limiter
// needs. *redis.Client satisfies it.
type WindowCounter interface {
	Incr(ctx context.Context, key string) *redis.IntCmd
	ExpireNX(ctx context.Context, key string, expiration time.Duration) *redis.BoolCmd
}

// RedisLimiter counts requests per key in fixed one-second windows shared by
// every replica pointing at the same redis.
type RedisLimiter struct {
	counter WindowCounter
	limit   int64
	window  time.Duration
}

func NewRedisLimiter(counter WindowCounter, cfg config.RateLimitConfig) *RedisLimiter {
	limit := int64(cfg.RPS)
	if limit < 1 {
		limit = 1
	}
	return &RedisLimiter{counter: counter, limit: limit + int64(cfg.Burst), window: time.Second}
}

func (l *RedisLimiter) Allow(ctx context.Context, key string) (bool, error) {
	redisKey := "ratelimit:" + key
	count, err := l.counter.Incr(ctx, redisKey).Result()
	if err != nil {
		return true, fmt.Errorf("incrementing rate limit counter: %w", err)
	}
	if count == 1 {
		if err := l.counter.ExpireNX(ctx, redisKey, l.window).Err(); err != nil {
			return true, fmt.Errorf("setting rate limit window: %w", err)
		}
	}
	return count <= l.limit, nil
}

// MemoryLimiter keeps a token bucket per key in process memory.
type MemoryLimiter struct {
	limiters sync.Map
	rps      rate.Limit
	burst    int
}

func NewMemoryLimiter(cfg config.RateLimitConfig) *MemoryLimiter {
	burst := cfg.Burst
	if burst < 1 {
		burst = 1
	}
	return &MemoryLimiter{rps: rate.Limit(cfg.RPS), burst: burst}
}

func (l *MemoryLimiter) Allow(_ context.Context, key string) (bool, error) {
	return l.limiterFor(key).Allow(), nil
}

func (l *MemoryLimiter) limiterFor(key string) *rate.Limiter {
	if existing, ok := l.limiters.Load(key); ok {
		return existing.(*rate.Limiter)
	}
	actual, _ := l.limiters.LoadOrStore(key, rate.NewLimiter(l.rps, l.burst))
	return actual.(*rate.Limiter)
}

// Cleanup drops buckets that have refilled completely, every interval,
// until ctx is done.
func (l *MemoryLimiter) Cleanup(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			l.sweep(time.Now())
		}
	}
}

func (l *MemoryLimiter) sweep(now time.Time) {
	l.limiters.Range(func(key, value interface{}) bool {
		if value.(*rate.Limiter).TokensAt(now) >= float64(l.burst) {
			l.limiters.Delete(key)
		}
		return true
	})
}

type RateLimiterMiddleware struct {
	limiter Limiter
	cfg     config.RateLimitConfig
	logger  *slog.Logger
}

// NewRateLimiterMiddleware falls back to an in-memory limiter when limiter
// is nil.
func NewRateLimiterMiddleware(cfg config.RateLimitConfig, limiter Limiter, logger *slog.Logger) *RateLimiterMiddleware {
	logger = logger.With("component", "RateLimiter")
	if !cfg.Enabled {
		logger.Info("Rate limiting is disabled via configuration")
	} else if limiter == nil {
		logger.Info("Rate limiter using in-memory buckets", "rps", cfg.RPS, "burst", cfg.Burst)
		limiter = NewMemoryLimiter(cfg)
	} else {
		logger.Info("Rate limiter using shared counter", "rps", cfg.RPS, "burst", cfg.Burst)
	}

	return &RateLimiterMiddleware{
		limiter: limiter,
		cfg:     cfg,
		logger:  logger,
	}
}

func (rl *RateLimiterMiddleware) extractIP(r *http.Request) string {
	if xff := r.Header.Get("X-Forwarded-For"); xff != "" {
		ip := strings.TrimSpace(strings.Split(xff, ",")[0])
		if net.ParseIP(ip) != nil {
			return ip
		}
	}

	if xRealIP := strings.TrimSpace(r.Header.Get("X-Real-IP")); xRealIP != "" && net.ParseIP(xRealIP) != nil {
		return xRealIP
	}

	ip, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return ip
}

func (rl *RateLimiterMiddleware) Middleware(next http.Handler) http.Handler {
	if !rl.cfg.Enabled {
		return next
	}

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ip := rl.extractIP(r)

		allowed, err := rl.limiter.Allow(r.Context(), ip)
		if err != nil {
			// Fail open.
			rl.logger.ErrorContext(r.Context(), "Rate limit check failed", slog.String("ip", ip), slog.Any("error", err))
		}
		if !allowed {
			rl.logger.WarnContext(r.Context(), "Rate limit exceeded", slog.String("ip", ip))
			w.Header().Set("Retry-After", "1")
			writeException(w, http.StatusTooManyRequests, "Too Many Requests! Consult the documentation",
				"RateLimitError", map[string]string{"cause": "Rate limit exceeded"})
			return
		}

		next.ServeHTTP(w, r)
	})
}
