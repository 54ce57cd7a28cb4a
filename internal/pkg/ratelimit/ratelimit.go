package ratelimit

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"

	"tush00nka/bbbab_forums/internal/pkg/httputils"
)

// Limiter counts hits for a key and reports whether the caller may proceed.
type Limiter interface {
	Allow(ctx context.Context, key string) (bool, error)
}

// RedisLimiter is a fixed-window counter kept in Redis.
type RedisLimiter struct {
	rdb         *redis.Client
	maxRequests int64
	window      time.Duration
}

func NewRedisLimiter(rdb *redis.Client, maxRequests int, window time.Duration) (*RedisLimiter, error) {
	if rdb == nil {
		return nil, fmt.Errorf("redis client cannot be nil")
	}
	if maxRequests <= 0 {
		return nil, fmt.Errorf("maxRequests must be positive")
	}
	if window <= 0 {
		return nil, fmt.Errorf("window must be positive")
	}

	return &RedisLimiter{rdb: rdb, maxRequests: int64(maxRequests), window: window}, nil
}

func (l *RedisLimiter) key(client string) string {
	return fmt.Sprintf("ratelimit:%s", client)
}

// Allow counts one hit in the current window. The first hit of a window
// starts its TTL, so the window is fixed rather than sliding.
func (l *RedisLimiter) Allow(ctx context.Context, client string) (bool, error) {
	key := l.key(client)

	count, err := l.rdb.Incr(ctx, key).Result()
	if err != nil {
		return false, fmt.Errorf("failed to count request: %w", err)
	}

	if count == 1 {
		if err := l.rdb.Expire(ctx, key, l.window).Err(); err != nil {
			return false, fmt.Errorf("failed to start window: %w", err)
		}
	}

	if count <= l.maxRequests {
		return true, nil
	}

	// a key left without a TTL would block the client forever
	if ttl, err := l.rdb.TTL(ctx, key).Result(); err == nil && ttl < 0 {
		if err := l.rdb.Expire(ctx, key, l.window).Err(); err != nil {
			return false, fmt.Errorf("failed to restart window: %w", err)
		}
	}
	return false, nil
}

// Middleware rejects clients over the limit with 429. Limiter errors let
// the request through.
func Middleware(l Limiter) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			allowed, err := l.Allow(r.Context(), clientIP(r))
			if err != nil {
				logrus.WithError(err).Warn("rate limiter unavailable")
				next.ServeHTTP(w, r)
				return
			}
			if !allowed {
				httputils.ResponseError(w, http.StatusTooManyRequests, "too many requests")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

func clientIP(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
