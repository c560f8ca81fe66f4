package middlewares

import (
	"context"
	"math"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/sbilibin2017/shell-market/internal/logger"
)

//go:generate mockgen -source=ratelimit.go -destination=ratelimit_mock.go -package=middlewares

// RateLimiter counts hits in a fixed window.
type RateLimiter interface {
	Hit(ctx context.Context, key string, window time.Duration) (int64, time.Duration, error)
}

// RateLimitMiddleware allows limit requests per window for each client IP,
// method and route. When the limiter fails, requests are let through.
func RateLimitMiddleware(limiter RateLimiter, limit int64, window time.Duration) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()
			key := clientIP(r) + ":" + r.Method + ":" + routePattern(r)

			count, ttl, err := limiter.Hit(ctx, key, window)
			if err != nil {
				logger.Log.Warnw("rate limiter unavailable, allowing request", "key", key, "error", err)
				next.ServeHTTP(w, r)
				return
			}
			if ttl <= 0 {
				ttl = window
			}

			remaining := limit - count
			if remaining < 0 {
				remaining = 0
			}
			reset := time.Now().Add(ttl)

			w.Header().Set("X-RateLimit-Limit", strconv.FormatInt(limit, 10))
			w.Header().Set("X-RateLimit-Remaining", strconv.FormatInt(remaining, 10))
			w.Header().Set("X-RateLimit-Reset", strconv.FormatInt(reset.Unix(), 10))

			if count > limit {
				retryAfter := int64(math.Ceil(ttl.Seconds()))
				w.Header().Set("Retry-After", strconv.FormatInt(retryAfter, 10))
				logger.Log.Warnw("rate limit exceeded", "key", key, "count", count)
				writeError(w, http.StatusTooManyRequests, "Too many requests. Please try again later.")
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

func routePattern(r *http.Request) string {
	if rctx := chi.RouteContext(r.Context()); rctx != nil {
		if p := rctx.RoutePattern(); p != "" {
			return p
		}
	}
	return r.URL.Path
}
