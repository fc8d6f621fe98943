package http

import (
	"context"
	"encoding/binary"
	"net"
	"net/http"
	"sync"
	"time"

	"github.com/allegro/bigcache/v3"
	"github.com/mlevansky/go-cred-vault/internal/logger"
)

// loginRateLimiter throttles login attempts per client address using a
// counter held in an expiring in-memory cache. An entry lives for the
// configured window after its last update, so a client that keeps hammering
// stays blocked until it backs off for a full window.
type loginRateLimiter struct {
	mu    sync.Mutex
	cache *bigcache.BigCache
	limit int
}

func newLoginRateLimiter(limit int, window time.Duration) (*loginRateLimiter, error) {
	cacheConfig := bigcache.DefaultConfig(window)
	cacheConfig.CleanWindow = window

	cache, err := bigcache.New(context.Background(), cacheConfig)
	if err != nil {
		return nil, err
	}

	return &loginRateLimiter{
		cache: cache,
		limit: limit,
	}, nil
}

// allow records an attempt for key and reports whether it is still within
// the limit.
func (l *loginRateLimiter) allow(key string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	var count uint32
	if buf, err := l.cache.Get(key); err == nil && len(buf) == 4 {
		count = binary.BigEndian.Uint32(buf)
	}

	if count >= uint32(l.limit) {
		return false
	}

	buf := make([]byte, 4)
	binary.BigEndian.PutUint32(buf, count+1)
	_ = l.cache.Set(key, buf)

	return true
}

// withLoginRateLimit rejects requests over the per-address login budget
// with HTTP 429. The key is the client IP without the ephemeral port, so
// repeated attempts from one host share a counter.
func (h *Handler) withLoginRateLimit(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		key, _, err := net.SplitHostPort(r.RemoteAddr)
		if err != nil {
			key = r.RemoteAddr
		}

		if !h.loginLimiter.allow(key) {
			log.Warn().Str("client", key).Msg("login rate limit exceeded")
			http.Error(w, "too many login attempts", http.StatusTooManyRequests)
			return
		}

		next.ServeHTTP(w, r)
	})
}
