package httpserver

import (
	"math"
	"net/http"
	"strconv"
	"sync"
	"time"

	"apodapi/internal/api/handlers"
	"apodapi/internal/i18n"
	"apodapi/internal/logging"

	"github.com/patrickmn/go-cache"
)

// window is one caller's fixed rate-limit window.
type window struct {
	count   int
	expires time.Time
}

// RateLimiter allows limit requests per caller per fixed window. Windows are
// kept in a go-cache store whose TTL is the window length, so idle callers
// are evicted on their own.
type RateLimiter struct {
	mu     sync.Mutex
	store  *cache.Cache
	limit  int
	window time.Duration
}

// NewRateLimiter creates a limiter allowing limit requests per window.
func NewRateLimiter(limit int, window time.Duration) *RateLimiter {
	if limit < 1 {
		limit = 1
	}
	return &RateLimiter{
		store:  cache.New(window, 2*window),
		limit:  limit,
		window: window,
	}
}

// Allow counts one request for key. When the window is exhausted it returns
// false and the time left until the window resets.
func (l *RateLimiter) Allow(key string) (bool, time.Duration) {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := time.Now()
	if v, found := l.store.Get(key); found {
		w := v.(*window)
		if now.Before(w.expires) {
			if w.count >= l.limit {
				return false, w.expires.Sub(now)
			}
			w.count++
			return true, 0
		}
	}

	l.store.Set(key, &window{count: 1, expires: now.Add(l.window)}, l.window)
	return true, 0
}

// Limit rejects over-limit callers with 429 before next runs.
func (l *RateLimiter) Limit(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ip := handlers.ClientIP(r)
		ok, retryAfter := l.Allow(ip)
		if !ok {
			seconds := int(math.Ceil(retryAfter.Seconds()))
			if seconds < 1 {
				seconds = 1
			}
			logging.FromContext(r.Context()).Warnf("Rate limit exceeded for %s on %s", ip, r.URL.Path)
			w.Header().Set("Retry-After", strconv.Itoa(seconds))
			respondWithError(w, r, http.StatusTooManyRequests, i18n.MsgTooManyRequests, i18n.MsgRateLimited, map[string]interface{}{"Seconds": seconds})
			return
		}
		next.ServeHTTP(w, r)
	})
}
