package httpadapter

import (
	"net/http"
	"sync"
	"time"

	"golang.org/x/time/rate"
)

// keyedLimiter keeps one token bucket per key (user id when
// authenticated, remote address otherwise).
type keyedLimiter struct {
	mu      sync.Mutex
	buckets map[string]*rate.Limiter
	limit   rate.Limit
	burst   int
}

// newKeyedLimiter allows max requests per window per key.
func newKeyedLimiter(max int, window time.Duration) *keyedLimiter {
	return &keyedLimiter{
		buckets: make(map[string]*rate.Limiter),
		limit:   rate.Every(window / time.Duration(max)),
		burst:   max,
	}
}

func (l *keyedLimiter) allow(key string) bool {
	l.mu.Lock()
	b, ok := l.buckets[key]
	if !ok {
		b = rate.NewLimiter(l.limit, l.burst)
		l.buckets[key] = b
	}
	l.mu.Unlock()

	return b.Allow()
}

func (l *keyedLimiter) check(w http.ResponseWriter, key string) bool {
	if !l.allow(key) {
		writeJSON(w, http.StatusTooManyRequests, map[string]string{
			"message": "Too many requests. Please try again later.",
		})
		return false
	}
	return true
}
