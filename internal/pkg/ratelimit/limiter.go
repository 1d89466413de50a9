package ratelimit

import (
	"sync"
	"time"
)

// Result reports the outcome of a single rate limit check.
type Result struct {
	Allowed    bool
	RetryAfter time.Duration
}

type window struct {
	count   int
	resetAt time.Time
}

// Limiter is an in-memory fixed-window counter keyed by caller-chosen strings
// such as "login:alice@example.com". Windows reset lazily on the first check
// after expiry. State lives in process memory only: it is lost on restart and
// not shared between instances, so this is best-effort abuse mitigation, not a
// security boundary.
type Limiter struct {
	mu      sync.Mutex
	windows map[string]*window
	now     func() time.Time
}

// New creates an empty limiter.
func New() *Limiter {
	return &Limiter{
		windows: make(map[string]*window),
		now:     time.Now,
	}
}

// Check records one attempt for the key and reports whether it is allowed
// under the given limit. Denied results carry the time remaining until the
// window resets.
func (l *Limiter) Check(key string, limit int, windowSize time.Duration) Result {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	w, ok := l.windows[key]
	if !ok || !now.Before(w.resetAt) {
		l.windows[key] = &window{count: 1, resetAt: now.Add(windowSize)}
		return Result{Allowed: true}
	}

	if w.count >= limit {
		return Result{Allowed: false, RetryAfter: w.resetAt.Sub(now)}
	}

	w.count++
	return Result{Allowed: true}
}

// Cleanup drops expired windows. Only needed to reclaim memory; correctness
// does not depend on it being called.
func (l *Limiter) Cleanup() {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	for key, w := range l.windows {
		if !now.Before(w.resetAt) {
			delete(l.windows, key)
		}
	}
}
