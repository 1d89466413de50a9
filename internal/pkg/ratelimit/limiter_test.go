package ratelimit

import (
	"testing"
	"time"
)

func newTestLimiter(start time.Time) (*Limiter, *time.Time) {
	current := start
	l := New()
	l.now = func() time.Time { return current }
	return l, &current
}

func TestLimiterAllowsUpToLimit(t *testing.T) {
	l, _ := newTestLimiter(time.Unix(1000, 0))

	for i := 0; i < 5; i++ {
		res := l.Check("login:user@example.com", 5, 15*time.Minute)
		if !res.Allowed {
			t.Fatalf("attempt %d should be allowed", i+1)
		}
	}

	res := l.Check("login:user@example.com", 5, 15*time.Minute)
	if res.Allowed {
		t.Fatal("sixth attempt should be denied")
	}
	if res.RetryAfter <= 0 {
		t.Fatalf("expected positive retry-after, got %v", res.RetryAfter)
	}
}

func TestLimiterResetsAfterWindow(t *testing.T) {
	l, clock := newTestLimiter(time.Unix(1000, 0))

	for i := 0; i < 6; i++ {
		l.Check("k", 5, 15*time.Minute)
	}

	*clock = clock.Add(15*time.Minute + time.Second)

	if res := l.Check("k", 5, 15*time.Minute); !res.Allowed {
		t.Fatal("first attempt of a fresh window should be allowed")
	}
}

func TestLimiterKeysAreIndependent(t *testing.T) {
	l, _ := newTestLimiter(time.Unix(1000, 0))

	for i := 0; i < 5; i++ {
		l.Check("a", 5, time.Minute)
	}
	if res := l.Check("a", 5, time.Minute); res.Allowed {
		t.Fatal("key a should be exhausted")
	}
	if res := l.Check("b", 5, time.Minute); !res.Allowed {
		t.Fatal("key b should be unaffected")
	}
}

func TestLimiterCleanupDropsExpiredWindows(t *testing.T) {
	l, clock := newTestLimiter(time.Unix(1000, 0))

	l.Check("stale", 5, time.Minute)
	l.Check("fresh", 5, time.Hour)

	*clock = clock.Add(2 * time.Minute)
	l.Cleanup()

	l.mu.Lock()
	defer l.mu.Unlock()
	if _, ok := l.windows["stale"]; ok {
		t.Fatal("expired window should be dropped")
	}
	if _, ok := l.windows["fresh"]; !ok {
		t.Fatal("live window should survive cleanup")
	}
}
