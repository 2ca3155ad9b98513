package ratelimit

import (
	"context"
	"testing"
	"time"

	miniredis "github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
)

func newTestLimiter(t *testing.T, limit int, window time.Duration) (*Limiter, *miniredis.Miniredis, *time.Time) {
	t.Helper()

	mr, err := miniredis.Run()
	if err != nil {
		t.Fatalf("run miniredis: %v", err)
	}
	t.Cleanup(mr.Close)

	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })

	limiter := New(client, limit, window)
	// Deterministic clock, ticking a millisecond per admission so every
	// sorted-set member is distinct.
	now := time.Now()
	limiter.now = func() time.Time {
		now = now.Add(time.Millisecond)
		return now
	}
	return limiter, mr, &now
}

func TestLimiter_DeniesBeyondLimit(t *testing.T) {
	limiter, _, _ := newTestLimiter(t, 20, time.Hour)
	ctx := context.Background()

	for i := 0; i < 20; i++ {
		if !limiter.Allow(ctx, 42) {
			t.Fatalf("admission %d should be allowed", i+1)
		}
	}

	if limiter.Allow(ctx, 42) {
		t.Fatal("21st admission should be denied")
	}
}

func TestLimiter_WindowSlides(t *testing.T) {
	limiter, _, now := newTestLimiter(t, 5, time.Hour)
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		if !limiter.Allow(ctx, 7) {
			t.Fatalf("admission %d should be allowed", i+1)
		}
	}
	if limiter.Allow(ctx, 7) {
		t.Fatal("6th admission inside the window should be denied")
	}

	// Past the window the old entries stop counting.
	*now = now.Add(time.Hour + time.Minute)
	if !limiter.Allow(ctx, 7) {
		t.Fatal("admission after the window elapsed should be allowed")
	}
}

func TestLimiter_UsersAreIndependent(t *testing.T) {
	limiter, _, _ := newTestLimiter(t, 2, time.Hour)
	ctx := context.Background()

	limiter.Allow(ctx, 1)
	limiter.Allow(ctx, 1)
	if limiter.Allow(ctx, 1) {
		t.Fatal("user 1 should be rate limited")
	}

	if !limiter.Allow(ctx, 2) {
		t.Fatal("user 2 should not be affected by user 1's quota")
	}
}

func TestLimiter_SetsKeyExpiry(t *testing.T) {
	limiter, mr, _ := newTestLimiter(t, 5, time.Hour)

	limiter.Allow(context.Background(), 9)

	if ttl := mr.TTL("rate:quiz:9"); ttl <= 0 || ttl > time.Hour {
		t.Errorf("expected key TTL in (0, 1h], got %v", ttl)
	}
}

func TestLimiter_FailsOpenWhenStoreDown(t *testing.T) {
	limiter, mr, _ := newTestLimiter(t, 1, time.Hour)
	ctx := context.Background()

	limiter.Allow(ctx, 3)
	mr.Close()

	// The quota is exhausted, but with the store down the limiter must
	// prioritize availability and admit anyway.
	if !limiter.Allow(ctx, 3) {
		t.Fatal("limiter must fail open when redis is unavailable")
	}
}
