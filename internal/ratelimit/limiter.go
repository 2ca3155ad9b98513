package ratelimit

import (
	"context"
	"log"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
)

// Limiter is a sliding-window rate limiter over a Redis sorted set per user.
// Each admission attempt is recorded as a timestamped member; entries older
// than the window stop counting.
//
// If Redis is unavailable the limiter fails OPEN: quiz generation staying up
// matters more than strict quota enforcement during an outage. Degraded-mode
// admissions are logged, never silent.
type Limiter struct {
	client *redis.Client
	limit  int
	window time.Duration

	now func() time.Time
}

func New(client *redis.Client, limit int, window time.Duration) *Limiter {
	return &Limiter{
		client: client,
		limit:  limit,
		window: window,
		now:    time.Now,
	}
}

// Allow records one admission attempt for userID and reports whether the
// request may proceed. The expire-old / count / insert / refresh-expiry steps
// run as one atomic pipeline so concurrent requests from the same user
// cannot over-admit.
func (l *Limiter) Allow(ctx context.Context, userID int64) bool {
	key := "rate:quiz:" + strconv.FormatInt(userID, 10)
	now := float64(l.now().UnixNano()) / 1e9
	windowStart := now - l.window.Seconds()

	pipe := l.client.TxPipeline()
	pipe.ZRemRangeByScore(ctx, key, "0", strconv.FormatFloat(windowStart, 'f', -1, 64))
	countCmd := pipe.ZCard(ctx, key)
	pipe.ZAdd(ctx, key, redis.Z{Score: now, Member: strconv.FormatFloat(now, 'f', -1, 64)})
	pipe.Expire(ctx, key, l.window)

	if _, err := pipe.Exec(ctx); err != nil {
		log.Printf("WARN: rate limiter store unavailable, failing open: %v", err)
		return true
	}

	// countCmd ran after the purge but before the insert, so it is the
	// number of prior admissions still inside the window.
	if countCmd.Val() >= int64(l.limit) {
		log.Printf("WARN: rate limit hit for user %d (%d/%d)", userID, countCmd.Val(), l.limit)
		return false
	}
	return true
}
