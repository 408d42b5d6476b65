package services

import (
	"context"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
)

// HitCounter counts hits per key within the limiter window. It is
// best-effort abuse mitigation, not a correctness mechanism: the
// in-process implementation resets on restart, and a multi-instance
// deployment swaps in the Redis one.
type HitCounter interface {
	Incr(ctx context.Context, key string) (int64, error)
}

// RateLimiter rejects a key once it exceeds Max hits per window.
type RateLimiter struct {
	Counter HitCounter
	Max     int64
}

// Allow registers one hit and reports whether the caller is still under
// the limit. Counter failures fail open: throttling is never worth a
// request outage.
func (l *RateLimiter) Allow(ctx context.Context, key string) bool {
	if l == nil || l.Counter == nil || l.Max <= 0 {
		return true
	}
	count, err := l.Counter.Incr(ctx, key)
	if err != nil {
		return true
	}
	return count <= l.Max
}

// MemoryHitCounter keeps per-key buckets in process memory.
type MemoryHitCounter struct {
	Window time.Duration

	mu      sync.Mutex
	buckets map[string]*hitBucket
}

type hitBucket struct {
	count    int64
	windowAt time.Time
}

func NewMemoryHitCounter(window time.Duration) *MemoryHitCounter {
	return &MemoryHitCounter{
		Window:  window,
		buckets: make(map[string]*hitBucket),
	}
}

func (c *MemoryHitCounter) Incr(_ context.Context, key string) (int64, error) {
	now := time.Now()

	c.mu.Lock()
	defer c.mu.Unlock()

	b, ok := c.buckets[key]
	if !ok || now.Sub(b.windowAt) >= c.Window {
		b = &hitBucket{windowAt: now}
		c.buckets[key] = b
	}
	b.count++
	return b.count, nil
}

// RedisHitCounter shares the buckets across instances. The expiry is set
// on the first hit of each window.
type RedisHitCounter struct {
	RDB    *redis.Client
	Window time.Duration
}

func (c *RedisHitCounter) Incr(ctx context.Context, key string) (int64, error) {
	count, err := c.RDB.Incr(ctx, "ratelimit:"+key).Result()
	if err != nil {
		return 0, err
	}
	if count == 1 {
		c.RDB.Expire(ctx, "ratelimit:"+key, c.Window)
	}
	return count, nil
}
