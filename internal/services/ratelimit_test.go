package services

import (
	"context"
	"testing"
	"time"
)

func TestMemoryHitCounterCountsPerKey(t *testing.T) {
	c := NewMemoryHitCounter(time.Minute)
	ctx := context.Background()

	for i := 1; i <= 3; i++ {
		n, err := c.Incr(ctx, "user:1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if n != int64(i) {
			t.Fatalf("count = %d, want %d", n, i)
		}
	}

	n, _ := c.Incr(ctx, "user:2")
	if n != 1 {
		t.Fatalf("keys should not share buckets, got %d", n)
	}
}

func TestMemoryHitCounterWindowReset(t *testing.T) {
	c := NewMemoryHitCounter(10 * time.Millisecond)
	ctx := context.Background()

	c.Incr(ctx, "k")
	c.Incr(ctx, "k")
	time.Sleep(15 * time.Millisecond)

	n, _ := c.Incr(ctx, "k")
	if n != 1 {
		t.Fatalf("expired window not reset, count = %d", n)
	}
}

func TestRateLimiterAllow(t *testing.T) {
	l := &RateLimiter{Counter: NewMemoryHitCounter(time.Minute), Max: 2}
	ctx := context.Background()

	if !l.Allow(ctx, "k") || !l.Allow(ctx, "k") {
		t.Fatal("requests under the limit were rejected")
	}
	if l.Allow(ctx, "k") {
		t.Fatal("request over the limit was allowed")
	}
	if !l.Allow(ctx, "other") {
		t.Fatal("unrelated key throttled")
	}
}

func TestRateLimiterNilSafety(t *testing.T) {
	var l *RateLimiter
	if !l.Allow(context.Background(), "k") {
		t.Fatal("nil limiter should allow everything")
	}
	disabled := &RateLimiter{Counter: NewMemoryHitCounter(time.Minute), Max: 0}
	if !disabled.Allow(context.Background(), "k") {
		t.Fatal("limiter with Max=0 should be disabled")
	}
}
