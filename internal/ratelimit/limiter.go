// Package ratelimit protects the verification endpoint with a fixed-window
// per-client limit backed by Redis, so limits hold across replicas.
package ratelimit

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// Result reports one limit check.
type Result struct {
	Allowed   bool
	Remaining int64
	RetryIn   time.Duration
}

// Limiter counts requests per client key in fixed windows.
type Limiter struct {
	client *redis.Client
	limit  int64
	window time.Duration
}

// NewLimiter creates a limiter allowing limit requests per window.
func NewLimiter(client *redis.Client, limit int64, window time.Duration) *Limiter {
	return &Limiter{client: client, limit: limit, window: window}
}

// Check counts one request for key and reports whether it is within the
// limit. The counter key carries the window index so stale windows expire on
// their own.
func (l *Limiter) Check(ctx context.Context, key string) (Result, error) {
	window := time.Now().Unix() / int64(l.window.Seconds())
	counter := fmt.Sprintf("ratelimit:%s:%d", key, window)

	pipe := l.client.TxPipeline()
	count := pipe.Incr(ctx, counter)
	pipe.Expire(ctx, counter, l.window)
	if _, err := pipe.Exec(ctx); err != nil {
		return Result{}, fmt.Errorf("rate limit check: %w", err)
	}

	n := count.Val()
	if n > l.limit {
		nextWindow := time.Unix((window+1)*int64(l.window.Seconds()), 0)
		return Result{Allowed: false, RetryIn: time.Until(nextWindow)}, nil
	}
	return Result{Allowed: true, Remaining: l.limit - n}, nil
}
