package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// RateLimiter is a fixed-window request counter backed by Redis.
// Key format: ratelimit:<client_ip>; the key expires at the end of the window.
type RateLimiter struct {
	client *redis.Client
	limit  int64
	window time.Duration
}

// NewRateLimiter allows up to limit requests per key within each window.
func NewRateLimiter(client *redis.Client, limit int, window time.Duration) *RateLimiter {
	return &RateLimiter{client: client, limit: int64(limit), window: window}
}

// Allow increments the counter for key and reports whether the hit stays
// within the window's budget. The expiry is set when the window opens.
func (r *RateLimiter) Allow(ctx context.Context, key string) (bool, error) {
	k := r.key(key)

	n, err := r.client.Incr(ctx, k).Result()
	if err != nil {
		return false, fmt.Errorf("rate limit incr: %w", err)
	}
	if n == 1 {
		if err := r.client.Expire(ctx, k, r.window).Err(); err != nil {
			return false, fmt.Errorf("rate limit expire: %w", err)
		}
	}
	return n <= r.limit, nil
}

func (r *RateLimiter) key(clientKey string) string {
	return fmt.Sprintf("ratelimit:%s", clientKey)
}
