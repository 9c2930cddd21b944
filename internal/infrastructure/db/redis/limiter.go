package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	failureWindow = 15 * time.Minute
	maxFailures   = 10
)

// AttemptLimiter counts failed logins per username in Redis. Counters expire
// after failureWindow, so a throttled account unlocks itself. A limiter
// outage must never block logins; callers treat errors as advisory.
// Key format: login:fail:<username>
type AttemptLimiter struct {
	client *redis.Client
}

// NewAttemptLimiter creates an AttemptLimiter wrapping the given Redis client.
func NewAttemptLimiter(client *redis.Client) *AttemptLimiter {
	return &AttemptLimiter{client: client}
}

// TooManyFailures reports whether the username has exceeded maxFailures
// within the current window.
func (l *AttemptLimiter) TooManyFailures(ctx context.Context, username string) (bool, error) {
	n, err := l.client.Get(ctx, l.key(username)).Int64()
	if err == redis.Nil {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("limiter check: %w", err)
	}
	return n >= maxFailures, nil
}

// RecordFailure increments the failure counter and refreshes its expiry.
func (l *AttemptLimiter) RecordFailure(ctx context.Context, username string) error {
	key := l.key(username)
	pipe := l.client.TxPipeline()
	pipe.Incr(ctx, key)
	pipe.Expire(ctx, key, failureWindow)
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("limiter record: %w", err)
	}
	return nil
}

// Reset clears the counter after a successful login.
func (l *AttemptLimiter) Reset(ctx context.Context, username string) error {
	return l.client.Del(ctx, l.key(username)).Err()
}

func (l *AttemptLimiter) key(username string) string {
	return "login:fail:" + username
}
