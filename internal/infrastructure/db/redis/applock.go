package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const lockTTL = 30 * time.Second

// SubmitLock serializes instructor application submissions per user.
// Key format: applock:<user_id>. The TTL bounds how long a crashed submitter
// can block its own retries.
type SubmitLock struct {
	client *redis.Client
}

// NewSubmitLock creates a SubmitLock wrapping the given Redis client.
func NewSubmitLock(client *redis.Client) *SubmitLock {
	return &SubmitLock{client: client}
}

// Acquire attempts to take the per-user submission lock. Returns false when
// another submission for the same user is already in flight.
func (l *SubmitLock) Acquire(ctx context.Context, userID string) (bool, error) {
	ok, err := l.client.SetNX(ctx, l.key(userID), "1", lockTTL).Result()
	if err != nil {
		return false, fmt.Errorf("acquire submit lock: %w", err)
	}
	return ok, nil
}

// Release frees the per-user submission lock.
func (l *SubmitLock) Release(ctx context.Context, userID string) error {
	return l.client.Del(ctx, l.key(userID)).Err()
}

func (l *SubmitLock) key(userID string) string {
	return fmt.Sprintf("applock:%s", userID)
}
