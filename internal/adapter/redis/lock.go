package redis

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/redis/go-redis/v9"
)

const lockPrefix = "insurance-admin:recalc:"

// DailyLock claims one key per UTC calendar day so that only one replica
// runs that day's batch.
type DailyLock struct {
	client *redis.Client
	ttl    time.Duration
	owner  string
}

// NewDailyLock creates a lock whose keys expire after ttl.
func NewDailyLock(client *redis.Client, ttl time.Duration) *DailyLock {
	host, _ := os.Hostname()
	return &DailyLock{
		client: client,
		ttl:    ttl,
		owner:  fmt.Sprintf("%s:%d", host, os.Getpid()),
	}
}

// Key returns the lock key for the UTC date of day.
func Key(day time.Time) string {
	return lockPrefix + day.UTC().Format(time.DateOnly)
}

// Acquire reports whether this process claimed day. A false result with nil
// error means another process holds it.
func (l *DailyLock) Acquire(ctx context.Context, day time.Time) (bool, error) {
	ok, err := l.client.SetNX(ctx, Key(day), l.owner, l.ttl).Result()
	if err != nil {
		return false, fmt.Errorf("acquire %s: %w", Key(day), err)
	}
	return ok, nil
}
