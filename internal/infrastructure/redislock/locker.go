package redislock

import (
	"context"
	"time"

	rd "github.com/redis/go-redis/v9"
)

// RedisCreateLocker adapts the lock primitives to the locker interface the
// order flow expects.
type RedisCreateLocker struct {
	rdb *rd.Client
}

func NewRedisCreateLocker(rdb *rd.Client) *RedisCreateLocker {
	return &RedisCreateLocker{rdb: rdb}
}

func (l *RedisCreateLocker) Acquire(ctx context.Context, userID, token string, ttl time.Duration) (bool, error) {
	return AcquireCreateLock(ctx, l.rdb, userID, token, ttl)
}

func (l *RedisCreateLocker) Release(ctx context.Context, userID, token string) error {
	return ReleaseCreateLockIfMatch(ctx, l.rdb, userID, token)
}
