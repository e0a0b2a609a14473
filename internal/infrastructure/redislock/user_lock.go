package redislock

import (
	"context"
	"time"

	rd "github.com/redis/go-redis/v9"
)

// Only the submission that set the lock may release it; a TTL bounds the
// hold time if the process dies mid-create.
const luaReleaseIfMatch = `
local lockKey = KEYS[1]
local token = ARGV[1]
if redis.call('GET', lockKey) == token then
  return redis.call('DEL', lockKey)
end
return 0
`

// AcquireCreateLock claims the per-user create slot. A false result means
// another submission by the same user is still in flight.
func AcquireCreateLock(ctx context.Context, rdb *rd.Client, userID, token string, ttl time.Duration) (bool, error) {
	return rdb.SetNX(ctx, CreateLockKey(userID), token, ttl).Result()
}

// ReleaseCreateLockIfMatch releases the slot only when the token matches,
// so a late release cannot drop a newer submission's lock.
func ReleaseCreateLockIfMatch(ctx context.Context, rdb *rd.Client, userID, token string) error {
	_, err := rdb.Eval(ctx, luaReleaseIfMatch, []string{CreateLockKey(userID)}, token).Int()
	return err
}
