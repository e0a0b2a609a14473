package redislock

import "fmt"

// CreateLockKey marks an in-flight create-order submission for a user.
// The key is per user, not per product: the quota is a per-user budget,
// so submissions for different products must serialize too.
func CreateLockKey(userID string) string {
	return fmt.Sprintf("flash_order:create:lock:%s", userID)
}
