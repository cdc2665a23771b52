package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// LockStore handles distributed locking in Redis.
type LockStore struct {
	client *redis.Client
}

// NewLockStore creates a new LockStore.
func NewLockStore(client *redis.Client) *LockStore {
	return &LockStore{client: client}
}

// AcquireVerifyLock attempts to acquire the verification lock for the given
// transaction reference. Returns true if the lock was acquired, false if a
// concurrent verification already holds it. The TTL guards against a holder
// that dies before releasing.
func (s *LockStore) AcquireVerifyLock(ctx context.Context, txRef string, ttl time.Duration) (bool, error) {
	key := fmt.Sprintf("lock:payment:verify:%s", txRef)

	ok, err := s.client.SetNX(ctx, key, "1", ttl).Result()
	if err != nil {
		return false, err
	}

	return ok, nil
}

// ReleaseVerifyLock releases the verification lock for the given
// transaction reference.
func (s *LockStore) ReleaseVerifyLock(ctx context.Context, txRef string) error {
	key := fmt.Sprintf("lock:payment:verify:%s", txRef)

	return s.client.Del(ctx, key).Err()
}
