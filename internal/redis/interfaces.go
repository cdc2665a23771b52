package redis

import (
	"context"
	"time"

	"travelapp/internal/domain"
)

// LockStoreInterface defines the interface for distributed locking.
type LockStoreInterface interface {
	AcquireVerifyLock(ctx context.Context, txRef string, ttl time.Duration) (bool, error)
	ReleaseVerifyLock(ctx context.Context, txRef string) error
}

// CacheStoreInterface defines the interface for entity caching.
type CacheStoreInterface interface {
	GetListing(ctx context.Context, listingID string) (*domain.Listing, error)
	SetListing(ctx context.Context, listing *domain.Listing) error
	InvalidateListing(ctx context.Context, listingID string) error
}

// Ensure concrete types implement interfaces.
var (
	_ LockStoreInterface  = (*LockStore)(nil)
	_ CacheStoreInterface = (*CacheStore)(nil)
)
