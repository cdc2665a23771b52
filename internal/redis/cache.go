package redis

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"

	"travelapp/internal/domain"
)

// ListingCacheTTL bounds how stale a cached listing may get. Listings
// change rarely, so a generous TTL is fine.
const ListingCacheTTL = 60 * time.Second

const listingCachePrefix = "cache:listing:"

// CacheStore handles entity caching in Redis.
type CacheStore struct {
	client *redis.Client
}

// NewCacheStore creates a new CacheStore.
func NewCacheStore(client *redis.Client) *CacheStore {
	return &CacheStore{client: client}
}

// GetListing retrieves a listing from cache. A nil listing with a nil error
// is a cache miss.
func (s *CacheStore) GetListing(ctx context.Context, listingID string) (*domain.Listing, error) {
	key := listingCachePrefix + listingID

	data, err := s.client.Get(ctx, key).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, nil
		}
		return nil, err
	}

	var listing domain.Listing
	if err := json.Unmarshal(data, &listing); err != nil {
		return nil, err
	}

	return &listing, nil
}

// SetListing stores a listing in cache.
func (s *CacheStore) SetListing(ctx context.Context, listing *domain.Listing) error {
	key := listingCachePrefix + listing.ID

	data, err := json.Marshal(listing)
	if err != nil {
		return err
	}

	return s.client.Set(ctx, key, data, ListingCacheTTL).Err()
}

// InvalidateListing removes a listing from cache.
func (s *CacheStore) InvalidateListing(ctx context.Context, listingID string) error {
	key := listingCachePrefix + listingID

	return s.client.Del(ctx, key).Err()
}
