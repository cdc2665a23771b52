package service

import (
	"context"
	"log"
	"time"

	"github.com/google/uuid"

	"travelapp/internal/domain"
	"travelapp/internal/redis"
	"travelapp/internal/repository"
)

// ListingService handles listing operations.
type ListingService struct {
	listingRepo repository.ListingRepository
	cache       redis.CacheStoreInterface
}

// NewListingService creates a new ListingService. cache may be nil.
func NewListingService(listingRepo repository.ListingRepository, cache redis.CacheStoreInterface) *ListingService {
	return &ListingService{
		listingRepo: listingRepo,
		cache:       cache,
	}
}

// CreateListing creates a new listing, assigning its ID and creation time.
func (s *ListingService) CreateListing(ctx context.Context, listing *domain.Listing) (*domain.Listing, error) {
	if listing.Title == "" {
		return nil, ErrInvalidListingTitle
	}
	if !listing.PricePerNight.IsPositive() {
		return nil, ErrInvalidListingPrice
	}

	listing.ID = uuid.New().String()
	listing.CreatedAt = time.Now().UTC()

	if err := s.listingRepo.Create(ctx, listing); err != nil {
		return nil, err
	}

	return listing, nil
}

// GetListing retrieves a listing by ID, reading through the cache.
func (s *ListingService) GetListing(ctx context.Context, listingID string) (*domain.Listing, error) {
	if listingID == "" {
		return nil, ErrInvalidListingID
	}

	if s.cache != nil {
		cached, err := s.cache.GetListing(ctx, listingID)
		if err != nil {
			log.Printf("listing %s: cache read failed: %v", listingID, err)
		} else if cached != nil {
			return cached, nil
		}
	}

	listing, err := s.listingRepo.GetByID(ctx, listingID)
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		if err := s.cache.SetListing(ctx, listing); err != nil {
			log.Printf("listing %s: cache write failed: %v", listingID, err)
		}
	}

	return listing, nil
}

// ListListings retrieves all listings.
func (s *ListingService) ListListings(ctx context.Context) ([]*domain.Listing, error) {
	return s.listingRepo.GetAll(ctx)
}
