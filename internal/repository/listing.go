package repository

import (
	"context"

	"travelapp/internal/domain"
)

// ListingRepository defines the persistence operations for listings.
type ListingRepository interface {
	// Create persists a new listing.
	Create(ctx context.Context, listing *domain.Listing) error

	// GetByID retrieves a listing by ID. Returns ErrNotFound if the
	// listing does not exist.
	GetByID(ctx context.Context, id string) (*domain.Listing, error)

	// GetAll retrieves all listings.
	GetAll(ctx context.Context) ([]*domain.Listing, error)
}
