package postgres

import (
	"context"
	"database/sql"
	"errors"

	"travelapp/internal/domain"
	"travelapp/internal/repository"
)

// ListingRepository is a PostgreSQL implementation of repository.ListingRepository.
type ListingRepository struct {
	q Querier
}

// NewListingRepository creates a new PostgreSQL listing repository.
func NewListingRepository(db *sql.DB) *ListingRepository {
	return &ListingRepository{q: db}
}

// Create persists a new listing.
func (r *ListingRepository) Create(ctx context.Context, listing *domain.Listing) error {
	query := `
		INSERT INTO listings (id, title, description, location, price_per_night, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`

	_, err := r.q.ExecContext(ctx, query,
		listing.ID,
		listing.Title,
		listing.Description,
		listing.Location,
		listing.PricePerNight,
		listing.CreatedAt,
	)

	return err
}

// GetByID retrieves a listing by ID.
func (r *ListingRepository) GetByID(ctx context.Context, id string) (*domain.Listing, error) {
	query := `
		SELECT id, title, description, location, price_per_night, created_at
		FROM listings WHERE id = $1
	`

	var listing domain.Listing
	err := r.q.QueryRowContext(ctx, query, id).Scan(
		&listing.ID,
		&listing.Title,
		&listing.Description,
		&listing.Location,
		&listing.PricePerNight,
		&listing.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}

	return &listing, nil
}

// GetAll retrieves all listings, newest first.
func (r *ListingRepository) GetAll(ctx context.Context) ([]*domain.Listing, error) {
	query := `
		SELECT id, title, description, location, price_per_night, created_at
		FROM listings
		ORDER BY created_at DESC
	`

	rows, err := r.q.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var listings []*domain.Listing
	for rows.Next() {
		var listing domain.Listing
		if err := rows.Scan(
			&listing.ID,
			&listing.Title,
			&listing.Description,
			&listing.Location,
			&listing.PricePerNight,
			&listing.CreatedAt,
		); err != nil {
			return nil, err
		}
		listings = append(listings, &listing)
	}

	return listings, rows.Err()
}
