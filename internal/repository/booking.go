package repository

import (
	"context"

	"travelapp/internal/domain"
)

// BookingRepository defines the persistence operations for bookings.
// The payment orchestrator only ever reads from it.
type BookingRepository interface {
	// Create persists a new booking.
	Create(ctx context.Context, booking *domain.Booking) error

	// GetByID retrieves a booking by ID. Returns ErrNotFound if the
	// booking does not exist.
	GetByID(ctx context.Context, id string) (*domain.Booking, error)

	// GetAll retrieves all bookings.
	GetAll(ctx context.Context) ([]*domain.Booking, error)
}
