package repository

import (
	"context"

	"travelapp/internal/domain"
)

// PaymentRepository defines the persistence operations for payments.
// The payments table is the authoritative record of every payment attempt;
// rows are never deleted.
type PaymentRepository interface {
	// Create persists a new payment. The transaction reference carries a
	// uniqueness constraint, so a collision surfaces as an error.
	Create(ctx context.Context, payment *domain.Payment) error

	// GetByTransactionRef retrieves a payment by its transaction reference.
	// Returns ErrNotFound if no payment owns the reference.
	GetByTransactionRef(ctx context.Context, txRef string) (*domain.Payment, error)

	// ListByBookingID retrieves all payments recorded for a booking,
	// oldest first.
	ListByBookingID(ctx context.Context, bookingID string) ([]*domain.Payment, error)

	// TransitionStatus atomically moves the payment identified by txRef
	// from one status to another. It reports whether this call performed
	// the transition; false with a nil error means a concurrent caller
	// already moved the payment out of the expected status.
	TransitionStatus(ctx context.Context, txRef string, from, to domain.PaymentStatus) (bool, error)
}
