package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// PaymentStatus represents the current status of a payment.
type PaymentStatus string

const (
	PaymentStatusPending   PaymentStatus = "PENDING"
	PaymentStatusCompleted PaymentStatus = "COMPLETED"
	PaymentStatusFailed    PaymentStatus = "FAILED"
)

// IsTerminal reports whether the status permits no further transitions.
// A failed payment is retried with a new Payment and a new transaction
// reference, never by reviving the old record.
func (s PaymentStatus) IsTerminal() bool {
	return s == PaymentStatusCompleted || s == PaymentStatusFailed
}

// Payment represents a payment attempt for a booking, correlated with the
// external gateway through TransactionRef. Amount and TransactionRef are
// immutable once the record is persisted; verification only moves Status.
type Payment struct {
	ID             string
	BookingID      string
	Amount         decimal.Decimal
	TransactionRef string
	Status         PaymentStatus
	CreatedAt      time.Time
	UpdatedAt      time.Time
}
