package postgres

import (
	"context"
	"database/sql"
	"errors"

	"travelapp/internal/domain"
	"travelapp/internal/repository"
)

// PaymentRepository is a PostgreSQL implementation of repository.PaymentRepository.
type PaymentRepository struct {
	q Querier
}

// NewPaymentRepository creates a new PostgreSQL payment repository.
func NewPaymentRepository(db *sql.DB) *PaymentRepository {
	return &PaymentRepository{q: db}
}

// NewPaymentRepositoryWithTx creates a payment repository using a transaction.
func NewPaymentRepositoryWithTx(tx *sql.Tx) *PaymentRepository {
	return &PaymentRepository{q: tx}
}

// Create persists a new payment. The transaction_ref column carries a
// unique constraint; a collision surfaces as the driver's error.
func (r *PaymentRepository) Create(ctx context.Context, payment *domain.Payment) error {
	query := `
		INSERT INTO payments (id, booking_id, amount, transaction_ref, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`

	_, err := r.q.ExecContext(ctx, query,
		payment.ID,
		payment.BookingID,
		payment.Amount,
		payment.TransactionRef,
		payment.Status,
		payment.CreatedAt,
		payment.UpdatedAt,
	)

	return err
}

// GetByTransactionRef retrieves a payment by its transaction reference.
func (r *PaymentRepository) GetByTransactionRef(ctx context.Context, txRef string) (*domain.Payment, error) {
	query := `
		SELECT id, booking_id, amount, transaction_ref, status, created_at, updated_at
		FROM payments WHERE transaction_ref = $1
	`

	var payment domain.Payment
	err := r.q.QueryRowContext(ctx, query, txRef).Scan(
		&payment.ID,
		&payment.BookingID,
		&payment.Amount,
		&payment.TransactionRef,
		&payment.Status,
		&payment.CreatedAt,
		&payment.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}

	return &payment, nil
}

// ListByBookingID retrieves all payments recorded for a booking, oldest first.
func (r *PaymentRepository) ListByBookingID(ctx context.Context, bookingID string) ([]*domain.Payment, error) {
	query := `
		SELECT id, booking_id, amount, transaction_ref, status, created_at, updated_at
		FROM payments WHERE booking_id = $1
		ORDER BY created_at
	`

	rows, err := r.q.QueryContext(ctx, query, bookingID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var payments []*domain.Payment
	for rows.Next() {
		var payment domain.Payment
		if err := rows.Scan(
			&payment.ID,
			&payment.BookingID,
			&payment.Amount,
			&payment.TransactionRef,
			&payment.Status,
			&payment.CreatedAt,
			&payment.UpdatedAt,
		); err != nil {
			return nil, err
		}
		payments = append(payments, &payment)
	}

	return payments, rows.Err()
}

// TransitionStatus atomically moves a payment from one status to another.
// The WHERE clause on the current status makes the update a compare-and-swap:
// of any number of concurrent callers, exactly one observes an affected row.
func (r *PaymentRepository) TransitionStatus(ctx context.Context, txRef string, from, to domain.PaymentStatus) (bool, error) {
	query := `
		UPDATE payments SET status = $1, updated_at = NOW()
		WHERE transaction_ref = $2 AND status = $3
	`

	result, err := r.q.ExecContext(ctx, query, to, txRef, from)
	if err != nil {
		return false, err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return false, err
	}

	return rowsAffected == 1, nil
}
