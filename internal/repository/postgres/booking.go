package postgres

import (
	"context"
	"database/sql"
	"errors"

	"travelapp/internal/domain"
	"travelapp/internal/repository"
)

// BookingRepository is a PostgreSQL implementation of repository.BookingRepository.
type BookingRepository struct {
	q Querier
}

// NewBookingRepository creates a new PostgreSQL booking repository.
func NewBookingRepository(db *sql.DB) *BookingRepository {
	return &BookingRepository{q: db}
}

// Create persists a new booking.
func (r *BookingRepository) Create(ctx context.Context, booking *domain.Booking) error {
	query := `
		INSERT INTO bookings (id, listing_id, start_date, end_date, total_price,
			guest_email, guest_first_name, guest_last_name, status, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	`

	_, err := r.q.ExecContext(ctx, query,
		booking.ID,
		booking.ListingID,
		booking.StartDate,
		booking.EndDate,
		booking.TotalPrice,
		booking.GuestEmail,
		booking.GuestFirstName,
		booking.GuestLastName,
		booking.Status,
		booking.CreatedAt,
	)

	return err
}

// GetByID retrieves a booking by ID.
func (r *BookingRepository) GetByID(ctx context.Context, id string) (*domain.Booking, error) {
	query := `
		SELECT id, listing_id, start_date, end_date, total_price,
			guest_email, guest_first_name, guest_last_name, status, created_at
		FROM bookings WHERE id = $1
	`

	var booking domain.Booking
	err := r.q.QueryRowContext(ctx, query, id).Scan(
		&booking.ID,
		&booking.ListingID,
		&booking.StartDate,
		&booking.EndDate,
		&booking.TotalPrice,
		&booking.GuestEmail,
		&booking.GuestFirstName,
		&booking.GuestLastName,
		&booking.Status,
		&booking.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}

	return &booking, nil
}

// GetAll retrieves all bookings, newest first.
func (r *BookingRepository) GetAll(ctx context.Context) ([]*domain.Booking, error) {
	query := `
		SELECT id, listing_id, start_date, end_date, total_price,
			guest_email, guest_first_name, guest_last_name, status, created_at
		FROM bookings
		ORDER BY created_at DESC
	`

	rows, err := r.q.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var bookings []*domain.Booking
	for rows.Next() {
		var booking domain.Booking
		if err := rows.Scan(
			&booking.ID,
			&booking.ListingID,
			&booking.StartDate,
			&booking.EndDate,
			&booking.TotalPrice,
			&booking.GuestEmail,
			&booking.GuestFirstName,
			&booking.GuestLastName,
			&booking.Status,
			&booking.CreatedAt,
		); err != nil {
			return nil, err
		}
		bookings = append(bookings, &booking)
	}

	return bookings, rows.Err()
}
