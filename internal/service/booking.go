package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"travelapp/internal/domain"
	"travelapp/internal/repository"
)

// BookingService handles booking operations.
type BookingService struct {
	bookingRepo repository.BookingRepository
	listingRepo repository.ListingRepository
}

// NewBookingService creates a new BookingService.
func NewBookingService(bookingRepo repository.BookingRepository, listingRepo repository.ListingRepository) *BookingService {
	return &BookingService{
		bookingRepo: bookingRepo,
		listingRepo: listingRepo,
	}
}

// CreateBookingRequest contains the parameters for creating a booking.
type CreateBookingRequest struct {
	ListingID      string
	StartDate      time.Time
	EndDate        time.Time
	GuestEmail     string
	GuestFirstName string
	GuestLastName  string
}

// CreateBooking creates a booking for a listing. The total price is fixed
// here, at listing price times nights; payments charge exactly this amount.
func (s *BookingService) CreateBooking(ctx context.Context, req CreateBookingRequest) (*domain.Booking, error) {
	if req.ListingID == "" {
		return nil, ErrInvalidListingID
	}
	if req.GuestEmail == "" {
		return nil, ErrInvalidGuestEmail
	}

	nights := int64(req.EndDate.Sub(req.StartDate).Hours() / 24)
	if nights < 1 {
		return nil, ErrInvalidBookingDates
	}

	listing, err := s.listingRepo.GetByID(ctx, req.ListingID)
	if err != nil {
		return nil, err
	}

	booking := &domain.Booking{
		ID:             uuid.New().String(),
		ListingID:      listing.ID,
		StartDate:      req.StartDate,
		EndDate:        req.EndDate,
		TotalPrice:     listing.PricePerNight.Mul(decimal.NewFromInt(nights)),
		GuestEmail:     req.GuestEmail,
		GuestFirstName: req.GuestFirstName,
		GuestLastName:  req.GuestLastName,
		Status:         domain.BookingStatusPending,
		CreatedAt:      time.Now().UTC(),
	}

	if err := s.bookingRepo.Create(ctx, booking); err != nil {
		return nil, err
	}

	return booking, nil
}

// GetBooking retrieves a booking by ID.
func (s *BookingService) GetBooking(ctx context.Context, bookingID string) (*domain.Booking, error) {
	if bookingID == "" {
		return nil, ErrInvalidBookingID
	}

	return s.bookingRepo.GetByID(ctx, bookingID)
}

// ListBookings retrieves all bookings.
func (s *BookingService) ListBookings(ctx context.Context) ([]*domain.Booking, error) {
	return s.bookingRepo.GetAll(ctx)
}
