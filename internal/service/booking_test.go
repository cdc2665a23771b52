package service_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"travelapp/internal/domain"
	"travelapp/internal/repository"
	"travelapp/internal/service"
)

// MockListingRepository is a mock implementation of repository.ListingRepository.
type MockListingRepository struct {
	mu       sync.RWMutex
	listings map[string]*domain.Listing
}

// NewMockListingRepository creates a new mock listing repository.
func NewMockListingRepository() *MockListingRepository {
	return &MockListingRepository{listings: make(map[string]*domain.Listing)}
}

// AddListing adds a listing to the mock repository.
func (m *MockListingRepository) AddListing(listing *domain.Listing) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.listings[listing.ID] = listing
}

func (m *MockListingRepository) Create(ctx context.Context, listing *domain.Listing) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.listings[listing.ID] = listing
	return nil
}

func (m *MockListingRepository) GetByID(ctx context.Context, id string) (*domain.Listing, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	listing, ok := m.listings[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	copy := *listing
	return &copy, nil
}

func (m *MockListingRepository) GetAll(ctx context.Context) ([]*domain.Listing, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	result := make([]*domain.Listing, 0, len(m.listings))
	for _, l := range m.listings {
		copy := *l
		result = append(result, &copy)
	}
	return result, nil
}

func newBookingService() (*service.BookingService, *MockBookingRepository, *MockListingRepository) {
	bookingRepo := NewMockBookingRepository()
	listingRepo := NewMockListingRepository()
	listingRepo.AddListing(&domain.Listing{
		ID:            "listing-1",
		Title:         "Lakeside cottage",
		Location:      "Bahir Dar",
		PricePerNight: decimal.RequireFromString("50.00"),
		CreatedAt:     time.Now().UTC(),
	})
	return service.NewBookingService(bookingRepo, listingRepo), bookingRepo, listingRepo
}

func TestCreateBooking_TotalPriceIsNightsTimesRate(t *testing.T) {
	t.Parallel()

	svc, _, _ := newBookingService()

	booking, err := svc.CreateBooking(context.Background(), service.CreateBookingRequest{
		ListingID:  "listing-1",
		StartDate:  time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC),
		EndDate:    time.Date(2026, 9, 4, 0, 0, 0, 0, time.UTC),
		GuestEmail: "alice@example.com",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := decimal.RequireFromString("150.00")
	if !booking.TotalPrice.Equal(want) {
		t.Errorf("expected total %s for 3 nights, got %s", want, booking.TotalPrice)
	}
	if booking.Status != domain.BookingStatusPending {
		t.Errorf("expected PENDING booking, got %s", booking.Status)
	}
}

func TestCreateBooking_RejectsInvalidDateRange(t *testing.T) {
	t.Parallel()

	svc, _, _ := newBookingService()

	start := time.Date(2026, 9, 4, 0, 0, 0, 0, time.UTC)
	_, err := svc.CreateBooking(context.Background(), service.CreateBookingRequest{
		ListingID:  "listing-1",
		StartDate:  start,
		EndDate:    start, // zero nights
		GuestEmail: "alice@example.com",
	})
	if !errors.Is(err, service.ErrInvalidBookingDates) {
		t.Fatalf("expected ErrInvalidBookingDates, got %v", err)
	}
}

func TestCreateBooking_UnknownListing(t *testing.T) {
	t.Parallel()

	svc, _, _ := newBookingService()

	_, err := svc.CreateBooking(context.Background(), service.CreateBookingRequest{
		ListingID:  "no-such-listing",
		StartDate:  time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC),
		EndDate:    time.Date(2026, 9, 2, 0, 0, 0, 0, time.UTC),
		GuestEmail: "alice@example.com",
	})
	if !errors.Is(err, repository.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestCreateBooking_RequiresGuestEmail(t *testing.T) {
	t.Parallel()

	svc, _, _ := newBookingService()

	_, err := svc.CreateBooking(context.Background(), service.CreateBookingRequest{
		ListingID: "listing-1",
		StartDate: time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC),
		EndDate:   time.Date(2026, 9, 2, 0, 0, 0, 0, time.UTC),
	})
	if !errors.Is(err, service.ErrInvalidGuestEmail) {
		t.Fatalf("expected ErrInvalidGuestEmail, got %v", err)
	}
}
