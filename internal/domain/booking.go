package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// BookingStatus represents the current status of a booking.
type BookingStatus string

const (
	BookingStatusPending   BookingStatus = "PENDING"
	BookingStatusConfirmed BookingStatus = "CONFIRMED"
	BookingStatusCancelled BookingStatus = "CANCELLED"
)

// Booking represents a stay at a listing. TotalPrice is fixed when the
// booking is created and is the amount every payment for it must charge.
type Booking struct {
	ID             string
	ListingID      string
	StartDate      time.Time
	EndDate        time.Time
	TotalPrice     decimal.Decimal
	GuestEmail     string
	GuestFirstName string
	GuestLastName  string
	Status         BookingStatus
	CreatedAt      time.Time
}
