package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Listing represents a property available for booking.
type Listing struct {
	ID            string
	Title         string
	Description   string
	Location      string
	PricePerNight decimal.Decimal
	CreatedAt     time.Time
}
