package service

import "errors"

var (
	// ErrInvalidBookingID is returned when booking ID is empty.
	ErrInvalidBookingID = errors.New("invalid booking id")

	// ErrInvalidListingID is returned when listing ID is empty.
	ErrInvalidListingID = errors.New("invalid listing id")

	// ErrInvalidListingTitle is returned when a listing title is empty.
	ErrInvalidListingTitle = errors.New("invalid listing title")

	// ErrInvalidListingPrice is returned when a listing price is not positive.
	ErrInvalidListingPrice = errors.New("invalid listing price")

	// ErrInvalidGuestEmail is returned when a booking has no guest email.
	ErrInvalidGuestEmail = errors.New("invalid guest email")

	// ErrInvalidBookingDates is returned when a booking's date range does
	// not span at least one night.
	ErrInvalidBookingDates = errors.New("invalid booking dates")

	// ErrMissingTransactionRef is returned when a verification request
	// carries no transaction reference.
	ErrMissingTransactionRef = errors.New("missing transaction reference")

	// ErrVerificationPending is returned when the gateway has not reached
	// a terminal state for the transaction yet. The payment stays pending
	// and verification can be retried.
	ErrVerificationPending = errors.New("payment not yet confirmed by gateway")
)
