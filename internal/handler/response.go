package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"travelapp/internal/gateway"
	"travelapp/internal/repository"
	"travelapp/internal/service"
)

// ErrorResponse represents an error response. Details carries the
// gateway's diagnostic payload when the remote call was the failure.
type ErrorResponse struct {
	Error   string          `json:"error"`
	Details json.RawMessage `json:"details,omitempty"`
}

// respondError sends an error response with the appropriate HTTP status code.
func respondError(c *gin.Context, err error) {
	var gwErr *gateway.Error
	if errors.As(err, &gwErr) {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error:   gatewayErrorMessage(gwErr),
			Details: gwErr.Detail,
		})
		return
	}

	code := mapErrorToHTTPStatus(err)
	if code == http.StatusInternalServerError {
		// Internal details stay in the logs, not in the response.
		c.JSON(code, ErrorResponse{Error: "internal server error"})
		return
	}

	c.JSON(code, ErrorResponse{Error: err.Error()})
}

// respondJSON sends a JSON response with the given status code.
func respondJSON(c *gin.Context, code int, data any) {
	c.JSON(code, data)
}

// gatewayErrorMessage keeps the caller-facing wording stable per operation.
func gatewayErrorMessage(err *gateway.Error) string {
	if err.Operation == "initialize" {
		return "Failed to initialize payment."
	}
	return "Verification failed."
}

// mapErrorToHTTPStatus maps service/repository errors to HTTP status codes.
func mapErrorToHTTPStatus(err error) int {
	switch {
	// Not found errors
	case errors.Is(err, repository.ErrNotFound):
		return http.StatusNotFound

	// Validation errors - Bad Request
	case errors.Is(err, service.ErrInvalidBookingID),
		errors.Is(err, service.ErrInvalidListingID),
		errors.Is(err, service.ErrInvalidListingTitle),
		errors.Is(err, service.ErrInvalidListingPrice),
		errors.Is(err, service.ErrInvalidGuestEmail),
		errors.Is(err, service.ErrInvalidBookingDates),
		errors.Is(err, service.ErrMissingTransactionRef),
		errors.Is(err, service.ErrVerificationPending):
		return http.StatusBadRequest

	// Default to internal server error
	default:
		return http.StatusInternalServerError
	}
}
