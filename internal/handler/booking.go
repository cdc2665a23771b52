package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"travelapp/internal/domain"
	"travelapp/internal/service"
)

const dateLayout = "2006-01-02"

// BookingHandler handles HTTP requests for bookings.
type BookingHandler struct {
	bookingService *service.BookingService
}

// NewBookingHandler creates a new BookingHandler.
func NewBookingHandler(bookingService *service.BookingService) *BookingHandler {
	return &BookingHandler{bookingService: bookingService}
}

// CreateBookingRequest is the HTTP request body for creating a booking.
type CreateBookingRequest struct {
	ListingID      string `json:"listing_id"`
	StartDate      string `json:"start_date"`
	EndDate        string `json:"end_date"`
	GuestEmail     string `json:"guest_email"`
	GuestFirstName string `json:"guest_first_name"`
	GuestLastName  string `json:"guest_last_name"`
}

// BookingResponse is the HTTP representation of a booking.
type BookingResponse struct {
	ID             string `json:"id"`
	ListingID      string `json:"listing_id"`
	StartDate      string `json:"start_date"`
	EndDate        string `json:"end_date"`
	TotalPrice     string `json:"total_price"`
	GuestEmail     string `json:"guest_email"`
	GuestFirstName string `json:"guest_first_name"`
	GuestLastName  string `json:"guest_last_name"`
	Status         string `json:"status"`
}

// CreateBooking handles POST /v1/bookings
func (h *BookingHandler) CreateBooking(c *gin.Context) {
	var req CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
		return
	}

	startDate, err := time.Parse(dateLayout, req.StartDate)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "start_date must be YYYY-MM-DD"})
		return
	}

	endDate, err := time.Parse(dateLayout, req.EndDate)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "end_date must be YYYY-MM-DD"})
		return
	}

	booking, err := h.bookingService.CreateBooking(c.Request.Context(), service.CreateBookingRequest{
		ListingID:      req.ListingID,
		StartDate:      startDate,
		EndDate:        endDate,
		GuestEmail:     req.GuestEmail,
		GuestFirstName: req.GuestFirstName,
		GuestLastName:  req.GuestLastName,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	respondJSON(c, http.StatusCreated, newBookingResponse(booking))
}

// GetBooking handles GET /v1/bookings/:id
func (h *BookingHandler) GetBooking(c *gin.Context) {
	booking, err := h.bookingService.GetBooking(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	respondJSON(c, http.StatusOK, newBookingResponse(booking))
}

// GetAll handles GET /v1/bookings
func (h *BookingHandler) GetAll(c *gin.Context) {
	bookings, err := h.bookingService.ListBookings(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	resp := make([]BookingResponse, 0, len(bookings))
	for _, b := range bookings {
		resp = append(resp, newBookingResponse(b))
	}

	respondJSON(c, http.StatusOK, resp)
}

func newBookingResponse(b *domain.Booking) BookingResponse {
	return BookingResponse{
		ID:             b.ID,
		ListingID:      b.ListingID,
		StartDate:      b.StartDate.Format(dateLayout),
		EndDate:        b.EndDate.Format(dateLayout),
		TotalPrice:     b.TotalPrice.StringFixed(2),
		GuestEmail:     b.GuestEmail,
		GuestFirstName: b.GuestFirstName,
		GuestLastName:  b.GuestLastName,
		Status:         string(b.Status),
	}
}
