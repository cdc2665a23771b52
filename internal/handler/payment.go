package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"travelapp/internal/domain"
	"travelapp/internal/service"
)

// PaymentHandler handles HTTP requests for payments.
type PaymentHandler struct {
	paymentService *service.PaymentService
}

// NewPaymentHandler creates a new PaymentHandler.
func NewPaymentHandler(paymentService *service.PaymentService) *PaymentHandler {
	return &PaymentHandler{paymentService: paymentService}
}

// InitiatePaymentRequest is the HTTP request body for initiating a payment.
type InitiatePaymentRequest struct {
	BookingID string `json:"booking_id"`
}

// InitiatePaymentResponse is the HTTP response for a successful initiation.
type InitiatePaymentResponse struct {
	Message       string `json:"message"`
	CheckoutURL   string `json:"checkout_url"`
	TransactionID string `json:"transaction_id"`
}

// InitiatePayment handles POST /v1/payments/initiate
func (h *PaymentHandler) InitiatePayment(c *gin.Context) {
	var req InitiatePaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
		return
	}

	if req.BookingID == "" {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "booking_id is required"})
		return
	}

	result, err := h.paymentService.InitiatePayment(c.Request.Context(), req.BookingID)
	if err != nil {
		respondError(c, err)
		return
	}

	respondJSON(c, http.StatusOK, InitiatePaymentResponse{
		Message:       "Payment initiated successfully.",
		CheckoutURL:   result.CheckoutURL,
		TransactionID: result.Payment.TransactionRef,
	})
}

// VerifyPaymentResponse is the HTTP response for a verification request.
type VerifyPaymentResponse struct {
	Message       string `json:"message"`
	Status        string `json:"status"`
	TransactionID string `json:"transaction_id"`
}

// VerifyPayment handles GET /v1/payments/verify
func (h *PaymentHandler) VerifyPayment(c *gin.Context) {
	txRef := c.Query("tx_ref")

	result, err := h.paymentService.VerifyPayment(c.Request.Context(), txRef)
	if err != nil {
		respondError(c, err)
		return
	}

	resp := VerifyPaymentResponse{
		Status:        string(result.Payment.Status),
		TransactionID: result.Payment.TransactionRef,
	}

	// A verification that moved the payment to FAILED is reported as a
	// client-visible failure; repeated calls on an already terminal
	// payment just report the recorded outcome.
	if result.Transitioned && result.Payment.Status == domain.PaymentStatusFailed {
		resp.Message = "Payment failed."
		respondJSON(c, http.StatusBadRequest, resp)
		return
	}

	if result.Payment.Status == domain.PaymentStatusCompleted {
		resp.Message = "Payment verified successfully."
	} else {
		resp.Message = "Payment failed."
	}

	respondJSON(c, http.StatusOK, resp)
}

// ListBookingPayments handles GET /v1/bookings/:id/payments
func (h *PaymentHandler) ListBookingPayments(c *gin.Context) {
	payments, err := h.paymentService.ListBookingPayments(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	resp := make([]PaymentResponse, 0, len(payments))
	for _, p := range payments {
		resp = append(resp, newPaymentResponse(p))
	}

	respondJSON(c, http.StatusOK, resp)
}

// PaymentResponse is the HTTP representation of a payment record.
type PaymentResponse struct {
	ID            string `json:"id"`
	BookingID     string `json:"booking_id"`
	Amount        string `json:"amount"`
	TransactionID string `json:"transaction_id"`
	Status        string `json:"status"`
	CreatedAt     string `json:"created_at"`
	UpdatedAt     string `json:"updated_at"`
}

func newPaymentResponse(p *domain.Payment) PaymentResponse {
	return PaymentResponse{
		ID:            p.ID,
		BookingID:     p.BookingID,
		Amount:        p.Amount.StringFixed(2),
		TransactionID: p.TransactionRef,
		Status:        string(p.Status),
		CreatedAt:     p.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
		UpdatedAt:     p.UpdatedAt.Format("2006-01-02T15:04:05Z07:00"),
	}
}
