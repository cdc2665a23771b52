package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"travelapp/internal/domain"
	"travelapp/internal/service"
)

// ListingHandler handles HTTP requests for listings.
type ListingHandler struct {
	listingService *service.ListingService
}

// NewListingHandler creates a new ListingHandler.
func NewListingHandler(listingService *service.ListingService) *ListingHandler {
	return &ListingHandler{listingService: listingService}
}

// CreateListingRequest is the HTTP request body for creating a listing.
type CreateListingRequest struct {
	Title         string `json:"title"`
	Description   string `json:"description"`
	Location      string `json:"location"`
	PricePerNight string `json:"price_per_night"`
}

// ListingResponse is the HTTP representation of a listing.
type ListingResponse struct {
	ID            string `json:"id"`
	Title         string `json:"title"`
	Description   string `json:"description"`
	Location      string `json:"location"`
	PricePerNight string `json:"price_per_night"`
}

// CreateListing handles POST /v1/listings
func (h *ListingHandler) CreateListing(c *gin.Context) {
	var req CreateListingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
		return
	}

	price, err := decimal.NewFromString(req.PricePerNight)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "price_per_night must be a decimal number"})
		return
	}

	listing, err := h.listingService.CreateListing(c.Request.Context(), &domain.Listing{
		Title:         req.Title,
		Description:   req.Description,
		Location:      req.Location,
		PricePerNight: price,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	respondJSON(c, http.StatusCreated, newListingResponse(listing))
}

// GetListing handles GET /v1/listings/:id
func (h *ListingHandler) GetListing(c *gin.Context) {
	listing, err := h.listingService.GetListing(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	respondJSON(c, http.StatusOK, newListingResponse(listing))
}

// GetAll handles GET /v1/listings
func (h *ListingHandler) GetAll(c *gin.Context) {
	listings, err := h.listingService.ListListings(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	resp := make([]ListingResponse, 0, len(listings))
	for _, l := range listings {
		resp = append(resp, newListingResponse(l))
	}

	respondJSON(c, http.StatusOK, resp)
}

func newListingResponse(l *domain.Listing) ListingResponse {
	return ListingResponse{
		ID:            l.ID,
		Title:         l.Title,
		Description:   l.Description,
		Location:      l.Location,
		PricePerNight: l.PricePerNight.StringFixed(2),
	}
}
