package app

import (
	"github.com/gin-gonic/gin"
	"github.com/newrelic/go-agent/v3/integrations/nrgin"
	"github.com/newrelic/go-agent/v3/newrelic"
	"github.com/redis/go-redis/v9"

	"travelapp/internal/handler"
	"travelapp/internal/middleware"
)

// RouterDeps contains all dependencies needed for the router.
type RouterDeps struct {
	ListingHandler *handler.ListingHandler
	BookingHandler *handler.BookingHandler
	PaymentHandler *handler.PaymentHandler
	RedisClient    *redis.Client
	NewRelicApp    *newrelic.Application
}

// NewRouter creates a new Gin router with all routes registered.
func NewRouter(deps RouterDeps) *gin.Engine {
	router := gin.New()

	// Global middleware.
	router.Use(gin.Recovery())
	router.Use(gin.Logger())
	router.Use(middleware.CORSMiddleware())

	if deps.NewRelicApp != nil {
		router.Use(nrgin.Middleware(deps.NewRelicApp))
	}

	if deps.RedisClient != nil {
		router.Use(middleware.IdempotencyMiddleware(deps.RedisClient))
	}

	// Health check.
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// API v1 routes.
	v1 := router.Group("/v1")
	{
		// Listing routes.
		listings := v1.Group("/listings")
		{
			listings.POST("", deps.ListingHandler.CreateListing)
			listings.GET("", deps.ListingHandler.GetAll)
			listings.GET("/:id", deps.ListingHandler.GetListing)
		}

		// Booking routes.
		bookings := v1.Group("/bookings")
		{
			bookings.POST("", deps.BookingHandler.CreateBooking)
			bookings.GET("", deps.BookingHandler.GetAll)
			bookings.GET("/:id", deps.BookingHandler.GetBooking)
			bookings.GET("/:id/payments", deps.PaymentHandler.ListBookingPayments)
		}

		// Payment routes. Verify doubles as the gateway's callback target.
		payments := v1.Group("/payments")
		{
			payments.POST("/initiate", deps.PaymentHandler.InitiatePayment)
			payments.GET("/verify", deps.PaymentHandler.VerifyPayment)
		}
	}

	return router
}
