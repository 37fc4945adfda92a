package bookings

import (
	"cineplex/internal/shared/middleware"

	"github.com/gin-gonic/gin"
)

// SetupBookingRoutes configures all booking-related routes
func SetupBookingRoutes(rg *gin.RouterGroup, controller *Controller) {
	bookings := rg.Group("/bookings")
	bookings.Use(middleware.JWTAuth())
	{
		bookings.POST("/checkout", controller.Checkout)        // POST /api/v1/bookings/checkout
		bookings.GET("/:id", controller.GetBooking)            // GET  /api/v1/bookings/:id
		bookings.POST("/:id/cancel", controller.CancelBooking) // POST /api/v1/bookings/:id/cancel
	}

	me := rg.Group("/users/me")
	me.Use(middleware.JWTAuth())
	{
		me.GET("/bookings", controller.GetUserBookings) // GET /api/v1/users/me/bookings?status=&limit=&offset=
	}

	rg.POST("/pricing/refund-quote", middleware.OptionalAuth(), controller.RefundQuote) // POST /api/v1/pricing/refund-quote

	admin := rg.Group("/admin/bookings")
	admin.Use(middleware.JWTAuth(), middleware.RequireBackOffice())
	{
		admin.GET("", controller.AdminListBookings)             // GET  /api/v1/admin/bookings?q=&status=&limit=&offset=
		admin.POST("/:id/complete", controller.CompleteBooking) // POST /api/v1/admin/bookings/:id/complete
	}
}

// Checkout flow:
// 1. Build a selection with /selection (showtime, seats, ticket types, cart, promo)
// 2. Hold the same seats with POST /seats/hold
// 3. POST /bookings/checkout { "hold_id": "...", "payment_method": "Credit Card", "card": {...} }
// 4. Seats become booked, stock is taken, points are credited, the hold is released
// 5. POST /bookings/:id/cancel refunds by lead time: >24h 100%, >12h 75%, >6h 50%
