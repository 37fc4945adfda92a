package selection

import (
	"cineplex/internal/shared/middleware"

	"github.com/gin-gonic/gin"
)

func SetupSelectionRoutes(rg *gin.RouterGroup, controller *Controller) {
	sel := rg.Group("/selection")
	sel.Use(middleware.JWTAuth())
	{
		sel.GET("", controller.GetSelection)                            // GET    /api/v1/selection
		sel.DELETE("", controller.ClearSelection)                       // DELETE /api/v1/selection
		sel.PUT("/movie", controller.SelectMovie)                       // PUT    /api/v1/selection/movie
		sel.PUT("/showtime", controller.SelectShowtime)                 // PUT    /api/v1/selection/showtime
		sel.PUT("/promo", controller.SetPromo)                          // PUT    /api/v1/selection/promo
		sel.POST("/seats/:seatId/toggle", controller.ToggleSeat)        // POST   /api/v1/selection/seats/:seatId/toggle
		sel.PUT("/seats/:seatId/ticket-type", controller.SetTicketType) // PUT    /api/v1/selection/seats/:seatId/ticket-type
		sel.POST("/cart/:itemId", controller.AddToCart)                 // POST   /api/v1/selection/cart/:itemId
		sel.PUT("/cart/:itemId", controller.SetCartQuantity)            // PUT    /api/v1/selection/cart/:itemId
		sel.DELETE("/cart/:itemId", controller.RemoveFromCart)          // DELETE /api/v1/selection/cart/:itemId
		sel.GET("/quote", controller.GetQuote)                          // GET    /api/v1/selection/quote
	}
}
