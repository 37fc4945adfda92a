package seats

import (
	"cineplex/internal/shared/middleware"

	"github.com/gin-gonic/gin"
)

func SetupSeatRoutes(rg *gin.RouterGroup, controller *Controller) {
	// Seat map, caller's own holds are flagged when a token is present
	rg.GET("/showtimes/:id/seats", middleware.OptionalAuth(), controller.SeatMap) // GET /api/v1/showtimes/:id/seats

	seats := rg.Group("/seats")
	seats.Use(middleware.JWTAuth())
	{
		seats.POST("/hold", controller.HoldSeats)                    // POST /api/v1/seats/hold
		seats.DELETE("/hold/:holdId", controller.ReleaseHold)        // DELETE /api/v1/seats/hold/:holdId
		seats.GET("/hold/:holdId/validate", controller.ValidateHold) // GET /api/v1/seats/hold/:holdId/validate
	}

	users := rg.Group("/users/me")
	users.Use(middleware.JWTAuth())
	{
		users.GET("/holds", controller.GetUserHolds) // GET /api/v1/users/me/holds
	}
}
