package showtimes

import (
	"cineplex/internal/shared/middleware"

	"github.com/gin-gonic/gin"
)

func SetupShowtimeRoutes(rg *gin.RouterGroup, controller *Controller) {
	rg.GET("/showtimes/:id", controller.GetShowtime)              // GET /api/v1/showtimes/:id
	rg.GET("/movies/:id/showtimes", controller.ShowtimesForMovie) // GET /api/v1/movies/:id/showtimes?date=
	rg.GET("/movies/:id/dates", controller.DatesForMovie)         // GET /api/v1/movies/:id/dates

	admin := rg.Group("/admin/showtimes")
	admin.Use(middleware.JWTAuth(), middleware.RequireBackOffice())
	{
		admin.GET("", controller.Schedule)                    // GET /api/v1/admin/showtimes?date=
		admin.POST("", controller.CreateShowtime)             // POST /api/v1/admin/showtimes
		admin.PATCH("/:id/cancel", controller.CancelShowtime) // PATCH /api/v1/admin/showtimes/:id/cancel
		admin.DELETE("/:id", controller.DeleteShowtime)       // DELETE /api/v1/admin/showtimes/:id
	}
}
