package halls

import (
	"cineplex/internal/shared/middleware"

	"github.com/gin-gonic/gin"
)

func SetupHallRoutes(rg *gin.RouterGroup, controller *Controller) {
	rg.GET("/cinemas", controller.ListCinemas)          // GET /api/v1/cinemas
	rg.GET("/halls/:id/seats", controller.GetHallSeats) // GET /api/v1/halls/:id/seats

	admin := rg.Group("/admin/halls")
	admin.Use(middleware.JWTAuth(), middleware.RequireRoles(middleware.RoleManager, middleware.RoleAdmin))
	{
		admin.PATCH("/:id/status", controller.UpdateHallStatus) // PATCH /api/v1/admin/halls/:id/status
	}
}
