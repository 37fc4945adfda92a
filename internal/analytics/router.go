package analytics

import (
	"cineplex/internal/shared/middleware"

	"github.com/gin-gonic/gin"
)

func SetupAnalyticsRoutes(rg *gin.RouterGroup, controller Controller) {
	admin := rg.Group("/admin/analytics")
	admin.Use(middleware.JWTAuth())
	admin.Use(middleware.RequireBackOffice())

	admin.GET("/dashboard", controller.GetDashboard) // Revenue, bookings by status, movies, today's showtimes, users
	admin.GET("/reports", controller.GetReports)     // Charts over the last ?days=7 (max 90)
}
