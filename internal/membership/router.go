package membership

import (
	"cineplex/internal/shared/middleware"

	"github.com/gin-gonic/gin"
)

func SetupMembershipRoutes(rg *gin.RouterGroup, controller *Controller) {
	rg.GET("/rewards", middleware.OptionalAuth(), controller.ListRewards) // GET /api/v1/rewards

	member := rg.Group("")
	member.Use(middleware.JWTAuth())
	{
		member.GET("/membership", controller.GetMembership)   // GET  /api/v1/membership
		member.GET("/membership/history", controller.History) // GET  /api/v1/membership/history
		member.POST("/rewards/:id/redeem", controller.Redeem) // POST /api/v1/rewards/:id/redeem
	}
}
