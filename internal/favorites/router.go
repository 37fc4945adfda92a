package favorites

import (
	"cineplex/internal/shared/middleware"

	"github.com/gin-gonic/gin"
)

func SetupFavoriteRoutes(rg *gin.RouterGroup, controller *Controller) {
	mine := rg.Group("/users/me/favorites")
	mine.Use(middleware.JWTAuth())
	{
		mine.GET("", controller.List)               // GET    /api/v1/users/me/favorites
		mine.POST("", controller.Add)               // POST   /api/v1/users/me/favorites
		mine.GET("/:movieId", controller.Status)    // GET    /api/v1/users/me/favorites/:movieId
		mine.DELETE("/:movieId", controller.Remove) // DELETE /api/v1/users/me/favorites/:movieId
	}
}
