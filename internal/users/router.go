package users

import (
	"cineplex/internal/shared/middleware"

	"github.com/gin-gonic/gin"
)

func SetupUserRoutes(rg *gin.RouterGroup, controller *Controller) {
	admin := rg.Group("/admin/users")
	admin.Use(middleware.JWTAuth(), middleware.RequireAdmin())
	{
		admin.GET("", controller.ListUsers)         // GET /api/v1/admin/users?q=&role=
		admin.GET("/:id", controller.GetUser)       // GET /api/v1/admin/users/:id
		admin.POST("", controller.CreateUser)       // POST /api/v1/admin/users
		admin.PUT("/:id", controller.UpdateUser)    // PUT /api/v1/admin/users/:id
		admin.DELETE("/:id", controller.DeleteUser) // DELETE /api/v1/admin/users/:id
	}
}
