package concessions

import (
	"cineplex/internal/shared/middleware"

	"github.com/gin-gonic/gin"
)

func SetupConcessionRoutes(rg *gin.RouterGroup, controller *Controller) {
	rg.GET("/concessions", controller.ListItems)             // GET /api/v1/concessions?category=&q=
	rg.GET("/concessions/categories", controller.Categories) // GET /api/v1/concessions/categories

	admin := rg.Group("/admin/concessions")
	admin.Use(middleware.JWTAuth(), middleware.RequireBackOffice())
	{
		admin.GET("", controller.AdminListItems) // GET /api/v1/admin/concessions

		manage := admin.Group("")
		manage.Use(middleware.RequireRoles(middleware.RoleManager, middleware.RoleAdmin))
		{
			manage.PATCH("/:id", controller.UpdateItem) // PATCH /api/v1/admin/concessions/:id
		}
	}
}
