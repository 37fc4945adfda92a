package movies

import (
	"cineplex/internal/shared/middleware"

	"github.com/gin-gonic/gin"
)

func SetupMovieRoutes(rg *gin.RouterGroup, controller *Controller) {
	public := rg.Group("/movies")
	{
		public.GET("", controller.ListMovies)             // GET /api/v1/movies?genre=&language=&status=&q=&sort=
		public.GET("/now-showing", controller.NowShowing) // GET /api/v1/movies/now-showing
		public.GET("/coming-soon", controller.ComingSoon) // GET /api/v1/movies/coming-soon
		public.GET("/:id", controller.GetMovie)           // GET /api/v1/movies/:id
	}
	rg.GET("/genres", controller.GetGenres) // GET /api/v1/genres

	admin := rg.Group("/admin/movies")
	admin.Use(middleware.JWTAuth(), middleware.RequireBackOffice())
	{
		admin.GET("", controller.AdminListMovies) // GET /api/v1/admin/movies?q=&status=

		manage := admin.Group("")
		manage.Use(middleware.RequireRoles(middleware.RoleManager, middleware.RoleAdmin))
		manage.POST("", controller.CreateMovie)       // POST /api/v1/admin/movies
		manage.PUT("/:id", controller.UpdateMovie)    // PUT /api/v1/admin/movies/:id
		manage.DELETE("/:id", controller.DeleteMovie) // DELETE /api/v1/admin/movies/:id
	}
}
