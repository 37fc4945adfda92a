// api/routes/router.go
package routes

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	_ "cineplex/docs"
	"cineplex/internal/analytics"
	"cineplex/internal/auth"
	"cineplex/internal/bookings"
	"cineplex/internal/concessions"
	"cineplex/internal/favorites"
	"cineplex/internal/halls"
	"cineplex/internal/membership"
	"cineplex/internal/movies"
	"cineplex/internal/notifications"
	"cineplex/internal/seats"
	"cineplex/internal/selection"
	"cineplex/internal/shared/config"
	"cineplex/internal/shared/database"
	"cineplex/internal/showtimes"
	"cineplex/internal/users"
	"cineplex/pkg/cache"
	"cineplex/pkg/logger"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// Router holds all route dependencies
type Router struct {
	config    *config.Config
	db        *database.DB
	cache     cache.Service
	publisher notifications.Publisher

	// services shared between route groups
	userRepo    users.Repository
	users       users.Service
	movies      movies.Service
	halls       halls.Service
	showtimes   showtimes.Service
	seats       seats.Service
	concessions concessions.Service
	selection   selection.Service
	membership  membership.Service
	favorites   favorites.Service
}

// NewRouter creates a new router instance
func NewRouter(cfg *config.Config, db *database.DB, cacheService cache.Service, publisher notifications.Publisher) *Router {
	return &Router{
		config:    cfg,
		db:        db,
		cache:     cacheService,
		publisher: publisher,
	}
}

// SetupRoutes configures all application routes
func (r *Router) SetupRoutes(engine *gin.Engine) {
	r.setupHealthRoutes(engine)
	engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	r.buildServices()

	api := engine.Group(r.config.GetAPIBasePath())
	{
		r.setupAuthRoutes(api)

		// Catalogue
		users.SetupUserRoutes(api, users.NewController(r.users))
		movies.SetupMovieRoutes(api, movies.NewController(r.movies))
		halls.SetupHallRoutes(api, halls.NewController(r.halls))
		showtimes.SetupShowtimeRoutes(api, showtimes.NewController(r.showtimes))
		concessions.SetupConcessionRoutes(api, concessions.NewController(r.concessions))

		// Booking flow
		seats.SetupSeatRoutes(api, seats.NewController(r.seats))
		selection.SetupSelectionRoutes(api, selection.NewController(r.selection))
		membership.SetupMembershipRoutes(api, membership.NewController(r.membership))
		favorites.SetupFavoriteRoutes(api, favorites.NewController(r.favorites))
		r.setupBookingRoutes(api)

		// Back office
		r.setupAnalyticsRoutes(api)
	}
}

// buildServices wires the catalogue and booking services in dependency order
func (r *Router) buildServices() {
	sql := r.db.GetSQL()

	r.userRepo = users.NewRepository(sql)
	r.users = users.NewService(r.userRepo)

	movieRepo := movies.NewRepository(sql)
	hallRepo := halls.NewRepository(sql)
	r.movies = movies.NewService(movieRepo, r.cache)
	r.halls = halls.NewService(hallRepo, r.cache)

	r.showtimes = showtimes.NewService(showtimes.NewRepository(sql), movieRepo, hallRepo, r.config.CinemaLocation())
	r.movies.SetShowtimeChecker(r.showtimes)

	r.seats = seats.NewService(seats.NewRepository(sql), r.newLocker(), r.showtimes, r.halls, r.config)
	r.showtimes.SetSeatLifecycle(r.seats)

	r.concessions = concessions.NewService(concessions.NewRepository(sql), r.cache)
	r.selection = selection.NewService(
		selection.NewCacheStore(r.cache, r.config.Redis.SessionTTL),
		r.movies, r.showtimes, r.seats, r.halls, r.concessions, r.users, r.config,
	)
	r.membership = membership.NewService(membership.NewRepository(sql), r.userRepo)
	r.favorites = favorites.NewService(favorites.NewRepository(sql), movieRepo)
}

// newLocker picks the Lua-backed hold locker when Redis is available
func (r *Router) newLocker() seats.Locker {
	client := r.db.GetRedisClient()
	if client == nil {
		logger.GetDefault().Info("Seat holds kept in process memory")
		return seats.NewMemoryLocker()
	}

	locker := seats.NewRedisLocker(client)
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := locker.PreloadScripts(ctx); err != nil {
		// scripts are loaded on first use anyway
		logger.GetDefault().Warn("Failed to preload seat hold scripts", slog.Any("error", err))
	}
	return locker
}

// setupHealthRoutes sets up health check and system status routes
func (r *Router) setupHealthRoutes(engine *gin.Engine) {
	engine.GET("/health", func(c *gin.Context) {
		if err := r.db.HealthCheck(c.Request.Context()); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{
				"status":    "unhealthy",
				"error":     err.Error(),
				"timestamp": time.Now(),
				"service":   "cineplex-backend",
			})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"status":    "healthy",
			"timestamp": time.Now(),
			"service":   "cineplex-backend",
		})
	})

	engine.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"message": "pong",
			"version": r.config.APIVersion,
		})
	})

	engine.GET("/status", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":      "operational",
			"api_version": r.config.APIVersion,
			"database":    r.config.Database.Driver,
			"redis":       r.db.GetRedisClient() != nil,
			"kafka":       r.config.Kafka.Enabled,
			"timestamp":   time.Now(),
		})
	})
}

// setupAuthRoutes configures authentication routes
func (r *Router) setupAuthRoutes(rg *gin.RouterGroup) {
	authService := auth.NewService(r.userRepo, r.cache, r.config)
	authController := auth.NewController(authService)
	authRouter := auth.NewRouter(authController, r.config)

	authRouter.SetupRoutes(rg)
}

// setupBookingRoutes configures checkout, cancellation and booking history routes
func (r *Router) setupBookingRoutes(rg *gin.RouterGroup) {
	bookingService := bookings.NewService(bookings.NewRepository(r.db.GetSQL()), bookings.Deps{
		Selection:   r.selection,
		Seats:       r.seats,
		Showtimes:   r.showtimes,
		Movies:      r.movies,
		Users:       r.users,
		Concessions: r.concessions,
		Membership:  r.membership,
		Publisher:   r.publisher,
		Cache:       r.cache,
	}, r.config)

	bookings.SetupBookingRoutes(rg, bookings.NewController(bookingService))
}

// setupAnalyticsRoutes configures the back-office dashboard and reports
func (r *Router) setupAnalyticsRoutes(rg *gin.RouterGroup) {
	analyticsService := analytics.NewService(analytics.NewRepository(r.db.GetSQL()), r.cache, r.config)
	analytics.SetupAnalyticsRoutes(rg, analytics.NewController(analyticsService))
}
