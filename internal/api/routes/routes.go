package routes

import (
	"net/http"

	"movie-catalog-backend/internal/api/handlers"
	"movie-catalog-backend/internal/api/middleware"
	"movie-catalog-backend/internal/config"
	"movie-catalog-backend/internal/repository"
	"movie-catalog-backend/internal/service"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"
)

// SetupRoutes configures all the routes for the application
func SetupRoutes(db *gorm.DB, cfg *config.Config) *gin.Engine {
	// Create router
	router := gin.New()

	// Add middleware
	router.Use(middleware.RequestID())
	router.Use(middleware.Logger())
	router.Use(middleware.Recovery())
	router.Use(middleware.CORS(cfg))
	if cfg.RateLimitEnabled {
		router.Use(middleware.RateLimit(cfg.RateLimitRPS, cfg.RateLimitBurst))
	}

	// Initialize validator
	validator := service.NewValidator()

	// Initialize repositories
	movieRepo := repository.NewMovieRepository(db)

	// Initialize services
	movieService := service.NewMovieService(movieRepo, validator)

	// Initialize handlers
	healthHandler := handlers.NewHealthHandler(db)
	movieHandler := handlers.NewMovieHandler(movieService)

	registerHealthRoutes(router, healthHandler)

	// Swagger documentation route
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Movie routes
	movies := router.Group("/movies")
	{
		movies.GET("", movieHandler.ListMovies)
		movies.POST("", movieHandler.CreateMovie)
		movies.GET("/:id", movieHandler.GetMovie)
		movies.PATCH("/:name", movieHandler.UpdateMovie)
	}
	router.GET("/movie", movieHandler.SearchMovies)

	router.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{
			"error":      "Endpoint not found",
			"path":       c.Request.URL.Path,
			"method":     c.Request.Method,
			"request_id": middleware.GetRequestID(c),
		})
	})

	return router
}

// registerHealthRoutes mounts the liveness and health endpoints
func registerHealthRoutes(router *gin.Engine, h *handlers.HealthHandler) {
	router.GET("/", h.Root)
	router.GET("/health", h.Health)
	router.GET("/health/ready", h.Ready)
	router.GET("/health/live", h.Live)
}
