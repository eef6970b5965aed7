package httpgin

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	redisrepo "github.com/kirinyoku/gigbook/internal/repository/redis"
	"github.com/kirinyoku/gigbook/internal/service"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func NewRouter(
	svcs *service.Services,
	limiter *redisrepo.SlidingWindowLimiter,
	logger *slog.Logger,
	middlewares ...gin.HandlerFunc,
) *gin.Engine {
	r := gin.New()

	r.Use(gin.Recovery(), LoggingMiddleware(logger), RequestIDMiddleware(), CORS())
	for _, m := range middlewares {
		if m != nil {
			r.Use(m)
		}
	}

	// Swagger UI
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Observability
	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	rl := RateLimitMiddleware(limiter)

	// Venues
	v := r.Group("/venues")
	{
		v.GET("", handleVenuesBoard(svcs))
		v.POST("/search", handleSearchVenues(svcs))
		v.POST("/advanced-search", handleAdvancedSearchVenues(svcs))
		v.POST("/create", rl, handleCreateVenue(svcs))
		v.GET("/:id", handleGetVenue(svcs))
		v.GET("/:id/edit", handleEditVenueForm(svcs))
		v.POST("/:id/edit", rl, handleEditVenue(svcs))
		v.DELETE("/:id", rl, handleDeleteVenue(svcs))
	}

	// Artists
	a := r.Group("/artists")
	{
		a.GET("", handleArtistsList(svcs))
		a.POST("/search", handleSearchArtists(svcs))
		a.POST("/advanced-search", handleAdvancedSearchArtists(svcs))
		a.POST("/create", rl, handleCreateArtist(svcs))
		a.GET("/:id", handleGetArtist(svcs))
		a.GET("/:id/edit", handleEditArtistForm(svcs))
		a.POST("/:id/edit", rl, handleEditArtist(svcs))
		a.DELETE("/:id", rl, handleDeleteArtist(svcs))

		a.GET("/:id/availability", handleArtistAvailability(svcs))
		a.POST("/:id/availability/create", rl, handleCreateAvailability(svcs))
		a.POST("/:id/availability/:availability_id/delete", rl, handleDeleteAvailability(svcs))
	}

	// Shows
	s := r.Group("/shows")
	{
		s.GET("", handleShowsBoard(svcs))
		s.POST("/create", rl, handleCreateShow(svcs))
	}

	return r
}
