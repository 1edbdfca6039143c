package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/fervo-app/fervo-backend-go/internal/config"
	"github.com/fervo-app/fervo-backend-go/internal/handler"
	"github.com/fervo-app/fervo-backend-go/internal/middleware"
)

// Handlers groups the HTTP handlers wired into the router
type Handlers struct {
	Venues   *handler.VenueHandler
	Heatmap  *handler.HeatmapHandler
	Events   *handler.EventHandler
	Checkins *handler.CheckinHandler
}

// SetupRouter builds the gin engine with middleware and routes
func SetupRouter(cfg *config.Config, logger *zap.Logger, h Handlers) *gin.Engine {
	if cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.Logger(logger))
	r.Use(middleware.RateLimit(120, time.Minute))

	// CORS
	r.Use(func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	})

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "ok",
			"message": "Fervo backend is running",
		})
	})

	admin := middleware.AdminAuth(cfg.JWTSecret)

	api := r.Group("/api/v1")
	{
		places := api.Group("/places")
		{
			places.GET("", h.Venues.GetPlaces)
			places.GET("/:id", h.Venues.GetPlace)
			places.GET("/:id/status", h.Venues.GetPlaceStatus)
			places.POST("", admin, h.Venues.CreatePlace)
			places.PUT("/:id/popular-times", admin, h.Venues.PutPopularTimes)
			places.POST("/:id/generate", admin, h.Venues.GeneratePopularTimes)
		}

		heatmap := api.Group("/heatmap")
		{
			heatmap.GET("/live", h.Heatmap.GetLive)
			heatmap.GET("/prediction", h.Heatmap.GetPrediction)
		}

		events := api.Group("/events")
		{
			events.GET("", h.Events.GetEvents)
			events.POST("", h.Events.PostEvent)
			events.PUT("/:id/status", admin, h.Events.PutEventStatus)
		}

		api.GET("/admin/events", admin, h.Events.GetEventsAdmin)
		api.POST("/checkins", h.Checkins.PostCheckin)
	}

	return r
}
