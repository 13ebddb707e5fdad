package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/darleneayinkamiye/mobility-backend-go/internal/handler"
	"github.com/darleneayinkamiye/mobility-backend-go/internal/middleware"
)

// Handlers groups the HTTP handlers wired into the router
type Handlers struct {
	Ingest     *handler.IngestHandler
	Trip       *handler.TripHandler
	Zone       *handler.ZoneHandler
	Stats      *handler.StatsHandler
	Validation *handler.ValidationHandler
	Export     *handler.ExportHandler
}

// SetupRouter builds the gin engine with middleware and all routes
func SetupRouter(h Handlers) *gin.Engine {
	r := gin.New()
	r.Use(middleware.Logger())
	r.Use(gin.Recovery())

	// CORS middleware
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

	// Health check
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "ok",
			"message": "Mobility Backend API is running",
		})
	})

	api := r.Group("/api/v1")
	{
		// Ingest runs read and rewrite the whole dataset, keep them slow
		ingest := api.Group("/ingest", middleware.RateLimit(5, time.Minute))
		{
			ingest.POST("/zones", h.Ingest.LoadZones)
			ingest.POST("/run", h.Ingest.RunCleaning)
			ingest.GET("/runs", h.Ingest.GetRuns)
			ingest.GET("/runs/latest", h.Ingest.GetLatestRun)
		}

		trips := api.Group("/trips")
		{
			trips.GET("", h.Trip.GetTrips)
			trips.GET("/:id", h.Trip.GetTripByID)
		}

		zones := api.Group("/zones")
		{
			zones.GET("", h.Zone.GetZones)
			zones.GET("/top", h.Zone.GetTopPickupZones)
		}

		stats := api.Group("/stats")
		{
			stats.GET("/summary", h.Stats.GetOverallSummary)
			stats.GET("/hourly", h.Stats.GetHourlySummary)
			stats.GET("/boroughs", h.Stats.GetBoroughBreakdown)
			stats.GET("/time-of-day", h.Stats.GetTimeOfDayDemand)
			stats.GET("/daily-pattern", h.Stats.GetDailyPattern)
			stats.GET("/peak", h.Stats.GetPeakOffPeak)
			stats.GET("/speed-profile", h.Stats.GetHourlySpeedProfile)
		}

		api.GET("/validation/report", h.Validation.GetReport)

		api.POST("/exports", middleware.RateLimit(5, time.Minute), h.Export.ExportAll)
	}

	return r
}
