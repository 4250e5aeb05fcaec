package api

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"

	"metamorfose-backend/config"
	"metamorfose-backend/docs"
	"metamorfose-backend/internal/mw"
	"metamorfose-backend/internal/service"
)

// NewRouter creates and configures a new Gin router.
func NewRouter(cfg *config.ServerConfig, svc *service.Service) *gin.Engine {
	r := gin.New()
	r.Use(gin.Logger(), mw.Recovery())

	if len(cfg.CORSOrigins) > 0 {
		r.Use(cors.New(cors.Config{
			AllowOrigins: cfg.CORSOrigins,
			AllowMethods: []string{"GET", "POST", "OPTIONS"},
			AllowHeaders: []string{"Content-Type"},
		}))
	}

	handler := NewHandler(svc)
	docs.SwaggerInfo.BasePath = cfg.BasePath

	api := r.Group(cfg.BasePath)
	api.Use(mw.RateLimiter(rate.Limit(cfg.RateLimitPerSec), cfg.RateLimitBurst), mw.ErrorHandler())
	{
		dashboard := api.Group("/dashboard/plants")
		dashboard.GET("", handler.GetAllPlants)
		dashboard.GET("/user/:userId", handler.GetUserPlants)
		dashboard.GET("/:plantId/health", handler.GetPlantHealth)
		dashboard.GET("/:plantId/status", handler.GetPlantStatus)

		monitoring := api.Group("/monitoring")
		monitoring.POST("/alerts", handler.RegisterAllAlerts)
		monitoring.POST("/alerts/:plantId", handler.RegisterPlantAlerts)
		monitoring.POST("/process/:type", handler.RunProcessing)
		monitoring.POST("/process/:type/async", handler.QueueProcessing)
		monitoring.GET("/jobs", handler.ListJobs)
		monitoring.GET("/jobs/:jobId", handler.GetJob)

		api.GET("/docs/doc.json", GetAPIDocs)
	}

	return r
}
