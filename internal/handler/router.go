package handler

import (
	"log/slog"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"pricing-api/internal/handler/api"
	"pricing-api/internal/handler/middleware"
	"pricing-api/internal/pkg/config"
	"pricing-api/internal/pkg/metrics"
)

func NewRouter(engine *gin.Engine, cfg config.Config, logger *slog.Logger, m *metrics.Metrics, priceHandler *api.PriceHandler, healthHandler *api.HealthHandler) {
	setupMiddleware(engine, cfg, logger, m)
	setupRoutes(engine, m, priceHandler, healthHandler)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config, logger *slog.Logger, m *metrics.Metrics) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.LoggingMiddleware(logger))
	engine.Use(middleware.MetricsMiddleware(m))
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(engine *gin.Engine, m *metrics.Metrics, priceHandler *api.PriceHandler, healthHandler *api.HealthHandler) {
	engine.GET("/health", healthHandler.Check)
	engine.GET("/metrics", gin.WrapH(m.Handler()))

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	apiGroup := engine.Group("/api")
	{
		v1 := apiGroup.Group("/v1")
		{
			v1.GET("/prices", priceHandler.GetPrice)
		}
	}
}
