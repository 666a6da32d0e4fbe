package api

import (
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/PiovisDevelopment/calorie-flow/backend/config"
	"github.com/PiovisDevelopment/calorie-flow/backend/internal/middleware"
	"github.com/PiovisDevelopment/calorie-flow/backend/internal/service"
)

// Dependencies carries everything the API layer needs wired at startup.
// Redis, S3 and the health-check pool are optional; the corresponding
// features degrade gracefully when they are nil.
type Dependencies struct {
	DB     *gorm.DB
	Pool   HealthChecker
	Redis  *redis.Client
	S3     *config.S3Config
	Config *config.Config
}

// SetupAPI builds the services and registers every route under /api/v1.
func SetupAPI(router *gin.Engine, deps Dependencies) {
	v1 := router.Group("/api/v1")

	sessionService := service.NewSessionService(deps.DB, deps.Config.JWTSecret, deps.Config.TokenTTL)
	settingsService := service.NewSettingsService(deps.DB)
	logStore := service.NewLogStore(deps.DB)
	trackerService := service.NewTrackerService(deps.DB, settingsService, logStore, deps.Redis)
	analysisService := service.NewAnalysisService(deps.Config, deps.S3)

	// Unauthenticated surface: probes and session bootstrap.
	NewHealthHandler(deps.Pool).RegisterRoutes(v1)
	NewSessionHandler(sessionService).RegisterRoutes(v1)

	authed := v1.Group("")
	authed.Use(middleware.Auth(sessionService))
	{
		NewOnboardingHandler(settingsService, trackerService).RegisterRoutes(authed)
		NewPlanHandler(trackerService).RegisterRoutes(authed)
		NewLogsHandler(trackerService, logStore).RegisterRoutes(authed)
		NewDashboardHandler(trackerService).RegisterRoutes(authed)

		var rateLimit gin.HandlerFunc
		if deps.Redis != nil {
			rateLimit = middleware.NewAnalysisRateLimiter(deps.Redis).Middleware()
		}
		NewAnalyzeHandler(analysisService, trackerService).RegisterRoutes(authed, rateLimit)
	}
}
