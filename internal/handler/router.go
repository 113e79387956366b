package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"parkhaus/internal/handler/api"
	"parkhaus/internal/handler/middleware"
	"parkhaus/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
}

func NewRouter(engine *gin.Engine, cfg config.Config, parkingHandler *api.ParkingHandler, analyticsHandler *api.AnalyticsHandler) {
	setupMiddleware(engine, cfg)
	setupRoutes(engine, parkingHandler, analyticsHandler)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.LoggingMiddleware(nil, cfg.Log))
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(engine *gin.Engine, parkingHandler *api.ParkingHandler, analyticsHandler *api.AnalyticsHandler) {
	engine.GET("/health", healthCheck)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	parking := engine.Group("/api/parking")
	{
		addRoutes(parking, []route{
			{Method: http.MethodPost, Path: "/entry", Handler: parkingHandler.Entry},
			{Method: http.MethodPost, Path: "/exit", Handler: parkingHandler.Exit},
			{Method: http.MethodGet, Path: "/status", Handler: parkingHandler.Status},
			{Method: http.MethodGet, Path: "/sessions/active", Handler: parkingHandler.ActiveSessions},
			{Method: http.MethodGet, Path: "/vehicles/:plate", Handler: parkingHandler.VehicleByPlate},
		})

		analytics := parking.Group("/analytics")
		{
			addRoutes(analytics, []route{
				{Method: http.MethodGet, Path: "/revenue/:hours", Handler: analyticsHandler.RevenueLastHours},
				{Method: http.MethodGet, Path: "/vehicles/color/:color", Handler: analyticsHandler.CountByColor},
				{Method: http.MethodGet, Path: "/current-count", Handler: analyticsHandler.CurrentVehicleCount},
				{Method: http.MethodGet, Path: "/daily-average/:days", Handler: analyticsHandler.DailyAverageVehicles},
				{Method: http.MethodGet, Path: "/average-spending/:days", Handler: analyticsHandler.AverageDailySpending},
				{Method: http.MethodGet, Path: "/duration/color/:color", Handler: analyticsHandler.AverageDurationByColor},
				{Method: http.MethodGet, Path: "/revenue-by-day/:days", Handler: analyticsHandler.RevenueByDay},
				{Method: http.MethodGet, Path: "/brands", Handler: analyticsHandler.BrandDistribution},
				{Method: http.MethodGet, Path: "/floors", Handler: analyticsHandler.FloorDistribution},
				{Method: http.MethodGet, Path: "/hourly-occupancy", Handler: analyticsHandler.HourlyOccupancy},
				{Method: http.MethodGet, Path: "/overview", Handler: analyticsHandler.Overview},
			})
		}
	}
}

// @Summary Health check
// @Description Check if the service is healthy
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"message": "Service is healthy",
	})
}

func addRoutes(g *gin.RouterGroup, rs []route) {
	for _, r := range rs {
		switch r.Method {
		case http.MethodGet:
			g.GET(r.Path, r.Handler)
		case http.MethodPost:
			g.POST(r.Path, r.Handler)
		case http.MethodPut:
			g.PUT(r.Path, r.Handler)
		case http.MethodPatch:
			g.PATCH(r.Path, r.Handler)
		case http.MethodDelete:
			g.DELETE(r.Path, r.Handler)
		default:
			g.Any(r.Path, r.Handler)
		}
	}
}
