package routes

import (
	"github.com/ArowuTest/adspendwise-backend/internal/config"
	"github.com/ArowuTest/adspendwise-backend/internal/handlers"
	"github.com/ArowuTest/adspendwise-backend/internal/metrics"
	"github.com/ArowuTest/adspendwise-backend/internal/middleware"
	"github.com/gin-gonic/gin"
)

// HandlerDependencies holds the handlers mounted by SetupRouter
type HandlerDependencies struct {
	CampaignHandler  *handlers.CampaignHandler
	AnalysisHandler  *handlers.AnalysisHandler
	DashboardHandler *handlers.DashboardHandler
}

// SetupRouter sets up the router
func SetupRouter(cfg *config.Config, deps HandlerDependencies, m *metrics.Metrics) *gin.Engine {
	router := gin.New()

	router.Use(gin.Recovery())
	router.Use(middleware.RequestIDMiddleware())
	router.Use(middleware.LoggerMiddleware())
	router.Use(middleware.MetricsMiddleware(m))
	router.Use(middleware.CORSMiddleware(cfg))

	router.GET("/metrics", gin.WrapH(m.Handler()))

	api := router.Group("/api")
	{
		api.GET("/", deps.DashboardHandler.Root)
		api.GET("/health", deps.DashboardHandler.Health)

		campaigns := api.Group("/campaigns")
		{
			campaigns.POST("", deps.CampaignHandler.CreateCampaign)
			campaigns.GET("", deps.CampaignHandler.GetCampaigns)
			campaigns.POST("/bulk-upload", deps.CampaignHandler.BulkUpload)
			campaigns.POST("/bulk-analyze", deps.AnalysisHandler.BulkAnalyze)
			campaigns.GET("/:id", deps.CampaignHandler.GetCampaignByID)
			campaigns.POST("/:id/analyze", deps.AnalysisHandler.AnalyzeCampaign)
			campaigns.GET("/:id/analysis", deps.AnalysisHandler.GetCampaignAnalyses)
		}

		dashboard := api.Group("/dashboard")
		{
			dashboard.GET("/summary", deps.DashboardHandler.GetSummary)
		}
	}

	return router
}
