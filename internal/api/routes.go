package api

import (
	"github.com/gin-gonic/gin"
	_ "github.com/mautops/filing-gin/docs" // 导入生成的 docs 包
	"github.com/mautops/filing-gin/internal/config"
	"github.com/mautops/filing-gin/internal/service"
	"github.com/mautops/filing-gin/internal/websocket"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"
)

// Dependencies 路由依赖
type Dependencies struct {
	DB                 *gorm.DB
	Hub                *websocket.Hub
	ApplicationService service.ApplicationService
	ExportService      service.ExportService
	StatisticsService  service.StatisticsService
}

// SetupRoutes 使用默认配置配置路由
func SetupRoutes(deps Dependencies) *gin.Engine {
	return SetupRoutesWithConfig(config.Default(), deps)
}

// SetupRoutesWithConfig 配置路由
func SetupRoutesWithConfig(cfg *config.Config, deps Dependencies) *gin.Engine {
	router := gin.New()

	// 中间件
	router.Use(gin.Recovery())
	router.Use(RequestIDMiddleware())
	if TracingEnabled() {
		router.Use(TracingMiddleware(cfg.Tracing.ServiceName))
	}
	router.Use(RequestLogMiddleware())
	router.Use(SecurityHeadersMiddleware(config.IsProduction(cfg)))
	router.Use(CORSMiddleware(cfg.CORS))
	router.Use(I18nMiddleware())
	router.Use(ErrorHandlerMiddleware())

	// 健康检查
	healthController := NewHealthController(deps.DB)
	router.GET("/health", healthController.Check)

	// Prometheus 指标端点
	router.GET("/metrics", MetricsHandler)

	// WebSocket 路由
	if deps.Hub != nil {
		router.GET("/ws/applications", websocket.WebSocketHandler(deps.Hub))
	}

	// Swagger UI 路由
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	v1 := router.Group("/api/v1")
	if cfg.RateLimit.Enabled {
		v1.Use(RateLimitMiddleware(cfg.RateLimit.RPS, cfg.RateLimit.Burst))
	}

	appController := NewApplicationController(deps.ApplicationService)
	reviewController := NewReviewController(deps.ApplicationService, deps.ExportService, deps.StatisticsService)
	{
		// 申请人
		applications := v1.Group("/applications")
		{
			applications.POST("", appController.Submit)
			applications.GET("", appController.List)
			applications.GET("/:id", appController.Get)
		}

		// 审核员
		reviews := v1.Group("/reviews")
		{
			reviews.GET("/pending", reviewController.Pending)
			reviews.POST("/:id/approve", reviewController.Approve)
			reviews.POST("/:id/reject", reviewController.Reject)
			reviews.GET("/archive/export", reviewController.Export)
		}

		v1.GET("/statistics", reviewController.Statistics)
	}

	return router
}
