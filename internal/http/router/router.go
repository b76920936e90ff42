package router

import (
	"github.com/gin-gonic/gin"

	"github.com/ignatzorin/freshkeeper-backend/internal/config"
	"github.com/ignatzorin/freshkeeper-backend/internal/http/handlers"
	"github.com/ignatzorin/freshkeeper-backend/internal/http/middleware"
	"github.com/ignatzorin/freshkeeper-backend/internal/service"
)

func SetupRouter(
	cfg *config.Config,
	authHandler *handlers.AuthHandler,
	inventoryHandler *handlers.InventoryHandler,
	reportHandler *handlers.ReportHandler,
	notificationHandler *handlers.NotificationHandler,
	categoryHandler *handlers.CategoryHandler,
	healthHandler *handlers.HealthHandler,
	tokenManager *service.TokenManager,
) *gin.Engine {
	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.Default()
	r.Use(middleware.ErrorHandler())
	r.Use(middleware.CORS(cfg.AllowedOrigins))

	r.GET("/health", healthHandler.Health)

	api := r.Group("/api")

	// Справочник категорий доступен и без токена
	api.GET("/categories", middleware.AuthOptional(tokenManager), categoryHandler.ListCategories)

	authGroup := api.Group("/auth")
	authRateLimit := middleware.RateLimit(cfg.RateLimitLimit, cfg.RateLimitPeriod)
	authGroup.Use(authRateLimit)
	{
		authGroup.POST("/send-code", authHandler.SendCode)
		authGroup.POST("/register", authHandler.Register)
		authGroup.POST("/login", authHandler.Login)
	}

	// Защищённые маршруты
	protected := api.Group("/")
	protected.Use(middleware.AuthRequired(tokenManager))
	{
		protected.GET("/inventory", inventoryHandler.ListItems)
		protected.POST("/inventory", inventoryHandler.CreateItem)
		protected.PUT("/inventory/:id", middleware.UUIDParam("id"), inventoryHandler.UpdateItem)
		protected.DELETE("/inventory/:id", middleware.UUIDParam("id"), inventoryHandler.DeleteItem)
		protected.POST("/inventory/:id/donate", middleware.UUIDParam("id"), inventoryHandler.DonateItem)

		protected.GET("/report", reportHandler.GetReport)
		protected.GET("/notifications", notificationHandler.ListNotifications)
	}

	return r
}
