package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/swiftmart/checkout-api/internal/api/handlers"
	"github.com/swiftmart/checkout-api/internal/api/middleware"
	"github.com/swiftmart/checkout-api/internal/checkout"
	"github.com/swiftmart/checkout-api/internal/config"
	"github.com/swiftmart/checkout-api/internal/repository"
)

// NewRouter creates and configures the Gin router
func NewRouter(cfg *config.Config, svc *checkout.Service, repos *repository.Repositories, logger *zap.Logger) *gin.Engine {
	if cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.HandleMethodNotAllowed = true

	// Middleware
	router.Use(gin.Recovery())
	router.Use(loggingMiddleware(logger))
	router.Use(middleware.CORS(cfg.CORS.AllowOrigins))

	router.NoMethod(func(c *gin.Context) {
		c.JSON(http.StatusMethodNotAllowed, gin.H{"error": "method not allowed"})
	})

	// Health check
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	api := router.Group("/api")
	{
		api.POST("/checkout", handlers.HandleCheckout(svc, logger))
		api.GET("/orders/:id", handlers.HandleGetOrder(repos, logger))
	}

	return router
}

// loggingMiddleware logs HTTP requests
func loggingMiddleware(logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		path := c.Request.URL.Path
		method := c.Request.Method

		c.Next()

		status := c.Writer.Status()
		logger.Info("HTTP request",
			zap.String("method", method),
			zap.String("path", path),
			zap.Int("status", status),
		)
	}
}
