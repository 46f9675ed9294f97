// internal/router/router.go
package router

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/electromart/support-backend/internal/config"
	"github.com/electromart/support-backend/internal/handlers"
	"github.com/electromart/support-backend/internal/middleware"
	"github.com/electromart/support-backend/internal/services"
)

func Initialize(cfg *config.Config) *gin.Engine {
	// Initialize services
	catalogStore := services.NewGormCatalogStore(cfg.Database)
	catalogService := services.NewCatalogService(catalogStore)
	generator := services.NewOpenAIGenerator(cfg.OpenAI)
	composer := services.NewResponseComposer(generator, cfg.Chat.StoreName)
	resolver := services.NewIntentResolver()
	chatService := services.NewChatService(resolver, catalogService, composer, cfg.Chat.ResultLimit)

	// Initialize handlers
	chatHandler := handlers.NewChatHandler(chatService)
	productHandler := handlers.NewProductHandler(catalogService)

	// Initialize Gin router
	r := gin.New()

	// Global middleware
	r.Use(gin.Recovery())
	r.Use(middleware.RequestLogger())
	r.Use(middleware.CORS(cfg.CORS))
	r.Use(middleware.GeneralRateLimit())

	// Health check
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "healthy",
			"version": "1.0.0",
		})
	})

	// API v1 routes
	v1 := r.Group("/v1")
	{
		chat := v1.Group("/chat")
		chat.Use(middleware.ChatRateLimit())
		{
			chat.POST("", chatHandler.Chat)
		}

		products := v1.Group("/products")
		{
			products.GET("", productHandler.GetProducts)
			products.GET("/detail", productHandler.GetProductDetail)
		}
	}

	return r
}
