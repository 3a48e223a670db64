package main

import (
	"context"
	"log"

	"shop_marketing/internal/config"
	"shop_marketing/internal/database"
	"shop_marketing/internal/handlers"
	"shop_marketing/internal/services"
	"shop_marketing/internal/storage"
	"shop_marketing/pkg/openai"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func main() {
	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatal("Failed to initialize logger:", err)
	}
	defer logger.Sync()

	// Load configuration
	cfg := config.Load()

	// Initialize storage
	var store storage.Storage
	switch cfg.StorageDriver {
	case "database":
		db, err := database.Initialize(cfg.DatabaseURL)
		if err != nil {
			logger.Fatal("failed to initialize database", zap.Error(err))
		}
		gormStore, err := storage.NewGormStorage(db)
		if err != nil {
			logger.Fatal("failed to initialize database storage", zap.Error(err))
		}
		store = gormStore
		logger.Info("using database storage", zap.String("url", cfg.DatabaseURL))
	default:
		store = storage.NewMemoryStorage()
		logger.Info("using in-memory storage")
	}

	if cfg.SeedDemoData {
		if err := storage.Seed(context.Background(), store); err != nil {
			logger.Fatal("failed to seed demo data", zap.Error(err))
		}
	}

	// Initialize generation adapter
	completer := openai.NewClient(cfg.OpenAIAPIKey, cfg.OpenAIModel, cfg.OpenAITimeout)
	generator := services.NewGenerator(completer, cfg.OpenAITimeout, logger)

	// Initialize handlers
	shopHandler := handlers.NewShopHandler(store, logger)
	customerHandler := handlers.NewCustomerHandler(store, logger)
	campaignHandler := handlers.NewCampaignHandler(store, logger)
	whatsappHandler := handlers.NewWhatsAppHandler(store, generator, logger)
	bannerHandler := handlers.NewBannerHandler(store, generator, logger)
	socialHandler := handlers.NewSocialHandler(generator, logger)
	analyticsHandler := handlers.NewAnalyticsHandler(store, generator, logger)

	// Setup routes
	router := gin.Default()
	router.Use(handlers.CORS())

	api := router.Group("/api")
	{
		api.GET("/shops/:id", shopHandler.GetShop)
		api.GET("/shops/user/:userId", shopHandler.GetShopByUser)
		api.POST("/shops", shopHandler.CreateShop)
		api.PATCH("/shops/:id", shopHandler.UpdateShop)

		api.GET("/customers/shop/:shopId", customerHandler.GetCustomersByShop)
		api.POST("/customers", customerHandler.CreateCustomer)
		api.PATCH("/customers/:id", customerHandler.UpdateCustomer)

		api.GET("/campaigns/shop/:shopId", campaignHandler.GetCampaignsByShop)
		api.POST("/campaigns", campaignHandler.CreateCampaign)
		api.PATCH("/campaigns/:id", campaignHandler.UpdateCampaign)

		api.POST("/whatsapp/generate", whatsappHandler.Generate)
		api.POST("/whatsapp/save", whatsappHandler.Save)
		api.GET("/whatsapp/shop/:shopId", whatsappHandler.GetMessagesByShop)

		api.POST("/banners/generate", bannerHandler.Generate)
		api.POST("/banners/save", bannerHandler.Save)
		api.GET("/banners/shop/:shopId", bannerHandler.GetBannersByShop)

		api.POST("/social/generate", socialHandler.Generate)

		api.GET("/analytics/stats/:shopId", analyticsHandler.GetStats)
		api.POST("/analytics/insights", analyticsHandler.GenerateInsights)
	}

	// Start server
	logger.Info("server starting", zap.String("port", cfg.ServerPort))
	if err := router.Run(":" + cfg.ServerPort); err != nil {
		logger.Fatal("failed to start server", zap.Error(err))
	}
}
