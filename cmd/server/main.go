// @title           Art Shop Backend API
// @version         1.0.0
// @description     Backend API for an online art shop: product and artwork catalog, order creation and Stripe-based checkout. Orders snapshot product prices at creation time and are finalized asynchronously through the Stripe webhook.

// @contact.name   API Support
// @contact.email  support@example.com

// @license.name  MIT
// @license.url   https://opensource.org/licenses/MIT

// @host      localhost:8080
// @BasePath  /api/v1

// @securityDefinitions.apikey Bearer
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

package main

import (
	"log"
	"net/http"
	"net/url"

	"art-shop-backend/docs"
	"art-shop-backend/internal/config"
	"art-shop-backend/internal/database"
	"art-shop-backend/internal/handlers"
	"art-shop-backend/internal/middleware"
	"art-shop-backend/internal/payments"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	if cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Update Swagger docs with dynamic base URL
	if cfg.BaseURL != "" {
		if baseURL, err := url.Parse(cfg.BaseURL); err == nil {
			docs.SwaggerInfo.Host = baseURL.Host
			if baseURL.Scheme == "https" {
				docs.SwaggerInfo.Schemes = []string{"https", "http"}
			} else {
				docs.SwaggerInfo.Schemes = []string{"http", "https"}
			}
		}
	}

	dbClient, err := database.NewClient(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer dbClient.Close()

	migrator, err := database.NewMigrator(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("Failed to initialize migrator: %v", err)
	}
	defer migrator.Close()
	if err := migrator.Run(); err != nil {
		log.Fatalf("Migration failed: %v", err)
	}
	log.Println("Migrations completed successfully")

	paymentsClient := payments.NewClient(cfg)

	productsHandler := handlers.NewProductsHandler(dbClient)
	artworksHandler := handlers.NewArtworksHandler(dbClient)
	ordersHandler := handlers.NewOrdersHandler(dbClient, cfg.Currency)
	checkoutHandler := handlers.NewCheckoutHandler(dbClient, paymentsClient)
	webhookHandler := handlers.NewWebhookHandler(dbClient, paymentsClient)

	router := gin.Default()

	// Swagger documentation
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Health check (no auth)
	router.GET("/health", handlers.HealthHandler)

	api := router.Group("/api/v1")

	// Catalog
	api.GET("/products", productsHandler.ListProducts)
	api.GET("/products/:id", productsHandler.GetProduct)
	api.GET("/artworks", artworksHandler.ListArtworks)

	// Orders and checkout
	api.POST("/orders", ordersHandler.CreateOrder)
	api.GET("/orders/:id", ordersHandler.GetOrder)
	api.POST("/checkout/create-session", checkoutHandler.CreateSession)

	// Webhook (no auth, signature-verified)
	api.POST("/webhooks/stripe", webhookHandler.HandleWebhook)

	// Admin catalog management
	admin := api.Group("/admin")
	admin.Use(middleware.AuthMiddleware(cfg))
	admin.POST("/products", productsHandler.CreateProduct)
	admin.PUT("/products/:id", productsHandler.UpdateProduct)
	admin.DELETE("/products/:id", productsHandler.DeleteProduct)
	admin.POST("/artworks", artworksHandler.CreateArtwork)

	log.Printf("Server starting on port %s", cfg.Port)
	if err := http.ListenAndServe(":"+cfg.Port, router); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
