package main

import (
	"log"
	"os"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/robfig/cron/v3"

	v1 "github.com/blogify-backend/api/v1"
	"github.com/blogify-backend/config"
	"github.com/blogify-backend/database"
	"github.com/blogify-backend/middleware"
	"github.com/blogify-backend/services"
)

func main() {
	// Load environment variables
	config.LoadEnv()

	// Connect to the database and run migrations
	database.Initialize()

	// Connect Redis for the logout token blacklist
	database.InitializeRedis()

	// Set Gin mode
	gin.SetMode(gin.ReleaseMode)

	// Initialize router
	router := gin.New()
	router.Use(gin.Logger())
	router.Use(middleware.RecoveryMiddleware())

	// CORS configuration
	router.Use(cors.New(cors.Config{
		AllowAllOrigins:  true,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		AllowCredentials: true,
	}))

	// Health check endpoint
	router.GET("/", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "ok",
			"service": "blogify-api",
			"version": "1.0.0",
		})
	})

	// Register v1 API routes
	v1.RegisterRoutes(router.Group("/api/v1"))

	// Nightly sitemap refresh, on top of the event-driven regenerations
	scheduler := cron.New()
	sitemapService := services.NewSitemapService()
	if _, err := scheduler.AddFunc("0 3 * * *", func() {
		if err := sitemapService.Regenerate(); err != nil {
			log.Printf("Warning: scheduled sitemap regeneration failed: %v", err)
		}
	}); err != nil {
		log.Fatalf("Failed to schedule sitemap job: %v", err)
	}
	scheduler.Start()
	defer scheduler.Stop()

	// Get port from environment or use default
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	// Start server
	log.Printf("🚀 Blogify API starting on port %s", port)
	if err := router.Run(":" + port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
