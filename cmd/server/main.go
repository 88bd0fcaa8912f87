package main

import (
	"log"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/namegame/api/internal/client"
	"github.com/namegame/api/internal/config"
	"github.com/namegame/api/internal/game"
	"github.com/namegame/api/internal/handler"
	"github.com/namegame/api/internal/middleware"
	"github.com/namegame/api/internal/store"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func main() {
	// Load .env file if exists
	_ = godotenv.Load()

	cfg := config.Load()

	// Initialize Redis session store
	sessionStore, err := store.NewRedisStore(cfg.RedisURL)
	if err != nil {
		log.Fatalf("Failed to connect to Redis: %v", err)
	}
	defer sessionStore.Close()

	// Initialize profile directory client
	if cfg.ProfileAPIURL == "" {
		log.Printf("Warning: PROFILE_API_URL is not set; dealing hands will fail")
	}
	directory := client.NewDirectoryClient(cfg.ProfileAPIURL)

	// Initialize game services
	sessions := game.NewSessionManager(sessionStore, cfg.SessionExpire)
	hands := game.NewHandService(sessions, directory)
	scoring := game.NewScoringService(sessions)

	// Initialize handlers
	sessionHandler := handler.NewSessionHandler(sessions, hands, scoring)

	// Setup router
	r := gin.Default()

	// CORS middleware
	r.Use(func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Content-Type, Authorization")
		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}
		c.Next()
	})

	r.Use(middleware.MetricsMiddleware())
	r.Use(middleware.ErrorHandler())

	// Prometheus metrics endpoint
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// Health check
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// API routes
	api := r.Group(cfg.BasePath + "/" + cfg.APIVersion)
	{
		api.POST("/sessions", sessionHandler.Create)
		api.GET("/sessions/:sessionId", sessionHandler.Get)
		api.POST("/sessions/:sessionId/hand", sessionHandler.DealHand)
		api.POST("/sessions/:sessionId/hand/:profileId", sessionHandler.PlayHand)
	}

	log.Printf("Name game API starting on port %s", cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
