package main

import (
	"context"
	"database/sql"
	"log"
	"os"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/BrikiApp/briki-api/config"
	"github.com/BrikiApp/briki-api/handlers"
	"github.com/BrikiApp/briki-api/middleware"
	"github.com/BrikiApp/briki-api/routes"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	db, err := config.InitDB()
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}
	defer db.Close()

	log.Println("✅ Database connected successfully")

	if err := config.RunMigrations(db); err != nil {
		log.Fatal("Failed to run migrations:", err)
	}

	cache, err := config.InitRedis()
	if err != nil {
		log.Printf("⚠️ Redis unavailable, running without cache: %v", err)
		cache = nil
	} else {
		log.Println("✅ Redis connected successfully")
		defer cache.Close()
	}

	go scheduleJanitor(db)

	wsHandler := handlers.NewWSHandler()

	router := gin.Default()

	frontendURL := os.Getenv("FRONTEND_URL")
	if frontendURL == "" {
		frontendURL = "http://localhost:3000"
	}

	allowedOrigins := []string{
		frontendURL,
		"https://briki.app",
		"https://www.briki.app",
	}

	log.Printf("🌍 CORS: Allowing origins:")
	for _, origin := range allowedOrigins {
		log.Printf("   - %s", origin)
	}

	corsConfig := cors.Config{
		AllowOrigins:     allowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "X-Session-ID"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           86400,
	}
	router.Use(cors.New(corsConfig))

	router.Use(func(c *gin.Context) {
		start := time.Now()
		log.Printf("📨 %s %s from %s", c.Request.Method, c.Request.URL.Path, c.ClientIP())
		c.Next()
		duration := time.Since(start)
		log.Printf("✅ %s %s - %d (%v)", c.Request.Method, c.Request.URL.Path, c.Writer.Status(), duration)
	})

	router.Use(middleware.RateLimiter())

	v1 := router.Group("/api/v1")
	{
		routes.SetupPlanRoutes(v1, db, cache)
		routes.SetupChatRoutes(v1, db, cache, wsHandler)
		routes.SetupRuntRoutes(v1, db, cache)
	}

	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "healthy",
			"version": "1.0.0",
			"time":    time.Now().Format(time.RFC3339),
		})
	})

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	log.Printf("🚀 Server starting on port %s...", port)
	if err := router.Run(":" + port); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}

func scheduleJanitor(db *sql.DB) {
	ticker := time.NewTicker(24 * time.Hour)
	defer ticker.Stop()
	cleanExpiredRows(db)
	for range ticker.C {
		cleanExpiredRows(db)
	}
}

func cleanExpiredRows(db *sql.DB) {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	result, err := db.ExecContext(ctx, `DELETE FROM runt_lookups WHERE fetched_at < NOW() - INTERVAL '30 days'`)
	if err != nil {
		log.Printf("❌ RUNT cache cleanup failed: %v", err)
	} else if rows, _ := result.RowsAffected(); rows > 0 {
		log.Printf("🧹 Cleaned %d expired RUNT lookups", rows)
	}

	result, err = db.ExecContext(ctx, `DELETE FROM quote_requests WHERE created_at < NOW() - INTERVAL '90 days'`)
	if err != nil {
		log.Printf("❌ Quote log cleanup failed: %v", err)
	} else if rows, _ := result.RowsAffected(); rows > 0 {
		log.Printf("🧹 Cleaned %d stale quote requests", rows)
	}

	_, err = db.ExecContext(ctx, `DELETE FROM chat_contexts WHERE updated_at < NOW() - INTERVAL '30 days'`)
	if err != nil {
		log.Printf("❌ Chat context cleanup failed: %v", err)
	}
}
