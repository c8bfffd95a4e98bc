package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"vintagevault-backend/config"
	"vintagevault-backend/database"
	"vintagevault-backend/middleware"
	"vintagevault-backend/routes"
	"vintagevault-backend/storage"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func main() {
	// Load environment variables
	if err := config.LoadEnv(); err != nil {
		log.Fatal("Error loading .env file:", err)
	}

	// Validate critical environment variables
	if err := config.ValidateEnv(); err != nil {
		log.Fatal("Environment validation failed: ", err)
	}

	// Initialize database
	db, err := database.Connect()
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}

	// Run migrations
	if err := database.Migrate(db); err != nil {
		log.Fatal("Failed to run migrations:", err)
	}

	// Load the admin credential pair
	creds, err := config.LoadAdminCreds()
	if err != nil {
		log.Fatal("Failed to load admin credentials: ", err)
	}

	// Initialize the image asset store
	uploadDir := config.GetEnv("UPLOAD_DIR", config.DefaultUploadDir)
	store, err := storage.NewDiskStore(uploadDir)
	if err != nil {
		log.Fatal("Failed to initialize upload storage: ", err)
	}

	// Setup Gin router
	r := gin.Default()

	// Cap request bodies (image uploads included) at 16MB
	r.Use(middleware.BodySizeLimit(config.MaxUploadBytes))
	r.MaxMultipartMemory = config.MaxUploadBytes

	if frontend := os.Getenv("FRONTEND_URL"); frontend != "" {
		r.Use(cors.New(cors.Config{
			AllowOrigins:     []string{frontend},
			AllowMethods:     []string{"GET", "POST", "OPTIONS"},
			AllowHeaders:     []string{"Origin", "Content-Type"},
			ExposeHeaders:    []string{"Content-Length"},
			AllowCredentials: true,
		}))
	}

	// Serve stored image assets
	r.Static("/static/uploads", store.Root())

	// Setup routes
	routes.SetupRoutes(r, db, store, creds)

	// Start server with graceful shutdown
	port := config.GetEnv("PORT", "8080")

	srv := &http.Server{
		Addr:    ":" + port,
		Handler: r,
	}

	// Run server in a goroutine
	go func() {
		log.Printf("Server starting on port %s", port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	// Give outstanding requests 30 seconds to complete
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("Server forced to shutdown:", err)
	}

	// Close database connection
	sqlDB, err := db.DB()
	if err == nil {
		if err := sqlDB.Close(); err != nil {
			log.Printf("Error closing database connection: %v", err)
		} else {
			log.Println("Database connection closed")
		}
	}

	log.Println("Server exited gracefully")
}
