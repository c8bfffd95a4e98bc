package routes

import (
	"time"

	"vintagevault-backend/config"
	"vintagevault-backend/handlers"
	"vintagevault-backend/middleware"
	"vintagevault-backend/storage"
	"vintagevault-backend/web"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func SetupRoutes(r *gin.Engine, db *gorm.DB, store storage.Store, creds config.AdminCreds) {
	r.SetHTMLTemplate(web.Templates())

	// Initialize handlers
	catalogHandler := &handlers.CatalogHandler{DB: db}
	cartHandler := &handlers.CartHandler{DB: db}
	adminHandler := &handlers.AdminHandler{DB: db, Storage: store, Creds: creds}

	// Public storefront
	r.GET("/", catalogHandler.Index)
	r.GET("/hats", catalogHandler.Hats)
	r.GET("/clothing", catalogHandler.Clothing)

	// Cart routes (anonymous, session-scoped)
	cart := r.Group("/cart")
	cart.Use(middleware.CartSession())
	{
		cart.GET("", cartHandler.ViewCart)
		cart.POST("/add/:id", cartHandler.AddToCart)
		cart.POST("/update/:id", cartHandler.UpdateLine)
		cart.POST("/remove/:id", cartHandler.RemoveLine)
	}

	// Login flow, rate limited against credential guessing
	loginLimiter := middleware.NewRateLimiter(10, time.Minute)
	r.GET("/admin/login", adminHandler.ShowLogin)
	r.POST("/admin/login", loginLimiter.Middleware(), adminHandler.Login)
	r.GET("/admin/logout", adminHandler.Logout)

	// Admin routes (require the admin session token)
	admin := r.Group("/admin")
	admin.Use(middleware.AdminRequired())
	{
		admin.GET("", adminHandler.Dashboard)
		admin.GET("/add", adminHandler.ShowAdd)
		admin.POST("/add", adminHandler.AddItem)
		admin.GET("/edit/:id", adminHandler.ShowEdit)
		admin.POST("/edit/:id", adminHandler.EditItem)
		admin.GET("/delete/:id", adminHandler.DeleteItem)
	}

	// Health check
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})
}
