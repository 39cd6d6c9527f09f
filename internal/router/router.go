// internal/router/router.go
package router

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/HamzaJabari/craftopia-backend/internal/config"
	"github.com/HamzaJabari/craftopia-backend/internal/handlers"
	"github.com/HamzaJabari/craftopia-backend/internal/middleware"
	"github.com/HamzaJabari/craftopia-backend/internal/services"
	"github.com/HamzaJabari/craftopia-backend/internal/utils"
)

func Initialize(db *gorm.DB, cfg *config.Config) *gin.Engine {
	// Initialize services
	notificationService := services.NewNotificationService(db)
	catalogService := services.NewCatalogService(db)
	orderService := services.NewOrderService(db, catalogService, notificationService)
	authService := services.NewAuthService(db, cfg)
	reviewService := services.NewReviewService(db, catalogService, notificationService)
	galleryService := services.NewGalleryService(db, catalogService, notificationService)
	availabilityService := services.NewAvailabilityService(db)
	adminService := services.NewAdminService(db, notificationService)

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(authService)
	artisanHandler := handlers.NewArtisanHandler(catalogService)
	orderHandler := handlers.NewOrderHandler(orderService)
	notificationHandler := handlers.NewNotificationHandler(notificationService)
	galleryHandler := handlers.NewGalleryHandler(galleryService)
	reviewHandler := handlers.NewReviewHandler(reviewService)
	availabilityHandler := handlers.NewAvailabilityHandler(availabilityService)
	adminHandler := handlers.NewAdminHandler(adminService)

	// Set JWT secret
	utils.SetJWTSecret(cfg.JWT.SecretKey)

	r := gin.New()

	// Global middleware
	r.Use(gin.Recovery())
	r.Use(middleware.RequestLogger())
	r.Use(middleware.CORS())
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
		// Authentication routes
		auth := v1.Group("/auth")
		auth.Use(middleware.AuthRateLimit())
		{
			auth.POST("/register", authHandler.Register)
			auth.POST("/login", authHandler.Login)
			auth.GET("/me", middleware.AuthRequired(), authHandler.GetProfile)
		}

		// Public artisan routes
		artisans := v1.Group("/artisans")
		{
			artisans.GET("", artisanHandler.ListArtisans)
			artisans.GET("/:id", artisanHandler.GetArtisan)
			artisans.GET("/:id/portfolio", artisanHandler.ListPortfolio)
		}

		// Public gallery feed and image comments
		gallery := v1.Group("/portfolio")
		{
			gallery.GET("/feed", galleryHandler.GetFeed)
			gallery.GET("/comments", galleryHandler.ListComments)
			gallery.POST("/comment", middleware.AuthRequired(), middleware.CustomerRequired(), galleryHandler.CreateComment)
		}

		// Portfolio management (artisan only)
		portfolio := v1.Group("/portfolio")
		portfolio.Use(middleware.AuthRequired(), middleware.ArtisanRequired())
		{
			portfolio.POST("", artisanHandler.CreatePortfolioItem)
			portfolio.DELETE("/:id", artisanHandler.DeletePortfolioItem)
		}

		// Order routes
		orders := v1.Group("/orders")
		orders.Use(middleware.AuthRequired())
		{
			orders.POST("", middleware.CustomerRequired(), orderHandler.CreateOrder)
			orders.GET("", orderHandler.ListOrders)
			orders.GET("/:id", orderHandler.GetOrder)
			orders.PUT("/:id/status", middleware.ArtisanRequired(), orderHandler.UpdateStatus)
			orders.PUT("/:id/response", middleware.CustomerRequired(), orderHandler.RespondToOffer)
			orders.PUT("/:id/cancel", middleware.CustomerRequired(), orderHandler.CancelOrder)
		}

		// Notification routes
		notifications := v1.Group("/notifications")
		notifications.Use(middleware.AuthRequired())
		{
			notifications.GET("", notificationHandler.ListNotifications)
			notifications.PUT("/read", notificationHandler.MarkAllRead)
			notifications.DELETE("/:id", notificationHandler.DeleteNotification)
		}

		// Review routes
		reviews := v1.Group("/reviews")
		{
			reviews.GET("/artisan/:artisanId", reviewHandler.ListArtisanReviews)
			reviews.POST("", middleware.AuthRequired(), middleware.CustomerRequired(), reviewHandler.CreateReview)
		}

		// Availability routes
		availability := v1.Group("/availability")
		{
			availability.GET("/:artisanId", availabilityHandler.GetSchedule)

			protected := availability.Group("")
			protected.Use(middleware.AuthRequired(), middleware.ArtisanRequired())
			{
				protected.POST("", availabilityHandler.SetAvailability)
				protected.DELETE("/slots/:id", availabilityHandler.DeleteSlot)
			}
		}

		// Admin routes
		admin := v1.Group("/admin")
		admin.Use(middleware.AuthRequired(), middleware.AdminRequired())
		{
			admin.GET("/dashboard/stats", adminHandler.GetDashboardStats)
			admin.PUT("/users/:id/status", adminHandler.UpdateUserStatus)
			admin.DELETE("/portfolio/:id", adminHandler.RemovePortfolioItem)
			admin.POST("/broadcast", adminHandler.Broadcast)
		}
	}

	return r
}
