package router

import (
	"log"

	"github.com/labstack/echo/v4"
	eMiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/skill-swap/backend/internal/handlers"
	"github.com/skill-swap/backend/internal/middleware"
	"github.com/skill-swap/backend/internal/repositories"
	"github.com/skill-swap/backend/pkg/config"
	"gorm.io/gorm"
)

// SetupMiddleware configures global Echo middleware
func SetupMiddleware(e *echo.Echo) {
	e.Use(eMiddleware.Recover())
	e.Use(eMiddleware.Logger())
	e.Use(eMiddleware.CORS())
	log.Println("Global middleware configured.")
}

// SetupRoutes configures all application routes and injects dependencies
func SetupRoutes(e *echo.Echo, db *gorm.DB, cfg *config.Config) error {
	if err := repositories.Migrate(db); err != nil {
		return err
	}
	log.Println("Database migrations completed.")

	// Health check - always accessible
	e.GET("/health", handlers.HealthCheck)

	// --- Initialize Repositories ---
	userRepo := repositories.NewPostgresUserRepository(db)
	swapRepo := repositories.NewPostgresSwapRepository(db)
	feedbackRepo := repositories.NewPostgresFeedbackRepository(db)

	// --- Initialize Handlers ---
	authHandler := handlers.NewAuthHandler(userRepo, cfg.JWTSecret)
	userHandler := handlers.NewUserHandler(userRepo, swapRepo, feedbackRepo)
	swapHandler := handlers.NewSwapHandler(swapRepo, userRepo)
	adminHandler := handlers.NewAdminHandler(userRepo, swapRepo)

	// --- Unprotected routes ---
	api := e.Group("/api")
	authHandler.RegisterAuthRoutes(api.Group("/auth"))
	userHandler.RegisterPublicRoutes(api)
	log.Println("Auth and public user routes configured.")

	// --- Protected routes (require JWT authentication) ---
	authed := api.Group("", middleware.JWTAuthMiddleware(cfg.JWTSecret))
	userHandler.RegisterProfileRoutes(authed)
	swapHandler.RegisterSwapRoutes(authed)
	log.Println("Profile and swap routes configured.")

	// --- Admin routes (require admin capability) ---
	admin := authed.Group("/admin", middleware.AdminAuthMiddleware())
	adminHandler.RegisterAdminRoutes(admin)
	log.Println("Admin routes configured.")

	return nil
}
