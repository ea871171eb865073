package main

import (
	"log"

	"github.com/labstack/echo/v4"
	"github.com/skill-swap/backend/internal/router"
	"github.com/skill-swap/backend/pkg/config"
)

func main() {
	// Initialize database connection (loads .env as a side effect)
	db, err := config.InitDB()
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer db.CloseDB() // Ensure database connection is closed when main exits

	cfg := config.Load()

	// Create Echo instance
	e := echo.New()

	// Setup global middleware
	router.SetupMiddleware(e)

	// Setup routes and dependencies
	if err := router.SetupRoutes(e, db.Postgres, cfg); err != nil {
		log.Fatalf("Failed to set up routes: %v", err)
	}

	// Start server
	e.Logger.Fatal(e.Start(":" + cfg.Port))
}
