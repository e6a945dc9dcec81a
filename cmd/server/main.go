package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"library-desk/internal/adapters/http/routes"
	"library-desk/internal/adapters/persistence/models"
	"library-desk/internal/config"

	"github.com/gofiber/fiber/v2"

	_ "library-desk/docs" // Swagger docs
)

// @title Library Desk API
// @version 1.0
// @description Circulation desk API: catalog, loans, late fees and fee payments.

// @contact.name API Support

// @BasePath /api/v1

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("❌ Failed to load configuration: %v", err)
	}

	// Connect to database
	db, err := config.ConnectDatabase(cfg)
	if err != nil {
		log.Fatalf("❌ Failed to connect to database: %v", err)
	}
	defer config.CloseDatabase()

	// Auto migrate (creates tables if not exist)
	if err := models.AutoMigrate(db); err != nil {
		log.Fatalf("❌ Failed to auto migrate: %v", err)
	}
	log.Println("✅ Database migration completed")

	// Seed sample catalog
	if cfg.SeedCatalog {
		if err := config.NewSeeder(db).Run(); err != nil {
			log.Printf("⚠️ Warning: Failed to seed catalog: %v", err)
		}
	}

	gateway := routes.NewGateway(cfg)
	log.Printf("💳 Payment gateway ready [MODE: %s]", cfg.Payment.Mode)

	// Create Fiber app with middlewares
	app := routes.NewApp(cfg)

	// Setup routes (pass db, cfg and gateway for dependency injection)
	routes.Setup(app, db, cfg, gateway)

	// Graceful shutdown
	go gracefulShutdown(app)

	// Start server
	log.Printf("🚀 Server starting on port %s [MODE: %s]", cfg.Port, cfg.AppMode)
	if err := app.Listen(":" + cfg.Port); err != nil {
		log.Fatalf("❌ Failed to start server: %v", err)
	}
}

// gracefulShutdown handles graceful shutdown
func gracefulShutdown(app *fiber.App) {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("🛑 Shutting down server...")
	if err := app.Shutdown(); err != nil {
		log.Printf("❌ Error during shutdown: %v", err)
	}
	log.Println("✅ Server stopped gracefully")
}
