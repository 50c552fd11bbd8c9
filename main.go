package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/shanykim9/BoilerInspector/config"
	"github.com/shanykim9/BoilerInspector/controllers"
	"github.com/shanykim9/BoilerInspector/database"
	"github.com/shanykim9/BoilerInspector/routes"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	store, err := database.Open(cfg.DatabasePath)
	if err != nil {
		log.Fatalf("db open failed: %v", err)
	}
	defer store.Close()

	if err := store.SeedSampleData(context.Background()); err != nil {
		log.Printf("seed: %v", err)
	}

	if err := os.MkdirAll(filepath.Join(cfg.UploadDir, "inspections"), 0o755); err != nil {
		log.Fatalf("upload dir: %v", err)
	}

	app := fiber.New(fiber.Config{
		BodyLimit: cfg.MaxUploadBytes,
	})
	app.Use(recover.New())

	// Log concise request lines
	app.Use(logger.New(logger.Config{
		TimeFormat: "15:04:05",
	}))

	app.Use(cors.New(cors.Config{
		AllowOrigins: cfg.CORSOrigins,
		AllowMethods: "GET,POST,PUT,OPTIONS",
		AllowHeaders: "*",
		MaxAge:       int((12 * time.Hour).Seconds()),
	}))

	// Static serving for uploaded photos
	app.Static("/uploads", cfg.UploadDir)

	// Health
	app.Get("/health", func(c *fiber.Ctx) error { return c.SendString("ok") })

	api := controllers.New(store, cfg.UploadDir)
	routes.Register(app, api)

	go func() {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
		<-quit
		log.Println("shutting down")
		_ = app.Shutdown()
	}()

	log.Printf("API listening on :%s", cfg.Port)
	if err := app.Listen(":" + cfg.Port); err != nil {
		log.Fatalf("listen: %v", err)
	}
}
