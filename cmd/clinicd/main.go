package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/fertivia/clinic/internal/api"
	"github.com/fertivia/clinic/internal/config"
	"github.com/fertivia/clinic/internal/db"
	"github.com/fertivia/clinic/internal/uploads"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/joho/godotenv"
)

func main() {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Printf("skipping .env: %v", err)
	}

	cfg, err := config.Load(os.Getenv("CONFIG_PATH"))
	if err != nil {
		log.Fatalf("config load failed: %v", err)
	}

	database, err := db.Open(cfg.Database.Driver, cfg.DSN())
	if err != nil {
		log.Fatalf("database init failed: %v", err)
	}

	presigner, err := uploads.NewS3Presigner(
		context.Background(),
		cfg.Storage.Region,
		cfg.Storage.Bucket,
		cfg.Storage.AccessKeyID,
		cfg.Storage.SecretAccessKey,
	)
	if err != nil {
		log.Fatalf("presigner init failed: %v", err)
	}

	handler := api.NewHandler(database, presigner)

	app := fiber.New(fiber.Config{
		AppName:               "Clinic API",
		DisableStartupMessage: true,
	})

	app.Use(recover.New())
	app.Use(logger.New())
	app.Use(compress.New())
	app.Use(api.MetricsMiddleware)

	api.RegisterRoutes(app, handler)

	sigCtx, stopSignals := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stopSignals()

	go func() {
		<-sigCtx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := app.ShutdownWithContext(shutdownCtx); err != nil {
			log.Printf("server shutdown failed: %v", err)
		}
	}()

	log.Printf("clinic api listening on http://0.0.0.0:%s (db: %s/%s)", cfg.Server.Port, cfg.Database.Driver, cfg.Database.Name)
	if err := app.Listen(":" + cfg.Server.Port); err != nil {
		log.Fatalf("server exited: %v", err)
	}
}
