// Package main is the entry point for the API server. It initializes
// all dependencies, sets up the HTTP server and starts the
// application.
package main

import (
	"context"
	"log"

	"minimart/internal/config"
	"minimart/internal/repositories"
	"minimart/internal/routes"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
)

func main() {
	config.LoadEnv()

	db, err := repositories.InitDB()
	if err != nil {
		log.Fatalf("failed to initialize database: %v", err)
	}
	defer func() {
		sqlDB, err := db.DB()
		if err != nil {
			log.Printf("failed to get database instance: %v", err)
			return
		}
		if err := sqlDB.Close(); err != nil {
			log.Printf("failed to close database connection: %v", err)
		}
	}()

	cacheSvc, err := repositories.InitCache()
	if err != nil {
		log.Fatalf("failed to initialize cache: %v", err)
	}
	defer func() {
		if err := cacheSvc.Close(); err != nil {
			log.Printf("failed to close redis connection: %v", err)
		}
	}()

	// Stale entries from a previous run are worthless after migration.
	if err := cacheSvc.FlushAll(context.Background()); err != nil {
		log.Printf("failed to flush redis cache: %v", err)
	}

	app := fiber.New()

	app.Use(cors.New(cors.Config{
		AllowOrigins: config.GetEnv("CORS_ALLOW_ORIGINS", "http://localhost:5173"),
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
		AllowMethods: "GET,POST,HEAD,PUT,DELETE,PATCH",
	}))

	app.Use(logger.New(logger.Config{
		Format: "[${time}] ${status} - ${latency} ${method} ${path}\n",
	}))

	routes.SetupRoutes(app, db, cacheSvc)

	log.Fatal(app.Listen(":" + config.GetEnv("PORT", "3000")))
}
