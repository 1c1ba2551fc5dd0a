package main

import (
	"log"

	"github.com/gin-gonic/gin"
	"github.com/linskybing/reservation-go/config"
	"github.com/linskybing/reservation-go/db"
	"github.com/linskybing/reservation-go/middleware"
	"github.com/linskybing/reservation-go/routes"
	"github.com/linskybing/reservation-go/storage"
)

func main() {
	// Load configuration from environment variables and .env file
	config.LoadConfig()

	// Initialize JWT signing key
	middleware.Init()

	// Initialize database connection and migrate schemas
	db.Init()

	// Object storage for print documents is optional and skipped when no
	// endpoint is configured.
	storage.Init()

	gin.SetMode(gin.ReleaseMode)
	router := gin.Default()

	router.Use(middleware.CORSMiddleware())

	routes.RegisterRoutes(router)

	port := ":" + config.ServerPort
	log.Printf("Starting API server on %s", port)
	if err := router.Run(port); err != nil {
		log.Fatalf("Failed to start: %v", err)
	}
}
