package main

import (
	"log"

	"github.com/labstack/echo/v4"
	"github.com/mealbridge/mealbridge/internal/pkg/config"
	"github.com/mealbridge/mealbridge/internal/pkg/database"
	"github.com/mealbridge/mealbridge/internal/pkg/health"
	"github.com/mealbridge/mealbridge/internal/pkg/logger"
	"github.com/mealbridge/mealbridge/internal/pkg/middleware"
	"github.com/mealbridge/mealbridge/internal/pkg/server"
	"github.com/mealbridge/mealbridge/services/location/geocoder"
	"github.com/mealbridge/mealbridge/services/location/handler"
	"github.com/mealbridge/mealbridge/services/location/repository"
	"github.com/mealbridge/mealbridge/services/location/usecase"
)

func main() {
	appName := "location-service"
	configPath := "config/location.env"
	configs := config.InitConfig(configPath)

	appLogger, err := logger.NewAppLogger(configs.Logger, appName)
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer appLogger.Close()

	// Initialize Redis client
	redisClient, err := database.NewRedisClient(configs.Redis)
	if err != nil {
		appLogger.Fatalf("Failed to connect to Redis: %v", err)
	}
	defer redisClient.Close()

	// Initialize repository
	locationRepo := repository.NewLocationRepository(redisClient)

	// Initialize geocoding resolver
	resolver := geocoder.NewClient(configs.Geocoder, appLogger)

	// Initialize usecase
	locationUC := usecase.NewLocationUC(locationRepo, resolver, configs)

	// Initialize handlers
	h := handler.NewHandler(locationUC, configs)

	// Initialize Echo server
	e := echo.New()
	e.HideBanner = true
	e.Use(middleware.RequestIDMiddleware())
	e.Use(middleware.LoggerMiddleware(appLogger.Logger))

	// Register health endpoints
	health.RegisterHealthEndpoints(e, appName)

	// Register service routes
	apiKeyMiddleware := middleware.NewAPIKeyMiddleware(configs.APIKey)
	h.RegisterRoutes(e, apiKeyMiddleware)

	// Start server with graceful shutdown
	srv := server.NewGracefulServer(e, appLogger, configs.Server.Port)
	if err := srv.Start(); err != nil {
		appLogger.Fatalf("Failed to start %s: %v", appName, err)
	}
}
