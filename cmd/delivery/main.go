package main

import (
	"log"

	"github.com/labstack/echo/v4"
	"github.com/mealbridge/mealbridge/internal/pkg/config"
	"github.com/mealbridge/mealbridge/internal/pkg/database"
	"github.com/mealbridge/mealbridge/internal/pkg/health"
	httpclient "github.com/mealbridge/mealbridge/internal/pkg/http"
	"github.com/mealbridge/mealbridge/internal/pkg/logger"
	"github.com/mealbridge/mealbridge/internal/pkg/middleware"
	"github.com/mealbridge/mealbridge/internal/pkg/nsq"
	"github.com/mealbridge/mealbridge/internal/pkg/server"
	"github.com/mealbridge/mealbridge/services/delivery/gateway"
	"github.com/mealbridge/mealbridge/services/delivery/handler"
	"github.com/mealbridge/mealbridge/services/delivery/repository"
	"github.com/mealbridge/mealbridge/services/delivery/usecase"
)

func main() {
	appName := "delivery-service"
	configPath := "config/delivery.env"
	configs := config.InitConfig(configPath)

	appLogger, err := logger.NewAppLogger(configs.Logger, appName)
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer appLogger.Close()

	// Initialize PostgreSQL database connection
	postgresClient, err := database.NewPostgresClient(configs.Database)
	if err != nil {
		appLogger.Fatalf("Failed to connect to PostgreSQL: %v", err)
	}
	defer postgresClient.Close()

	// Initialize NSQ producer
	producer, err := nsq.NewProducer(configs.NSQ.Address)
	if err != nil {
		appLogger.Fatalf("Failed to connect to NSQ: %v", err)
	}
	defer producer.Stop()

	// Initialize location service client
	locationClient := httpclient.NewAPIKeyClient(
		configs.APIKey.LocationService,
		configs.Services.LocationServiceURL,
		"delivery-service",
		appLogger,
	)

	// Initialize repository
	deliveryRepo := repository.NewDeliveryRepository(configs, postgresClient.GetDB())

	// Initialize gateway
	deliveryGW := gateway.NewDeliveryGW(locationClient, producer)

	// Initialize usecase
	deliveryUC := usecase.NewDeliveryUC(configs, deliveryRepo, deliveryGW, appLogger)

	// Initialize handlers
	h := handler.NewHandler(deliveryUC, configs)

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
