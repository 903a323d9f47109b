package main

import (
	"log"

	"github.com/labstack/echo/v4"
	"github.com/mealbridge/mealbridge/internal/pkg/config"
	"github.com/mealbridge/mealbridge/internal/pkg/health"
	"github.com/mealbridge/mealbridge/internal/pkg/logger"
	"github.com/mealbridge/mealbridge/internal/pkg/middleware"
	"github.com/mealbridge/mealbridge/internal/pkg/server"
	gatewayHTTP "github.com/mealbridge/mealbridge/services/gateway/gateway/http"
	"github.com/mealbridge/mealbridge/services/gateway/handler"
	"github.com/mealbridge/mealbridge/services/gateway/usecase"
)

func main() {
	appName := "gateway-service"
	configPath := "config/gateway.env"
	configs := config.InitConfig(configPath)

	appLogger, err := logger.NewAppLogger(configs.Logger, appName)
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer appLogger.Close()

	// Initialize sibling service clients
	gatewayGW := gatewayHTTP.NewHTTPGateway(configs, appLogger)

	// Initialize usecase
	gatewayUC := usecase.NewGatewayUC(configs, gatewayGW, appLogger)

	// Initialize handlers
	h := handler.NewHandler(gatewayUC, configs)

	// Initialize Echo server
	e := echo.New()
	e.HideBanner = true
	e.Use(middleware.RequestIDMiddleware())
	e.Use(middleware.LoggerMiddleware(appLogger.Logger))

	// Register health endpoints
	health.RegisterHealthEndpoints(e, appName)

	// Register service routes
	h.RegisterRoutes(e)

	// Start server with graceful shutdown
	srv := server.NewGracefulServer(e, appLogger, configs.Server.Port)
	if err := srv.Start(); err != nil {
		appLogger.Fatalf("Failed to start %s: %v", appName, err)
	}
}
