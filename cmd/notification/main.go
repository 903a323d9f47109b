package main

import (
	"log"

	"github.com/labstack/echo/v4"
	"github.com/mealbridge/mealbridge/internal/pkg/config"
	"github.com/mealbridge/mealbridge/internal/pkg/health"
	"github.com/mealbridge/mealbridge/internal/pkg/logger"
	"github.com/mealbridge/mealbridge/internal/pkg/middleware"
	"github.com/mealbridge/mealbridge/internal/pkg/server"
	"github.com/mealbridge/mealbridge/services/notification"
	"github.com/mealbridge/mealbridge/services/notification/gateway"
	"github.com/mealbridge/mealbridge/services/notification/handler"
	"github.com/mealbridge/mealbridge/services/notification/usecase"
)

func main() {
	appName := "notification-service"
	configPath := "config/notification.env"
	configs := config.InitConfig(configPath)

	appLogger, err := logger.NewAppLogger(configs.Logger, appName)
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer appLogger.Close()

	// Initialize channel senders
	senders := []notification.Sender{
		gateway.NewEmailSender(configs.Notification),
		gateway.NewSMSSender(configs.Notification),
		gateway.NewChatSender(configs.Notification),
	}

	// Initialize usecase
	notificationUC := usecase.NewNotificationUC(configs, senders, appLogger)

	// Initialize handlers
	h := handler.NewHandler(notificationUC, configs, appLogger)

	// Initialize NSQ consumers
	if err := h.InitNSQConsumers(); err != nil {
		appLogger.Fatalf("Failed to initialize NSQ consumers: %v", err)
	}
	defer h.Stop()

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
