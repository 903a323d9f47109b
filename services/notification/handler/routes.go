package handler

import (
	"github.com/labstack/echo/v4"
	"github.com/mealbridge/mealbridge/internal/pkg/logger"
	"github.com/mealbridge/mealbridge/internal/pkg/middleware"
	"github.com/mealbridge/mealbridge/internal/pkg/models"
	"github.com/mealbridge/mealbridge/services/notification"
	httpHandler "github.com/mealbridge/mealbridge/services/notification/handler/http"
	nsqHandler "github.com/mealbridge/mealbridge/services/notification/handler/nsq"
)

// Handler combines all handlers for the notification service
type Handler struct {
	notificationHTTP *httpHandler.NotificationHandler
	notificationNSQ  *nsqHandler.NotificationHandler
}

// NewHandler creates a new combined handler
func NewHandler(notificationUC notification.NotificationUC, cfg *models.Config, log *logger.AppLogger) *Handler {
	return &Handler{
		notificationHTTP: httpHandler.NewNotificationHandler(notificationUC),
		notificationNSQ:  nsqHandler.NewNotificationHandler(notificationUC, cfg, log),
	}
}

// RegisterRoutes registers all HTTP routes
func (h *Handler) RegisterRoutes(e *echo.Echo, apiKeyMiddleware *middleware.APIKeyMiddleware) {
	// Internal routes for service-to-service communication (API key required)
	internal := e.Group("/internal", apiKeyMiddleware.ValidateAPIKey("notification-service"))
	internal.POST("/notifications", h.notificationHTTP.Dispatch)
}

// InitNSQConsumers initializes all NSQ consumers
func (h *Handler) InitNSQConsumers() error {
	return h.notificationNSQ.InitConsumers()
}

// Stop shuts down background consumers
func (h *Handler) Stop() {
	h.notificationNSQ.Stop()
}
