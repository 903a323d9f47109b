package handler

import (
	"github.com/labstack/echo/v4"
	"github.com/mealbridge/mealbridge/internal/pkg/middleware"
	"github.com/mealbridge/mealbridge/internal/pkg/models"
	"github.com/mealbridge/mealbridge/services/delivery"
	httpHandler "github.com/mealbridge/mealbridge/services/delivery/handler/http"
)

// Handler combines all handlers for the delivery service
type Handler struct {
	deliveryHTTP *httpHandler.DeliveryHandler
	cfg          *models.Config
}

// NewHandler creates a new combined handler
func NewHandler(deliveryUC delivery.DeliveryUC, cfg *models.Config) *Handler {
	return &Handler{
		deliveryHTTP: httpHandler.NewDeliveryHandler(deliveryUC),
		cfg:          cfg,
	}
}

// RegisterRoutes registers all HTTP routes
func (h *Handler) RegisterRoutes(e *echo.Echo, apiKeyMiddleware *middleware.APIKeyMiddleware) {
	deliveries := e.Group("/deliveries", middleware.JWTAuthMiddleware(h.cfg.JWT))

	// Dispatcher endpoints
	deliveries.POST("", h.deliveryHTTP.Assign, middleware.RequireRole("dispatcher", "admin"))
	deliveries.POST("/auto-assign", h.deliveryHTTP.AutoAssign, middleware.RequireRole("dispatcher", "admin"))

	// Driver endpoints
	deliveries.GET("/my-deliveries", h.deliveryHTTP.MyDeliveries)
	deliveries.GET("/my-deliveries/completed", h.deliveryHTTP.MyCompletedDeliveries)
	deliveries.GET("/:id", h.deliveryHTTP.GetByID)
	deliveries.PUT("/:id/status", h.deliveryHTTP.UpdateStatus)

	// Internal routes for service-to-service communication (API key required)
	internal := e.Group("/internal", apiKeyMiddleware.ValidateAPIKey("delivery-service"))

	internalDeliveries := internal.Group("/deliveries")
	internalDeliveries.POST("", h.deliveryHTTP.Assign)
	internalDeliveries.POST("/auto-assign", h.deliveryHTTP.AutoAssign)
	internalDeliveries.GET("/:id", h.deliveryHTTP.GetByID)
	internalDeliveries.PUT("/:id/status", h.deliveryHTTP.UpdateStatus)
}
