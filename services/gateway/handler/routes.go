package handler

import (
	"github.com/labstack/echo/v4"
	"github.com/mealbridge/mealbridge/internal/pkg/middleware"
	"github.com/mealbridge/mealbridge/internal/pkg/models"
	"github.com/mealbridge/mealbridge/services/gateway"
	httpHandler "github.com/mealbridge/mealbridge/services/gateway/handler/http"
)

// Handler combines all handlers for the gateway service
type Handler struct {
	gatewayHTTP *httpHandler.GatewayHandler
	cfg         *models.Config
}

// NewHandler creates a new combined handler
func NewHandler(gatewayUC gateway.GatewayUC, cfg *models.Config) *Handler {
	return &Handler{
		gatewayHTTP: httpHandler.NewGatewayHandler(gatewayUC),
		cfg:         cfg,
	}
}

// RegisterRoutes registers all HTTP routes
func (h *Handler) RegisterRoutes(e *echo.Echo) {
	// Public auth endpoint
	e.POST("/auth/login", h.gatewayHTTP.Login)

	// Client-facing API (JWT required)
	api := e.Group("/api/v1", middleware.JWTAuthMiddleware(h.cfg.JWT))

	api.GET("/restaurants/nearby", h.gatewayHTTP.NearbyRestaurants)

	api.POST("/deliveries", h.gatewayHTTP.AssignDelivery, middleware.RequireRole("dispatcher", "admin"))
	api.POST("/deliveries/auto-assign", h.gatewayHTTP.AutoAssignDelivery, middleware.RequireRole("dispatcher", "admin"))
	api.GET("/deliveries/:id", h.gatewayHTTP.DeliveryView)
	api.PUT("/deliveries/:id/status", h.gatewayHTTP.UpdateDeliveryStatus)
}
