package handler

import (
	"github.com/labstack/echo/v4"
	"github.com/mealbridge/mealbridge/internal/pkg/middleware"
	"github.com/mealbridge/mealbridge/internal/pkg/models"
	"github.com/mealbridge/mealbridge/services/location"
	httpHandler "github.com/mealbridge/mealbridge/services/location/handler/http"
)

// Handler combines all handlers for the location service
type Handler struct {
	locationHTTP *httpHandler.LocationHandler
	cfg          *models.Config
}

// NewHandler creates a new combined handler
func NewHandler(locationUC location.LocationUC, cfg *models.Config) *Handler {
	return &Handler{
		locationHTTP: httpHandler.NewLocationHandler(locationUC),
		cfg:          cfg,
	}
}

// RegisterRoutes registers all HTTP routes
func (h *Handler) RegisterRoutes(e *echo.Echo, apiKeyMiddleware *middleware.APIKeyMiddleware) {
	// Public resolver endpoints (JWT required)
	locations := e.Group("/locations", middleware.JWTAuthMiddleware(h.cfg.JWT))
	locations.POST("/geocode", h.locationHTTP.Geocode)
	locations.GET("/reverse-geocode", h.locationHTTP.ReverseGeocode)
	locations.GET("/autocomplete", h.locationHTTP.Autocomplete)
	locations.GET("/nearby", h.locationHTTP.FindNearby)
	locations.POST("", h.locationHTTP.UpsertLocation)
	locations.GET("/:entityType/:entityId", h.locationHTTP.GetLocation)
	locations.DELETE("/:entityType/:entityId", h.locationHTTP.RemoveLocation)

	// Internal routes for service-to-service communication (API key required)
	internal := e.Group("/internal", apiKeyMiddleware.ValidateAPIKey("location-service"))

	internalLocations := internal.Group("/locations")
	internalLocations.POST("/geocode", h.locationHTTP.Geocode)
	internalLocations.GET("/nearby", h.locationHTTP.FindNearby)
	internalLocations.POST("", h.locationHTTP.UpsertLocation)
	internalLocations.GET("/:entityType/:entityId", h.locationHTTP.GetLocation)
	internalLocations.DELETE("/:entityType/:entityId", h.locationHTTP.RemoveLocation)
}
