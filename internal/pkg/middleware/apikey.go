package middleware

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/mealbridge/mealbridge/internal/pkg/models"
	"github.com/mealbridge/mealbridge/internal/utils"
)

const (
	APIKeyHeader = "X-API-Key"
)

// APIKeyMiddleware validates service-to-service API keys
type APIKeyMiddleware struct {
	serviceKeys map[string]string
}

// NewAPIKeyMiddleware creates an API key middleware from configuration
func NewAPIKeyMiddleware(cfg models.APIKeyConfig) *APIKeyMiddleware {
	return &APIKeyMiddleware{
		serviceKeys: map[string]string{
			"delivery-service":     cfg.DeliveryService,
			"location-service":     cfg.LocationService,
			"notification-service": cfg.NotificationService,
			"gateway-service":      cfg.GatewayService,
		},
	}
}

// ValidateAPIKey middleware validates the API key for service-to-service communication
func (m *APIKeyMiddleware) ValidateAPIKey(allowedServices ...string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			apiKey := c.Request().Header.Get(APIKeyHeader)
			if apiKey == "" {
				return utils.ErrorResponseHandler(c, http.StatusUnauthorized, "API key is required")
			}

			// Check if the API key belongs to any of the allowed services
			validKey := false
			for _, service := range allowedServices {
				if m.serviceKeys[service] != "" && strings.EqualFold(apiKey, m.serviceKeys[service]) {
					validKey = true
					break
				}
			}

			if !validKey {
				return utils.ErrorResponseHandler(c, http.StatusUnauthorized, "Invalid API key")
			}

			return next(c)
		}
	}
}
