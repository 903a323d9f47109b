package gateway

import (
	"context"
	"encoding/json"

	"github.com/mealbridge/mealbridge/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_gateway.go -package=mocks github.com/mealbridge/mealbridge/services/gateway GatewayGW

// GatewayGW defines the gateway's clients to the sibling services
type GatewayGW interface {
	// Delivery service
	AssignDelivery(ctx context.Context, req *models.AssignDeliveryRequest) (*models.DeliveryRecord, error)
	AutoAssignDelivery(ctx context.Context, req *models.AutoAssignDeliveryRequest) (*models.DeliveryRecord, error)
	UpdateDeliveryStatus(ctx context.Context, deliveryID string, status models.DeliveryStatus) (*models.DeliveryRecord, error)
	GetDelivery(ctx context.Context, deliveryID string) (*models.DeliveryRecord, error)

	// Location service
	FindNearbyRestaurants(ctx context.Context, origin models.GeoPoint, radiusMeters float64) ([]models.NearbyLocation, error)

	// Order service
	GetOrderSummary(ctx context.Context, orderID string) (*models.OrderSummary, error)
	GetRestaurantName(ctx context.Context, restaurantID string) (string, error)

	// Auth service
	Login(ctx context.Context, req *models.LoginRequest) (json.RawMessage, error)
}
