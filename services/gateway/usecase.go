package gateway

import (
	"context"
	"encoding/json"

	"github.com/mealbridge/mealbridge/internal/pkg/models"
)

// GatewayUC defines the gateway's aggregation logic interface
type GatewayUC interface {
	DeliveryView(ctx context.Context, deliveryID string) (*models.DeliveryView, error)
	NearbyRestaurants(ctx context.Context, origin models.GeoPoint, radiusMeters float64) ([]models.RestaurantView, error)
	AssignDelivery(ctx context.Context, req *models.AssignDeliveryRequest) (*models.DeliveryRecord, error)
	AutoAssignDelivery(ctx context.Context, req *models.AutoAssignDeliveryRequest) (*models.DeliveryRecord, error)
	UpdateDeliveryStatus(ctx context.Context, deliveryID string, status models.DeliveryStatus) (*models.DeliveryRecord, error)
	Login(ctx context.Context, req *models.LoginRequest) (json.RawMessage, error)
}
