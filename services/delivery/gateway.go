package delivery

import (
	"context"

	"github.com/mealbridge/mealbridge/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_gateway.go -package=mocks github.com/mealbridge/mealbridge/services/delivery DeliveryGW

// DeliveryGW defines the delivery service's outbound dependencies
type DeliveryGW interface {
	// GeocodeAddress resolves a restaurant address through the location service.
	GeocodeAddress(ctx context.Context, address string) (*models.GeocodeResult, error)
	// FindNearbyDrivers returns available drivers ranked by distance.
	FindNearbyDrivers(ctx context.Context, origin models.GeoPoint, radiusMeters float64) ([]models.NearbyLocation, error)
	// PublishDeliveryEvent emits a lifecycle event for downstream consumers.
	PublishDeliveryEvent(ctx context.Context, event *models.DeliveryEvent) error
	// PublishNotification enqueues a notification request for the dispatcher.
	PublishNotification(ctx context.Context, req *models.NotificationRequest) error
}
