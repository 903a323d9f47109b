package delivery

import (
	"context"

	"github.com/mealbridge/mealbridge/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/mealbridge/mealbridge/services/delivery DeliveryUC

// AssignRequest carries an explicit driver assignment
type AssignRequest struct {
	OrderID          string `json:"order_id"`
	DeliveryPersonID string `json:"delivery_person_id"`
	Notes            string `json:"notes,omitempty"`
}

// AutoAssignRequest asks the dispatcher to pick the nearest available driver
type AutoAssignRequest struct {
	OrderID           string  `json:"order_id"`
	RestaurantAddress string  `json:"restaurant_address"`
	Notes             string  `json:"notes,omitempty"`
	// SearchRadiusMeters overrides the configured dispatch radius when > 0.
	SearchRadiusMeters float64 `json:"search_radius_meters,omitempty"`
}

// DeliveryUC defines the delivery service business logic interface
type DeliveryUC interface {
	Assign(ctx context.Context, req *AssignRequest) (*models.DeliveryRecord, error)
	AutoAssign(ctx context.Context, req *AutoAssignRequest) (*models.DeliveryRecord, error)
	Transition(ctx context.Context, deliveryID string, target models.DeliveryStatus) (*models.DeliveryRecord, error)
	GetByID(ctx context.Context, deliveryID string) (*models.DeliveryRecord, error)
	ListByDriver(ctx context.Context, deliveryPersonID string) ([]*models.DeliveryRecord, error)
	ListCompletedByDriver(ctx context.Context, deliveryPersonID string) ([]*models.DeliveryRecord, error)
}
