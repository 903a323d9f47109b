package delivery

import (
	"context"

	"github.com/mealbridge/mealbridge/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_repository.go -package=mocks github.com/mealbridge/mealbridge/services/delivery DeliveryRepo

// DeliveryRepo defines the delivery record persistence interface
type DeliveryRepo interface {
	// CreateAssignment inserts the record only when the order has no
	// non-terminal record; it returns ErrAlreadyAssigned otherwise.
	CreateAssignment(ctx context.Context, record *models.DeliveryRecord) error
	GetByID(ctx context.Context, id string) (*models.DeliveryRecord, error)
	// UpdateStatus advances a record from expected current status to next,
	// stamping the matching timestamp. It returns ErrNotFound when the record
	// does not exist and ErrIllegalTransition when the current status differs.
	UpdateStatus(ctx context.Context, id string, current, next models.DeliveryStatus) (*models.DeliveryRecord, error)
	ListByDriver(ctx context.Context, deliveryPersonID string) ([]*models.DeliveryRecord, error)
	ListCompletedByDriver(ctx context.Context, deliveryPersonID string) ([]*models.DeliveryRecord, error)
}
