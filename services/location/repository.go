package location

import (
	"context"

	"github.com/mealbridge/mealbridge/internal/pkg/models"
)

// LocationRepo defines the interface for the geo index
type LocationRepo interface {
	// Upsert replaces any existing entry for (entityID, entityType)
	Upsert(ctx context.Context, loc *models.Location) error
	// Get returns the location for the key, or apperrors.ErrNotFound
	Get(ctx context.Context, entityID string, entityType models.EntityType) (*models.Location, error)
	// Delete removes the entry; deleting an absent entry is not an error
	Delete(ctx context.Context, entityID string, entityType models.EntityType) error
	// FindNear returns entries of one type within maxDistanceMeters of the
	// point, ascending by distance
	FindNear(ctx context.Context, point models.GeoPoint, maxDistanceMeters float64, entityType models.EntityType, limit int) ([]models.NearbyLocation, error)
}
