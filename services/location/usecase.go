package location

import (
	"context"

	"github.com/mealbridge/mealbridge/internal/pkg/models"
)

// LocationUC defines the interface for location business logic
type LocationUC interface {
	UpsertLocation(ctx context.Context, loc *models.Location) (*models.Location, error)
	GetLocation(ctx context.Context, entityID string, entityType models.EntityType) (*models.Location, error)
	RemoveLocation(ctx context.Context, entityID string, entityType models.EntityType) error

	// FindCandidates ranks entities of one type by distance from the origin,
	// bounded by maxDistanceMeters. An empty result is a normal outcome.
	FindCandidates(ctx context.Context, origin models.GeoPoint, entityType models.EntityType, maxDistanceMeters float64) ([]models.NearbyLocation, error)

	Geocode(ctx context.Context, address string) (*models.GeocodeResult, error)
	ReverseGeocode(ctx context.Context, point models.GeoPoint) (*models.GeocodeResult, error)
	Autocomplete(ctx context.Context, partial string) ([]models.AddressSuggestion, error)
}
