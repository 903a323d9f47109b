package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/mealbridge/mealbridge/internal/pkg/apperrors"
	"github.com/mealbridge/mealbridge/internal/pkg/models"
	"github.com/mealbridge/mealbridge/internal/utils"
	"github.com/mealbridge/mealbridge/services/location"
)

// DefaultSearchRadiusMeters bounds FindCandidates when the caller passes no radius
const DefaultSearchRadiusMeters = 10000.0

// LocationUC implements the location.LocationUC interface
type LocationUC struct {
	repo     location.LocationRepo
	resolver location.AddressResolver
	cfg      *models.Config
}

// NewLocationUC creates a new location use case
func NewLocationUC(repo location.LocationRepo, resolver location.AddressResolver, cfg *models.Config) location.LocationUC {
	return &LocationUC{
		repo:     repo,
		resolver: resolver,
		cfg:      cfg,
	}
}

// UpsertLocation stores or replaces the location for an entity
func (uc *LocationUC) UpsertLocation(ctx context.Context, loc *models.Location) (*models.Location, error) {
	if loc.EntityID == "" {
		return nil, apperrors.NewValidation("entityId", "is required")
	}
	if !loc.EntityType.Valid() {
		return nil, apperrors.NewValidation("entityType", "must be restaurant, customer or driver")
	}
	if !utils.ValidPoint(loc.Point) {
		return nil, fmt.Errorf("point (%f, %f): %w", loc.Point.Longitude, loc.Point.Latitude, apperrors.ErrInvalidCoordinates)
	}

	loc.Geohash = utils.EncodeLocation(loc.Point)
	loc.UpdatedAt = time.Now()

	if err := uc.repo.Upsert(ctx, loc); err != nil {
		return nil, err
	}
	return loc, nil
}

// GetLocation returns the stored location for an entity
func (uc *LocationUC) GetLocation(ctx context.Context, entityID string, entityType models.EntityType) (*models.Location, error) {
	if !entityType.Valid() {
		return nil, apperrors.NewValidation("entityType", "must be restaurant, customer or driver")
	}
	return uc.repo.Get(ctx, entityID, entityType)
}

// RemoveLocation removes an entity from the index. For drivers this is the
// off-shift signal: an unindexed driver is not an assignment candidate.
func (uc *LocationUC) RemoveLocation(ctx context.Context, entityID string, entityType models.EntityType) error {
	if !entityType.Valid() {
		return apperrors.NewValidation("entityType", "must be restaurant, customer or driver")
	}
	return uc.repo.Delete(ctx, entityID, entityType)
}

// FindCandidates ranks entities of one type by distance from the origin.
// An empty result is a normal outcome, not a failure.
func (uc *LocationUC) FindCandidates(ctx context.Context, origin models.GeoPoint, entityType models.EntityType, maxDistanceMeters float64) ([]models.NearbyLocation, error) {
	if !utils.ValidPoint(origin) {
		return nil, fmt.Errorf("origin (%f, %f): %w", origin.Longitude, origin.Latitude, apperrors.ErrInvalidCoordinates)
	}
	if !entityType.Valid() {
		return nil, apperrors.NewValidation("entityType", "must be restaurant, customer or driver")
	}
	if maxDistanceMeters <= 0 {
		maxDistanceMeters = DefaultSearchRadiusMeters
	}

	limit := 0
	if uc.cfg != nil {
		limit = uc.cfg.Dispatch.MaxCandidates
	}

	return uc.repo.FindNear(ctx, origin, maxDistanceMeters, entityType, limit)
}

// Geocode resolves a free-text address through the provider
func (uc *LocationUC) Geocode(ctx context.Context, address string) (*models.GeocodeResult, error) {
	if address == "" {
		return nil, apperrors.NewValidation("address", "is required")
	}
	return uc.resolver.Geocode(ctx, address)
}

// ReverseGeocode resolves coordinates back to an address
func (uc *LocationUC) ReverseGeocode(ctx context.Context, point models.GeoPoint) (*models.GeocodeResult, error) {
	if !utils.ValidPoint(point) {
		return nil, fmt.Errorf("point (%f, %f): %w", point.Longitude, point.Latitude, apperrors.ErrInvalidCoordinates)
	}
	return uc.resolver.ReverseGeocode(ctx, point)
}

// Autocomplete returns address suggestions for a partial input
func (uc *LocationUC) Autocomplete(ctx context.Context, partial string) ([]models.AddressSuggestion, error) {
	if partial == "" {
		return nil, apperrors.NewValidation("input", "is required")
	}
	return uc.resolver.Autocomplete(ctx, partial)
}
